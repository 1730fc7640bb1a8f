// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides authentication and token generation utilities.

# Passwords

Passwords are hashed with bcrypt at sign-up and checked at login:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, attempt) // auth.ErrInvalidCredentials

Passwords shorter than MinPasswordLen are rejected with ErrWeakPassword.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

They are URL-safe base64 encoded and sent back by clients as
"Authorization: Bearer <token>". BearerToken extracts them from a request.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

Contributions store a salted hash of the client address, never the address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
