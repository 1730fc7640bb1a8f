// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the HTTP client for the Monthlog API.

# Submitting

SubmitContribution resolves a slug to a numeric city id and then posts the
payload:

	c := client.New("https://api.monthlog.example")
	resp, err := c.SubmitContribution(ctx, "jeju", payload)

Resolution fetches GET /api/v1/explorer/home/cms and matches slugs
case-insensitively ("Jeju" finds "jeju"). A missing city returns a
*CityNotFoundError (errors.Is(err, client.ErrCityNotFound)) and the mutation
is never sent. The mutation is POST /api/v1/cities/{city_id}/contributions.

There is no retry and no idempotency key. Cancelling ctx aborts whichever
step is in flight.

# Errors

Non-2xx responses become *APIError carrying the status code and the server's
message and details.

# Auth

Login stores the returned session token; later requests send it as
"Authorization: Bearer <token>".
*/
package client
