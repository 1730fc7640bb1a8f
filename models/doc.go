// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the API
server and the client.

# Request Types

  - SignupRequest: email, password, nickname
  - LoginRequest: email, password

# Response Types

  - HomeCMSResponse: cities, stats, user_info
  - CityDetailResponse: city, stats
  - ContributionResponse: contribution_id, city_id, categories, message
  - ErrorResponse: error, message, details

# Domain Types

  - City: city_id (numeric backend key) and slug (human-readable)
  - CityStats: aggregated contribution statistics
  - User: account info, with a session token after login
  - ContributionPayload: category -> non-default fields

# Categories

	CategoryDigital = "cityDigital"
	CategoryCost    = "cityCost"

A ContributionPayload only carries categories whose diff against the form
defaults is non-empty.
*/
package models
