// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Contribution category constants
const (
	CategoryDigital = "cityDigital"
	CategoryCost    = "cityCost"
)

// ContributionPayload maps a category to the non-default fields of that form
// section. It is built fresh for every submission.
type ContributionPayload map[string]map[string]any

// Categories returns the category keys present in the payload
func (p ContributionPayload) Categories() []string {
	categories := make([]string, 0, len(p))
	for _, category := range KnownCategories {
		if _, ok := p[category]; ok {
			categories = append(categories, category)
		}
	}
	return categories
}

// KnownCategories lists the categories accepted by the contribution endpoint,
// in submission order.
var KnownCategories = []string{CategoryDigital, CategoryCost}

// Request types

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response types

type HomeCMSResponse struct {
	Cities   []City    `json:"cities"`
	Stats    HomeStats `json:"stats"`
	UserInfo *User     `json:"user_info"`
}

type HomeStats struct {
	CityCount         int `json:"city_count"`
	ContributionCount int `json:"contribution_count"`
}

type CityDetailResponse struct {
	City  City      `json:"city"`
	Stats CityStats `json:"stats"`
}

type ContributionResponse struct {
	ContributionID string   `json:"contribution_id"`
	CityID         int64    `json:"city_id"`
	Categories     []string `json:"categories"`
	Message        string   `json:"message"`
}

// Domain types

type City struct {
	ID      int64  `json:"city_id"`
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// CityStats aggregates stored contributions for one city.
// Medians and means only cover contributions that answered the field.
type CityStats struct {
	ContributionCount         int        `json:"contribution_count"`
	DigitalSatisfactionMedian float64    `json:"digital_satisfaction_median"`
	DigitalSatisfactionMean   float64    `json:"digital_satisfaction_mean"`
	InternetSpeedMedian       float64    `json:"internet_speed_median_mbps"`
	MonthlyRentMedian         float64    `json:"monthly_rent_median"`
	CostSatisfactionMedian    float64    `json:"cost_satisfaction_median"`
	LastContributionAt        *time.Time `json:"last_contribution_at,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}
