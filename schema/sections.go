// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"github.com/danielhkuo/monthlog/formtree"
	"github.com/danielhkuo/monthlog/models"
)

// Contribution is the full contribution form, one field per category
type Contribution struct {
	Digital Digital `json:"cityDigital"`
	Cost    Cost    `json:"cityCost"`
}

// Digital is the digital/workation environment section (cityDigital)
type Digital struct {
	SatisfactionScore int            `json:"digital_satisfaction_score"`
	InternetSpeedMbps float64        `json:"internet_speed_mbps"`
	PowerStability    PowerStability `json:"power_stability"`
	WifiAccess        WifiAccess     `json:"wifi_access"`
	CoworkingSpace    CoworkingSpace `json:"coworking_space"`
	Cafe              Cafe           `json:"cafe"`
	Membership        Membership     `json:"membership"`
}

type PowerStability struct {
	Rating          int    `json:"rating"`
	OutageFrequency string `json:"outage_frequency"`
}

type WifiAccess struct {
	Rating              int  `json:"rating"`
	PublicWifiAvailable bool `json:"public_wifi_available"`
}

type CoworkingSpace struct {
	Rating     int         `json:"rating"`
	Count      int         `json:"count"`
	PricePlans []PricePlan `json:"price_plans"`
}

type Cafe struct {
	Rating         int  `json:"rating"`
	LaptopFriendly bool `json:"laptop_friendly"`
	PowerOutlets   bool `json:"power_outlets"`
}

type Membership struct {
	Available  bool        `json:"available"`
	PricePlans []PricePlan `json:"price_plans"`
}

// PricePlan is one row of a price table (coworking day pass, monthly membership)
type PricePlan struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Period string  `json:"period"`
}

// Cost is the cost of living section (cityCost)
type Cost struct {
	SatisfactionScore  int     `json:"cost_satisfaction_score"`
	MonthlyRent        float64 `json:"monthly_rent"`
	MealPrice          float64 `json:"meal_price"`
	CoffeePrice        float64 `json:"coffee_price"`
	TransportPassPrice float64 `json:"transport_pass_price"`
	Currency           string  `json:"currency"`
}

// DefaultContribution returns the unanswered form: zero leaves and empty,
// non-nil sequences, so its tree has the same keys as any filled-in form.
func DefaultContribution() Contribution {
	var c Contribution
	c.normalize()
	return c
}

func (c *Contribution) normalize() {
	if c.Digital.CoworkingSpace.PricePlans == nil {
		c.Digital.CoworkingSpace.PricePlans = []PricePlan{}
	}
	if c.Digital.Membership.PricePlans == nil {
		c.Digital.Membership.PricePlans = []PricePlan{}
	}
}

// Trees converts the typed sections into form trees keyed by category
func (c Contribution) Trees() (map[string]formtree.Tree, error) {
	c.normalize()

	digital, err := formtree.FromValue(c.Digital)
	if err != nil {
		return nil, err
	}
	cost, err := formtree.FromValue(c.Cost)
	if err != nil {
		return nil, err
	}

	return map[string]formtree.Tree{
		models.CategoryDigital: digital,
		models.CategoryCost:    cost,
	}, nil
}

// Payload diffs c against the default form and assembles the result
func (c Contribution) Payload() (models.ContributionPayload, error) {
	values, err := c.Trees()
	if err != nil {
		return nil, err
	}
	defaults, err := DefaultContribution().Trees()
	if err != nil {
		return nil, err
	}

	sections := make([]formtree.Section, 0, len(models.KnownCategories))
	for _, category := range models.KnownCategories {
		sections = append(sections, formtree.Section{
			Category: category,
			Diff:     formtree.RemoveDefaults(values[category], defaults[category]),
		})
	}
	return formtree.AssemblePayload(sections...), nil
}
