// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

// Lens reads and writes one subtree of a Contribution
type Lens[T any] struct {
	Name string
	Get  func(c *Contribution) T
	Set  func(c *Contribution, v T)
}

var (
	ScoreField = Lens[int]{
		Name: "cityDigital.digital_satisfaction_score",
		Get:  func(c *Contribution) int { return c.Digital.SatisfactionScore },
		Set:  func(c *Contribution, v int) { c.Digital.SatisfactionScore = v },
	}
	SpeedField = Lens[float64]{
		Name: "cityDigital.internet_speed_mbps",
		Get:  func(c *Contribution) float64 { return c.Digital.InternetSpeedMbps },
		Set:  func(c *Contribution, v float64) { c.Digital.InternetSpeedMbps = v },
	}
	PowerStabilityField = Lens[PowerStability]{
		Name: "cityDigital.power_stability",
		Get:  func(c *Contribution) PowerStability { return c.Digital.PowerStability },
		Set:  func(c *Contribution, v PowerStability) { c.Digital.PowerStability = v },
	}
	WifiAccessField = Lens[WifiAccess]{
		Name: "cityDigital.wifi_access",
		Get:  func(c *Contribution) WifiAccess { return c.Digital.WifiAccess },
		Set:  func(c *Contribution, v WifiAccess) { c.Digital.WifiAccess = v },
	}
	CoworkingSpaceField = Lens[CoworkingSpace]{
		Name: "cityDigital.coworking_space",
		Get: func(c *Contribution) CoworkingSpace {
			v := c.Digital.CoworkingSpace
			v.PricePlans = clonePlans(v.PricePlans)
			return v
		},
		Set: func(c *Contribution, v CoworkingSpace) {
			v.PricePlans = clonePlans(v.PricePlans)
			c.Digital.CoworkingSpace = v
		},
	}
	CafeField = Lens[Cafe]{
		Name: "cityDigital.cafe",
		Get:  func(c *Contribution) Cafe { return c.Digital.Cafe },
		Set:  func(c *Contribution, v Cafe) { c.Digital.Cafe = v },
	}
	MembershipField = Lens[Membership]{
		Name: "cityDigital.membership",
		Get: func(c *Contribution) Membership {
			v := c.Digital.Membership
			v.PricePlans = clonePlans(v.PricePlans)
			return v
		},
		Set: func(c *Contribution, v Membership) {
			v.PricePlans = clonePlans(v.PricePlans)
			c.Digital.Membership = v
		},
	}
	CostField = Lens[Cost]{
		Name: "cityCost",
		Get:  func(c *Contribution) Cost { return c.Cost },
		Set:  func(c *Contribution, v Cost) { c.Cost = v },
	}
)

// clonePlans copies so bindings never share backing arrays with the form.
// nil stays an empty slice.
func clonePlans(plans []PricePlan) []PricePlan {
	out := make([]PricePlan, len(plans))
	copy(out, plans)
	return out
}
