// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/monthlog/formtree"
	"github.com/danielhkuo/monthlog/models"
)

func TestDefaultContribution_EmptyPayload(t *testing.T) {
	payload, err := DefaultContribution().Payload()
	require.NoError(t, err)
	assert.NotNil(t, payload)
	assert.Empty(t, payload)
}

func TestZeroContribution_EmptyPayload(t *testing.T) {
	// nil slices must not leak into the payload as nulls
	var c Contribution
	payload, err := c.Payload()
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestPayload_OnlyChangedFields(t *testing.T) {
	c := DefaultContribution()
	ScoreField.Set(&c, 7)

	payload, err := c.Payload()
	require.NoError(t, err)
	assert.Equal(t, models.ContributionPayload{
		models.CategoryDigital: {"digital_satisfaction_score": float64(7)},
	}, payload)
}

func TestPayload_NestedAndSequences(t *testing.T) {
	c := DefaultContribution()
	PowerStabilityField.Set(&c, PowerStability{Rating: 3})
	CoworkingSpaceField.Set(&c, CoworkingSpace{
		PricePlans: []PricePlan{{Name: "day pass", Price: 15000, Period: "day"}},
	})
	CostField.Set(&c, Cost{MonthlyRent: 900000, Currency: "KRW"})

	payload, err := c.Payload()
	require.NoError(t, err)

	require.Contains(t, payload, models.CategoryDigital)
	digital := payload[models.CategoryDigital]
	assert.Equal(t, map[string]any{"rating": float64(3)}, asMap(digital["power_stability"]))

	coworking := asMap(digital["coworking_space"])
	require.Contains(t, coworking, "price_plans")
	assert.NotContains(t, coworking, "rating")
	assert.Len(t, coworking["price_plans"], 1)
	assert.NotContains(t, digital, "cafe")

	assert.Equal(t, map[string]any{
		"monthly_rent": float64(900000),
		"currency":     "KRW",
	}, payload[models.CategoryCost])
}

// asMap unwraps nested diffs, which are formtree.Tree values
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case formtree.Tree:
		return map[string]any(m)
	}
	return nil
}

func TestLens_PricePlansAreCopied(t *testing.T) {
	c := DefaultContribution()
	plans := []PricePlan{{Name: "monthly", Price: 200000, Period: "month"}}
	MembershipField.Set(&c, Membership{Available: true, PricePlans: plans})

	plans[0].Price = 1
	assert.Equal(t, float64(200000), MembershipField.Get(&c).PricePlans[0].Price)

	got := MembershipField.Get(&c)
	got.PricePlans[0].Name = "changed"
	assert.Equal(t, "monthly", c.Digital.Membership.PricePlans[0].Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Contribution)
		fields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Contribution) {},
		},
		{
			name:   "score in range",
			mutate: func(c *Contribution) { c.Digital.SatisfactionScore = 10 },
		},
		{
			name:   "score too high",
			mutate: func(c *Contribution) { c.Digital.SatisfactionScore = 11 },
			fields: []string{"cityDigital.digital_satisfaction_score"},
		},
		{
			name:   "negative speed",
			mutate: func(c *Contribution) { c.Digital.InternetSpeedMbps = -5 },
			fields: []string{"cityDigital.internet_speed_mbps"},
		},
		{
			name:   "rating out of range",
			mutate: func(c *Contribution) { c.Digital.Cafe.Rating = 6 },
			fields: []string{"cityDigital.cafe.rating"},
		},
		{
			name:   "unknown outage frequency",
			mutate: func(c *Contribution) { c.Digital.PowerStability.OutageFrequency = "hourly" },
			fields: []string{"cityDigital.power_stability.outage_frequency"},
		},
		{
			name: "bad price plan",
			mutate: func(c *Contribution) {
				c.Digital.CoworkingSpace.PricePlans = []PricePlan{{Name: " ", Price: -1, Period: "fortnight"}}
			},
			fields: []string{
				"cityDigital.coworking_space.price_plans[0].name",
				"cityDigital.coworking_space.price_plans[0].price",
				"cityDigital.coworking_space.price_plans[0].period",
			},
		},
		{
			name:   "bad currency",
			mutate: func(c *Contribution) { c.Cost.Currency = "won" },
			fields: []string{"cityCost.currency"},
		},
		{
			name: "multiple errors",
			mutate: func(c *Contribution) {
				c.Digital.SatisfactionScore = -1
				c.Cost.SatisfactionScore = 99
			},
			fields: []string{"cityDigital.digital_satisfaction_score", "cityCost.cost_satisfaction_score"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultContribution()
			tt.mutate(&c)

			err := Validate(c)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
			assert.Len(t, verr.Messages(), len(tt.fields))
		})
	}
}

func TestDecodePayload(t *testing.T) {
	t.Run("partial payload", func(t *testing.T) {
		c, err := DecodePayload([]byte(`{"cityDigital":{"digital_satisfaction_score":7,"cafe":{"laptop_friendly":true}}}`))
		require.NoError(t, err)
		assert.Equal(t, 7, c.Digital.SatisfactionScore)
		assert.True(t, c.Digital.Cafe.LaptopFriendly)
		assert.NotNil(t, c.Digital.Membership.PricePlans)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := DecodePayload([]byte(`{"cityHousing":{"rent":1}}`))
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodePayload([]byte(`{"cityDigital":{"bogus":1}}`))
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := DecodePayload([]byte(`{"cityDigital":{"digital_satisfaction_score":"seven"}}`))
		assert.Error(t, err)
	})
}

func TestCheckField(t *testing.T) {
	assert.NoError(t, CheckField("cityDigital.cafe.rating", 0))
	assert.NoError(t, CheckField("cityDigital.cafe.rating", 5))
	assert.Error(t, CheckField("cityDigital.cafe.rating", 6))
	assert.NoError(t, CheckField("no.such.field", -100))
}

func TestValidateSections(t *testing.T) {
	assert.NoError(t, ValidateDigital(Digital{SatisfactionScore: 7}))
	assert.NoError(t, ValidateCost(Cost{MonthlyRent: 900, Currency: "EUR"}))

	err := ValidateDigital(Digital{WifiAccess: WifiAccess{Rating: 6}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "cityDigital.wifi_access.rating", verr.Fields[0].Field)

	err = ValidateCost(Cost{SatisfactionScore: -1, Currency: "eur"})
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}
