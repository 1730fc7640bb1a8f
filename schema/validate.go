// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Rule bounds a numeric field. Zero means unanswered and always passes.
type Rule struct {
	Field string
	Min   float64
	Max   float64
	value func(c *Contribution) float64
}

// Rules is the central table of per-field validation rules
var Rules = []Rule{
	{Field: "cityDigital.digital_satisfaction_score", Min: 1, Max: 10,
		value: func(c *Contribution) float64 { return float64(c.Digital.SatisfactionScore) }},
	{Field: "cityDigital.internet_speed_mbps", Min: 0, Max: 10000,
		value: func(c *Contribution) float64 { return c.Digital.InternetSpeedMbps }},
	{Field: "cityDigital.power_stability.rating", Min: 1, Max: 5,
		value: func(c *Contribution) float64 { return float64(c.Digital.PowerStability.Rating) }},
	{Field: "cityDigital.wifi_access.rating", Min: 1, Max: 5,
		value: func(c *Contribution) float64 { return float64(c.Digital.WifiAccess.Rating) }},
	{Field: "cityDigital.coworking_space.rating", Min: 1, Max: 5,
		value: func(c *Contribution) float64 { return float64(c.Digital.CoworkingSpace.Rating) }},
	{Field: "cityDigital.coworking_space.count", Min: 0, Max: 10000,
		value: func(c *Contribution) float64 { return float64(c.Digital.CoworkingSpace.Count) }},
	{Field: "cityDigital.cafe.rating", Min: 1, Max: 5,
		value: func(c *Contribution) float64 { return float64(c.Digital.Cafe.Rating) }},
	{Field: "cityCost.cost_satisfaction_score", Min: 1, Max: 10,
		value: func(c *Contribution) float64 { return float64(c.Cost.SatisfactionScore) }},
	{Field: "cityCost.monthly_rent", Min: 0, Max: 1e9,
		value: func(c *Contribution) float64 { return c.Cost.MonthlyRent }},
	{Field: "cityCost.meal_price", Min: 0, Max: 1e7,
		value: func(c *Contribution) float64 { return c.Cost.MealPrice }},
	{Field: "cityCost.coffee_price", Min: 0, Max: 1e7,
		value: func(c *Contribution) float64 { return c.Cost.CoffeePrice }},
	{Field: "cityCost.transport_pass_price", Min: 0, Max: 1e8,
		value: func(c *Contribution) float64 { return c.Cost.TransportPassPrice }},
}

func (r Rule) check(v float64) (FieldError, bool) {
	if v == 0 || (v >= r.Min && v <= r.Max) {
		return FieldError{}, true
	}
	return FieldError{
		Field:   r.Field,
		Message: fmt.Sprintf("must be between %g and %g", r.Min, r.Max),
	}, false
}

// CheckField validates one value against the rule declared for field.
// Fields without a rule always pass.
func CheckField(field string, v float64) error {
	for _, r := range Rules {
		if r.Field != field {
			continue
		}
		if fe, ok := r.check(v); !ok {
			return &ValidationError{Fields: []FieldError{fe}}
		}
		return nil
	}
	return nil
}

var outageFrequencies = map[string]bool{
	"": true, "never": true, "rarely": true, "monthly": true, "weekly": true, "daily": true,
}

var planPeriods = map[string]bool{
	"": true, "day": true, "week": true, "month": true, "year": true,
}

// FieldError describes one invalid field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError lists every invalid field of a contribution
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return "invalid contribution: " + strings.Join(msgs, "; ")
}

// Messages returns one "field: message" line per invalid field
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return msgs
}

// Validate checks c against Rules and the enumerated fields.
// Returns a *ValidationError or nil.
func Validate(c Contribution) error {
	var fields []FieldError

	for _, r := range Rules {
		if fe, ok := r.check(r.value(&c)); !ok {
			fields = append(fields, fe)
		}
	}

	if !outageFrequencies[c.Digital.PowerStability.OutageFrequency] {
		fields = append(fields, FieldError{
			Field:   "cityDigital.power_stability.outage_frequency",
			Message: "must be one of never, rarely, monthly, weekly, daily",
		})
	}

	fields = append(fields, validatePlans("cityDigital.coworking_space.price_plans", c.Digital.CoworkingSpace.PricePlans)...)
	fields = append(fields, validatePlans("cityDigital.membership.price_plans", c.Digital.Membership.PricePlans)...)

	if cur := c.Cost.Currency; cur != "" && !isCurrencyCode(cur) {
		fields = append(fields, FieldError{
			Field:   "cityCost.currency",
			Message: "must be a 3-letter ISO currency code",
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateDigital checks only the digital section
func ValidateDigital(d Digital) error {
	return Validate(Contribution{Digital: d})
}

// ValidateCost checks only the cost section
func ValidateCost(c Cost) error {
	return Validate(Contribution{Cost: c})
}

func validatePlans(field string, plans []PricePlan) []FieldError {
	var fields []FieldError
	for i, p := range plans {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(p.Name) == "" {
			fields = append(fields, FieldError{Field: prefix + ".name", Message: "is required"})
		}
		if p.Price < 0 {
			fields = append(fields, FieldError{Field: prefix + ".price", Message: "must not be negative"})
		}
		if !planPeriods[p.Period] {
			fields = append(fields, FieldError{Field: prefix + ".period", Message: "must be one of day, week, month, year"})
		}
	}
	return fields
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// DecodePayload parses a contribution payload body into a Contribution.
// Unknown categories and unknown fields are rejected. Absent fields stay at
// their defaults.
func DecodePayload(data []byte) (Contribution, error) {
	c := DefaultContribution()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Contribution{}, err
	}
	c.normalize()
	return c, nil
}
