// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"fmt"

	"github.com/danielhkuo/monthlog/schema"
)

// Inputs are the form's input components, each wired to its own subtree
type Inputs struct {
	Score          *ScoreInput
	Speed          *SpeedInput
	PowerStability *PowerStabilityInput
	WifiAccess     *WifiAccessInput
	CoworkingSpace *CoworkingSpaceInput
	Cafe           *CafeInput
	Membership     *MembershipInput
	Cost           *CostInput
}

// NewInputs binds every input component to s
func NewInputs(s *Session) *Inputs {
	return &Inputs{
		Score:          &ScoreInput{field: Bind(s, schema.ScoreField)},
		Speed:          &SpeedInput{field: Bind(s, schema.SpeedField)},
		PowerStability: &PowerStabilityInput{field: Bind(s, schema.PowerStabilityField)},
		WifiAccess:     &WifiAccessInput{field: Bind(s, schema.WifiAccessField)},
		CoworkingSpace: &CoworkingSpaceInput{field: Bind(s, schema.CoworkingSpaceField)},
		Cafe:           &CafeInput{field: Bind(s, schema.CafeField)},
		Membership:     &MembershipInput{field: Bind(s, schema.MembershipField)},
		Cost:           &CostInput{field: Bind(s, schema.CostField)},
	}
}

// ScoreInput is the 1-10 digital satisfaction picker
type ScoreInput struct {
	field *Binding[int]
}

func (in *ScoreInput) Value() int { return in.field.Get() }

func (in *ScoreInput) Select(score int) error {
	if err := schema.CheckField(in.field.Name(), float64(score)); err != nil {
		return err
	}
	return in.field.Set(score)
}

// SpeedInput records a measured internet speed in Mbps
type SpeedInput struct {
	field *Binding[float64]
}

func (in *SpeedInput) Value() float64 { return in.field.Get() }

func (in *SpeedInput) Enter(mbps float64) error {
	if err := schema.CheckField(in.field.Name(), mbps); err != nil {
		return err
	}
	return in.field.Set(mbps)
}

type PowerStabilityInput struct {
	field *Binding[schema.PowerStability]
}

func (in *PowerStabilityInput) Value() schema.PowerStability { return in.field.Get() }

func (in *PowerStabilityInput) Rate(rating int) error {
	if err := schema.CheckField(in.field.Name()+".rating", float64(rating)); err != nil {
		return err
	}
	return in.field.Update(func(v *schema.PowerStability) { v.Rating = rating })
}

func (in *PowerStabilityInput) SetOutageFrequency(freq string) error {
	return in.field.Update(func(v *schema.PowerStability) { v.OutageFrequency = freq })
}

type WifiAccessInput struct {
	field *Binding[schema.WifiAccess]
}

func (in *WifiAccessInput) Value() schema.WifiAccess { return in.field.Get() }

func (in *WifiAccessInput) Rate(rating int) error {
	if err := schema.CheckField(in.field.Name()+".rating", float64(rating)); err != nil {
		return err
	}
	return in.field.Update(func(v *schema.WifiAccess) { v.Rating = rating })
}

func (in *WifiAccessInput) SetPublicWifi(available bool) error {
	return in.field.Update(func(v *schema.WifiAccess) { v.PublicWifiAvailable = available })
}

type CoworkingSpaceInput struct {
	field *Binding[schema.CoworkingSpace]
}

func (in *CoworkingSpaceInput) Value() schema.CoworkingSpace { return in.field.Get() }

func (in *CoworkingSpaceInput) Rate(rating int) error {
	if err := schema.CheckField(in.field.Name()+".rating", float64(rating)); err != nil {
		return err
	}
	return in.field.Update(func(v *schema.CoworkingSpace) { v.Rating = rating })
}

func (in *CoworkingSpaceInput) SetCount(n int) error {
	if err := schema.CheckField(in.field.Name()+".count", float64(n)); err != nil {
		return err
	}
	return in.field.Update(func(v *schema.CoworkingSpace) { v.Count = n })
}

func (in *CoworkingSpaceInput) AddPlan(p schema.PricePlan) error {
	return in.field.Update(func(v *schema.CoworkingSpace) { v.PricePlans = append(v.PricePlans, p) })
}

func (in *CoworkingSpaceInput) RemovePlan(i int) error {
	var err error
	updateErr := in.field.Update(func(v *schema.CoworkingSpace) {
		v.PricePlans, err = removePlan(v.PricePlans, i)
	})
	if updateErr != nil {
		return updateErr
	}
	return err
}

type CafeInput struct {
	field *Binding[schema.Cafe]
}

func (in *CafeInput) Value() schema.Cafe { return in.field.Get() }

func (in *CafeInput) Rate(rating int) error {
	if err := schema.CheckField(in.field.Name()+".rating", float64(rating)); err != nil {
		return err
	}
	return in.field.Update(func(v *schema.Cafe) { v.Rating = rating })
}

func (in *CafeInput) SetLaptopFriendly(ok bool) error {
	return in.field.Update(func(v *schema.Cafe) { v.LaptopFriendly = ok })
}

func (in *CafeInput) SetPowerOutlets(ok bool) error {
	return in.field.Update(func(v *schema.Cafe) { v.PowerOutlets = ok })
}

type MembershipInput struct {
	field *Binding[schema.Membership]
}

func (in *MembershipInput) Value() schema.Membership { return in.field.Get() }

func (in *MembershipInput) SetAvailable(ok bool) error {
	return in.field.Update(func(v *schema.Membership) { v.Available = ok })
}

func (in *MembershipInput) AddPlan(p schema.PricePlan) error {
	return in.field.Update(func(v *schema.Membership) { v.PricePlans = append(v.PricePlans, p) })
}

func (in *MembershipInput) RemovePlan(i int) error {
	var err error
	updateErr := in.field.Update(func(v *schema.Membership) {
		v.PricePlans, err = removePlan(v.PricePlans, i)
	})
	if updateErr != nil {
		return updateErr
	}
	return err
}

// CostInput edits the whole cost section
type CostInput struct {
	field *Binding[schema.Cost]
}

func (in *CostInput) Value() schema.Cost { return in.field.Get() }

// Edit applies fn and rejects the change if any cost field falls out of range
func (in *CostInput) Edit(fn func(c *schema.Cost)) error {
	next := in.field.Get()
	fn(&next)
	if err := schema.ValidateCost(next); err != nil {
		return err
	}
	return in.field.Set(next)
}

func removePlan(plans []schema.PricePlan, i int) ([]schema.PricePlan, error) {
	if i < 0 || i >= len(plans) {
		return plans, fmt.Errorf("price plan %d out of range", i)
	}
	return append(plans[:i], plans[i+1:]...), nil
}
