// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema declares the contribution form: typed sections, their
defaults, field lenses, and validation rules.

# Sections

  - Digital (cityDigital): satisfaction score, internet speed, power
    stability, wifi access, coworking space, cafe, membership
  - Cost (cityCost): satisfaction score, rent, meal, coffee, transport pass

Every leaf's zero value means "unanswered". DefaultContribution returns the
all-unanswered form.

# Lenses

Form inputs address their subtree through a typed Lens instead of a string
path, so a wrong field is a compile error:

	score := schema.ScoreField.Get(&c)
	schema.CafeField.Set(&c, schema.Cafe{Rating: 4, LaptopFriendly: true})

# Validation

Rules is the central table of numeric bounds. Unanswered (zero) fields
always pass. Validate returns a *ValidationError listing every bad field.

# Payloads

	payload, err := c.Payload()

diffs c against DefaultContribution per category and drops empty categories.
*/
package schema
