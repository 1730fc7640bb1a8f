// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package formtree computes the minimal patch a contribution form sends.

# Diffing

RemoveDefaults compares a live form tree against its default tree:

	diff := formtree.RemoveDefaults(values, defaults)

Given

	defaults = {cityDigital: {digital_satisfaction_score: 0, internet_speed_mbps: 0}}
	values   = {cityDigital: {digital_satisfaction_score: 7, internet_speed_mbps: 0}}

the diff is {cityDigital: {digital_satisfaction_score: 7}}.

Diffing a tree against itself always yields an empty tree. Non-empty
sequences (price plans) are always kept in full.

# Payloads

AssemblePayload drops empty sections:

	payload := formtree.AssemblePayload(
		formtree.Section{Category: models.CategoryDigital, Diff: digitalDiff},
		formtree.Section{Category: models.CategoryCost, Diff: costDiff},
	)

If every section is empty the payload is empty but non-nil; deciding whether
to send it is left to the caller.
*/
package formtree
