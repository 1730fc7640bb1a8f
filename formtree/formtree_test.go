// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package formtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/monthlog/models"
)

func digitalDefaults() Tree {
	return Tree{
		"digital_satisfaction_score": 0,
		"internet_speed_mbps":        0,
		"power_stability": map[string]any{
			"rating":           0,
			"outage_frequency": "",
		},
		"coworking_space": map[string]any{
			"rating":      0,
			"price_plans": []any{},
		},
		"cafe": map[string]any{
			"laptop_friendly": false,
		},
	}
}

func TestRemoveDefaults(t *testing.T) {
	tests := []struct {
		name     string
		values   Tree
		defaults Tree
		want     Tree
	}{
		{
			name:     "changed scalar kept, unchanged dropped",
			values:   Tree{"digital_satisfaction_score": 7, "internet_speed_mbps": 0},
			defaults: Tree{"digital_satisfaction_score": 0, "internet_speed_mbps": 0},
			want:     Tree{"digital_satisfaction_score": 7},
		},
		{
			name: "nested object with one change",
			values: Tree{"power_stability": map[string]any{
				"rating":           4,
				"outage_frequency": "",
			}},
			defaults: digitalDefaults(),
			want:     Tree{"power_stability": Tree{"rating": 4}},
		},
		{
			name: "nested object with no change is dropped",
			values: Tree{"power_stability": map[string]any{
				"rating":           0,
				"outage_frequency": "",
			}},
			defaults: digitalDefaults(),
			want:     Tree{},
		},
		{
			name: "non-empty sequence kept in full",
			values: Tree{"coworking_space": map[string]any{
				"rating": 0,
				"price_plans": []any{
					map[string]any{"name": "day pass", "price": 15000},
				},
			}},
			defaults: digitalDefaults(),
			want: Tree{"coworking_space": Tree{
				"price_plans": []any{
					map[string]any{"name": "day pass", "price": 15000},
				},
			}},
		},
		{
			name:     "empty sequence dropped",
			values:   Tree{"coworking_space": map[string]any{"rating": 0, "price_plans": []any{}}},
			defaults: digitalDefaults(),
			want:     Tree{},
		},
		{
			name:     "boolean flip kept",
			values:   Tree{"cafe": map[string]any{"laptop_friendly": true}},
			defaults: digitalDefaults(),
			want:     Tree{"cafe": Tree{"laptop_friendly": true}},
		},
		{
			name:     "int and float zero are equal",
			values:   Tree{"internet_speed_mbps": float64(0)},
			defaults: Tree{"internet_speed_mbps": 0},
			want:     Tree{},
		},
		{
			name:     "string zero is not numeric zero",
			values:   Tree{"internet_speed_mbps": "0"},
			defaults: Tree{"internet_speed_mbps": 0},
			want:     Tree{"internet_speed_mbps": "0"},
		},
		{
			name:     "missing default branch keeps whole non-empty subtree",
			values:   Tree{"membership": map[string]any{"available": false, "note": ""}},
			defaults: Tree{},
			want:     Tree{"membership": Tree{"available": false, "note": ""}},
		},
		{
			name:     "nil value equals nil default",
			values:   Tree{"currency": nil},
			defaults: Tree{"currency": nil},
			want:     Tree{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveDefaults(tt.values, tt.defaults)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RemoveDefaults() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveDefaults_Identity(t *testing.T) {
	d := digitalDefaults()
	assert.Empty(t, RemoveDefaults(d, d))
	assert.NotNil(t, RemoveDefaults(d, d))
}

func TestRemoveDefaults_SequenceIgnoresDefault(t *testing.T) {
	plans := []any{map[string]any{"name": "monthly", "price": 200000}}
	values := Tree{"price_plans": plans}
	defaults := Tree{"price_plans": plans}

	got := RemoveDefaults(values, defaults)
	assert.Equal(t, Tree{"price_plans": plans}, got)
}

func TestRemoveDefaults_SpecExample(t *testing.T) {
	defaults := Tree{"cityDigital": map[string]any{
		"digital_satisfaction_score": 0,
		"internet_speed_mbps":        0,
	}}
	values := Tree{"cityDigital": map[string]any{
		"digital_satisfaction_score": 7,
		"internet_speed_mbps":        0,
	}}

	got := RemoveDefaults(values, defaults)
	want := Tree{"cityDigital": Tree{"digital_satisfaction_score": 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	payload := AssemblePayload(Section{
		Category: models.CategoryDigital,
		Diff:     RemoveDefaults(values["cityDigital"].(map[string]any), defaults["cityDigital"].(map[string]any)),
	})
	assert.Equal(t, models.ContributionPayload{
		models.CategoryDigital: {"digital_satisfaction_score": 7},
	}, payload)
}

func TestAssemblePayload(t *testing.T) {
	t.Run("empty categories omitted", func(t *testing.T) {
		payload := AssemblePayload(
			Section{Category: models.CategoryDigital, Diff: Tree{"internet_speed_mbps": 80.5}},
			Section{Category: models.CategoryCost, Diff: Tree{}},
		)
		require.Len(t, payload, 1)
		assert.Contains(t, payload, models.CategoryDigital)
		assert.NotContains(t, payload, models.CategoryCost)
	})

	t.Run("all empty yields empty non-nil payload", func(t *testing.T) {
		payload := AssemblePayload(
			Section{Category: models.CategoryDigital, Diff: Tree{}},
			Section{Category: models.CategoryCost, Diff: nil},
		)
		assert.NotNil(t, payload)
		assert.Empty(t, payload)
	})

	t.Run("no sections", func(t *testing.T) {
		assert.Empty(t, AssemblePayload())
	})
}

func TestFromValue(t *testing.T) {
	type plan struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	type section struct {
		Score int    `json:"score"`
		Plans []plan `json:"plans"`
	}

	tree, err := FromValue(section{Score: 3, Plans: []plan{}})
	require.NoError(t, err)
	assert.Equal(t, Tree{"score": float64(3), "plans": []any{}}, tree)
}

func TestFromJSON(t *testing.T) {
	_, err := FromJSON([]byte(`null`))
	assert.Error(t, err)

	_, err = FromJSON([]byte(`[1,2]`))
	assert.Error(t, err)

	tree, err := FromJSON([]byte(`{"a":{"b":1}}`))
	require.NoError(t, err)
	assert.Equal(t, Tree{"a": map[string]any{"b": float64(1)}}, tree)
}
