// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/danielhkuo/monthlog/models"
)

// statField names one numeric answer inside a stored category payload
type statField struct {
	category string
	field    string
}

var (
	digitalScoreField = statField{models.CategoryDigital, "digital_satisfaction_score"}
	speedField        = statField{models.CategoryDigital, "internet_speed_mbps"}
	rentField         = statField{models.CategoryCost, "monthly_rent"}
	costScoreField    = statField{models.CategoryCost, "cost_satisfaction_score"}
)

// ComputeCityStats aggregates every stored contribution for a city.
// Payloads only carry answered fields, so unanswered ones never skew the
// medians.
func ComputeCityStats(db *sql.DB, cityID int64) (models.CityStats, error) {
	var stats models.CityStats

	err := db.QueryRow(`
		SELECT COUNT(*) FROM contribution WHERE city_id = $1
	`, cityID).Scan(&stats.ContributionCount)
	if err != nil {
		return stats, fmt.Errorf("failed to count contributions: %w", err)
	}
	if stats.ContributionCount == 0 {
		return stats, nil
	}

	values, last, err := getAnsweredValues(db, cityID)
	if err != nil {
		return stats, fmt.Errorf("failed to get contribution values: %w", err)
	}

	scores := sorted(values[digitalScoreField])
	stats.DigitalSatisfactionMedian = percentile(scores, 0.5)
	stats.DigitalSatisfactionMean = mean(scores)
	stats.InternetSpeedMedian = percentile(sorted(values[speedField]), 0.5)
	stats.MonthlyRentMedian = percentile(sorted(values[rentField]), 0.5)
	stats.CostSatisfactionMedian = percentile(sorted(values[costScoreField]), 0.5)
	if !last.IsZero() {
		stats.LastContributionAt = &last
	}

	return stats, nil
}

// getAnsweredValues collects the numeric answers of the tracked fields
func getAnsweredValues(db *sql.DB, cityID int64) (map[statField][]float64, time.Time, error) {
	rows, err := db.Query(`
		SELECT c.submitted_at, s.category, s.payload
		FROM contribution c
		JOIN contribution_section s ON s.contribution_id = c.id
		WHERE c.city_id = $1
	`, cityID)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	values := make(map[statField][]float64)
	var last time.Time
	for rows.Next() {
		var submittedAt time.Time
		var category, payload string
		if err := rows.Scan(&submittedAt, &category, &payload); err != nil {
			return nil, time.Time{}, err
		}
		if submittedAt.After(last) {
			last = submittedAt
		}

		var fields map[string]any
		if err := json.Unmarshal([]byte(payload), &fields); err != nil {
			return nil, time.Time{}, fmt.Errorf("corrupt %s payload: %w", category, err)
		}
		for _, f := range []statField{digitalScoreField, speedField, rentField, costScoreField} {
			if f.category != category {
				continue
			}
			if v, ok := fields[f.field].(float64); ok {
				values[f] = append(values[f], v)
			}
		}
	}

	return values, last, rows.Err()
}

func sorted(values []float64) []float64 {
	out := append([]float64(nil), values...)
	sort.Float64s(out)
	return out
}

// percentile calculates the p-th percentile of sorted data
// p should be in range [0, 1]
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	// Linear interpolation between closest ranks
	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
