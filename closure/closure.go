// Package closure computes the financial summary of a batch when it closes.
package closure

import (
	"strings"

	"github.com/Swyamk/rjagro-sub000/model"
)

// Category groups the expenses of a batch.
type Category string

const (
	Feed     Category = "Feed"
	Chicks   Category = "Chicks"
	Medicine Category = "Medicine"
)

// Categories lists the expense categories in display order.
var Categories = []Category{Feed, Chicks, Medicine}

// MarginBand rates the profit margin of a closed batch.
type MarginBand string

const (
	MarginGood MarginBand = "good"
	MarginFair MarginBand = "fair"
	MarginPoor MarginBand = "poor"
)

// Classify maps an item name onto its expense category. Unknown items
// count as Feed.
func Classify(itemName string) Category {
	name := strings.ToLower(itemName)

	switch {
	case strings.Contains(name, "feed"):
		return Feed
	case strings.Contains(name, "chick"):
		return Chicks
	case strings.Contains(name, "medicine"):
		return Medicine
	default:
		return Feed
	}
}

// IsAccepted reports whether a requirement was accepted. Status values are
// matched loosely, the backend has sent both "Accepted" and "accepted".
func IsAccepted(requirement model.BatchRequirement) bool {
	return strings.Contains(strings.ToLower(string(requirement.Status)), "accept")
}

// RequirementCost is an accepted requirement with the value allocated for it.
type RequirementCost struct {
	Requirement    model.BatchRequirement
	Allocations    []model.BatchAllocation
	AllocatedValue float64
	Category       Category
}

// Input is everything the summary of one batch is computed from.
type Input struct {
	Batch        model.Batch
	Requirements []model.BatchRequirement
	Allocations  []model.BatchAllocation
	Commissions  []model.FarmerCommission
	Revenue      float64
	EndDate      model.Date
}

// Summary is the computed closure of one batch.
type Summary struct {
	Batch       model.Batch
	EndDate     model.Date
	Costs       []RequirementCost
	Commissions []model.FarmerCommission
	Totals      map[Category]float64
	Commission  float64
	Revenue     float64
}

// Compute builds the summary of in.Batch. Requirements, allocations and
// commissions of other batches and farmers are ignored. A zero EndDate
// closes the batch today.
func Compute(in Input) Summary {
	summary := Summary{
		Batch:   in.Batch,
		EndDate: in.EndDate,
		Totals:  map[Category]float64{Feed: 0, Chicks: 0, Medicine: 0},
		Revenue: in.Revenue,
	}

	if summary.EndDate.IsZero() {
		summary.EndDate = model.Today()
	}

	for _, requirement := range in.Requirements {
		if requirement.BatchID != in.Batch.BatchID || !IsAccepted(requirement) {
			continue
		}

		cost := RequirementCost{
			Requirement: requirement,
			Category:    Classify(requirement.ItemName),
		}
		for _, allocation := range in.Allocations {
			if allocation.RequirementID == requirement.RequirementID {
				cost.Allocations = append(cost.Allocations, allocation)
				cost.AllocatedValue += allocation.AllocatedValue.Float64()
			}
		}

		summary.Costs = append(summary.Costs, cost)
		summary.Totals[cost.Category] += cost.AllocatedValue
	}

	for _, commission := range in.Commissions {
		if commission.FarmerID == in.Batch.FarmerID {
			summary.Commissions = append(summary.Commissions, commission)
			summary.Commission += commission.CommissionAmount.Float64()
		}
	}

	return summary
}

// TotalExpenses sums all categories and the farmer commission.
func (s Summary) TotalExpenses() float64 {
	total := s.Commission
	for _, category := range Categories {
		total += s.Totals[category]
	}

	return total
}

// GrossProfit is the revenue minus all expenses.
func (s Summary) GrossProfit() float64 {
	return s.Revenue - s.TotalExpenses()
}

// MortalityRate returns the MortalityRate of the summarized batch.
func (s Summary) MortalityRate() float64 {
	return MortalityRate(s.Batch.InitialBirdCount, s.Batch.CurrentBirdCount)
}

// ProfitMargin returns the ProfitMargin of the summarized batch.
func (s Summary) ProfitMargin() float64 {
	return ProfitMargin(s.Revenue, s.GrossProfit())
}

// Payload is the batch_closure_summary record to submit.
func (s Summary) Payload() model.BatchClosureSummary {
	return model.BatchClosureSummary{
		BatchID:               s.Batch.BatchID,
		StartDate:             s.Batch.StartDate,
		EndDate:               s.EndDate,
		InitialChickenCount:   s.Batch.InitialBirdCount,
		AvailableChickenCount: s.Batch.CurrentBirdCount,
		Revenue:               model.Amount(s.Revenue),
		GrossProfit:           model.Amount(s.GrossProfit()),
	}
}

// MortalityRate is the percentage of birds lost, 0 without initial birds.
func MortalityRate(initial, available int64) float64 {
	if initial == 0 {
		return 0
	}

	return float64(initial-available) / float64(initial) * 100
}

// ProfitMargin is the gross profit in percent of the revenue, 0 without
// revenue.
func ProfitMargin(revenue, grossProfit float64) float64 {
	if revenue == 0 {
		return 0
	}

	return grossProfit / revenue * 100
}

// Band rates a profit margin in percent.
func Band(margin float64) MarginBand {
	switch {
	case margin >= 20:
		return MarginGood
	case margin >= 10:
		return MarginFair
	default:
		return MarginPoor
	}
}
