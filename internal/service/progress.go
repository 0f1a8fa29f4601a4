package service

import (
	"pipetrak-backend/internal/database/models"
)

// ProgressResult is the outcome of a completion recalculation.
type ProgressResult struct {
	CompletionPercent float64                `json:"completion_percent"`
	Status            models.ComponentStatus `json:"status"`
}

// Recalculate computes a component's completion percent and status from
// its workflow type and its full current milestone set.
//
// Weights are read from the instances themselves, where they were
// snapshotted at component creation. The calculation deliberately never
// indexes a template weight array by milestone order: mixing the 1-based
// order with a 0-based array produced impossible completion values in an
// earlier version of this system, and storing the weight on the instance
// removes the indexing step entirely.
//
// The result is clamped to [0,100]; an empty milestone set yields 0.
func Recalculate(workflowType models.WorkflowType, instances []models.MilestoneInstance) ProgressResult {
	if len(instances) == 0 {
		return ProgressResult{CompletionPercent: 0, Status: models.ComponentStatusNotStarted}
	}

	var percent float64
	switch workflowType {
	case models.WorkflowTypeDiscrete:
		percent = discretePercent(instances)
	case models.WorkflowTypePercentage:
		percent = weightedAverage(instances, func(m models.MilestoneInstance) float64 {
			return m.PercentComplete
		})
	case models.WorkflowTypeQuantity:
		percent = weightedAverage(instances, quantityPercent)
	default:
		percent = discretePercent(instances)
	}

	percent = clamp(percent, 0, 100)
	return ProgressResult{
		CompletionPercent: percent,
		Status:            StatusFor(percent),
	}
}

// StatusFor derives the component status from a completion percent.
// Status is never stored independently of the percent.
func StatusFor(percent float64) models.ComponentStatus {
	switch {
	case percent <= 0:
		return models.ComponentStatusNotStarted
	case percent >= 100:
		return models.ComponentStatusCompleted
	default:
		return models.ComponentStatusInProgress
	}
}

// discretePercent credits the weight of each completed milestone against
// the weights actually present on the component. Using the present weights
// as the denominator keeps the math correct for partial milestone sets.
func discretePercent(instances []models.MilestoneInstance) float64 {
	var earned, total float64
	for _, m := range instances {
		total += m.Weight
		if m.Completed {
			earned += m.Weight
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * earned / total
}

// weightedAverage computes sum(weight * percent) / sum(weight) with the
// per-instance percent supplied by the caller.
func weightedAverage(instances []models.MilestoneInstance, percentOf func(models.MilestoneInstance) float64) float64 {
	var weighted, total float64
	for _, m := range instances {
		total += m.Weight
		weighted += m.Weight * percentOf(m)
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// quantityPercent converts an installed-quantity fraction into a percent.
// A missing or zero total yields 0 rather than a division error.
func quantityPercent(m models.MilestoneInstance) float64 {
	if m.QuantityTotal == nil || *m.QuantityTotal == 0 {
		return 0
	}
	return clamp(m.QuantityDone / *m.QuantityTotal * 100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
