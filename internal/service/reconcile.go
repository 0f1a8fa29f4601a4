package service

import (
	"fmt"
	"regexp"
	"strconv"

	"pipetrak-backend/internal/database/models"
	apperrors "pipetrak-backend/internal/errors"
)

// typePrefixes drive generated component ids: "{PREFIX}-{sequence}".
var typePrefixes = map[models.ComponentType]string{
	models.ComponentTypeSpool:         "SPOOL",
	models.ComponentTypeValve:         "VALVE",
	models.ComponentTypeGasket:        "GSKT",
	models.ComponentTypeSupport:       "SUPP",
	models.ComponentTypeInstrument:    "INST",
	models.ComponentTypeFieldWeld:     "FW",
	models.ComponentTypeFitting:       "FIT",
	models.ComponentTypeFlange:        "FLG",
	models.ComponentTypeThreadedPipe:  "THRD",
	models.ComponentTypeInsulation:    "INSL",
	models.ComponentTypePaint:         "PAINT",
	models.ComponentTypePipingFootage: "PIPE",
	models.ComponentTypeOther:         "COMP",
}

// TypePrefix returns the component id prefix for a component type.
func TypePrefix(componentType models.ComponentType) string {
	if prefix, ok := typePrefixes[componentType]; ok {
		return prefix
	}
	return typePrefixes[models.ComponentTypeOther]
}

// ReconcileRow is one import row as seen by the reconciler: identity
// fields only, after drawing normalization and type classification.
type ReconcileRow struct {
	RowNumber      int
	ComponentID    string
	DrawingNumber  string
	ComponentType  models.ComponentType
	ExplicitNumber int // user-supplied instance number, 0 when absent
}

// ReconciledRow is the reconciler's verdict for one row.
type ReconciledRow struct {
	Row                     ReconcileRow
	ComponentID             string
	GeneratedID             bool
	InstanceNumber          int
	TotalInstancesOnDrawing int
	DisplayID               string
}

// IDGenerator hands out sequential component ids per type, continuing the
// sequences already present in the project rather than restarting at 1.
type IDGenerator struct {
	next map[models.ComponentType]int
}

// NewIDGenerator seeds per-type sequences from the project's existing
// component ids: the next id for a type is max(existing matching
// ^PREFIX[-_]?(digits)$) + 1.
func NewIDGenerator(existingIDs []string) *IDGenerator {
	gen := &IDGenerator{next: make(map[models.ComponentType]int)}
	for componentType, prefix := range typePrefixes {
		pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `[-_]?(\d+)$`)
		max := 0
		for _, id := range existingIDs {
			m := pattern.FindStringSubmatch(id)
			if m == nil {
				continue
			}
			if n, err := strconv.Atoi(m[1]); err == nil && n > max {
				max = n
			}
		}
		gen.next[componentType] = max + 1
	}
	return gen
}

// Next returns the next generated id for a component type.
func (g *IDGenerator) Next(componentType models.ComponentType) string {
	if _, ok := g.next[componentType]; !ok {
		componentType = models.ComponentTypeOther
	}
	id := fmt.Sprintf("%s-%04d", TypePrefix(componentType), g.next[componentType])
	g.next[componentType]++
	return id
}

// groupKey identifies sibling instances within a batch.
type groupKey struct {
	componentID   string
	drawingNumber string
}

// ReconcileBatch assigns instance numbers and display ids across a whole
// import batch. Rows are grouped by (componentId, drawing) before any
// number is assigned; totals are only known once every row sharing the
// key has been seen, so this is a whole-batch operation, never a per-row
// streaming one. Within a group, numbers are assigned 1-based in row
// encounter order, which makes re-running an identical batch against an
// empty project reproduce identical numbers.
//
// Rows without a component id get one generated from the per-type
// sequence; rows that already carry an id are never regenerated. Two rows
// claiming the same instance number through user-supplied data is a
// ReconciliationConflictError.
func ReconcileBatch(rows []ReconcileRow, existingIDs []string) ([]ReconciledRow, error) {
	gen := NewIDGenerator(existingIDs)
	results := make([]ReconciledRow, len(rows))

	// Resolve ids first so grouping sees generated ids too. Generated ids
	// are unique per row, so their groups are singletons by construction.
	for i, row := range rows {
		resolved := row.ComponentID
		generated := false
		if resolved == "" {
			resolved = gen.Next(row.ComponentType)
			generated = true
		}
		results[i] = ReconciledRow{Row: row, ComponentID: resolved, GeneratedID: generated}
	}

	// Group rows by key in encounter order.
	groups := make(map[groupKey][]int)
	order := make([]groupKey, 0, len(rows))
	for i := range results {
		key := groupKey{results[i].ComponentID, results[i].Row.DrawingNumber}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	for _, key := range order {
		indices := groups[key]
		if err := assignInstanceNumbers(results, indices, key); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// assignInstanceNumbers numbers one sibling group. Explicit user-supplied
// numbers are honored first; remaining rows take the lowest unused numbers
// in encounter order.
func assignInstanceNumbers(results []ReconciledRow, indices []int, key groupKey) error {
	taken := make(map[int]bool, len(indices))
	highest := len(indices)

	for _, i := range indices {
		explicit := results[i].Row.ExplicitNumber
		if explicit <= 0 {
			continue
		}
		if taken[explicit] {
			return &apperrors.ReconciliationConflictError{
				ComponentID:    key.componentID,
				DrawingNumber:  key.drawingNumber,
				InstanceNumber: explicit,
			}
		}
		taken[explicit] = true
		results[i].InstanceNumber = explicit
		if explicit > highest {
			highest = explicit
		}
	}

	next := 1
	for _, i := range indices {
		if results[i].InstanceNumber != 0 {
			continue
		}
		for taken[next] {
			next++
		}
		taken[next] = true
		results[i].InstanceNumber = next
	}

	for _, i := range indices {
		results[i].TotalInstancesOnDrawing = highest
		results[i].DisplayID = fmt.Sprintf("%s (%d of %d)", key.componentID, results[i].InstanceNumber, highest)
	}
	return nil
}
