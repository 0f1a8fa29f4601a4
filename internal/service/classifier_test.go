package service

import (
	"testing"

	"pipetrak-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyType(t *testing.T) {
	testCases := []struct {
		name        string
		typeField   string
		description string
		expected    models.ComponentType
	}{
		{"Spool from type field", "Spool", "", models.ComponentTypeSpool},
		{"Spool from description", "", "Pipe spool 6 inch CS", models.ComponentTypeSpool},
		{"Gate valve", "", "GATE VALVE 150# RF", models.ComponentTypeValve},
		{"Bare valve", "VALVE", "", models.ComponentTypeValve},
		{"Gasket", "", "Spiral wound gasket", models.ComponentTypeGasket},
		{"Support", "", "Pipe support HD-104", models.ComponentTypeSupport},
		{"Spring can", "", "Spring can assembly", models.ComponentTypeSupport},
		{"Field weld", "", "Field weld FW-22", models.ComponentTypeFieldWeld},
		{"Bare weld", "WELD", "", models.ComponentTypeFieldWeld},
		{"Fitting elbow", "", "90 deg elbow", models.ComponentTypeFitting},
		{"Fitting tee", "", "TEE 6x4", models.ComponentTypeFitting},
		{"Weld neck flange is a flange", "", "Weld neck flange", models.ComponentTypeFlange},
		{"Plain flange", "", "Blind flange 300#", models.ComponentTypeFlange},
		{"Threaded pipe", "", "Threaded pipe run", models.ComponentTypeThreadedPipe},
		{"Insulation", "", "Insulation 2 inch calcium silicate", models.ComponentTypeInsulation},
		{"Paint", "", "Paint system P-3", models.ComponentTypePaint},
		{"Coating", "", "External coating", models.ComponentTypePaint},
		{"Piping footage", "", "Piping footage large bore", models.ComponentTypePipingFootage},
		{"Instrument", "", "Pressure transmitter", models.ComponentTypeInstrument},
		{"Unknown falls back to other", "", "Miscellaneous steel", models.ComponentTypeOther},
		{"Empty input", "", "", models.ComponentTypeOther},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyType(tc.typeField, tc.description))
		})
	}
}

// Rule ordering is load-bearing: specific patterns must win over the
// generic words they contain.
func TestClassifyTypeOrdering(t *testing.T) {
	t.Run("control valve is an instrument, not a valve", func(t *testing.T) {
		assert.Equal(t, models.ComponentTypeInstrument, ClassifyType("", "Control valve FCV-101"))
	})

	t.Run("relief valve is an instrument", func(t *testing.T) {
		assert.Equal(t, models.ComponentTypeInstrument, ClassifyType("", "Relief valve PSV-204"))
	})

	t.Run("pipe support is a support, not classified by the word pipe", func(t *testing.T) {
		assert.Equal(t, models.ComponentTypeSupport, ClassifyType("", "Pipe support"))
	})

	t.Run("word boundaries prevent substring hits", func(t *testing.T) {
		// "steel" contains the letters of "tee" but is not a fitting
		assert.Equal(t, models.ComponentTypeOther, ClassifyType("", "structural steel"))
	})
}

func TestClassifyTypeIsTotal(t *testing.T) {
	// Whatever the input, the result is a valid ComponentType.
	inputs := []string{"", "???", "12345", "GASKET VALVE WELD", "   "}
	for _, input := range inputs {
		result := ClassifyType(input, input)
		assert.True(t, result.IsValid(), "input %q produced invalid type %q", input, result)
	}
}
