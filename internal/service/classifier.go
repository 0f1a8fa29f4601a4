package service

import (
	"regexp"
	"strings"

	"pipetrak-backend/internal/database/models"
)

// classifierRule maps a word-boundary pattern to a component type. Rules
// are evaluated top to bottom and the first match wins, so specific
// multi-word patterns must stay above the generic words they contain
// ("control valve" above "valve", "pipe support" above "support").
type classifierRule struct {
	pattern *regexp.Regexp
	result  models.ComponentType
}

func rule(pattern string, result models.ComponentType) classifierRule {
	return classifierRule{
		pattern: regexp.MustCompile(`\b(?:` + pattern + `)\b`),
		result:  result,
	}
}

var classifierRules = []classifierRule{
	// Instruments first: a control valve is an instrument, not a valve.
	rule(`control valve|relief valve|psv|transmitter|gauge|instrument`, models.ComponentTypeInstrument),

	rule(`gate valve|ball valve|globe valve|check valve|butterfly valve|plug valve`, models.ComponentTypeValve),

	rule(`field weld`, models.ComponentTypeFieldWeld),
	rule(`threaded pipe|threaded`, models.ComponentTypeThreadedPipe),
	rule(`piping footage|footage`, models.ComponentTypePipingFootage),

	rule(`pipe support|spring can|pipe shoe|hanger|guide|support`, models.ComponentTypeSupport),

	rule(`spool`, models.ComponentTypeSpool),
	rule(`valve`, models.ComponentTypeValve),
	rule(`gasket`, models.ComponentTypeGasket),
	// A weld neck flange is a flange; only then does a bare "weld" mean a field weld.
	rule(`flange`, models.ComponentTypeFlange),
	rule(`weld`, models.ComponentTypeFieldWeld),
	rule(`elbow|reducer|coupling|tee|fitting`, models.ComponentTypeFitting),
	rule(`insulation`, models.ComponentTypeInsulation),
	rule(`paint|coating`, models.ComponentTypePaint),
}

// ClassifyType maps a free-text type field and description to a canonical
// ComponentType. It is a total function: unrecognized input falls back to
// ComponentTypeOther rather than failing the row.
func ClassifyType(typeField, description string) models.ComponentType {
	text := strings.ToLower(strings.TrimSpace(typeField + " " + description))
	if text == "" {
		return models.ComponentTypeOther
	}

	for _, r := range classifierRules {
		if r.pattern.MatchString(text) {
			return r.result
		}
	}
	return models.ComponentTypeOther
}
