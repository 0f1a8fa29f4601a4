package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "pipetrak-backend/internal/errors"
)

// Sheet notation handling. Raw drawing labels arrive as "<base> (<n>/<m>)"
// for multi-sheet drawings or as a bare base for single sheets; the
// canonical stored form is "<base> NNofMM" with two-digit zero padding.
var (
	rawSheetPattern       = regexp.MustCompile(`^(.*?)\s*\(\s*(\d+)\s*/\s*(\d+)\s*\)$`)
	canonicalSheetPattern = regexp.MustCompile(`^(.+)\s(\d{2})of(\d{2})$`)
)

// ParsedDrawing is the strict-format breakdown of a canonical number.
type ParsedDrawing struct {
	Base  string `json:"base"`
	Sheet int    `json:"sheet"`
	Total int    `json:"total"`
}

// NormalizedDrawing is one entry of a batch normalization result. Flagged
// marks labels that could not be parsed and were passed through unchanged.
type NormalizedDrawing struct {
	Original  string `json:"original"`
	Canonical string `json:"canonical"`
	Flagged   bool   `json:"flagged"`
}

// NormalizeDrawing converts a raw drawing label into canonical
// sheet-numbered form: "P-94011_2 (1/3)" becomes "P-94011_2 01of03".
// A label without sheet notation is assumed single-sheet and becomes
// "<base> 01of01".
func NormalizeDrawing(label string) (string, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "", apperrors.NewFormatError(label, "drawing label is empty")
	}

	if m := rawSheetPattern.FindStringSubmatch(trimmed); m != nil {
		base := strings.TrimSpace(m[1])
		if base == "" {
			return "", apperrors.NewFormatError(label, "drawing label has sheet notation but no base")
		}
		sheet, _ := strconv.Atoi(m[2])
		total, _ := strconv.Atoi(m[3])
		if sheet < 1 || total < 1 || sheet > total || sheet > 99 || total > 99 {
			return "", apperrors.NewFormatError(label, fmt.Sprintf("sheet %d of %d is not a valid sheet position", sheet, total))
		}
		return fmt.Sprintf("%s %02dof%02d", base, sheet, total), nil
	}

	// Already canonical input normalizes to itself. Canonical-looking
	// strings with an impossible sheet position ("X 00of00") are treated
	// as a plain base instead, keeping the round trip with
	// ParseDrawingNumber intact.
	if _, err := ParseDrawingNumber(trimmed); err == nil {
		return trimmed, nil
	}

	return fmt.Sprintf("%s 01of01", trimmed), nil
}

// ParseDrawingNumber accepts only the strict canonical form
// "<base> NNofMM" and extracts its parts. Malformed canonical-looking
// strings are rejected rather than guessed at.
func ParseDrawingNumber(number string) (ParsedDrawing, error) {
	m := canonicalSheetPattern.FindStringSubmatch(number)
	if m == nil {
		return ParsedDrawing{}, apperrors.NewFormatError(number, "not in canonical sheet notation")
	}
	sheet, _ := strconv.Atoi(m[2])
	total, _ := strconv.Atoi(m[3])
	if sheet < 1 || total < 1 || sheet > total {
		return ParsedDrawing{}, apperrors.NewFormatError(number, fmt.Sprintf("sheet %d of %d is not a valid sheet position", sheet, total))
	}
	return ParsedDrawing{Base: m[1], Sheet: sheet, Total: total}, nil
}

// NormalizeDrawingBatch normalizes a batch of labels. Individual
// unparseable inputs fall back to the original string and are flagged;
// the batch itself never fails.
func NormalizeDrawingBatch(labels []string) []NormalizedDrawing {
	results := make([]NormalizedDrawing, len(labels))
	for i, label := range labels {
		canonical, err := NormalizeDrawing(label)
		if err != nil {
			results[i] = NormalizedDrawing{Original: label, Canonical: label, Flagged: true}
			continue
		}
		results[i] = NormalizedDrawing{Original: label, Canonical: canonical}
	}
	return results
}
