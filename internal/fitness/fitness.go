// Package fitness is the client side of the fitness-advice endpoints. The
// server responses are free-form JSON consumed opaquely, so rendering walks
// whatever structure comes back.
package fitness

import (
	"fmt"
	"sort"
	"strings"
)

// Profile mirrors the fields every fitness endpoint expects.
type Profile struct {
	WeightKg            float64  `json:"weight_kg"`
	HeightCm            float64  `json:"height_cm"`
	Age                 int      `json:"age"`
	Goal                string   `json:"goal"`
	ExperienceLevel     string   `json:"experience_level"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// AdviceRequest is a profile plus the concern to ask about.
type AdviceRequest struct {
	Profile
	Concern string `json:"concern,omitempty"`
}

// BMIRequest feeds the BMI calculator.
type BMIRequest struct {
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
}

// ParseRestrictions splits a comma-separated flag value into the list the
// API expects, dropping empties.
func ParseRestrictions(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// formatKey turns snake_case JSON keys into display labels
// ("experience_level" → "Experience Level").
func formatKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RenderResult flattens an arbitrary decoded JSON value into display lines:
// maps become "Label: value" rows (nested maps indented under a heading),
// slices become bullet lists. Map keys are sorted so output is stable.
func RenderResult(data any, title string) []string {
	var lines []string
	if title != "" {
		lines = append(lines, title)
	}
	return append(lines, renderValue(data, 0)...)
}

func renderValue(data any, depth int) []string {
	indent := strings.Repeat("  ", depth)

	switch v := data.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var lines []string
		for _, k := range keys {
			label := formatKey(k)
			switch child := v[k].(type) {
			case map[string]any:
				lines = append(lines, indent+label+":")
				lines = append(lines, renderValue(child, depth+1)...)
			case []any:
				lines = append(lines, indent+label+":")
				for _, el := range child {
					lines = append(lines, renderValue(el, depth+1)...)
				}
			default:
				lines = append(lines, fmt.Sprintf("%s%s: %s", indent, label, scalar(child)))
			}
		}
		return lines
	case []any:
		var lines []string
		for _, el := range v {
			lines = append(lines, renderValue(el, depth)...)
		}
		return lines
	default:
		return []string{indent + "- " + scalar(v)}
	}
}

func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		// JSON numbers decode as float64; print integers without a
		// trailing ".0".
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
