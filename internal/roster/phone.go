package roster

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize converts raw phone values to E.164, drops anything that fails
// the possible and valid checks, and deduplicates preserving first-seen
// order. A leading "00" international prefix is rewritten to "+".
// defaultRegion (ISO 3166-1 alpha-2, e.g. "US") applies only to values
// without a "+" prefix.
func Normalize(raws []string, defaultRegion string) []string {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))

	normalized := make([]string, 0, len(raws))
	for _, raw := range raws {
		if p, ok := normalizePhone(raw, region); ok {
			normalized = append(normalized, p)
		}
	}
	return dedupe(normalized)
}

// dedupe keeps the first occurrence of each number. Rows repeating a contact
// must not produce repeated add attempts.
func dedupe(phones []string) []string {
	seen := make(map[string]struct{}, len(phones))
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func normalizePhone(raw, region string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if strings.HasPrefix(raw, "00") {
		raw = "+" + raw[2:]
	}

	parseRegion := ""
	if !strings.HasPrefix(raw, "+") {
		parseRegion = region
	}
	num, err := phonenumbers.Parse(raw, parseRegion)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsPossibleNumber(num) || !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}
