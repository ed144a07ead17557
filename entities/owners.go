package entities

import (
	"encoding/json"
	"strings"
)

// OwnerShared marks a product or list item as belonging to the whole
// household rather than to a single member.
const OwnerShared = "shared"

// ParseOwners decodes the owners text column. Legacy records stored a
// single owner as a bare string instead of a JSON array; this is the only
// place that shape is handled.
func ParseOwners(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var owners []string
	if err := json.Unmarshal([]byte(raw), &owners); err == nil {
		return owners
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single != "" {
		return []string{single}
	}

	return []string{raw}
}

func EncodeOwners(owners []string) string {
	if len(owners) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(owners)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// IsShared reports whether the owner set covers the whole household,
// either via the shared sentinel or by listing every member.
func IsShared(owners []string, householdSize int) bool {
	for _, o := range owners {
		if strings.EqualFold(o, OwnerShared) {
			return true
		}
	}
	return householdSize > 0 && len(uniqueOwners(owners)) >= householdSize
}

func OwnersContain(owners []string, memberID string) bool {
	for _, o := range owners {
		if o == memberID {
			return true
		}
	}
	return false
}

func uniqueOwners(owners []string) []string {
	seen := make(map[string]struct{}, len(owners))
	out := make([]string, 0, len(owners))
	for _, o := range owners {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}
