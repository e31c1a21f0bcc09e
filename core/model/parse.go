package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePredecessors decodes the canonical bracketed-list encoding used by
// instance files: "[]", "[12]", "[3,17,42]". Whitespace around the brackets
// and between elements is tolerated; anything else is an error.
func ParsePredecessors(s string) ([]int, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return nil, fmt.Errorf("predecessors: expected bracketed list, got %q", s)
	}
	inner := strings.TrimSpace(t[1 : len(t)-1])
	if inner == "" {
		return nil, nil
	}
	parts := strings.Split(inner, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("predecessors: bad element %q in %q", p, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FormatPredecessors is the inverse of ParsePredecessors.
func FormatPredecessors(ids []int) string {
	if len(ids) == 0 {
		return "[]"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
