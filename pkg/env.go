package pkg

import (
	"strings"
)

// ParseList splits a comma-separated string into a slice, dropping blanks.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	items := strings.Split(s, ",")
	out := make([]string, 0, len(items))

	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
