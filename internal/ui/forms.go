package ui

import "strings"

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	v := values[key]
	if len(v) == 0 {
		return ""
	}
	return strings.TrimSpace(v[0])
}
