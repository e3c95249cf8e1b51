package models

import "strings"

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
