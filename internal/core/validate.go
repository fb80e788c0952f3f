package core

import (
	"fmt"
	"strings"
)

// ParseProvider accepts one of the known provider ids, case-insensitively.
func ParseProvider(s string) (ProviderID, error) {
	switch ProviderID(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderOpenRouter:
		return ProviderOpenRouter, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	default:
		return "", fmt.Errorf("invalid provider: %s", s)
	}
}

// Known reports whether p is exactly one of the three supported provider ids.
func (p ProviderID) Known() bool {
	switch p {
	case ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic:
		return true
	}
	return false
}
