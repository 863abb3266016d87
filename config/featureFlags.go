package config

import (
	"os"
	"strings"
)

// StrictReconcileMode makes the reconcilers log every field that fell back to
// its default value. Useful when onboarding a new upstream API version.
//
// Set via env:
// - STRICT_RECONCILE_LOG=true
func StrictReconcileMode() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STRICT_RECONCILE_LOG")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// CollectionCacheFor enables the redis collection cache per entity during
// incremental rollout.
//
// Set via env:
// - CACHED_COLLECTIONS="departments,employees,line-items"
//
// Entity keys are case-insensitive.
func CollectionCacheFor(entity string) bool {
	entity = strings.ToLower(strings.TrimSpace(entity))
	if entity == "" {
		return false
	}
	raw := os.Getenv("CACHED_COLLECTIONS")
	if strings.TrimSpace(raw) == "" {
		return false
	}
	for _, part := range strings.Split(raw, ",") {
		if strings.ToLower(strings.TrimSpace(part)) == entity {
			return true
		}
	}
	return false
}
