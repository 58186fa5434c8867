package repository

import (
	"os"
	"sort"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// tableName prefers the configured name, then the env var, then the default.
func tableName(configured, envKey, def string) string {
	if configured != "" {
		return configured
	}
	return getenvDefault(envKey, def)
}

func sortByKey[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool { return key(items[i]) < key(items[j]) })
}
