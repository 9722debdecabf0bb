package common

import (
	"path"
	"strconv"
)

// UnknownStr is the String() form of unrecognized enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// FreshName returns the first of prefix<n>, prefix<n+1>, ... not in taken,
// and marks it taken.
func FreshName(taken map[string]bool, prefix string, n int) string {
	for ; ; n++ {
		name := prefix + strconv.Itoa(n)
		if !taken[name] {
			taken[name] = true
			return name
		}
	}
}
