// Package namespace maps dotted namespaces onto output folders.
//
// A namespace is split relative to a primary namespace: the primary is removed from
// the front of the namespace and the remainder is split on ".". The primary is
// expected without a trailing dot, so that the first segment of anything below it
// is the empty string and joins cleanly after the primary folder:
//
//	Segments("shop.models.orders", "shop") == []string{"", "models", "orders"}
//	FolderPath("gen", "shop", ...)         == "gen/shop/models/orders"
package namespace

import (
	"path/filepath"
	"strings"
)

const separator = "."

// Segments strips primary from the front of ns and splits what is left on ".".
// A namespace equal to primary yields a single empty segment.
func Segments(ns, primary string) []string {
	return strings.Split(strings.TrimPrefix(ns, primary), separator)
}

// IsSubNamespace reports whether segments describe a namespace below the primary one.
func IsSubNamespace(segments []string) bool {
	return len(segments) > 1
}

// FolderPath returns the folder that holds definitions for segments.
func FolderPath(root, primary string, segments []string) string {
	sep := string(filepath.Separator)
	return root + sep + primary + strings.Join(segments, sep)
}

// FilePath returns the file a definition named name is written to.
func FilePath(root, primary string, segments []string, name, ext string) string {
	return FolderPath(root, primary, segments) + string(filepath.Separator) + name + ext
}

// Distinct removes repeated segment lists, keeping the first occurrence of each.
func Distinct(list [][]string) [][]string {
	seen := make(map[string]bool, len(list))
	ret := make([][]string, 0, len(list))
	for _, segments := range list {
		key := strings.Join(segments, separator)
		if seen[key] {
			continue
		}
		seen[key] = true
		ret = append(ret, segments)
	}
	return ret
}
