package util

import (
	"strings"

	"github.com/dave/dst"
)

// DebugPrint returns a string representation of the given node.
// It pretty prints the structure of a node in human readable form, and is
// used to dump planned definitions when running in debug mode.
func DebugPrint(node dst.Node) string {
	objString := strings.Builder{}
	_ = dst.Fprint(&objString, node, dst.NotNilFilter)
	return objString.String()
}
