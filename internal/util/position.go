package util

import (
	"go/token"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Position returns the source position of a node loaded as part of pkg.
// Nodes created after loading have no position and return nil.
func Position(node dst.Node, pkg *decorator.Package) *token.Position {
	if node == nil || pkg == nil || pkg.Decorator == nil || pkg.Package == nil || pkg.Fset == nil {
		return nil
	}

	astNode := pkg.Decorator.Ast.Nodes[node]
	if astNode == nil {
		return nil
	}

	pos := pkg.Fset.Position(astNode.Pos())
	return &pos
}
