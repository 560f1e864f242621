package comment

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/easygen/go-easy-generation/internal/util"
)

// SourceLocation creates a human readable string representing the position of a node in an application.
// In order to improve readability, the filename will be localized to the root of the application
// registered with EnableConsolePrinter. The format of the string is as follows based on the
// positional info available:
//
// Info 					|		Formatting
// ------------------------------------------------------------------
// filename,line, column	|	filename:line:column
// filename, line			|	filename:line
// filename					|	filename
// invalid or empty			|	""
func SourceLocation(pkg *decorator.Package, node dst.Node) string {
	appRoot := ""
	if printer != nil {
		appRoot = printer.appRoot
	}
	return location(pkg, node, appRoot)
}

func location(pkg *decorator.Package, node dst.Node, appRoot string) string {
	pos := util.Position(node, pkg)
	if pos == nil || !pos.IsValid() {
		return ""
	}

	filename := pos.Filename
	if appRoot != "" {
		split := strings.Split(filename, string(filepath.Separator))
		for i, segment := range split {
			if segment == appRoot {
				filename = strings.Join(split[i:], string(filepath.Separator))
				break
			}
		}
	}

	path := strings.Builder{}
	path.WriteString(filename)
	if pos.Line != 0 {
		path.WriteByte(':')
		path.WriteString(strconv.Itoa(pos.Line))
		if pos.Column != 0 {
			path.WriteByte(':')
			path.WriteString(strconv.Itoa(pos.Column))
		}
	}

	return path.String()
}
