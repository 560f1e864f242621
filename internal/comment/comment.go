package comment

import (
	"fmt"

	"github.com/dave/dst"
)

const (
	InfoHeader string = "GEN INFO"
	WarnHeader string = "GEN WARN"
)

// Info prepends an info comment to the node, and queues the same message for the console.
// The message is the main comment, and additionalInfo is a list of optional
// comments that will be printed on new lines below the main comment.
// A nil node only queues the console message.
func Info(node dst.Node, location, message string, additionalInfo ...string) {
	decorate(node, InfoHeader, message, additionalInfo...)
	printer.Add(location, InfoHeader, message, additionalInfo...)
}

// Warn is Info for problems the user should look at.
func Warn(node dst.Node, location, message string, additionalInfo ...string) {
	decorate(node, WarnHeader, message, additionalInfo...)
	printer.Add(location, WarnHeader, message, additionalInfo...)
}

func decorate(node dst.Node, header, message string, additionalInfo ...string) {
	if node == nil {
		return
	}

	comments := []string{
		fmt.Sprintf("// %s: %s", header, message),
	}
	for _, info := range additionalInfo {
		comments = append(comments, fmt.Sprintf("// %s", info))
	}

	decs := node.Decorations()
	if len(decs.Start) > 0 {
		comments = append(comments, "//")
	}

	decs.Start.Prepend(comments...)
}
