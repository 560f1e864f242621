package comment

import (
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
)

type entry struct {
	header string
	text   string
}

type ConsolePrinter struct {
	appRoot  string
	comments []entry
}

// initialize this if you want to use it at the start of the program
var printer *ConsolePrinter

func EnableConsolePrinter(applicationPath string) {
	printer = &ConsolePrinter{
		appRoot: filepath.Base(applicationPath),
	}
}

func WriteAll() {
	if printer != nil {
		printer.Flush()
	}
}

// Add appends a new comment to the console queue.
// The location is printed before the message when it is known.
func (p *ConsolePrinter) Add(location, header, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	b := strings.Builder{}
	if location != "" {
		b.WriteString(location)
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.comments = append(p.comments, entry{header: header, text: b.String()})
}

// Flush prints all the queued comments and empties the queue.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	for _, c := range p.comments {
		switch c.header {
		case WarnHeader:
			pterm.Warning.Println(c.text)
		default:
			pterm.Info.Println(c.text)
		}
	}
	p.comments = []entry{}
}
