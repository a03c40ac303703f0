package output

import (
	"github.com/charmbracelet/glamour"
)

// TerminalFormatter renders the markdown report for display in a terminal.
type TerminalFormatter struct {
	// Style is a glamour standard style name; empty selects "auto".
	Style string
	// WordWrap is the wrap width; zero selects 100 columns.
	WordWrap int
}

func (t TerminalFormatter) Name() string { return "terminal" }

func (t TerminalFormatter) Format(r *Report) ([]byte, error) {
	src, err := MarkdownFormatter{}.Format(r)
	if err != nil {
		return nil, err
	}
	style := t.Style
	if style == "" {
		style = "auto"
	}
	wrap := t.WordWrap
	if wrap <= 0 {
		wrap = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	return renderer.RenderBytes(src)
}
