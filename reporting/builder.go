package reporting

import (
	"fmt"
	"strings"
)

// LineWidth is the width of banners and rules in text reports
const LineWidth = 78

var (
	bannerLine = strings.Repeat("=", LineWidth)
	ruleLine   = strings.Repeat("-", LineWidth)
)

// Builder accumulates the lines of a text report. Every report opens with a
// banner and a title.
type Builder struct {
	lines []string
}

// NewBuilder starts a report with the banner and title
func NewBuilder(title string) *Builder {
	return &Builder{lines: []string{bannerLine, title}}
}

// Rule appends a horizontal rule
func (b *Builder) Rule() *Builder {
	b.lines = append(b.lines, ruleLine)
	return b
}

// Blank appends an empty line
func (b *Builder) Blank() *Builder {
	b.lines = append(b.lines, "")
	return b
}

// Line appends lines verbatim
func (b *Builder) Line(lines ...string) *Builder {
	b.lines = append(b.lines, lines...)
	return b
}

// Linef appends a formatted line
func (b *Builder) Linef(format string, args ...any) *Builder {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
	return b
}

// Item appends a "  * " bullet line
func (b *Builder) Item(format string, args ...any) *Builder {
	return b.Linef("  * "+format, args...)
}

// Len returns the number of lines, including banner and title
func (b *Builder) Len() int {
	return len(b.lines)
}

func (b *Builder) String() string {
	return strings.Join(b.lines, "\n")
}
