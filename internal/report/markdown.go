// internal/report/markdown.go
package report

import (
	"io"
	"strings"
)

// Builder accumulates a markdown document through chained calls.
type Builder struct {
	sb strings.Builder
}

// Header appends a level-one heading.
func (b *Builder) Header(text string) *Builder {
	b.sb.WriteString("# " + text + "\n\n")
	return b
}

// Text appends a paragraph.
func (b *Builder) Text(text string) *Builder {
	b.sb.WriteString(text + "\n\n")
	return b
}

// Linebreak appends a blank line.
func (b *Builder) Linebreak() *Builder {
	b.sb.WriteString("\n")
	return b
}

// Table appends a markdown table; the first row is the header row.
func (b *Builder) Table(rows [][]string) *Builder {
	for i, row := range rows {
		b.sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
		if i == 0 {
			sep := make([]string, len(row))
			for j, cell := range row {
				n := len(cell)
				if n < 3 {
					n = 3
				}
				sep[j] = strings.Repeat("-", n)
			}
			b.sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
		}
	}
	b.sb.WriteString("\n")
	return b
}

// String returns the accumulated document.
func (b *Builder) String() string { return b.sb.String() }

// WriteTo writes the accumulated document to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.sb.String())
	return int64(n), err
}
