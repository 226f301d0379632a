package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

type Column struct {
	Name  string
	Width int
	Align Align
}

// Table renderiza filas de ancho fijo; los valores largos se truncan con "...".
type Table struct {
	columns   []Column
	rows      [][]string
	indent    string
	separator bool
}

func NewTable(cols ...Column) *Table {
	return &Table{columns: cols, indent: "  ", separator: true}
}

func (t *Table) SetIndent(indent string)    { t.indent = indent }
func (t *Table) SetHeaderSeparator(on bool) { t.separator = on }

// AddRow completa con vacíos si faltan valores.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	var b strings.Builder

	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		plain := truncate(c.Name, c.Width)
		header[i] = t.pad(Bold.Render(plain), plain, c.Width, c.Align)
	}
	b.WriteString(t.indent + strings.Join(header, " ") + "\n")

	if t.separator {
		seps := make([]string, len(t.columns))
		for i, c := range t.columns {
			seps[i] = Dim.Render(strings.Repeat("─", c.Width))
		}
		b.WriteString(t.indent + strings.Join(seps, " ") + "\n")
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, c := range t.columns {
			plain := truncate(row[i], c.Width)
			cells[i] = t.pad(plain, plain, c.Width, c.Align)
		}
		b.WriteString(strings.TrimRight(t.indent+strings.Join(cells, " "), " ") + "\n")
	}

	return b.String()
}

// pad rellena styled según el ancho visible de plain.
func (t *Table) pad(styled, plain string, width int, align Align) string {
	gap := width - lipgloss.Width(plain)
	if gap <= 0 {
		return styled
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + styled
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + styled + strings.Repeat(" ", gap-left)
	default:
		return styled + strings.Repeat(" ", gap)
	}
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	r := []rune(s)
	if len(r) > width-3 {
		r = r[:width-3]
	}
	return string(r) + "..."
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
