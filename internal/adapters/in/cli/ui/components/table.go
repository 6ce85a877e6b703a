package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

// Column is a table column. A zero Width lets the column grow.
type Column struct {
	Title string
	Width int
}

// Table renders rows under headers with the theme's border and cell styles.
// Cells wider than their column are cut with an ellipsis.
func Table(columns []Column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = truncateCell(c.Title, c.Width)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		for c, v := range row {
			cells[r][c] = truncateCell(v, widthOf(columns, c))
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Theme.TableBorder).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := styles.Theme.TableCell
			if row == table.HeaderRow {
				s = styles.Theme.TableHeader
			}
			if w := widthOf(columns, col); w > 0 {
				w += s.GetHorizontalPadding()
				s = s.Width(w).MaxWidth(w)
			}
			return s
		}).
		String()
}

// HostTable lists every host with its state, enabled hosts first.
func HostTable(list domain.HostList) string {
	rows := make([][]string, 0, list.Len())
	for _, name := range list.Enabled {
		rows = append(rows, []string{name, domain.HostEnabled.String()})
	}
	for _, name := range list.Disabled {
		rows = append(rows, []string{name, domain.HostDisabled.String()})
	}
	return Table([]Column{{Title: "Host"}, {Title: "State"}}, rows)
}

func widthOf(columns []Column, i int) int {
	if i < 0 || i >= len(columns) {
		return 0
	}
	return columns[i].Width
}

// truncateCell shortens plain text to maxWidth display cells, keeping
// grapheme clusters whole. Styled text is returned untouched.
func truncateCell(value string, maxWidth int) string {
	if maxWidth <= 0 || strings.Contains(value, "\x1b[") || runewidth.StringWidth(value) <= maxWidth {
		return value
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	var b strings.Builder
	budget := maxWidth - 3
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if w > budget {
			break
		}
		b.WriteString(g.Str())
		budget -= w
	}
	return b.String() + "..."
}
