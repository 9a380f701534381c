package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-drift/cascade/pkg/graphics"
	"github.com/go-drift/cascade/pkg/style"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	cmpStyles = map[string]lipgloss.Style{
		"same":     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"redraw":   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"draw_pad": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"layout":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// renderTable writes a bordered table.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

// swatch renders a small block in the color, ignoring alpha.
func swatch(c graphics.Color) string {
	rgb := fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	return lipgloss.NewStyle().Background(lipgloss.Color(rgb)).Render("  ")
}

// formatValue renders v for prop, with a swatch for colors.
func formatValue(prop style.Prop, v style.Value) string {
	text := v.Format(prop)
	if prop.Kind() == style.KindColor {
		return swatch(v.Color) + " " + text
	}
	return text
}

// flagNames lists a property's propagation flags.
func flagNames(f style.Flags) string {
	var names []string
	if f&style.FlagInherit != 0 {
		names = append(names, "inherit")
	}
	if f&style.FlagLayout != 0 {
		names = append(names, "layout")
	}
	if f&style.FlagExtDraw != 0 {
		names = append(names, "ext_draw")
	}
	if len(names) == 0 {
		return dimStyle.Render("-")
	}
	return strings.Join(names, ",")
}

func check(on bool) string {
	if on {
		return okStyle.Render("yes")
	}
	return offStyle.Render("no")
}
