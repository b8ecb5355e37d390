package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// RenderTable печатает выровненную таблицу. Ширина считается в рунах,
// иначе кириллица ломает колонки.
func RenderTable(out io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if l := utf8.RuneCountInString(cell); l > widths[i] {
					widths[i] = l
				}
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - utf8.RuneCountInString(cell)
			parts[i] = cell + strings.Repeat(" ", pad)
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(header)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	printRow(sep)
	for _, row := range rows {
		printRow(row)
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "(пусто)")
	}
}

// Dash — обозначение пустого значения в таблицах (оценка не выставлена,
// преподаватель не назначен и т.п.)
const Dash = "N/A"

func OrDash(s *string) string {
	if s == nil || *s == "" {
		return Dash
	}
	return *s
}

func IntOrDash(n *int) string {
	if n == nil {
		return Dash
	}
	return fmt.Sprint(*n)
}
