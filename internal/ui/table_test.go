package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Spok95/lms-desktop/internal/ui"
)

func TestRenderTable_CyrillicAlignment(t *testing.T) {
	var buf bytes.Buffer
	ui.RenderTable(&buf, []string{"Код", "Название"}, [][]string{
		{"CS101", "Информатика"},
		{"M1", "Математический анализ"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("ожидали 4 строки, получили %d:\n%s", len(lines), buf.String())
	}
	// Колонки начинаются с одной позиции в рунах, а не в байтах.
	idx := strings.Index(lines[2], "Информатика")
	idx2 := strings.Index(lines[3], "Математический")
	if idx != idx2 {
		t.Fatalf("колонки разъехались:\n%s", buf.String())
	}
}

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	ui.RenderTable(&buf, []string{"Код"}, nil)
	if !strings.Contains(buf.String(), "(пусто)") {
		t.Fatalf("пустая таблица должна помечаться:\n%s", buf.String())
	}
}

func TestOrDash(t *testing.T) {
	if got := ui.OrDash(nil); got != ui.Dash {
		t.Fatalf("nil: %q", got)
	}
	empty := ""
	if got := ui.OrDash(&empty); got != ui.Dash {
		t.Fatalf("пустая строка: %q", got)
	}
	name := "Петров П.П."
	if got := ui.OrDash(&name); got != name {
		t.Fatalf("значение: %q", got)
	}
	n := 7
	if got := ui.IntOrDash(&n); got != "7" {
		t.Fatalf("число: %q", got)
	}
	if got := ui.IntOrDash(nil); got != ui.Dash {
		t.Fatalf("nil число: %q", got)
	}
}
