package export_test

import (
	"testing"

	"github.com/Spok95/lms-desktop/internal/export"
)

func TestNewWorkbook(t *testing.T) {
	wb, err := export.NewWorkbook([]export.SheetSpec{
		{
			Title:  "Пользователи",
			Header: []string{"ID", "Логин", "Роль"},
			Rows: [][]string{
				{"1", "admin", "admin"},
				{"2", "ivanov", "student"},
			},
		},
		{
			Title:  "Журнал",
			Header: []string{"Студент", "Оценка"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	sheets := wb.File.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Пользователи" || sheets[1] != "Журнал" {
		t.Fatalf("листы: %v", sheets)
	}

	v, err := wb.File.GetCellValue("Пользователи", "B3")
	if err != nil {
		t.Fatal(err)
	}
	if v != "ivanov" {
		t.Fatalf("B3: ожидали ivanov, получили %q", v)
	}
	h, err := wb.File.GetCellValue("Журнал", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if h != "Студент" {
		t.Fatalf("заголовок второго листа: %q", h)
	}
}

func TestNewWorkbook_Empty(t *testing.T) {
	if _, err := export.NewWorkbook(nil); err == nil {
		t.Fatal("пустой набор листов должен отбиваться")
	}
}
