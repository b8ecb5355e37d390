package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Spok95/lms-desktop/internal/storage"
)

func TestSaveAndDownload(t *testing.T) {
	dir := t.TempDir()
	m, err := storage.NewMaterials(filepath.Join(dir, "materials"))
	if err != nil {
		t.Fatal(err)
	}

	src := filepath.Join(dir, "лекция.pdf")
	if err := os.WriteFile(src, []byte("содержимое лекции"), 0o644); err != nil {
		t.Fatal(err)
	}

	stored, err := m.Save(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stored, m.Dir()) {
		t.Fatalf("копия вне каталога материалов: %s", stored)
	}
	// Исходное имя сохраняется в суффиксе, префикс уникален.
	if !strings.HasSuffix(stored, "_лекция.pdf") {
		t.Fatalf("ожидали суффикс с исходным именем: %s", stored)
	}

	stored2, err := m.Save(src)
	if err != nil {
		t.Fatal(err)
	}
	if stored2 == stored {
		t.Fatal("повторное сохранение должно давать другое имя")
	}

	dest := filepath.Join(dir, "скачанное.pdf")
	if err := storage.Download(stored, dest); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "содержимое лекции" {
		t.Fatalf("содержимое исказилось: %q", got)
	}
}

func TestSave_MissingSource(t *testing.T) {
	m, err := storage.NewMaterials(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Save(filepath.Join(t.TempDir(), "нет-такого.pdf")); err == nil {
		t.Fatal("ожидали ошибку на отсутствующем исходнике")
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	m, err := storage.NewMaterials(dir)
	if err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "x.txt")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	stored, err := m.Save(src)
	if err != nil {
		t.Fatal(err)
	}
	storage.Remove(stored)
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Fatal("копия должна быть удалена")
	}
}
