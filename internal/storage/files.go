package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Materials — управляемый каталог с файлами учебных материалов.
// В БД хранится абсолютный путь сохранённой копии.
type Materials struct {
	dir string
}

func NewMaterials(dir string) (*Materials, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("каталог материалов: %w", err)
	}
	return &Materials{dir: abs}, nil
}

func (m *Materials) Dir() string { return m.dir }

// Save копирует исходный файл в каталог материалов под уникальным именем.
// Временной префикс исходной системы заменён на uuid: одинаковые метки
// времени при параллельных загрузках давали коллизии.
func (m *Materials) Save(srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("открытие исходного файла: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + "_" + filepath.Base(srcPath)
	destPath := filepath.Join(m.dir, name)

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("создание копии: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		_ = os.Remove(destPath)
		return "", fmt.Errorf("копирование файла: %w", err)
	}
	if err := dest.Sync(); err != nil {
		return "", err
	}
	return destPath, nil
}

// Remove подчищает копию, если регистрация материала в БД не удалась.
func Remove(storedPath string) {
	_ = os.Remove(storedPath)
}

// Download копирует сохранённый материал в выбранное пользователем место.
func Download(storedPath, destPath string) error {
	src, err := os.Open(storedPath)
	if err != nil {
		return fmt.Errorf("файл материала недоступен: %w", err)
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("создание файла назначения: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return fmt.Errorf("копирование файла: %w", err)
	}
	return nil
}
