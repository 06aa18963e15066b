package handlers

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "storelinks/server/errors"
)

// допустимые расширения загружаемых файлов
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".csv":  true,
	".html": true,
	".htm":  true,
}

// xlsxMagic сигнатура zip-контейнера, которым является .xlsx
var xlsxMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// UploadedFile сохраненный на диск загруженный файл
type UploadedFile struct {
	// Name исходное имя файла от клиента
	Name string
	// Path путь к сохраненной копии в каталоге загрузок
	Path string
	Size int64
}

// SaveUpload валидирует и сохраняет один файл multipart формы.
// Проверяются расширение, размер и для .xlsx сигнатура zip: Excel
// под видом .xlsx иногда присылают что угодно.
func SaveUpload(header *multipart.FileHeader, uploadsDir string, maxSize int64) (*UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("неподдерживаемый формат файла %q, ожидается .xlsx, .csv или .html", header.Filename), nil)
	}
	if header.Size == 0 {
		return nil, apperrors.NewValidationError("загруженный файл пуст", nil)
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, apperrors.NewTooLargeError(
			fmt.Sprintf("файл %q больше лимита %d МБ", header.Filename, maxSize>>20), nil)
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperrors.NewInternalError("не удалось открыть загруженный файл", err)
	}
	defer src.Close()

	if ext == ".xlsx" {
		if err := validateXLSXHeader(src); err != nil {
			return nil, err
		}
	}

	// Имя на диске уникальное, исходное имя остается в метаданных
	destPath := filepath.Join(uploadsDir, uuid.New().String()+ext)
	dst, err := os.Create(destPath)
	if err != nil {
		return nil, apperrors.NewInternalError("не удалось создать файл в каталоге загрузок", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(destPath)
		return nil, apperrors.NewInternalError("не удалось сохранить загруженный файл", err)
	}

	return &UploadedFile{
		Name: header.Filename,
		Path: destPath,
		Size: written,
	}, nil
}

// validateXLSXHeader проверяет сигнатуру zip и возвращает читателя в начало
func validateXLSXHeader(src multipart.File) error {
	header := make([]byte, len(xlsxMagic))
	n, err := io.ReadFull(src, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return apperrors.NewInternalError("не удалось прочитать заголовок файла", err)
	}
	if n < len(xlsxMagic) || !bytes.Equal(header[:len(xlsxMagic)], xlsxMagic) {
		return apperrors.NewValidationError("файл не является валидной книгой Excel (.xlsx)", nil)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return apperrors.NewInternalError("не удалось перемотать загруженный файл", err)
	}
	return nil
}

// Cleanup удаляет сохраненную копию загрузки; ошибки игнорируются
func (u *UploadedFile) Cleanup() {
	if u != nil && u.Path != "" {
		os.Remove(u.Path)
	}
}
