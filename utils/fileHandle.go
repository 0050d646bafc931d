package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under destDir with a collision-free
// name and returns the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// SaveBytes writes raw content (e.g. rendered certificate artwork) under
// destDir and returns the stored path.
func SaveBytes(content []byte, destDir, filename string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}
	filePath := filepath.Join(destDir, filename)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", err
	}
	return filePath, nil
}

// GetFileURL maps a stored path to its public URL
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return fmt.Sprintf("/uploads/%s", filepath.Base(filePath))
}
