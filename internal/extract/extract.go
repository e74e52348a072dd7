// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".docx": true,
}

// Supported reports whether the filename has a recognized document extension.
func Supported(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Document extracts plain text from the file at path, dispatching on the
// declared filename's extension.
func Document(path, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDOCX(path)
	case ".txt":
		return fromTXT(path)
	default:
		return "", fmt.Errorf("unsupported file format: %s", filename)
	}
}

func fromTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("TXT extraction error: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
