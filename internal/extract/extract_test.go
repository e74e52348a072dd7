package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"notes.pdf", true},
		{"notes.txt", true},
		{"notes.docx", true},
		{"NOTES.PDF", true},
		{"notes.doc", false},
		{"notes.exe", false},
		{"notes", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.filename); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDocument_TXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.txt")
	if err := os.WriteFile(path, []byte("  Plain text document content.\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, err := Document(path, "upload.txt")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if content != "Plain text document content." {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestDocument_DOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.docx")
	writeTestDOCX(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	content, err := Document(path, "upload.docx")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := "First paragraph.\nSecond paragraph."
	if content != want {
		t.Errorf("content = %q, want %q", content, want)
	}
}

func TestDocument_DOCXWithoutDocumentPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()
	f.Close()

	if _, err := Document(path, "upload.docx"); err == nil {
		t.Fatal("expected error for docx without word/document.xml")
	}
}

func TestDocument_UnsupportedFormat(t *testing.T) {
	if _, err := Document("/tmp/whatever.bin", "whatever.bin"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestDocument_MissingFile(t *testing.T) {
	if _, err := Document(filepath.Join(t.TempDir(), "gone.txt"), "gone.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func writeTestDOCX(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}
