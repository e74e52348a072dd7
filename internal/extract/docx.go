package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// fromDOCX reads the main document part of a .docx archive and joins the
// text runs, one line per paragraph.
func fromDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("DOCX extraction error: %w", err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return "", fmt.Errorf("DOCX extraction error: %w", err)
			}
			defer rc.Close()

			text, err := documentText(rc)
			if err != nil {
				return "", fmt.Errorf("DOCX extraction error: %w", err)
			}
			return strings.TrimSpace(text), nil
		}
	}

	return "", fmt.Errorf("DOCX extraction error: word/document.xml not found")
}

// documentText walks the WordprocessingML token stream, collecting the text
// of <w:t> runs and ending each <w:p> paragraph with a newline.
func documentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inTextRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inTextRun = false
			}
			if t.Name.Local == "p" {
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
