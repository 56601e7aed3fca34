package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(doc.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestFromDOCXJoinsParagraphsWithNewlines(t *testing.T) {
	data := buildDocx(t, []string{"John Smith", "Software Engineer", "john@gmail.com"})

	text, err := FromDOCX(data)
	if err != nil {
		t.Fatalf("FromDOCX: %v", err)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "John Smith" || lines[2] != "john@gmail.com" {
		t.Fatalf("unexpected content: %q", lines)
	}
}

func TestFromDOCXRejectsMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := FromDOCX(buf.Bytes()); err == nil {
		t.Fatal("expected error for zip without document.xml")
	}
}

func TestTextFromFileDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	if err := os.WriteFile(path, buildDocx(t, []string{"Jane Doe", "Data Analyst"}), 0o644); err != nil {
		t.Fatalf("write docx: %v", err)
	}

	text := TextFromFile(path)
	if !strings.Contains(text, "Jane Doe") || !strings.Contains(text, "Data Analyst") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if got := TextFromFile(path); got != "" {
		t.Fatalf("expected empty string for unsupported extension, got %q", got)
	}
}

func TestTextFromFileDegradesOnCorruptInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if got := TextFromFile(path); got != "" {
		t.Fatalf("expected empty string for corrupt pdf, got %q", got)
	}

	if got := TextFromFile(filepath.Join(t.TempDir(), "missing.pdf")); got != "" {
		t.Fatalf("expected empty string for missing file, got %q", got)
	}
}
