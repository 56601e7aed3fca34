package parser

import (
	"strings"
	"testing"
)

const experienceBlock = `Summary line

Professional Experience:
Globex Industries
Data Engineer
2021 - Present
• built pipelines

Education
MCA
Delhi University
`

func TestExperienceSectionBoundaries(t *testing.T) {
	section, ok := experienceSection(splitLines(experienceBlock))
	if !ok {
		t.Fatal("expected experience section")
	}
	joined := strings.Join(section, "\n")
	if !strings.Contains(joined, "Globex Industries") {
		t.Fatalf("section missing company: %q", joined)
	}
	if strings.Contains(joined, "Delhi University") {
		t.Fatalf("section leaked past Education heading: %q", joined)
	}
}

func TestExtractCompanyRequiresDesignationAndDateLines(t *testing.T) {
	if got := extractCompany(splitLines(experienceBlock)); got != "Globex Industries" {
		t.Fatalf("got %q", got)
	}

	// Company line without a trailing date line does not qualify.
	noDate := "WORK EXPERIENCE\nGlobex Industries\nData Engineer\nsomething else\n"
	if got := extractCompany(splitLines(noDate)); got != "" {
		t.Fatalf("expected no company, got %q", got)
	}
}

func TestExtractCompanyNoSectionReturnsEmpty(t *testing.T) {
	text := "Globex Industries\nData Engineer\n2021 - Present\n"
	if got := extractCompany(splitLines(text)); got != "" {
		t.Fatalf("company must not fall back to full text, got %q", got)
	}
}

func TestExtractDesignationFallsBackToFullText(t *testing.T) {
	text := "Jane Doe\nSenior Data Analyst\njane@corp.io\n"
	if got := extractDesignation(splitLines(text), text); got != "Senior Data Analyst" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractDesignationSkipsLongAndEmailLines(t *testing.T) {
	long := "Engineer " + strings.Repeat("x", 100)
	text := long + "\nengineer@corp.io\nLead Developer\n"
	if got := extractDesignation(splitLines(text), text); got != "Lead Developer" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractEducation(t *testing.T) {
	text := "intro\nMaster of Technology\nIIT Bombay\nAnna University Chennai\n"
	degree, university := extractEducation(splitLines(text))
	if degree != "Master of Technology" {
		t.Fatalf("degree: got %q", degree)
	}
	if university != "Anna University Chennai" {
		t.Fatalf("university: got %q", university)
	}
}

func TestExtractEducationUniversityWindowIsThreeLines(t *testing.T) {
	text := "B.Tech in CS\nline\nline\nline\nFar University\n"
	degree, university := extractEducation(splitLines(text))
	if degree != "B.Tech in CS" {
		t.Fatalf("degree: got %q", degree)
	}
	if university != "" {
		t.Fatalf("university outside window should be ignored, got %q", university)
	}
}
