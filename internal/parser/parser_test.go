package parser

import (
	"path/filepath"
	"reflect"
	"testing"
)

const sampleResume = `John Smith
Software Engineer
john.smith@gmail.com
+1 555 123 4567
San Francisco, CA
Experienced professional with 5 years of experience in backend development.

WORK EXPERIENCE
Acme Corporation
Senior Software Engineer
2019 - Present
Built services in Python with Docker and AWS.

EDUCATION
Bachelor of Science in Computer Science
Stanford University

SKILLS
Python, JavaScript, React, SQL
`

var confidenceKeys = []string{
	"fullName", "email", "phone", "company", "position",
	"location", "experience", "skills", "degree", "university",
}

func TestParseSampleResume(t *testing.T) {
	rec := Parse(sampleResume)

	if rec.Name != "John Smith" {
		t.Errorf("Name: got %q", rec.Name)
	}
	if rec.Email != "john.smith@gmail.com" {
		t.Errorf("Email: got %q", rec.Email)
	}
	if rec.Phone != "+1 555 123 4567" {
		t.Errorf("Phone: got %q", rec.Phone)
	}
	if rec.Experience != "5 years" {
		t.Errorf("Experience: got %q", rec.Experience)
	}
	if rec.Company != "Acme Corporation" {
		t.Errorf("Company: got %q", rec.Company)
	}
	if rec.Designation != "Senior Software Engineer" {
		t.Errorf("Designation: got %q", rec.Designation)
	}
	if rec.Location != "San Francisco, CA" {
		t.Errorf("Location: got %q", rec.Location)
	}
	if rec.Degree != "Bachelor of Science in Computer Science" {
		t.Errorf("Degree: got %q", rec.Degree)
	}
	if rec.University != "Stanford University" {
		t.Errorf("University: got %q", rec.University)
	}
}

func TestParseConfidenceHasExactlyTenKeys(t *testing.T) {
	for _, text := range []string{sampleResume, "", "random noise without any structure"} {
		rec := Parse(text)
		if len(rec.Confidence) != len(confidenceKeys) {
			t.Fatalf("expected %d confidence keys, got %d", len(confidenceKeys), len(rec.Confidence))
		}
		for _, key := range confidenceKeys {
			score, ok := rec.Confidence[key]
			if !ok {
				t.Fatalf("missing confidence key %q", key)
			}
			if score < 0 || score > 1 {
				t.Fatalf("confidence %q=%v out of [0,1]", key, score)
			}
		}
	}
}

func TestParseSampleResumeConfidences(t *testing.T) {
	rec := Parse(sampleResume)

	want := map[string]float64{
		"fullName":   1.0,  // valid name
		"email":      1.0,  // gmail.com domain
		"phone":      1.0,  // "+" with 11 digits
		"company":    0.75,
		"position":   0.80,
		"location":   0.70,
		"experience": 0.75,
		"skills":     1.0,
		"degree":     1.0, // Bachelor keyword
		"university": 0.85,
	}
	if !reflect.DeepEqual(rec.Confidence, want) {
		t.Fatalf("confidence mismatch:\n got %v\nwant %v", rec.Confidence, want)
	}
}

func TestParseEmptyTextFullyDegrades(t *testing.T) {
	rec := Parse("")

	if rec.Name != UnknownName {
		t.Errorf("Name: got %q, want sentinel", rec.Name)
	}
	if rec.Email != "" || rec.Phone != "" || rec.Company != "" {
		t.Errorf("expected empty optional fields, got %+v", rec)
	}
	if len(rec.Skills) != 0 {
		t.Errorf("Skills: got %v", rec.Skills)
	}
	for key, score := range rec.Confidence {
		if score != 0.0 {
			t.Errorf("confidence %q: got %v, want 0", key, score)
		}
	}
}

func TestParseFileUnreadableDegrades(t *testing.T) {
	rec := ParseFile(filepath.Join(t.TempDir(), "nope.pdf"))
	if rec.Name != UnknownName {
		t.Fatalf("Name: got %q", rec.Name)
	}
	for key, score := range rec.Confidence {
		if score != 0.0 {
			t.Fatalf("confidence %q: got %v, want 0", key, score)
		}
	}
}

func TestParseIsIdempotent(t *testing.T) {
	a := Parse(sampleResume)
	b := Parse(sampleResume)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Parse is not a pure function of its input")
	}
}
