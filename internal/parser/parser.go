// Package parser extracts structured candidate fields from résumé text using
// deterministic heuristics: field-specific regular expressions, keyword
// proximity, and line-position rules. Every extractor is a pure function of
// the text; no statistical models are involved.
package parser

import (
	"candidate-backend/internal/extract"
)

// UnknownName is the sentinel value when no name pattern matches.
const UnknownName = "Unknown"

// Record is the result of parsing one résumé. Optional fields are empty
// strings when nothing matched; Name falls back to UnknownName.
type Record struct {
	Name        string
	Email       string
	Phone       string
	Skills      []string
	Experience  string
	Degree      string
	University  string
	Company     string
	Designation string
	Location    string

	// Confidence maps each extracted field to a score in [0,1]. It always
	// carries exactly the ten field keys, absent fields scoring 0.
	Confidence map[string]float64
}

// ParseFile reads and parses a résumé file. It never fails: an unreadable or
// unsupported file yields a fully degraded record with zero confidences.
func ParseFile(path string) Record {
	return Parse(extract.TextFromFile(path))
}

// Parse runs all field extractors over the text and scores each result.
func Parse(text string) Record {
	lines := splitLines(text)

	degree, university := extractEducation(lines)
	rec := Record{
		Name:        extractName(lines),
		Email:       extractEmail(text),
		Phone:       extractPhone(text),
		Skills:      extractSkills(text),
		Experience:  extractExperience(text),
		Degree:      degree,
		University:  university,
		Company:     extractCompany(lines),
		Designation: extractDesignation(lines, text),
		Location:    extractLocation(text),
	}

	rec.Confidence = map[string]float64{
		"fullName":   nameConfidence(rec.Name),
		"email":      emailConfidence(rec.Email),
		"phone":      phoneConfidence(rec.Phone),
		"company":    presenceConfidence(rec.Company, 0.75),
		"position":   presenceConfidence(rec.Designation, 0.80),
		"location":   presenceConfidence(rec.Location, 0.70),
		"experience": presenceConfidence(rec.Experience, 0.75),
		"skills":     skillsConfidence(rec.Skills),
		"degree":     degreeConfidence(rec.Degree),
		"university": presenceConfidence(rec.University, 0.85),
	}
	return rec
}
