// Package verify matches identity documents (PAN and Aadhaar cards) against
// a candidate's declared name: OCR the document, extract the printed name,
// normalize, and fuzzy-match against the reference.
package verify

import (
	"context"
	"fmt"
	"strings"

	"candidate-backend/internal/shared/telemetry"
)

// Status is the terminal outcome of one verification call.
type Status string

const (
	StatusPass   Status = "Pass"
	StatusFailed Status = "Verification Failed"
)

// DefaultThreshold is the minimum similarity for a Pass when the caller does
// not supply one.
const DefaultThreshold = 0.7

// Result is the verdict of a single verification call. It is created fresh
// per call and never mutated.
type Result struct {
	Status          Status
	Verified        bool
	ExtractedName   string
	SimilarityScore *float64
	Reason          string
}

// TextExtractor produces OCR text for a document on disk. *ocr.Engine
// satisfies it.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// Verifier runs the verification pipeline. Stateless across calls; safe for
// concurrent use.
type Verifier struct {
	ocr TextExtractor
}

// NewVerifier constructs a Verifier over the given OCR engine.
func NewVerifier(engine TextExtractor) *Verifier {
	return &Verifier{ocr: engine}
}

// VerifyDocument OCRs the document at path, extracts a name according to the
// document type, and matches it against referenceName. A threshold <= 0
// selects DefaultThreshold. The call never fails: OCR errors degrade to an
// explicit failed verdict.
func (v *Verifier) VerifyDocument(ctx context.Context, path, documentType, referenceName string, threshold float64) Result {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	text, err := v.ocr.ExtractText(ctx, path)
	if err != nil {
		telemetry.Error("verify.ocr_failed", map[string]any{
			"document_type": documentType,
			"error":         err.Error(),
		})
		text = ""
	}

	if len(strings.TrimSpace(text)) < 10 {
		return failed("Unable to extract text from document", "", 0.0)
	}

	extractedName := extractNameByType(text, documentType)
	if extractedName == "" {
		return failed("Unable to extract name from document", "", 0.0)
	}

	similarity := NameSimilarity(referenceName, extractedName)

	if similarity >= threshold {
		return Result{
			Status:          StatusPass,
			Verified:        true,
			ExtractedName:   extractedName,
			SimilarityScore: &similarity,
			Reason:          fmt.Sprintf("Name match: %.2f%%", similarity*100),
		}
	}
	return failed(fmt.Sprintf("Name mismatch (similarity: %.2f%%)", similarity*100), extractedName, similarity)
}

func extractNameByType(text, documentType string) string {
	lower := strings.ToLower(documentType)
	switch {
	case strings.Contains(lower, "aadhaar"):
		return ExtractAadhaarName(text)
	case strings.Contains(lower, "pan"):
		return ExtractPANName(text)
	default:
		return ""
	}
}

func failed(reason, extractedName string, similarity float64) Result {
	return Result{
		Status:          StatusFailed,
		ExtractedName:   extractedName,
		SimilarityScore: &similarity,
		Reason:          reason,
	}
}
