package verify

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubOCR struct {
	text string
	err  error
}

func (s stubOCR) ExtractText(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

const aadhaarText = `Government of India
Ramesh Kumar
1234 5678 9012
DOB: 01/01/1990`

func TestVerifyDocumentPass(t *testing.T) {
	v := NewVerifier(stubOCR{text: aadhaarText})

	res := v.VerifyDocument(context.Background(), "aadhaar.png", "Aadhaar Card", "Ramesh Kumar", 0)
	if res.Status != StatusPass || !res.Verified {
		t.Fatalf("expected pass, got %+v", res)
	}
	if res.ExtractedName != "Ramesh Kumar" {
		t.Fatalf("ExtractedName: got %q", res.ExtractedName)
	}
	if res.SimilarityScore == nil || *res.SimilarityScore != 1.0 {
		t.Fatalf("SimilarityScore: got %v", res.SimilarityScore)
	}
	if !strings.Contains(res.Reason, "100.00%") {
		t.Fatalf("reason should carry the similarity percentage: %q", res.Reason)
	}
}

func TestVerifyDocumentCaseInsensitiveMatch(t *testing.T) {
	text := strings.ReplaceAll(aadhaarText, "Ramesh Kumar", "RAMESH KUMAR")
	v := NewVerifier(stubOCR{text: text})

	res := v.VerifyDocument(context.Background(), "aadhaar.png", "Aadhaar Card", "Ramesh Kumar", 0)
	if res.Status != StatusPass {
		t.Fatalf("expected pass for case-only difference, got %+v", res)
	}
	if *res.SimilarityScore != 1.0 {
		t.Fatalf("SimilarityScore: got %v", *res.SimilarityScore)
	}
}

func TestVerifyDocumentNameMismatch(t *testing.T) {
	v := NewVerifier(stubOCR{text: aadhaarText})

	res := v.VerifyDocument(context.Background(), "aadhaar.png", "Aadhaar Card", "Jane Doe", 0)
	if res.Status != StatusFailed || res.Verified {
		t.Fatalf("expected failure, got %+v", res)
	}
	if !strings.Contains(res.Reason, "%") {
		t.Fatalf("reason should name the similarity percentage: %q", res.Reason)
	}
	if res.SimilarityScore == nil || *res.SimilarityScore >= DefaultThreshold {
		t.Fatalf("SimilarityScore: got %v", res.SimilarityScore)
	}
}

func TestVerifyDocumentShortTextFails(t *testing.T) {
	v := NewVerifier(stubOCR{text: "abc"})

	for _, docType := range []string{"Aadhaar Card", "PAN Card"} {
		res := v.VerifyDocument(context.Background(), "doc.png", docType, "Ramesh Kumar", 0)
		if res.Status != StatusFailed {
			t.Fatalf("%s: expected failure, got %+v", docType, res)
		}
		if res.Reason != "Unable to extract text from document" {
			t.Fatalf("%s: reason %q", docType, res.Reason)
		}
	}
}

func TestVerifyDocumentOCRErrorDegrades(t *testing.T) {
	v := NewVerifier(stubOCR{err: errors.New("tesseract missing")})

	res := v.VerifyDocument(context.Background(), "doc.png", "PAN Card", "Ramesh Kumar", 0)
	if res.Status != StatusFailed {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res.Reason != "Unable to extract text from document" {
		t.Fatalf("reason: %q", res.Reason)
	}
}

func TestVerifyDocumentNoNameFound(t *testing.T) {
	v := NewVerifier(stubOCR{text: "1111 2222 3333 4444 5555 6666"})

	res := v.VerifyDocument(context.Background(), "doc.png", "Aadhaar Card", "Ramesh Kumar", 0)
	if res.Status != StatusFailed {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res.Reason != "Unable to extract name from document" {
		t.Fatalf("reason: %q", res.Reason)
	}
}

func TestVerifyDocumentCustomThreshold(t *testing.T) {
	v := NewVerifier(stubOCR{text: aadhaarText})

	// "Ramesh Xumar" vs "Ramesh Kumar": one word matches exactly, so the
	// word-overlap score is 0.5 and the sequence score higher.
	strict := v.VerifyDocument(context.Background(), "a.png", "Aadhaar Card", "Ramesh Xumar", 0.99)
	if strict.Status != StatusFailed {
		t.Fatalf("expected failure at 0.99 threshold, got %+v", strict)
	}
	loose := v.VerifyDocument(context.Background(), "a.png", "Aadhaar Card", "Ramesh Xumar", 0.5)
	if loose.Status != StatusPass {
		t.Fatalf("expected pass at 0.5 threshold, got %+v", loose)
	}
}
