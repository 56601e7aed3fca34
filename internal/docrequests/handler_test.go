package docrequests_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"candidate-backend/internal/bootstrap"
	"candidate-backend/internal/shared/config"
)

func testApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		LocalStoreDir:   t.TempDir(),
		PublicBaseURL:   "http://localhost:8080",
		VerifyDocuments: false,
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func docxBytes(t *testing.T, paragraphs []string) []byte {
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

func createCandidate(t *testing.T, router http.Handler) string {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("resume", "resume.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(docxBytes(t, []string{"John Smith", "john@gmail.com"})); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/candidates/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("upload failed: %d %s", resp.Code, resp.Body.String())
	}

	var created struct {
		CandidateID string `json:"candidateId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	return created.CandidateID
}

func submitDocuments(t *testing.T, router http.Handler, candidateID string, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, name := range files {
		fw, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("image-bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/candidates/"+candidateID+"/submit-documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRequestDocumentsWithoutMailerReportsFailure(t *testing.T) {
	app := testApp(t)
	candidateID := createCandidate(t, app.Router)

	req := httptest.NewRequest(http.MethodPost, "/api/candidates/"+candidateID+"/request-documents", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var result struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		EmailBody string `json:"emailBody"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Success {
		t.Fatalf("expected failure without SMTP credentials")
	}
	if !strings.Contains(result.EmailBody, "upload-documents/"+candidateID) {
		t.Fatalf("email body missing upload link: %q", result.EmailBody)
	}
}

func TestRequestDocumentsUnknownCandidate(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/candidates/nope/request-documents", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSubmitAndListDocuments(t *testing.T) {
	app := testApp(t)
	candidateID := createCandidate(t, app.Router)

	resp := submitDocuments(t, app.Router, candidateID, map[string]string{
		"doc1": "pan_card.png",
		"doc2": "aadhaar_card.jpg",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var result struct {
		OverallStatus       string `json:"overallStatus"`
		SubmissionCompleted bool   `json:"submissionCompleted"`
		Documents           []struct {
			Type               string `json:"type"`
			VerificationStatus string `json:"verificationStatus"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.OverallStatus != "Completed" || !result.SubmissionCompleted {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(result.Documents))
	}

	// Second submission is rejected.
	resp = submitDocuments(t, app.Router, candidateID, map[string]string{"doc1": "pan.png"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for resubmission, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "already") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}

	// Debug listing shows resume plus submitted identity documents.
	req := httptest.NewRequest(http.MethodGet, "/api/candidates/"+candidateID+"/documents", nil)
	respDocs := httptest.NewRecorder()
	app.Router.ServeHTTP(respDocs, req)
	if respDocs.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respDocs.Code)
	}
	var listing struct {
		TotalCount         int `json:"totalCount"`
		ResumeDocuments    []struct{}
		SubmittedDocuments []struct{}
	}
	if err := json.NewDecoder(respDocs.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if listing.TotalCount != 3 {
		t.Fatalf("expected 3 documents total, got %d", listing.TotalCount)
	}
}

func TestSubmitDocumentsInvalidTypeBurnsAttempts(t *testing.T) {
	app := testApp(t)
	candidateID := createCandidate(t, app.Router)

	for i := 1; i <= 3; i++ {
		resp := submitDocuments(t, app.Router, candidateID, map[string]string{"doc1": "pan.pdf"})
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("attempt %d: expected 400, got %d", i, resp.Code)
		}
		var errResp struct {
			Error struct {
				Details struct {
					UploadAttempts     int  `json:"uploadAttempts"`
					RemainingAttempts  int  `json:"remainingAttempts"`
					MaxAttemptsReached bool `json:"maxAttemptsReached"`
				} `json:"details"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			t.Fatalf("decode error response: %v", err)
		}
		if errResp.Error.Details.UploadAttempts != i {
			t.Fatalf("attempt %d: unexpected count %d", i, errResp.Error.Details.UploadAttempts)
		}
		if (i == 3) != errResp.Error.Details.MaxAttemptsReached {
			t.Fatalf("attempt %d: maxAttemptsReached=%v", i, errResp.Error.Details.MaxAttemptsReached)
		}
	}

	// Attempts exhausted; further submissions are locked out.
	resp := submitDocuments(t, app.Router, candidateID, map[string]string{"doc1": "pan.png"})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 after lockout, got %d", resp.Code)
	}
}
