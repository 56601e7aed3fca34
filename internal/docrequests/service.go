package docrequests

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"candidate-backend/internal/candidates"
	"candidate-backend/internal/llm"
	"candidate-backend/internal/mailer"
	"candidate-backend/internal/shared/storage/object"
	"candidate-backend/internal/shared/telemetry"
	"candidate-backend/internal/verify"
)

// Document type labels used for submitted identity documents.
const (
	DocTypePAN     = "PAN Card"
	DocTypeAadhaar = "Aadhaar Card"
)

const maxUploadAttempts = 3

// DocumentVerifier matches identity documents against a reference name.
// *verify.Verifier satisfies it.
type DocumentVerifier interface {
	VerifyDocument(ctx context.Context, path, documentType, referenceName string, threshold float64) verify.Result
}

// Service drives the document request and submission flows.
type Service struct {
	Repo     candidates.Repo
	Store    object.ObjectStore
	LLM      llm.Client
	Mail     mailer.Sender
	Verifier DocumentVerifier

	PublicBaseURL   string
	VerifyDocuments bool
	MatchThreshold  float64
}

// RequestResult reports the outcome of a document request email.
type RequestResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailBody string `json:"emailBody"`
}

// RequestDocuments composes and sends a personalized document request email,
// logging the request and moving the candidate to Pending on success.
func (s *Service) RequestDocuments(ctx context.Context, candidateID string) (RequestResult, error) {
	cand, err := s.Repo.GetByID(ctx, candidateID)
	if err != nil {
		return RequestResult{}, err
	}

	uploadLink := s.PublicBaseURL + "/upload-documents/" + cand.ID
	input := llm.ComposeInput{
		Name:        cand.Name,
		Designation: cand.Designation,
		Company:     cand.Company,
		UploadLink:  uploadLink,
	}

	body := ""
	if s.LLM != nil {
		body, err = s.LLM.ComposeDocumentRequest(ctx, input)
		if err != nil {
			telemetry.Error("docrequest.compose_failed", map[string]any{
				"candidate_id": cand.ID,
				"error":        err.Error(),
			})
			body = ""
		}
	}
	if body == "" {
		body = fallbackEmail(input)
	}

	if cand.Email == "" {
		return RequestResult{Success: false, Message: "No email address found for candidate", EmailBody: body}, nil
	}
	if s.Mail == nil {
		return RequestResult{Success: false, Message: "Email credentials not configured", EmailBody: body}, nil
	}

	name := cand.Name
	if name == "" || name == "Unknown" {
		name = "Candidate"
	}
	subject := fmt.Sprintf("Document Request - %s", name)
	if err := s.Mail.Send(cand.Email, subject, body); err != nil {
		return RequestResult{Success: false, Message: "Failed to send email", EmailBody: body}, nil
	}

	req := candidates.DocumentRequest{
		ID:          uuid.NewString(),
		CandidateID: cand.ID,
		Status:      "sent",
		EmailBody:   body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.AddDocumentRequest(ctx, req); err != nil {
		return RequestResult{}, err
	}
	if err := s.Repo.SetStatus(ctx, cand.ID, candidates.StatusPending); err != nil {
		return RequestResult{}, err
	}
	return RequestResult{Success: true, Message: "Document request sent successfully", EmailBody: body}, nil
}

// Upload is a single file in a document submission.
type Upload struct {
	Field    string
	FileName string
	Content  io.Reader
}

// DocumentOutcome reports a single submitted document.
type DocumentOutcome struct {
	Type               string   `json:"type"`
	FileName           string   `json:"filename"`
	SizeBytes          int64    `json:"size"`
	VerificationStatus string   `json:"verificationStatus"`
	ExtractedName      string   `json:"extractedName"`
	SimilarityScore    *float64 `json:"similarityScore"`
	Reason             string   `json:"reason"`
}

// SubmitResult reports a whole submission attempt.
type SubmitResult struct {
	Documents          []DocumentOutcome
	Errors             []string
	UploadAttempts     int
	RemainingAttempts  int
	MaxAttemptsReached bool
	OverallStatus      string
	Completed          bool
}

// SubmitDocuments accepts uploaded identity documents, verifies them against
// the candidate's name and records the verdicts. Invalid submissions burn one
// of the candidate's upload attempts.
func (s *Service) SubmitDocuments(ctx context.Context, candidateID string, files []Upload) (SubmitResult, error) {
	if len(files) == 0 {
		return SubmitResult{}, ErrNoFiles
	}

	cand, err := s.Repo.GetByID(ctx, candidateID)
	if err != nil {
		return SubmitResult{}, err
	}
	if cand.DocumentsSubmitted {
		return SubmitResult{}, ErrAlreadySubmitted
	}
	if cand.UploadAttempts >= maxUploadAttempts {
		return SubmitResult{}, ErrMaxAttempts
	}

	var outcomes []DocumentOutcome
	var uploadErrors []string
	processed := make(map[string]bool)

	for i, f := range files {
		ext := strings.ToLower(filepath.Ext(f.FileName))
		switch ext {
		case ".png", ".jpg", ".jpeg":
		default:
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: Invalid file type. Allowed: PNG, JPEG", f.FileName))
			continue
		}

		docType := detectDocumentType(f.FileName)
		if docType == "" {
			docType = detectDocumentType(f.Field)
		}
		if docType == "" {
			// Assign by position when the filename gives no hint.
			switch {
			case !processed[DocTypePAN]:
				docType = DocTypePAN
			case !processed[DocTypeAadhaar]:
				docType = DocTypeAadhaar
			default:
				docType = fmt.Sprintf("Document %d", i+1)
			}
		}

		outcome, err := s.processDocument(ctx, cand, docType, f)
		if err != nil {
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: %v", f.FileName, err))
			continue
		}
		outcomes = append(outcomes, outcome)
		processed[docType] = true
	}

	if len(uploadErrors) > 0 || len(outcomes) == 0 {
		attempts, err := s.Repo.IncrementUploadAttempts(ctx, candidateID)
		if err != nil {
			return SubmitResult{}, err
		}
		remaining := maxUploadAttempts - attempts
		if remaining < 0 {
			remaining = 0
		}
		if len(uploadErrors) == 0 {
			uploadErrors = append(uploadErrors, "No valid documents uploaded")
		}
		return SubmitResult{
			Documents:          outcomes,
			Errors:             uploadErrors,
			UploadAttempts:     attempts,
			RemainingAttempts:  remaining,
			MaxAttemptsReached: attempts >= maxUploadAttempts,
		}, nil
	}

	overall := candidates.StatusCompleted
	for _, outcome := range outcomes {
		if outcome.VerificationStatus == string(verify.StatusFailed) {
			overall = candidates.StatusVerificationFailed
			break
		}
	}
	if err := s.Repo.FinishSubmission(ctx, candidateID, overall); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Documents: outcomes, OverallStatus: overall, Completed: true}, nil
}

func (s *Service) processDocument(ctx context.Context, cand candidates.Candidate, docType string, f Upload) (DocumentOutcome, error) {
	ext := strings.ToLower(filepath.Ext(f.FileName))
	tmpPath, cleanup, err := spoolTemp(ext, f.Content)
	if err != nil {
		return DocumentOutcome{}, err
	}
	defer cleanup()

	var res verify.Result
	switch {
	case !s.VerifyDocuments:
		res = verify.Result{
			Status:        verify.StatusPass,
			Verified:      true,
			ExtractedName: "Not verified",
			Reason:        "Document uploaded successfully (no validation)",
		}
	case docType == DocTypePAN || docType == DocTypeAadhaar:
		res = s.Verifier.VerifyDocument(ctx, tmpPath, docType, cand.Name, s.MatchThreshold)
	default:
		res = verify.Result{
			Status: "Uploaded",
			Reason: "No verification required",
		}
	}

	prefix := strings.ReplaceAll(strings.ToLower(docType), " ", "_")
	storedName := fmt.Sprintf("%s_%s_%s", prefix, cand.ID, f.FileName)

	file, err := os.Open(tmpPath)
	if err != nil {
		return DocumentOutcome{}, err
	}
	defer file.Close()

	storageKey, size, _, err := s.Store.Save(ctx, cand.ID, storedName, file)
	if err != nil {
		return DocumentOutcome{}, err
	}

	doc := candidates.SubmittedDocument{
		ID:                 uuid.NewString(),
		CandidateID:        cand.ID,
		DocumentType:       docType,
		FileName:           f.FileName,
		SizeBytes:          size,
		StorageKey:         storageKey,
		VerificationStatus: string(res.Status),
		ExtractedName:      res.ExtractedName,
		SimilarityScore:    res.SimilarityScore,
		VerificationReason: res.Reason,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.Repo.AddSubmittedDocument(ctx, doc); err != nil {
		return DocumentOutcome{}, err
	}

	return DocumentOutcome{
		Type:               docType,
		FileName:           f.FileName,
		SizeBytes:          size,
		VerificationStatus: string(res.Status),
		ExtractedName:      res.ExtractedName,
		SimilarityScore:    res.SimilarityScore,
		Reason:             res.Reason,
	}, nil
}

// Documents returns the resume and identity documents recorded for a candidate.
func (s *Service) Documents(ctx context.Context, candidateID string) ([]candidates.ResumeDocument, []candidates.SubmittedDocument, error) {
	if _, err := s.Repo.GetByID(ctx, candidateID); err != nil {
		return nil, nil, err
	}
	docs, err := s.Repo.ListResumeDocuments(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}
	submitted, err := s.Repo.ListSubmittedDocuments(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}
	return docs, submitted, nil
}

func detectDocumentType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "pan"):
		return DocTypePAN
	case strings.Contains(lower, "aadhaar"), strings.Contains(lower, "aadhar"):
		return DocTypeAadhaar
	}
	return ""
}

func fallbackEmail(input llm.ComposeInput) string {
	name := input.Name
	if name == "" || name == "Unknown" {
		name = "Candidate"
	}
	position := input.Designation
	if position == "" {
		position = "the position"
	}

	return fmt.Sprintf(`Dear %s,

Thank you for your interest in %s. To proceed with your application, we need to verify your identity documents.

Please upload the following documents within 7 days:
1. PAN Card (10 alphanumeric characters - clear photo or scanned copy)
2. Aadhaar Card (12 digits - both front and back)

UPLOAD YOUR DOCUMENTS HERE:
<a href="%s" style="color: blue; text-decoration: underline;">Upload documents</a>

Click the link above to access our secure upload portal. The system will automatically verify your documents.

Requirements:
- Clear, readable images (JPG, PNG)
- File size: Maximum 10MB per document
- Ensure all text is clearly visible

These documents are required for verification and onboarding purposes. All information will be kept confidential and secure.

If you have any questions, please don't hesitate to contact us.

Best regards,
HR Team`, name, position, input.UploadLink)
}

func spoolTemp(ext string, r io.Reader) (string, func(), error) {
	f, err := os.CreateTemp("", "document-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("spool upload: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
