package candidates

import "time"

// Extraction status values a candidate moves through.
const (
	StatusProcessing         = "Processing"
	StatusPending            = "Pending"
	StatusCompleted          = "Completed"
	StatusVerificationFailed = "Verification Failed"
)

// Candidate is a parsed resume profile.
type Candidate struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	Company            string
	Designation        string
	Location           string
	Experience         string
	Degree             string
	University         string
	ExtractionStatus   string
	ResumeFilename     string
	UploadAttempts     int
	DocumentsSubmitted bool
	CreatedAt          time.Time

	Skills     []string
	Confidence map[string]float64
}

// ResumeDocument records the stored resume file for a candidate.
type ResumeDocument struct {
	ID          string
	CandidateID string
	FileName    string
	MimeType    string
	SizeBytes   int64
	StorageKey  string
	CreatedAt   time.Time
}

// SubmittedDocument records an identity document submitted for verification.
type SubmittedDocument struct {
	ID                 string
	CandidateID        string
	DocumentType       string
	FileName           string
	SizeBytes          int64
	StorageKey         string
	VerificationStatus string
	ExtractedName      string
	SimilarityScore    *float64
	VerificationReason string
	CreatedAt          time.Time
}

// DocumentRequest records an outbound document request email.
type DocumentRequest struct {
	ID          string
	CandidateID string
	Status      string
	EmailBody   string
	CreatedAt   time.Time
}
