package candidates

import "context"

// Repo defines persistence operations for candidates and their documents.
type Repo interface {
	Create(ctx context.Context, cand Candidate, doc ResumeDocument) error
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	SetStatus(ctx context.Context, id, status string) error

	ListResumeDocuments(ctx context.Context, candidateID string) ([]ResumeDocument, error)
	ListSubmittedDocuments(ctx context.Context, candidateID string) ([]SubmittedDocument, error)
	ListDocumentRequests(ctx context.Context, candidateID string) ([]DocumentRequest, error)

	AddDocumentRequest(ctx context.Context, req DocumentRequest) error
	AddSubmittedDocument(ctx context.Context, doc SubmittedDocument) error
	IncrementUploadAttempts(ctx context.Context, candidateID string) (int, error)
	FinishSubmission(ctx context.Context, candidateID, status string) error
}
