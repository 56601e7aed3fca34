package candidates

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"candidate-backend/internal/parser"
	"candidate-backend/internal/shared/storage/object"
)

// Profile is a candidate together with its document history.
type Profile struct {
	Candidate
	Documents          []ResumeDocument
	SubmittedDocuments []SubmittedDocument
	DocumentRequests   []DocumentRequest
}

// Service contains business logic for candidates.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// UploadResume saves the resume, parses it and records the candidate.
func (s *Service) UploadResume(ctx context.Context, fileName string, r io.Reader) (Candidate, error) {
	if fileName == "" {
		return Candidate{}, ErrInvalidInput
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf", ".doc", ".docx":
	default:
		return Candidate{}, ErrUnsupportedFile
	}

	// Parsing works off a filesystem path, so spool the upload to a temp
	// file first and stream that same file into the object store.
	tmpPath, cleanup, err := spoolTemp(ext, r)
	if err != nil {
		return Candidate{}, err
	}
	defer cleanup()

	rec := parser.ParseFile(tmpPath)

	f, err := os.Open(tmpPath)
	if err != nil {
		return Candidate{}, err
	}
	defer f.Close()

	candidateID := uuid.NewString()
	storageKey, size, mimeType, err := s.Store.Save(ctx, candidateID, fileName, f)
	if err != nil {
		return Candidate{}, err
	}

	now := time.Now().UTC()
	cand := Candidate{
		ID:               candidateID,
		Name:             rec.Name,
		Email:            rec.Email,
		Phone:            rec.Phone,
		Company:          rec.Company,
		Designation:      rec.Designation,
		Location:         rec.Location,
		Experience:       rec.Experience,
		Degree:           rec.Degree,
		University:       rec.University,
		ExtractionStatus: StatusProcessing,
		ResumeFilename:   fileName,
		CreatedAt:        now,
		Skills:           rec.Skills,
		Confidence:       rec.Confidence,
	}
	doc := ResumeDocument{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		FileName:    fileName,
		MimeType:    mimeType,
		SizeBytes:   size,
		StorageKey:  storageKey,
		CreatedAt:   now,
	}

	if err := s.Repo.Create(ctx, cand, doc); err != nil {
		return Candidate{}, err
	}
	return cand, nil
}

// List returns all candidates newest-first.
func (s *Service) List(ctx context.Context) ([]Candidate, error) {
	return s.Repo.List(ctx)
}

// Get returns the full profile for a candidate.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	if id == "" {
		return Profile{}, ErrInvalidInput
	}
	cand, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	docs, err := s.Repo.ListResumeDocuments(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	submitted, err := s.Repo.ListSubmittedDocuments(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	requests, err := s.Repo.ListDocumentRequests(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Candidate: cand, Documents: docs, SubmittedDocuments: submitted, DocumentRequests: requests}, nil
}

func spoolTemp(ext string, r io.Reader) (string, func(), error) {
	f, err := os.CreateTemp("", "resume-*"+ext)
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
