package candidates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu         sync.RWMutex
	candidates map[string]Candidate
	documents  map[string][]ResumeDocument
	submitted  map[string][]SubmittedDocument
	requests   map[string][]DocumentRequest
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		candidates: make(map[string]Candidate),
		documents:  make(map[string][]ResumeDocument),
		submitted:  make(map[string][]SubmittedDocument),
		requests:   make(map[string][]DocumentRequest),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, cand Candidate, doc ResumeDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates[cand.ID] = cand
	r.documents[cand.ID] = append(r.documents[cand.ID], doc)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cand, ok := r.candidates[id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return cand, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Candidate, 0, len(r.candidates))
	for _, cand := range r.candidates {
		out = append(out, cand)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) SetStatus(ctx context.Context, id, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cand, ok := r.candidates[id]
	if !ok {
		return ErrNotFound
	}
	cand.ExtractionStatus = status
	r.candidates[id] = cand
	return nil
}

func (r *MemoryRepo) ListResumeDocuments(ctx context.Context, candidateID string) ([]ResumeDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ResumeDocument(nil), r.documents[candidateID]...), nil
}

func (r *MemoryRepo) ListSubmittedDocuments(ctx context.Context, candidateID string) ([]SubmittedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]SubmittedDocument(nil), r.submitted[candidateID]...), nil
}

func (r *MemoryRepo) ListDocumentRequests(ctx context.Context, candidateID string) ([]DocumentRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]DocumentRequest(nil), r.requests[candidateID]...), nil
}

func (r *MemoryRepo) AddDocumentRequest(ctx context.Context, req DocumentRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[req.CandidateID]; !ok {
		return ErrNotFound
	}
	r.requests[req.CandidateID] = append(r.requests[req.CandidateID], req)
	return nil
}

func (r *MemoryRepo) AddSubmittedDocument(ctx context.Context, doc SubmittedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[doc.CandidateID]; !ok {
		return ErrNotFound
	}
	r.submitted[doc.CandidateID] = append(r.submitted[doc.CandidateID], doc)
	return nil
}

func (r *MemoryRepo) IncrementUploadAttempts(ctx context.Context, candidateID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cand, ok := r.candidates[candidateID]
	if !ok {
		return 0, ErrNotFound
	}
	cand.UploadAttempts++
	r.candidates[candidateID] = cand
	return cand.UploadAttempts, nil
}

func (r *MemoryRepo) FinishSubmission(ctx context.Context, candidateID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cand, ok := r.candidates[candidateID]
	if !ok {
		return ErrNotFound
	}
	cand.ExtractionStatus = status
	cand.DocumentsSubmitted = true
	r.candidates[candidateID] = cand
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
