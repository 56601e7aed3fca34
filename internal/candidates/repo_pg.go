package candidates

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a candidate with its skills, confidence scores and resume
// document in a single transaction.
func (r *PGRepo) Create(ctx context.Context, cand Candidate, doc ResumeDocument) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertCandidate = `
INSERT INTO candidates (
    id, name, email, phone, company, designation, location, experience,
    degree, university, extraction_status, resume_filename, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	if _, err := tx.ExecContext(
		ctx,
		insertCandidate,
		cand.ID,
		cand.Name,
		nullable(cand.Email),
		nullable(cand.Phone),
		nullable(cand.Company),
		nullable(cand.Designation),
		nullable(cand.Location),
		nullable(cand.Experience),
		nullable(cand.Degree),
		nullable(cand.University),
		cand.ExtractionStatus,
		cand.ResumeFilename,
		cand.CreatedAt,
	); err != nil {
		return err
	}

	const insertSkill = `INSERT INTO candidate_skills (candidate_id, skill) VALUES ($1, $2)`
	for _, skill := range cand.Skills {
		if _, err := tx.ExecContext(ctx, insertSkill, cand.ID, skill); err != nil {
			return err
		}
	}

	const insertConfidence = `INSERT INTO confidence_scores (candidate_id, field_name, confidence) VALUES ($1, $2, $3)`
	for field, score := range cand.Confidence {
		if _, err := tx.ExecContext(ctx, insertConfidence, cand.ID, field, score); err != nil {
			return err
		}
	}

	const insertDocument = `
INSERT INTO documents (id, candidate_id, document_name, mime_type, size_bytes, storage_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(
		ctx,
		insertDocument,
		doc.ID,
		doc.CandidateID,
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		doc.StorageKey,
		doc.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID returns the candidate together with its skills and confidence scores.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Candidate, error) {
	const query = `
SELECT id, name, email, phone, company, designation, location, experience,
       degree, university, extraction_status, resume_filename, upload_attempts,
       documents_submitted, created_at
FROM candidates
WHERE id = $1`

	cand, err := scanCandidate(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}

	const skillsQuery = `SELECT skill FROM candidate_skills WHERE candidate_id = $1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, skillsQuery, id)
	if err != nil {
		return Candidate{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return Candidate{}, err
		}
		cand.Skills = append(cand.Skills, skill)
	}
	if err := rows.Err(); err != nil {
		return Candidate{}, err
	}

	const confidenceQuery = `SELECT field_name, confidence FROM confidence_scores WHERE candidate_id = $1`
	confRows, err := r.DB.QueryContext(ctx, confidenceQuery, id)
	if err != nil {
		return Candidate{}, err
	}
	defer confRows.Close()
	cand.Confidence = make(map[string]float64)
	for confRows.Next() {
		var field string
		var score float64
		if err := confRows.Scan(&field, &score); err != nil {
			return Candidate{}, err
		}
		cand.Confidence[field] = score
	}
	return cand, confRows.Err()
}

// List returns all candidates ordered newest-first, without skills or scores.
func (r *PGRepo) List(ctx context.Context) ([]Candidate, error) {
	const query = `
SELECT id, name, email, phone, company, designation, location, experience,
       degree, university, extraction_status, resume_filename, upload_attempts,
       documents_submitted, created_at
FROM candidates
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cand)
	}
	return out, rows.Err()
}

// SetStatus updates the extraction status.
func (r *PGRepo) SetStatus(ctx context.Context, id, status string) error {
	const query = `UPDATE candidates SET extraction_status = $1 WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListResumeDocuments returns resume documents for a candidate.
func (r *PGRepo) ListResumeDocuments(ctx context.Context, candidateID string) ([]ResumeDocument, error) {
	const query = `
SELECT id, candidate_id, document_name, mime_type, size_bytes, storage_key, created_at
FROM documents
WHERE candidate_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResumeDocument
	for rows.Next() {
		var doc ResumeDocument
		var mimeType, storageKey sql.NullString
		if err := rows.Scan(
			&doc.ID,
			&doc.CandidateID,
			&doc.FileName,
			&mimeType,
			&doc.SizeBytes,
			&storageKey,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		doc.MimeType = mimeType.String
		doc.StorageKey = storageKey.String
		out = append(out, doc)
	}
	return out, rows.Err()
}

// ListSubmittedDocuments returns identity documents submitted for verification.
func (r *PGRepo) ListSubmittedDocuments(ctx context.Context, candidateID string) ([]SubmittedDocument, error) {
	const query = `
SELECT id, candidate_id, document_type, file_name, size_bytes, storage_key,
       verification_status, extracted_name, similarity_score, verification_reason, created_at
FROM submitted_documents
WHERE candidate_id = $1
ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SubmittedDocument
	for rows.Next() {
		var doc SubmittedDocument
		var storageKey, extractedName, reason sql.NullString
		var score sql.NullFloat64
		if err := rows.Scan(
			&doc.ID,
			&doc.CandidateID,
			&doc.DocumentType,
			&doc.FileName,
			&doc.SizeBytes,
			&storageKey,
			&doc.VerificationStatus,
			&extractedName,
			&score,
			&reason,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		doc.StorageKey = storageKey.String
		doc.ExtractedName = extractedName.String
		doc.VerificationReason = reason.String
		if score.Valid {
			v := score.Float64
			doc.SimilarityScore = &v
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// ListDocumentRequests returns request emails logged for a candidate.
func (r *PGRepo) ListDocumentRequests(ctx context.Context, candidateID string) ([]DocumentRequest, error) {
	const query = `
SELECT id, candidate_id, status, email_body, created_at
FROM document_requests
WHERE candidate_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DocumentRequest
	for rows.Next() {
		var req DocumentRequest
		var body sql.NullString
		if err := rows.Scan(&req.ID, &req.CandidateID, &req.Status, &body, &req.CreatedAt); err != nil {
			return nil, err
		}
		req.EmailBody = body.String
		out = append(out, req)
	}
	return out, rows.Err()
}

// AddDocumentRequest logs a sent document request.
func (r *PGRepo) AddDocumentRequest(ctx context.Context, req DocumentRequest) error {
	const query = `
INSERT INTO document_requests (id, candidate_id, status, email_body, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, req.ID, req.CandidateID, req.Status, nullable(req.EmailBody), req.CreatedAt)
	return err
}

// AddSubmittedDocument records a submitted identity document and its verdict.
func (r *PGRepo) AddSubmittedDocument(ctx context.Context, doc SubmittedDocument) error {
	const query = `
INSERT INTO submitted_documents (
    id, candidate_id, document_type, file_name, size_bytes, storage_key,
    verification_status, extracted_name, similarity_score, verification_reason, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var score sql.NullFloat64
	if doc.SimilarityScore != nil {
		score = sql.NullFloat64{Float64: *doc.SimilarityScore, Valid: true}
	}
	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.CandidateID,
		doc.DocumentType,
		doc.FileName,
		doc.SizeBytes,
		nullable(doc.StorageKey),
		doc.VerificationStatus,
		nullable(doc.ExtractedName),
		score,
		nullable(doc.VerificationReason),
		doc.CreatedAt,
	)
	return err
}

// IncrementUploadAttempts bumps the attempt counter and returns the new value.
func (r *PGRepo) IncrementUploadAttempts(ctx context.Context, candidateID string) (int, error) {
	const query = `
UPDATE candidates
SET upload_attempts = upload_attempts + 1
WHERE id = $1
RETURNING upload_attempts`
	var attempts int
	err := r.DB.QueryRowContext(ctx, query, candidateID).Scan(&attempts)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return attempts, err
}

// FinishSubmission marks documents submitted and sets the final status.
func (r *PGRepo) FinishSubmission(ctx context.Context, candidateID, status string) error {
	const query = `
UPDATE candidates
SET extraction_status = $1, documents_submitted = TRUE
WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, status, candidateID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var cand Candidate
	var email, phone, company, designation, location, experience, degree, university, resumeFilename sql.NullString
	err := row.Scan(
		&cand.ID,
		&cand.Name,
		&email,
		&phone,
		&company,
		&designation,
		&location,
		&experience,
		&degree,
		&university,
		&cand.ExtractionStatus,
		&resumeFilename,
		&cand.UploadAttempts,
		&cand.DocumentsSubmitted,
		&cand.CreatedAt,
	)
	if err != nil {
		return Candidate{}, err
	}
	cand.Email = email.String
	cand.Phone = phone.String
	cand.Company = company.String
	cand.Designation = designation.String
	cand.Location = location.String
	cand.Experience = experience.String
	cand.Degree = degree.String
	cand.University = university.String
	cand.ResumeFilename = resumeFilename.String
	return cand, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
