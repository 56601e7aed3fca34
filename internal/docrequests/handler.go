package docrequests

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"candidate-backend/internal/candidates"
	"candidate-backend/internal/shared/server/respond"
)

const maxSubmissionSize = 30 << 20 // 3 documents at 10MB each

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document request routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates/:id/request-documents", h.request)
	rg.POST("/candidates/:id/submit-documents", h.submit)
	rg.GET("/candidates/:id/documents", h.documents)
}

func (h *Handler) request(c *gin.Context) {
	result, err := h.Svc.RequestDocuments(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, candidates.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to request documents", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionSize)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No documents uploaded", nil)
		return
	}

	// Field order in a parsed form is not stable, so sort field names to keep
	// positional type assignment deterministic.
	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var uploads []Upload
	var opened []interface{ Close() error }
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, field := range fields {
		for _, header := range form.File[field] {
			if header.Filename == "" {
				continue
			}
			file, err := header.Open()
			if err != nil {
				respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
				return
			}
			opened = append(opened, file)
			uploads = append(uploads, Upload{Field: field, FileName: header.Filename, Content: file})
		}
	}

	result, err := h.Svc.SubmitDocuments(c.Request.Context(), c.Param("id"), uploads)
	if err != nil {
		switch {
		case errors.Is(err, candidates.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		case errors.Is(err, ErrNoFiles):
			respond.Error(c, http.StatusBadRequest, "validation_error", "No valid files provided", nil)
		case errors.Is(err, ErrAlreadySubmitted):
			respond.Error(c, http.StatusBadRequest, "already_submitted", "Documents already submitted", gin.H{"alreadySubmitted": true})
		case errors.Is(err, ErrMaxAttempts):
			respond.Error(c, http.StatusForbidden, "max_attempts", "Maximum upload attempts exceeded. Please contact the administrator.", gin.H{"maxAttemptsReached": true})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit documents", nil)
		}
		return
	}

	if len(result.Errors) > 0 {
		message := strings.Join(result.Errors, ", ")
		if result.MaxAttemptsReached {
			message += ". Please contact the administrator."
		}
		respond.Error(c, http.StatusBadRequest, "invalid_documents", message, gin.H{
			"uploadAttempts":     result.UploadAttempts,
			"remainingAttempts":  result.RemainingAttempts,
			"maxAttemptsReached": result.MaxAttemptsReached,
		})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":             "Documents uploaded and verified successfully",
		"documents":           result.Documents,
		"overallStatus":       result.OverallStatus,
		"submissionCompleted": result.Completed,
	})
}

func (h *Handler) documents(c *gin.Context) {
	docs, submitted, err := h.Svc.Documents(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, candidates.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		}
		return
	}

	resumeDocs := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		resumeDocs = append(resumeDocs, gin.H{
			"id":         doc.ID,
			"name":       doc.FileName,
			"type":       doc.MimeType,
			"size":       doc.SizeBytes,
			"uploadDate": doc.CreatedAt,
		})
	}
	submittedDocs := make([]gin.H, 0, len(submitted))
	for _, doc := range submitted {
		submittedDocs = append(submittedDocs, gin.H{
			"id":                 doc.ID,
			"name":               doc.FileName,
			"documentType":       doc.DocumentType,
			"size":               doc.SizeBytes,
			"uploadDate":         doc.CreatedAt,
			"verificationStatus": doc.VerificationStatus,
			"extractedName":      doc.ExtractedName,
			"similarityScore":    doc.SimilarityScore,
			"verificationReason": doc.VerificationReason,
		})
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"candidateId":        c.Param("id"),
		"resumeDocuments":    resumeDocs,
		"submittedDocuments": submittedDocs,
		"totalCount":         len(resumeDocs) + len(submittedDocs),
	})
}
