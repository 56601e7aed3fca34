package candidates

import (
	"mime"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// CandidateSummary is the list representation of a candidate.
type CandidateSummary struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Company          string    `json:"company"`
	Designation      string    `json:"designation"`
	ExtractionStatus string    `json:"extractionStatus"`
	UploadDate       time.Time `json:"uploadDate"`
}

// ExtractedData groups the parsed resume fields with their confidence scores.
type ExtractedData struct {
	FullName   string             `json:"fullName"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Location   string             `json:"location"`
	Position   string             `json:"position"`
	Company    string             `json:"company"`
	Experience string             `json:"experience"`
	Skills     []string           `json:"skills"`
	Degree     string             `json:"degree"`
	University string             `json:"university"`
	Confidence map[string]float64 `json:"confidence"`
}

func toSummary(cand Candidate) CandidateSummary {
	return CandidateSummary{
		ID:               cand.ID,
		Name:             cand.Name,
		Email:            cand.Email,
		Phone:            cand.Phone,
		Company:          cand.Company,
		Designation:      cand.Designation,
		ExtractionStatus: cand.ExtractionStatus,
		UploadDate:       cand.CreatedAt,
	}
}

func toExtractedData(cand Candidate) ExtractedData {
	skills := cand.Skills
	if skills == nil {
		skills = []string{}
	}
	confidence := cand.Confidence
	if confidence == nil {
		confidence = map[string]float64{}
	}
	return ExtractedData{
		FullName:   cand.Name,
		Email:      cand.Email,
		Phone:      cand.Phone,
		Location:   cand.Location,
		Position:   cand.Designation,
		Company:    cand.Company,
		Experience: cand.Experience,
		Skills:     skills,
		Degree:     cand.Degree,
		University: cand.University,
		Confidence: confidence,
	}
}

func toProfileResponse(p Profile) gin.H {
	docs := make([]gin.H, 0, len(p.Documents))
	submitted := make([]gin.H, 0, len(p.Documents)+len(p.SubmittedDocuments))
	for _, doc := range p.Documents {
		entry := gin.H{
			"id":         doc.ID,
			"name":       doc.FileName,
			"type":       doc.MimeType,
			"size":       doc.SizeBytes,
			"uploadDate": doc.CreatedAt,
			"status":     "Uploaded",
		}
		docs = append(docs, entry)
		submitted = append(submitted, gin.H{
			"id":           doc.ID,
			"name":         doc.FileName,
			"type":         doc.MimeType,
			"documentType": "Resume/CV",
			"size":         doc.SizeBytes,
			"uploadDate":   doc.CreatedAt,
			"status":       "Uploaded",
		})
	}
	for _, doc := range p.SubmittedDocuments {
		status := doc.VerificationStatus
		if status == "" {
			status = "Submitted"
		}
		submitted = append(submitted, gin.H{
			"id":                 doc.ID,
			"name":               doc.FileName,
			"type":               mimeTypeFor(doc.FileName),
			"documentType":       doc.DocumentType,
			"size":               doc.SizeBytes,
			"uploadDate":         doc.CreatedAt,
			"status":             status,
			"verificationStatus": doc.VerificationStatus,
			"extractedName":      doc.ExtractedName,
			"similarityScore":    doc.SimilarityScore,
			"verificationReason": doc.VerificationReason,
		})
	}

	requests := make([]gin.H, 0, len(p.DocumentRequests))
	for _, req := range p.DocumentRequests {
		requests = append(requests, gin.H{
			"id":     req.ID,
			"status": req.Status,
			"date":   req.CreatedAt,
		})
	}

	return gin.H{
		"id":                 p.ID,
		"name":               p.Name,
		"email":              p.Email,
		"company":            p.Company,
		"extractionStatus":   p.ExtractionStatus,
		"uploadDate":         p.CreatedAt,
		"extractedData":      toExtractedData(p.Candidate),
		"documents":          docs,
		"submittedDocuments": submitted,
		"documentRequests":   requests,
	}
}

func mimeTypeFor(fileName string) string {
	if t := mime.TypeByExtension(filepath.Ext(fileName)); t != "" {
		return t
	}
	return "application/octet-stream"
}
