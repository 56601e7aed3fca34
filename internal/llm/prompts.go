package llm

import "fmt"

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

const composeSystemPrompt = "You are a professional HR assistant who writes clear, friendly, and personalized emails."

// BuildComposePrompt returns the chat messages for a document request email.
func BuildComposePrompt(input ComposeInput) []Message {
	name := input.Name
	if name == "" {
		name = "Candidate"
	}
	designation := input.Designation
	if designation == "" {
		designation = "the position"
	}
	company := input.Company
	if company == "" {
		company = "our company"
	}

	user := fmt.Sprintf(`Generate a professional and friendly email requesting identity documents from a candidate.

Candidate Details:
- Name: %s
- Position Applied: %s
- Company: %s
- Upload Link: %s

Requirements:
1. Request PAN Card (10 alphanumeric) and Aadhaar Card (12 digits) documents
2. Be professional yet warm
3. Explain why we need these documents (verification, onboarding)
4. Prominently mention they should click the upload link to submit documents
5. Include a deadline (7 days from now)
6. Keep it concise (150-200 words)
7. Make the upload link stand out

Generate only the email body, no subject line.`, name, designation, company, input.UploadLink)

	return []Message{
		{Role: "system", Content: composeSystemPrompt},
		{Role: "user", Content: user},
	}
}
