package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for email composition.
type Client interface {
	ComposeDocumentRequest(ctx context.Context, input ComposeInput) (string, error)
}

// ComposeInput captures the candidate details used to personalize the email.
type ComposeInput struct {
	Name        string
	Designation string
	Company     string
	UploadLink  string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// ComposeDocumentRequest returns ErrNotImplemented.
func (PlaceholderClient) ComposeDocumentRequest(ctx context.Context, input ComposeInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotImplemented
}
