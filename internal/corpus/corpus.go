package corpus

import (
	"context"
	"errors"
)

// ErrMalformedDocument is returned for a document that has neither title nor body.
var ErrMalformedDocument = errors.New("corpus: document has neither title nor body")

// Document is a single corpus article. Title and Body are optional.
type Document struct {
	ID    string
	Title *string
	Body  *string
}

// NewDocument builds a document from plain strings; empty strings are treated as missing.
func NewDocument(id, title, body string) Document {
	d := Document{ID: id}
	if title != "" {
		d.Title = &title
	}
	if body != "" {
		d.Body = &body
	}
	return d
}

// Text joins title and body with a newline.
func (d Document) Text() (string, error) {
	var title, body string
	if d.Title != nil {
		title = *d.Title
	}
	if d.Body != nil {
		body = *d.Body
	}
	if title == "" && body == "" {
		return "", ErrMalformedDocument
	}
	return title + "\n" + body, nil
}

// Provider supplies an ordered sequence of documents.
type Provider interface {
	Documents(ctx context.Context) ([]Document, error)
}

// Static is an in-memory provider.
type Static []Document

func (s Static) Documents(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Document, len(s))
	copy(out, s)
	return out, nil
}
