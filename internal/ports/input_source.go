package ports

import "context"

// InputSource provides the raw text of a dig plan.
type InputSource interface {
	// Load returns the full input text.
	Load(ctx context.Context) (string, error)

	// Path identifies the source in logs and, for file sources, is the
	// path watched for changes.
	Path() string
}
