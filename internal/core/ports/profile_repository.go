package ports

import "context"

// ProfileRepository stores free-form profile documents. The document shape is
// client-defined, so it is persisted as-is.
type ProfileRepository interface {
	Insert(ctx context.Context, doc map[string]any) (string, error)
}
