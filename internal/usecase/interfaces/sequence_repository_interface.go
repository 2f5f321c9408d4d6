package interfaces

import "context"

// ISequenceRepository hands out monotonic per-name counters. Orders take one
// at creation so emails can show a stable human-facing number without
// re-sorting the collection.

type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
