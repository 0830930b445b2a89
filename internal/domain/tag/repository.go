package tag

import "context"

// Repository describes tag persistence needs from use cases.
// An empty category lists every tag.
type Repository interface {
	List(ctx context.Context, category Category) ([]Tag, error)
	GetByID(ctx context.Context, id string) (Tag, bool, error)
	GetByName(ctx context.Context, name string) (Tag, bool, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]Tag, error)
	// Create returns ErrDuplicate when the id or name exists.
	Create(ctx context.Context, t Tag) error
	// Seed inserts missing tags and returns how many were added.
	Seed(ctx context.Context, tags []Tag) (int, error)
}
