package play

import "context"

// Repository describes play persistence needs from use cases.
type Repository interface {
	// Create writes the play and all of its tags atomically.
	Create(ctx context.Context, p Play) error
	GetByID(ctx context.Context, id string) (Play, bool, error)
	ListByGame(ctx context.Context, gameExternalID string) ([]Play, error)
	// Update overwrites description, quarter and game time.
	Update(ctx context.Context, p Play) error
	// AddTag appends t after the play's existing tags and returns it with
	// its assigned position.
	AddTag(ctx context.Context, t PlayTag) (PlayTag, error)
	// ListActions returns tagged actions ordered by game, play chronology
	// and tag position.
	ListActions(ctx context.Context, filter ActionFilter) ([]TaggedAction, error)
}
