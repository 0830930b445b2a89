package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/domain/tag"
)

type PlayRepository struct {
	mu    sync.RWMutex
	plays map[string]play.Play
	tags  *TagRepository
}

// NewPlayRepository resolves tag names and categories for ListActions
// through tags.
func NewPlayRepository(tags *TagRepository) *PlayRepository {
	return &PlayRepository{plays: make(map[string]play.Play), tags: tags}
}

func (r *PlayRepository) Create(ctx context.Context, p play.Play) error {
	for _, t := range p.Tags {
		if err := r.ensureTag(ctx, t.TagID); err != nil {
			return fmt.Errorf("create play %s: %w", p.ID, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plays[p.ID]; exists {
		return fmt.Errorf("play %s already exists", p.ID)
	}
	p = clonePlay(p)
	for i := range p.Tags {
		p.Tags[i].PlayID = p.ID
		p.Tags[i].Position = i
	}
	r.plays[p.ID] = p
	return nil
}

func (r *PlayRepository) GetByID(_ context.Context, id string) (play.Play, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plays[id]
	if !ok {
		return play.Play{}, false, nil
	}
	return clonePlay(p), true, nil
}

func (r *PlayRepository) ListByGame(_ context.Context, gameExternalID string) ([]play.Play, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]play.Play, 0)
	for _, p := range r.plays {
		if p.GameExternalID == gameExternalID {
			out = append(out, clonePlay(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return play.Before(out[i], out[j]) })
	return out, nil
}

func (r *PlayRepository) Update(_ context.Context, p play.Play) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.plays[p.ID]
	if !ok {
		return fmt.Errorf("update play %s: %w", p.ID, play.ErrNotFound)
	}
	existing.Quarter = p.Quarter
	existing.GameTime = p.GameTime
	existing.Description = p.Description
	existing.UpdatedAt = time.Now().UTC()
	r.plays[p.ID] = existing
	return nil
}

func (r *PlayRepository) AddTag(ctx context.Context, t play.PlayTag) (play.PlayTag, error) {
	if err := r.ensureTag(ctx, t.TagID); err != nil {
		return play.PlayTag{}, fmt.Errorf("add tag to play %s: %w", t.PlayID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plays[t.PlayID]
	if !ok {
		return play.PlayTag{}, fmt.Errorf("add tag to play %s: %w", t.PlayID, play.ErrNotFound)
	}
	t.Position = 0
	for _, existing := range p.Tags {
		if existing.Position >= t.Position {
			t.Position = existing.Position + 1
		}
	}
	p.Tags = append(p.Tags, t)
	p.UpdatedAt = time.Now().UTC()
	r.plays[p.ID] = p
	return t, nil
}

func (r *PlayRepository) ListActions(ctx context.Context, filter play.ActionFilter) ([]play.TaggedAction, error) {
	r.mu.RLock()
	plays := make([]play.Play, 0, len(r.plays))
	for _, p := range r.plays {
		if filter.GameExternalID != "" && p.GameExternalID != filter.GameExternalID {
			continue
		}
		if !filter.Since.IsZero() && p.CreatedAt.Before(filter.Since) {
			continue
		}
		plays = append(plays, clonePlay(p))
	}
	r.mu.RUnlock()

	sort.Slice(plays, func(i, j int) bool {
		if plays[i].GameExternalID != plays[j].GameExternalID {
			return plays[i].GameExternalID < plays[j].GameExternalID
		}
		return play.Before(plays[i], plays[j])
	})

	tagIDs := make([]string, 0)
	for _, p := range plays {
		for _, t := range p.Tags {
			tagIDs = append(tagIDs, t.TagID)
		}
	}
	tags := map[string]tag.Tag{}
	if r.tags != nil {
		var err error
		if tags, err = r.tags.GetByIDs(ctx, tagIDs); err != nil {
			return nil, err
		}
	}

	out := make([]play.TaggedAction, 0, len(tagIDs))
	for _, p := range plays {
		sort.Slice(p.Tags, func(i, j int) bool { return p.Tags[i].Position < p.Tags[j].Position })
		for _, t := range p.Tags {
			if filter.PlayerExternalID != "" && t.PlayerExternalID != filter.PlayerExternalID {
				continue
			}
			if filter.TeamExternalID != "" && t.TeamExternalID != filter.TeamExternalID {
				continue
			}
			info, ok := tags[t.TagID]
			if !ok {
				continue
			}
			out = append(out, play.TaggedAction{
				PlayID:           p.ID,
				GameExternalID:   p.GameExternalID,
				Quarter:          p.Quarter,
				GameTime:         p.GameTime,
				PlayCreatedAt:    p.CreatedAt,
				Position:         t.Position,
				TagID:            t.TagID,
				TagName:          info.Name,
				TagCategory:      string(info.Category),
				PlayerExternalID: t.PlayerExternalID,
				TeamExternalID:   t.TeamExternalID,
				Context:          t.Context,
			})
		}
	}
	return out, nil
}

func (r *PlayRepository) ensureTag(ctx context.Context, tagID string) error {
	if r.tags == nil {
		return nil
	}
	_, ok, err := r.tags.GetByID(ctx, tagID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("tag %s: %w", tagID, play.ErrUnknownReference)
	}
	return nil
}

func clonePlay(p play.Play) play.Play {
	p.Tags = append([]play.PlayTag(nil), p.Tags...)
	if p.Tags == nil {
		p.Tags = []play.PlayTag{}
	}
	return p
}
