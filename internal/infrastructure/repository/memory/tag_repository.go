package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/courtvision/court-vision/internal/domain/tag"
)

type TagRepository struct {
	mu   sync.RWMutex
	tags map[string]tag.Tag
}

func NewTagRepository(tags []tag.Tag) *TagRepository {
	r := &TagRepository{tags: make(map[string]tag.Tag, len(tags))}
	for _, item := range tags {
		r.tags[item.ID] = cloneTag(item)
	}
	return r
}

func (r *TagRepository) List(_ context.Context, category tag.Category) ([]tag.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tag.Tag, 0, len(r.tags))
	for _, item := range r.tags {
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, cloneTag(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *TagRepository) GetByID(_ context.Context, id string) (tag.Tag, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.tags[id]
	if !ok {
		return tag.Tag{}, false, nil
	}
	return cloneTag(item), true, nil
}

func (r *TagRepository) GetByName(_ context.Context, name string) (tag.Tag, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.findByName(name)
	if !ok {
		return tag.Tag{}, false, nil
	}
	return cloneTag(item), true, nil
}

func (r *TagRepository) GetByIDs(_ context.Context, ids []string) (map[string]tag.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]tag.Tag, len(ids))
	for _, id := range ids {
		if item, ok := r.tags[id]; ok {
			out[id] = cloneTag(item)
		}
	}
	return out, nil
}

func (r *TagRepository) Create(_ context.Context, t tag.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tags[t.ID]; exists {
		return fmt.Errorf("create tag %s: %w", t.Name, tag.ErrDuplicate)
	}
	if _, exists := r.findByName(t.Name); exists {
		return fmt.Errorf("create tag %s: %w", t.Name, tag.ErrDuplicate)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	r.tags[t.ID] = cloneTag(t)
	return nil
}

func (r *TagRepository) Seed(_ context.Context, tags []tag.Tag) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := 0
	for _, t := range tags {
		if _, exists := r.tags[t.ID]; exists {
			continue
		}
		if _, exists := r.findByName(t.Name); exists {
			continue
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now().UTC()
		}
		r.tags[t.ID] = cloneTag(t)
		inserted++
	}
	return inserted, nil
}

// findByName expects r.mu to be held.
func (r *TagRepository) findByName(name string) (tag.Tag, bool) {
	for _, item := range r.tags {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return tag.Tag{}, false
}

func cloneTag(t tag.Tag) tag.Tag {
	t.Triggers = append([]tag.Trigger(nil), t.Triggers...)
	t.Suggestions = append([]string(nil), t.Suggestions...)
	return t
}
