package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/platform/id"
)

type TriggerInput struct {
	Kind  string
	Value string
}

type CreateTagInput struct {
	ID          string
	Name        string
	Category    string
	Subcategory string
	Description string
	Triggers    []TriggerInput
	Suggestions []string
}

type TagService struct {
	tagRepo tag.Repository
	now     func() time.Time
}

func NewTagService(tagRepo tag.Repository) *TagService {
	return &TagService{tagRepo: tagRepo, now: time.Now}
}

func (s *TagService) ListTags(ctx context.Context, category string) ([]tag.Tag, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TagService.ListTags")
	defer span.End()

	var filter tag.Category
	if strings.TrimSpace(category) != "" {
		parsed, err := tag.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter = parsed
	}

	items, err := s.tagRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return items, nil
}

// GetTag resolves a tag by id first, then by name.
func (s *TagService) GetTag(ctx context.Context, tagID string) (tag.Tag, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TagService.GetTag")
	defer span.End()

	return resolveTag(ctx, s.tagRepo, tagID)
}

func (s *TagService) CreateTag(ctx context.Context, input CreateTagInput) (tag.Tag, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TagService.CreateTag")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	tagID := strings.TrimSpace(input.ID)
	if tagID == "" {
		tagID = id.Slugify(name)
	}
	category, err := tag.ParseCategory(input.Category)
	if err != nil {
		return tag.Tag{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item := tag.Tag{
		ID:          tagID,
		Name:        name,
		Category:    category,
		Subcategory: strings.TrimSpace(input.Subcategory),
		Description: strings.TrimSpace(input.Description),
		Suggestions: make([]string, 0, len(input.Suggestions)),
		CreatedAt:   s.now().UTC(),
	}
	for _, trigger := range input.Triggers {
		item.Triggers = append(item.Triggers, tag.Trigger{
			Kind:  tag.TriggerKind(strings.ToUpper(strings.TrimSpace(trigger.Kind))),
			Value: strings.TrimSpace(trigger.Value),
		})
	}
	for _, suggestion := range input.Suggestions {
		item.Suggestions = append(item.Suggestions, strings.TrimSpace(suggestion))
	}
	if err := item.Validate(); err != nil {
		return tag.Tag{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tagRepo.Create(ctx, item); err != nil {
		if errors.Is(err, tag.ErrDuplicate) {
			return tag.Tag{}, fmt.Errorf("%w: tag=%s", ErrConflict, item.Name)
		}
		return tag.Tag{}, fmt.Errorf("create tag: %w", err)
	}
	return item, nil
}

func resolveTag(ctx context.Context, repo tag.Repository, ref string) (tag.Tag, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return tag.Tag{}, fmt.Errorf("%w: tag id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, ref)
	if err != nil {
		return tag.Tag{}, fmt.Errorf("get tag: %w", err)
	}
	if exists {
		return item, nil
	}

	item, exists, err = repo.GetByName(ctx, ref)
	if err != nil {
		return tag.Tag{}, fmt.Errorf("get tag by name: %w", err)
	}
	if !exists {
		return tag.Tag{}, fmt.Errorf("%w: tag=%s", ErrNotFound, ref)
	}
	return item, nil
}
