package cache

import (
	"context"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/team"
	basecache "github.com/courtvision/court-vision/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByExternalID(ctx context.Context, externalID string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:id:"+externalID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByExternalID(ctx, externalID)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) GetByAbbreviation(ctx context.Context, abbreviation string) (team.Team, bool, error) {
	key := "team:abbr:" + team.NormalizeAbbreviation(abbreviation)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByAbbreviation(ctx, abbreviation)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) (syncrun.Outcome, error) {
	outcome, err := r.next.Upsert(ctx, t)
	if err != nil {
		return "", err
	}
	if outcome != syncrun.OutcomeUnchanged {
		r.cache.DeletePrefix(ctx, "team:")
	}
	return outcome, nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

type TagRepository struct {
	next  tag.Repository
	cache *basecache.Store
}

func NewTagRepository(next tag.Repository, cache *basecache.Store) *TagRepository {
	return &TagRepository{next: next, cache: cache}
}

func (r *TagRepository) List(ctx context.Context, category tag.Category) ([]tag.Tag, error) {
	v, err := r.cache.GetOrLoad(ctx, "tag:list:"+string(category), func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, category)
		if err != nil {
			return nil, err
		}
		return append([]tag.Tag(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tag.Tag)
	return append([]tag.Tag(nil), items...), nil
}

func (r *TagRepository) GetByID(ctx context.Context, id string) (tag.Tag, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "tag:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedTag{value: item, exists: exists}, nil
	})
	if err != nil {
		return tag.Tag{}, false, err
	}

	cached, _ := v.(cachedTag)
	return cached.value, cached.exists, nil
}

// GetByName and GetByIDs pass through uncached.
func (r *TagRepository) GetByName(ctx context.Context, name string) (tag.Tag, bool, error) {
	return r.next.GetByName(ctx, name)
}

func (r *TagRepository) GetByIDs(ctx context.Context, ids []string) (map[string]tag.Tag, error) {
	return r.next.GetByIDs(ctx, ids)
}

func (r *TagRepository) Create(ctx context.Context, t tag.Tag) error {
	if err := r.next.Create(ctx, t); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "tag:")
	return nil
}

func (r *TagRepository) Seed(ctx context.Context, tags []tag.Tag) (int, error) {
	n, err := r.next.Seed(ctx, tags)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.cache.DeletePrefix(ctx, "tag:")
	}
	return n, nil
}

type cachedTag struct {
	value  tag.Tag
	exists bool
}
