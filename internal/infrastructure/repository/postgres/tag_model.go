package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/courtvision/court-vision/internal/domain/tag"
)

var tagColumns = []string{"id", "name", "category", "subcategory", "description", "triggers", "suggestions", "created_at"}

type tagTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Subcategory string         `db:"subcategory"`
	Description string         `db:"description"`
	Triggers    []byte         `db:"triggers"`
	Suggestions pq.StringArray `db:"suggestions"`
	CreatedAt   time.Time      `db:"created_at"`
}

type triggerDocument struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func tagFromRow(row tagTableModel) (tag.Tag, error) {
	t := tag.Tag{
		ID:          row.ID,
		Name:        row.Name,
		Category:    tag.Category(row.Category),
		Subcategory: row.Subcategory,
		Description: row.Description,
		Suggestions: append([]string(nil), row.Suggestions...),
		CreatedAt:   row.CreatedAt,
	}
	if len(row.Triggers) > 0 {
		var docs []triggerDocument
		if err := sonic.Unmarshal(row.Triggers, &docs); err != nil {
			return tag.Tag{}, err
		}
		for _, d := range docs {
			t.Triggers = append(t.Triggers, tag.Trigger{Kind: tag.TriggerKind(d.Kind), Value: d.Value})
		}
	}
	return t, nil
}

func encodeTriggers(triggers []tag.Trigger) (string, error) {
	docs := make([]triggerDocument, 0, len(triggers))
	for _, t := range triggers {
		docs = append(docs, triggerDocument{Kind: string(t.Kind), Value: t.Value})
	}
	return marshalJSONB(docs)
}
