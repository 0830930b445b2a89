package tag

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDuplicate is returned when a tag id or name is already taken.
var ErrDuplicate = errors.New("tag already exists")

type Category string

const (
	CategoryOffense    Category = "OFFENSE"
	CategoryDefense    Category = "DEFENSE"
	CategoryTransition Category = "TRANSITION"
	CategoryShot       Category = "SHOT"
	CategoryOutcome    Category = "OUTCOME"
	CategorySpecial    Category = "SPECIAL"
)

var categories = map[Category]struct{}{
	CategoryOffense:    {},
	CategoryDefense:    {},
	CategoryTransition: {},
	CategoryShot:       {},
	CategoryOutcome:    {},
	CategorySpecial:    {},
}

func ParseCategory(v string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(v)))
	if _, ok := categories[c]; !ok {
		return "", fmt.Errorf("invalid tag category %q", v)
	}
	return c, nil
}

type TriggerKind string

const (
	// TriggerAfterTag suggests the tag after another tag name was applied.
	TriggerAfterTag TriggerKind = "AFTER_TAG"
	// TriggerGameSituation suggests the tag in a named situation, e.g. "late-clock".
	TriggerGameSituation TriggerKind = "GAME_SITUATION"
	// TriggerClock suggests the tag below a shot-clock threshold in seconds.
	TriggerClock TriggerKind = "CLOCK"
)

type Trigger struct {
	Kind  TriggerKind
	Value string
}

func (t Trigger) Validate() error {
	switch t.Kind {
	case TriggerAfterTag, TriggerGameSituation, TriggerClock:
	default:
		return fmt.Errorf("invalid trigger kind %q", t.Kind)
	}
	if strings.TrimSpace(t.Value) == "" {
		return fmt.Errorf("trigger %s requires a value", t.Kind)
	}
	return nil
}

// Tag is a named basketball action attachable to a play.
// Suggestions holds tag names offered after this one when no history exists.
type Tag struct {
	ID          string
	Name        string
	Category    Category
	Subcategory string
	Description string
	Triggers    []Trigger
	Suggestions []string
	CreatedAt   time.Time
}

func (t Tag) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("tag id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("tag name is required")
	}
	if _, ok := categories[t.Category]; !ok {
		return fmt.Errorf("invalid tag category: %s", t.Category)
	}
	for i, trigger := range t.Triggers {
		if err := trigger.Validate(); err != nil {
			return fmt.Errorf("trigger %d: %w", i, err)
		}
	}
	seen := make(map[string]struct{}, len(t.Suggestions))
	for _, s := range t.Suggestions {
		if strings.TrimSpace(s) == "" {
			return errors.New("tag suggestions cannot contain empty names")
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("duplicate suggestion %q", s)
		}
		seen[s] = struct{}{}
	}

	return nil
}
