package taxonomy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/platform/id"
)

// Validate checks every table references known quick actions and every
// label maps to a score. All problems are joined into one error.
func (t Tables) Validate() error {
	known := make(map[string]struct{}, len(t.QuickActions))
	shortcuts := make(map[string]string, len(t.QuickActions))
	var errs []error

	for _, qa := range t.QuickActions {
		if qa.Name == "" {
			errs = append(errs, errors.New("quick action with empty name"))
			continue
		}
		if _, dup := known[qa.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate quick action %q", qa.Name))
		}
		known[qa.Name] = struct{}{}
		if _, err := tag.ParseCategory(string(qa.Category)); err != nil {
			errs = append(errs, fmt.Errorf("quick action %q: %w", qa.Name, err))
		}
		if qa.Shortcut != "" {
			if other, dup := shortcuts[qa.Shortcut]; dup {
				errs = append(errs, fmt.Errorf("shortcut %q used by %q and %q", qa.Shortcut, other, qa.Name))
			}
			shortcuts[qa.Shortcut] = qa.Name
		}
	}

	check := func(table, name string) {
		if _, ok := known[name]; !ok {
			errs = append(errs, fmt.Errorf("%s references unknown action %q", table, name))
		}
	}

	for _, name := range t.StartActions {
		check("start actions", name)
	}
	for from, next := range t.Transitions {
		check("transitions", from)
		for _, to := range next {
			check("transitions", to)
		}
	}
	for name, label := range t.SingleActions {
		check("single actions", name)
		if _, ok := label.Score(); !ok {
			errs = append(errs, fmt.Errorf("single action %q has invalid label %q", name, label))
		}
	}
	for step, label := range t.Sequences {
		check("sequences", step.From)
		check("sequences", step.To)
		if _, ok := label.Score(); !ok {
			errs = append(errs, fmt.Errorf("sequence %q -> %q has invalid label %q", step.From, step.To, label))
		}
	}
	for name, counters := range t.Counters {
		check("counters", name)
		if len(counters) == 0 {
			errs = append(errs, fmt.Errorf("counters for %q are empty", name))
		}
	}

	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return errors.Join(errs...)
}

// MustDefault returns Default and panics if it does not validate.
func MustDefault() Tables {
	t := Default()
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("invalid taxonomy tables: %v", err))
	}
	return t
}

// Tags converts the quick actions into seed tags whose static suggestions
// come from the transition map.
func (t Tables) Tags() []tag.Tag {
	out := make([]tag.Tag, 0, len(t.QuickActions))
	for _, qa := range t.QuickActions {
		tg := tag.Tag{
			ID:          id.Slugify(qa.Name),
			Name:        qa.Name,
			Category:    qa.Category,
			Subcategory: qa.Subcategory,
			Description: qa.Description,
			Suggestions: append([]string(nil), t.Transitions[qa.Name]...),
		}
		for from, next := range t.Transitions {
			for _, to := range next {
				if to == qa.Name {
					tg.Triggers = append(tg.Triggers, tag.Trigger{Kind: tag.TriggerAfterTag, Value: from})
				}
			}
		}
		sort.Slice(tg.Triggers, func(i, j int) bool { return tg.Triggers[i].Value < tg.Triggers[j].Value })
		out = append(out, tg)
	}
	return out
}
