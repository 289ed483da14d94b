package config

import (
	"fmt"
	"strings"

	"github.com/gyaneshwarpardhi/paynotify/internal/filter"
	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

// Validate checks the config for:
//   - Required fields (version, rule ids, rule expressions)
//   - Duplicate rule IDs
//   - Category names that exist in the canonical set
//   - Filter expressions that parse
func Validate(cfg *PipelineConfig) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	for i, c := range cfg.Notify.EnabledCategories {
		if !stripe.Known(stripe.Category(c)) {
			errs = append(errs, fmt.Sprintf("notify.enabled_categories[%d]: unknown category %q", i, c))
		}
	}

	ids := make(map[string]bool)
	for i, r := range cfg.Notify.Rules {
		loc := fmt.Sprintf("notify.rules[%d]", i)
		if r.ID == "" {
			errs = append(errs, loc+": id is required")
		} else if ids[r.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate id %q", loc, r.ID))
		} else {
			ids[r.ID] = true
			loc = fmt.Sprintf("notify rule %s", r.ID)
		}
		for _, c := range r.Categories {
			if !stripe.Known(stripe.Category(c)) {
				errs = append(errs, fmt.Sprintf("%s: unknown category %q", loc, c))
			}
		}
		if r.Expression == "" {
			errs = append(errs, loc+": expression is required")
		} else if _, err := filter.Parse(r.Expression); err != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid expression: %s", loc, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
