package config

// PipelineConfig is the top-level YAML structure.
type PipelineConfig struct {
	Version string     `yaml:"version"`
	Engine  EngineConf `yaml:"engine"`
	Notify  NotifyConf `yaml:"notify"`
}

// EngineConf holds tunable concurrency settings for the hosting runtime.
type EngineConf struct {
	EventWorkers   int `yaml:"event_workers"`
	QueueDepth     int `yaml:"queue_depth"`
	EventTimeoutMs int `yaml:"event_timeout_ms"`
}

// NotifyConf controls which reduced events become display messages.
type NotifyConf struct {
	// EnabledCategories limits notification to the named categories.
	// Empty means every category (Unhandled included) notifies.
	EnabledCategories []string     `yaml:"enabled_categories"`
	Rules             []NotifyRule `yaml:"rules"`
}

// NotifyRule is a filter expression applied to events of the named
// categories (empty = all categories). When one or more rules cover an
// event's category, at least one must match for the event to notify.
type NotifyRule struct {
	ID         string   `yaml:"id"`
	Categories []string `yaml:"categories"`
	Expression string   `yaml:"expression"`
}

// CategoryEnabled reports whether category c may produce notifications.
func (n *NotifyConf) CategoryEnabled(c string) bool {
	if len(n.EnabledCategories) == 0 {
		return true
	}
	for _, e := range n.EnabledCategories {
		if e == c {
			return true
		}
	}
	return false
}

// RulesFor returns the rules covering category c.
func (n *NotifyConf) RulesFor(c string) []NotifyRule {
	var out []NotifyRule
	for _, r := range n.Rules {
		if len(r.Categories) == 0 {
			out = append(out, r)
			continue
		}
		for _, rc := range r.Categories {
			if rc == c {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
