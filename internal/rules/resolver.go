// internal/rules/resolver.go

package rules

import (
	"fmt"
	"sync"

	"github.com/ajez/logtide/internal/config"
	"github.com/ajez/logtide/internal/logger"
	"github.com/gobwas/glob"
)

// compiledRule is a config rule with its logger pattern pre-compiled.
type compiledRule struct {
	pattern      glob.Glob
	destinations []string
}

// Resolver maps logger names to Logger instances. Each name is matched
// against the configured rules in order; the first match decides the
// destination list, names matching no rule fall back to the default list.
// Resolved loggers are cached so repeated lookups for one name reuse the
// same sink actors.
type Resolver struct {
	mu       sync.Mutex
	rules    []compiledRule
	defaults []string
	manager  *logger.Manager
	cache    map[string]logger.Logger
}

// NewResolver compiles the configured rules. Invalid glob patterns are
// configuration errors and fail construction.
func NewResolver(cfg *config.Config, manager *logger.Manager) (*Resolver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("resolver requires a config")
	}
	if manager == nil {
		return nil, fmt.Errorf("resolver requires a logger manager")
	}

	compiled := make([]compiledRule, 0, len(cfg.Rules))
	for i, rule := range cfg.Rules {
		g, err := glob.Compile(rule.Logger)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid logger glob pattern '%s': %w", i, rule.Logger, err)
		}
		compiled = append(compiled, compiledRule{
			pattern:      g,
			destinations: rule.Destinations,
		})
	}

	return &Resolver{
		rules:    compiled,
		defaults: cfg.DefaultDestinations,
		manager:  manager,
		cache:    make(map[string]logger.Logger),
	}, nil
}

// Resolve returns the Logger for the given name, building it on first use.
// A name whose destination list has a single entry gets that destination's
// logger directly; longer lists are wrapped in a MultiLogger preserving
// list order.
func (r *Resolver) Resolve(name string) (logger.Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lgr, ok := r.cache[name]; ok {
		return lgr, nil
	}

	destinations := r.defaults
	for _, rule := range r.rules {
		if rule.pattern.Match(name) {
			destinations = rule.destinations
			break
		}
	}
	if len(destinations) == 0 {
		return nil, fmt.Errorf("no destinations configured for logger '%s'", name)
	}

	children := make([]logger.Logger, 0, len(destinations))
	for _, destName := range destinations {
		child, err := r.manager.NewLogger(name, destName)
		if err != nil {
			return nil, fmt.Errorf("logger '%s': %w", name, err)
		}
		children = append(children, child)
	}

	var lgr logger.Logger
	if len(children) == 1 {
		lgr = children[0]
	} else {
		lgr = logger.NewMultiLogger(name, children...)
	}

	r.cache[name] = lgr
	return lgr, nil
}
