package lint

import (
	"fmt"
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all rules.
var globalRegistry = &Registry{
	rules: make(map[string]Rule),
}

// Registry stores registered rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule // keyed by ID
}

// NewRegistry creates an empty registry. Most callers use the global one
// through Register and GetAll.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Add adds a rule. It panics if a rule with the same ID is already present,
// since two rules sharing an ID cannot be configured independently.
func (r *Registry) Add(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[rule.ID()]; exists {
		panic(fmt.Sprintf("lint: rule %s registered twice", rule.ID()))
	}
	r.rules[rule.ID()] = rule
}

// All returns all rules sorted by ID.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// ByID returns a rule by its ID.
func (r *Registry) ByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Register adds a rule definition to the global registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	globalRegistry.Add(WrapRuleDef(def))
}

// RegisterRule adds a Rule implementation to the global registry.
func RegisterRule(rule Rule) {
	globalRegistry.Add(rule)
}

// GetAll returns all registered rules sorted by ID.
func GetAll() []Rule {
	return globalRegistry.All()
}

// GetByID returns a registered rule by its ID.
func GetByID(id string) (Rule, bool) {
	return globalRegistry.ByID(id)
}

// GetByGroup returns all registered rules in a group, sorted by ID.
func GetByGroup(group string) []Rule {
	var rules []Rule
	for _, rule := range globalRegistry.All() {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	return globalRegistry.Len()
}

// Clear removes all registered rules.
// Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]Rule)
}
