package lint

import (
	"fmt"
	"slices"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeOptions decodes rule options into out, a pointer to a struct with
// mapstructure tags. Keys absent from opts leave the corresponding fields of
// out untouched; decode into a zero value and apply defaults to fields left
// nil, since slices pre-filled with shared defaults would be written into.
// Scalars are accepted where slices are expected.
func DecodeOptions(opts map[string]any, out any) error {
	if len(opts) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create options decoder: %w", err)
	}
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("failed to decode options: %w", err)
	}
	return nil
}

// GetStringSliceOption extracts a string slice option, accepting []string,
// []any of strings, or a single string.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case string:
		return []string{s}
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result = append(result, str)
		}
		return result
	default:
		return defaultVal
	}
}

// ValidateOptions checks that every configured option names a known rule and
// a key that rule accepts.
func ValidateOptions(cfg *Config, rules []Rule) error {
	if cfg == nil {
		return nil
	}
	byID := make(map[string]Rule, len(rules))
	for _, r := range rules {
		byID[r.ID()] = r
	}
	ids := make([]string, 0, len(cfg.RuleOptions))
	for id := range cfg.RuleOptions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		rule, ok := byID[id]
		if !ok {
			return fmt.Errorf("options given for unknown rule %s", id)
		}
		for key := range cfg.RuleOptions[id] {
			if !slices.Contains(rule.ConfigKeys(), key) {
				return fmt.Errorf("rule %s has no option %q (known: %v)", id, key, rule.ConfigKeys())
			}
		}
	}
	return nil
}
