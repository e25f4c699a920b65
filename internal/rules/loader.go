package rules

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed formats.yml
var defaultFormats []byte

// Default returns the built-in rule set shipped with the tool. The embedded
// file is covered by the loader tests, so a decode failure here means a
// broken build rather than bad user input.
func Default() *RuleSet {
	set, err := decode(defaultFormats)
	if err != nil {
		panic(err)
	}
	return set
}

// LoadFile loads and validates a YAML rule file.
func LoadFile(path string) (*RuleSet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("rules file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rules file")
	}
	set, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rules file %s", path)
	}
	return set, nil
}

func decode(data []byte) (*RuleSet, error) {
	var set RuleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, errors.Wrap(err, "parsing rules")
	}
	if err := validateRules(&set); err != nil {
		return nil, err
	}
	return &set, nil
}

// validateRules checks that every rule names a service and a known resource
// format, and that no two rules share a key.
func validateRules(set *RuleSet) error {
	seen := make(map[string]int, len(set.Rules))
	for i, rule := range set.Rules {
		if rule.Service == "" {
			return errors.Errorf("rule #%d missing service", i+1)
		}
		switch rule.ResourceFormat {
		case IDFormat, PathFormat, TypeIDFormat, QualifiedTypeIDFormat:
		default:
			return errors.Errorf("rule %s: unknown resource_format %q", rule.Key(), rule.ResourceFormat)
		}
		if at, dup := seen[rule.Key()]; dup {
			return errors.Errorf("rule %s: duplicate of rule #%d", rule.Key(), at+1)
		}
		seen[rule.Key()] = i
	}
	return nil
}
