package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet is the fixed policy configuration one evaluator runs against.
// It is built once, handed to the evaluator by value, and never mutated.
type RuleSet struct {
	MaxValidityDays         int      `yaml:"max_validity_days"`
	RecommendedValidityDays int      `yaml:"recommended_validity_days"`
	MinRSAKeySize           int      `yaml:"min_rsa_key_size"`
	MinECCKeySize           int      `yaml:"min_ecc_key_size"`
	AllowedECCCurves        []string `yaml:"allowed_ecc_curves"`
	DisallowedAlgorithms    []string `yaml:"disallowed_algorithms"`
}

// DefaultRuleSet returns the CAB Forum / NIST baseline.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		MaxValidityDays:         825,
		RecommendedValidityDays: 398,
		MinRSAKeySize:           2048,
		MinECCKeySize:           256,
		AllowedECCCurves:        []string{"P-256", "P-384", "P-521"},
		DisallowedAlgorithms:    []string{"MD5", "SHA1", "RC4"},
	}
}

// LoadRuleSet overlays the defaults with values from a YAML policy file.
// Fields missing from the file keep their default values.
func LoadRuleSet(path string) (RuleSet, error) {
	rules := DefaultRuleSet()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read policy file: %w", err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse policy file %s: %w", path, err)
	}

	if err := rules.validate(); err != nil {
		return rules, fmt.Errorf("invalid policy file %s: %w", path, err)
	}

	return rules, nil
}

func (r RuleSet) validate() error {
	if r.MaxValidityDays <= 0 {
		return fmt.Errorf("max_validity_days must be positive, got %d", r.MaxValidityDays)
	}

	if r.RecommendedValidityDays <= 0 {
		return fmt.Errorf("recommended_validity_days must be positive, got %d", r.RecommendedValidityDays)
	}

	if r.RecommendedValidityDays > r.MaxValidityDays {
		return fmt.Errorf("recommended_validity_days %d exceeds max_validity_days %d",
			r.RecommendedValidityDays, r.MaxValidityDays)
	}

	if r.MinRSAKeySize <= 0 {
		return fmt.Errorf("min_rsa_key_size must be positive, got %d", r.MinRSAKeySize)
	}

	if r.MinECCKeySize <= 0 {
		return fmt.Errorf("min_ecc_key_size must be positive, got %d", r.MinECCKeySize)
	}

	return nil
}
