// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package substitution

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/larder/internal/models"
)

// Alternative is one ranked replacement candidate.
type Alternative struct {
	// Name is the canonical name of the replacement ingredient or tool.
	Name string `json:"name" yaml:"name"`

	// Score is the compatibility score in [0, 1]. 1 means a perfect
	// swap; lower values degrade the recipe.
	Score float64 `json:"score" yaml:"score"`
}

// RuleTable is the catalog-wide fallback substitution table. It is built
// once, validated, and never mutated afterwards, so concurrent resolvers
// share it without locking.
type RuleTable struct {
	rules map[models.SubstitutionContext]map[string][]Alternative
}

// NewRuleTable creates an empty rule table.
func NewRuleTable() *RuleTable {
	return &RuleTable{
		rules: map[models.SubstitutionContext]map[string][]Alternative{
			models.ContextIngredient: {},
			models.ContextTool:       {},
		},
	}
}

// Add registers a global rule. Target and alternative names are
// normalized here. Alternatives for a target accumulate in call order;
// callers list them best-first.
func (t *RuleTable) Add(ctx models.SubstitutionContext, target string, alt Alternative) error {
	target = models.Canonical(target)
	alt.Name = models.Canonical(alt.Name)

	if target == "" {
		return fmt.Errorf("empty substitution target")
	}
	if alt.Name == "" {
		return fmt.Errorf("substitution for %q: empty alternative name", target)
	}
	if alt.Name == target {
		return fmt.Errorf("substitution for %q: target listed as its own alternative", target)
	}
	if alt.Score < 0 || alt.Score > 1 {
		return fmt.Errorf("substitution %q -> %q: score %v outside [0, 1]", target, alt.Name, alt.Score)
	}

	for _, existing := range t.rules[ctx][target] {
		if existing.Name == alt.Name {
			return fmt.Errorf("substitution %q -> %q: duplicate alternative", target, alt.Name)
		}
	}

	t.rules[ctx][target] = append(t.rules[ctx][target], alt)
	return nil
}

// Lookup returns the global alternatives for a target, best-first.
// A missing target yields nil: no known swap.
func (t *RuleTable) Lookup(ctx models.SubstitutionContext, target string) []Alternative {
	return t.rules[ctx][target]
}

// Len returns the total number of targets with at least one rule.
func (t *RuleTable) Len() int {
	n := 0
	for _, byTarget := range t.rules {
		n += len(byTarget)
	}
	return n
}

// ruleFile is the YAML shape of a global substitution rules file.
type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Context      string        `yaml:"context"`
	Target       string        `yaml:"target"`
	Alternatives []Alternative `yaml:"alternatives"`
}

// LoadRuleTable reads a global substitution rules YAML file:
//
//	rules:
//	  - context: tool
//	    target: stove
//	    alternatives:
//	      - name: oven
//	        score: 0.7
//
// Every entry is validated; the first invalid entry fails the load with
// a descriptive error.
func LoadRuleTable(path string) (*RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRuleTable(data)
}

// ParseRuleTable builds a rule table from YAML bytes.
func ParseRuleTable(data []byte) (*RuleTable, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	table := NewRuleTable()
	for i, entry := range f.Rules {
		ctx, ok := models.ParseSubstitutionContext(entry.Context)
		if !ok {
			return nil, fmt.Errorf("rule %d (%q): unrecognized context %q", i, entry.Target, entry.Context)
		}
		if len(entry.Alternatives) == 0 {
			return nil, fmt.Errorf("rule %d (%q): no alternatives", i, entry.Target)
		}
		for _, alt := range entry.Alternatives {
			if err := table.Add(ctx, entry.Target, alt); err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
		}
	}

	return table, nil
}
