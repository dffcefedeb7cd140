package rules

import (
	"github.com/Yun525/ERD/internal/config"
	"github.com/Yun525/ERD/internal/erd"
	"github.com/Yun525/ERD/internal/types"
)

// Engine manages and executes validation rules
type Engine struct {
	rules []Rule
}

// Rule defines a syntax check
type Rule struct {
	ID          string
	Description string
	Disabled    bool
	Check       func(*erd.Document) []types.Issue
}

// NewEngine creates a new rule engine with default rules
func NewEngine() *Engine {
	engine := &Engine{
		rules: []Rule{},
	}

	// Register default rules
	engine.registerDefaultRules()

	return engine
}

// Check runs all rules against the document. Every rule scans the whole
// document; issues accumulate rule-by-rule, line-by-line within each rule.
func (e *Engine) Check(doc *erd.Document) []types.Issue {
	var issues []types.Issue

	for _, rule := range e.rules {
		if rule.Disabled {
			continue
		}
		issues = append(issues, rule.Check(doc)...)
	}

	return issues
}

// registerDefaultRules registers built-in syntax rules
func (e *Engine) registerDefaultRules() {
	// Rule HEADER: file must start with an erdiagram header
	e.registerRule("HEADER", "File should start with an erdiagram header", checkHeader)

	// Rule NOTATION: a notation declaration must appear near the top
	e.registerRule("NOTATION", "A notation declaration should appear in the first 10 lines", checkNotation)

	// Rule BRACES: braces must balance across the file
	e.registerRule("BRACES", "Block braces should balance across the file", checkBraces)

	// Rule DECL: entity/relationship declarations must name a valid identifier
	e.registerRule("DECL", "Entity and relationship declarations should name a valid identifier", checkDeclarations)

	// Rule CARDINALITY: relationship edges must use recognized cardinalities
	e.registerRule("CARDINALITY", "Relationship edges should use recognized cardinality tokens", checkCardinalities)
}

// registerRule is a helper to register rules
func (e *Engine) registerRule(id, description string, checkFunc func(*erd.Document) []types.Issue) {
	e.rules = append(e.rules, Rule{
		ID:          id,
		Description: description,
		Check:       checkFunc,
	})
}

// ApplyConfig applies configuration to the rules
func (e *Engine) ApplyConfig(cfg *config.Config) {
	for i := range e.rules {
		rule := &e.rules[i]
		if ruleConfig, ok := cfg.Rules[rule.ID]; ok && ruleConfig.Disabled {
			rule.Disabled = true
		}
	}
}
