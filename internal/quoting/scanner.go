package quoting

import (
	"fmt"
	"strings"

	"github.com/Yun525/ERD/internal/config"
	"github.com/Yun525/ERD/internal/erd"
	"github.com/Yun525/ERD/internal/types"
)

// RuleID identifies the quoting scan in configuration and verbose output
const RuleID = "QUOTING"

// Scanner detects double-quoted identifiers and roles, which the bigER
// parser rejects. It runs independently of the rule engine.
type Scanner struct {
	disabled bool
}

// NewScanner creates a new quoting scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan flags every line containing a double-quote character. Quotes inside
// comments are not exempt.
func (s *Scanner) Scan(doc *erd.Document) []types.Issue {
	if s.disabled {
		return nil
	}

	var issues []types.Issue
	for _, line := range doc.Lines {
		if strings.Contains(line.Raw, `"`) {
			issues = append(issues, types.Issue{
				RuleID:  RuleID,
				Message: fmt.Sprintf("Quoted identifiers or roles found on line %d: bigER prefers unquoted names; using quotes may cause parser errors", line.Number),
				Line:    line.Number,
				Context: line.Trimmed,
			})
		}
	}

	return issues
}

// ApplyConfig applies configuration to the scanner
func (s *Scanner) ApplyConfig(cfg *config.Config) {
	if ruleConfig, ok := cfg.Rules[RuleID]; ok && ruleConfig.Disabled {
		s.disabled = true
	}
}
