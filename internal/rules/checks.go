package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Yun525/ERD/internal/erd"
	"github.com/Yun525/ERD/internal/types"
)

var (
	entityDecl       = regexp.MustCompile(`^entity\s+[A-Za-z_][A-Za-z0-9_]*`)
	weakEntityDecl   = regexp.MustCompile(`^weak entity\s+[A-Za-z_][A-Za-z0-9_]*`)
	relationshipDecl = regexp.MustCompile(`^relationship\s+[A-Za-z_][A-Za-z0-9_]*`)

	// [0..N] and friends; the role form allows a designator after "|", e.g. [1 | owner]
	cardinalityToken = regexp.MustCompile(`\[(?:0\.\.N|1\.\.N|0\.\.1|1\.\.1|N|1)\]`)
	cardinalityRole  = regexp.MustCompile(`\[(?:0\.\.N|1\.\.N|0\.\.1|1\.\.1|N|1)\s*\|`)
)

// checkHeader verifies the first line starts with the erdiagram keyword
func checkHeader(doc *erd.Document) []types.Issue {
	if len(doc.Lines) > 0 && strings.HasPrefix(doc.Lines[0].Trimmed, "erdiagram") {
		return nil
	}

	return []types.Issue{{
		RuleID:  "HEADER",
		Message: `Missing or malformed header: file should start with "erdiagram ModelName"`,
	}}
}

// checkNotation looks for a notation declaration within the first 10 lines
func checkNotation(doc *erd.Document) []types.Issue {
	limit := len(doc.Lines)
	if limit > 10 {
		limit = 10
	}

	for _, line := range doc.Lines[:limit] {
		if strings.HasPrefix(line.Trimmed, "notation=") {
			return nil
		}
	}

	return []types.Issue{{
		RuleID:  "NOTATION",
		Message: "Missing notation declaration (e.g. notation=crowsfoot) in the first 10 lines",
	}}
}

// checkBraces tracks a running open-brace counter across the file
func checkBraces(doc *erd.Document) []types.Issue {
	var issues []types.Issue

	openBraces := 0
	for _, line := range doc.Lines {
		openBraces += strings.Count(line.Raw, "{")
		openBraces -= strings.Count(line.Raw, "}")
		if openBraces < 0 {
			issues = append(issues, types.Issue{
				RuleID:  "BRACES",
				Message: fmt.Sprintf("Unmatched closing brace on line %d", line.Number),
				Line:    line.Number,
				Context: line.Trimmed,
			})
			// Resynchronize so a single stray "}" does not cascade into a
			// report for every subsequent line.
			openBraces = 0
		}
	}

	if openBraces != 0 {
		issues = append(issues, types.Issue{
			RuleID:  "BRACES",
			Message: "Mismatched braces: some blocks are not closed",
		})
	}

	return issues
}

// checkDeclarations validates entity/weak entity/relationship declaration lines
func checkDeclarations(doc *erd.Document) []types.Issue {
	var issues []types.Issue

	for _, line := range doc.Lines {
		s := line.Trimmed

		if strings.HasPrefix(s, "entity ") || strings.HasPrefix(s, "weak entity ") {
			if !entityDecl.MatchString(s) && !weakEntityDecl.MatchString(s) {
				issues = append(issues, types.Issue{
					RuleID:  "DECL",
					Message: fmt.Sprintf("Invalid entity declaration on line %d: \"%s\"", line.Number, s),
					Line:    line.Number,
					Context: s,
				})
			}
		}

		if strings.HasPrefix(s, "relationship ") {
			if !relationshipDecl.MatchString(s) {
				issues = append(issues, types.Issue{
					RuleID:  "DECL",
					Message: fmt.Sprintf("Invalid relationship declaration on line %d: \"%s\"", line.Number, s),
					Line:    line.Number,
					Context: s,
				})
			}
		}
	}

	return issues
}

// blockState is the scan state for relationship-body tracking
type blockState int

const (
	outsideRelationship blockState = iota
	insideRelationship
)

// relationshipTracker scopes cardinality checking to relationship bodies.
// Closure is keyed on a trailing "}" on the trimmed line, not on brace
// depth, so a nested one-line {...} body clears the state early.
type relationshipTracker struct {
	state blockState
}

func (t *relationshipTracker) enter()       { t.state = insideRelationship }
func (t *relationshipTracker) leave()       { t.state = outsideRelationship }
func (t *relationshipTracker) inside() bool { return t.state == insideRelationship }

// checkCardinalities validates bracketed cardinality tokens on "->" edges
// inside relationship blocks
func checkCardinalities(doc *erd.Document) []types.Issue {
	var issues []types.Issue

	var tracker relationshipTracker
	for _, line := range doc.Lines {
		if strings.HasPrefix(line.Trimmed, "relationship ") {
			tracker.enter()
		}
		if !tracker.inside() {
			continue
		}

		if strings.Contains(line.Raw, "->") {
			for _, segment := range strings.Split(line.Raw, "->") {
				if !strings.Contains(segment, "[") || !strings.Contains(segment, "]") {
					continue
				}
				if validCardinality(segment) {
					continue
				}
				issues = append(issues, types.Issue{
					RuleID:  "CARDINALITY",
					Message: fmt.Sprintf("Unrecognized cardinality on line %d: \"%s\"", line.Number, line.Trimmed),
					Line:    line.Number,
					Context: line.Trimmed,
				})
			}
		}

		if strings.HasSuffix(line.Trimmed, "}") {
			tracker.leave()
		}
	}

	return issues
}

// validCardinality reports whether a "->" segment carries a recognized
// cardinality token, plain or with a role designator
func validCardinality(segment string) bool {
	if cardinalityToken.MatchString(segment) {
		return true
	}
	return strings.Contains(segment, "|") && cardinalityRole.MatchString(segment)
}
