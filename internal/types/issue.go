package types

// Issue represents a single validation finding
type Issue struct {
	RuleID  string // HEADER, NOTATION, BRACES, DECL, CARDINALITY, QUOTING
	Message string // full human-readable text, line number included where relevant
	Line    int    // 1-based; 0 when the finding is not tied to a line
	Context string // trimmed source line, when applicable
}
