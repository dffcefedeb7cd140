package analyzer

import (
	"github.com/Yun525/ERD/internal/config"
	"github.com/Yun525/ERD/internal/erd"
	"github.com/Yun525/ERD/internal/quoting"
	"github.com/Yun525/ERD/internal/rules"
	"github.com/Yun525/ERD/internal/types"
)

// Analyzer runs the lightweight syntax checks over one ERD file
type Analyzer struct {
	ruleEngine  *rules.Engine
	quotingScan *quoting.Scanner
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(configPath string) (*Analyzer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	engine := rules.NewEngine()
	engine.ApplyConfig(cfg)

	scanner := quoting.NewScanner()
	scanner.ApplyConfig(cfg)

	return &Analyzer{
		ruleEngine:  engine,
		quotingScan: scanner,
	}, nil
}

// Analyze validates the file at the given path
func (a *Analyzer) Analyze(filePath string) ([]types.Issue, error) {
	doc, err := erd.Load(filePath)
	if err != nil {
		return nil, err
	}

	return a.AnalyzeDocument(doc), nil
}

// AnalyzeDocument runs all checks over an already-loaded document. The
// rule engine runs first, the quoting scan last; discovery order is kept.
func (a *Analyzer) AnalyzeDocument(doc *erd.Document) []types.Issue {
	var issues []types.Issue

	issues = append(issues, a.ruleEngine.Check(doc)...)
	issues = append(issues, a.quotingScan.Scan(doc)...)

	return issues
}
