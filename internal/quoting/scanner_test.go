package quoting

import (
	"testing"

	"github.com/Yun525/ERD/internal/config"
	"github.com/Yun525/ERD/internal/erd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, content string) *erd.Document {
	t.Helper()
	doc, err := erd.Parse("test.erd", []byte(content))
	require.NoError(t, err)
	return doc
}

func TestScannerScan(t *testing.T) {
	t.Run("unquoted document passes", func(t *testing.T) {
		doc := mustParse(t, "erdiagram Shop\nentity Order {\n}\n")
		assert.Empty(t, NewScanner().Scan(doc))
	})

	t.Run("any quote character is flagged", func(t *testing.T) {
		doc := mustParse(t, "entity \"Order\" {\n")
		issues := NewScanner().Scan(doc)
		require.Len(t, issues, 1)
		assert.Equal(t, "Quoted identifiers or roles found on line 1: bigER prefers unquoted names; using quotes may cause parser errors", issues[0].Message)
		assert.Equal(t, 1, issues[0].Line)
	})

	t.Run("quotes in comments are not exempt", func(t *testing.T) {
		doc := mustParse(t, "erdiagram Shop\n// a \"quoted\" remark\n")
		issues := NewScanner().Scan(doc)
		require.Len(t, issues, 1)
		assert.Equal(t, 2, issues[0].Line)
	})

	t.Run("each quoted line reports once", func(t *testing.T) {
		doc := mustParse(t, "a \"x\" \"y\"\nb \"z\"\n")
		assert.Len(t, NewScanner().Scan(doc), 2)
	})
}

func TestScannerApplyConfig(t *testing.T) {
	scanner := NewScanner()
	scanner.ApplyConfig(&config.Config{Rules: map[string]config.RuleConfig{
		RuleID: {Disabled: true},
	}})

	doc := mustParse(t, "entity \"Order\" {\n")
	assert.Empty(t, scanner.Scan(doc))
}
