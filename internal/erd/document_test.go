package erd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("numbers and trims lines", func(t *testing.T) {
		doc, err := Parse("model.erd", []byte("erdiagram Shop\n  entity Order {\n}\n"))
		require.NoError(t, err)

		require.Len(t, doc.Lines, 3)
		assert.Equal(t, 1, doc.Lines[0].Number)
		assert.Equal(t, "erdiagram Shop", doc.Lines[0].Raw)
		assert.Equal(t, "  entity Order {", doc.Lines[1].Raw)
		assert.Equal(t, "entity Order {", doc.Lines[1].Trimmed)
		assert.Equal(t, 3, doc.Lines[2].Number)
	})

	t.Run("empty input yields no lines", func(t *testing.T) {
		doc, err := Parse("empty.erd", nil)
		require.NoError(t, err)
		assert.Empty(t, doc.Lines)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		doc, err := Parse("model.erd", []byte("erdiagram Shop"))
		require.NoError(t, err)
		require.Len(t, doc.Lines, 1)
		assert.Equal(t, "erdiagram Shop", doc.Lines[0].Raw)
	})

	t.Run("carriage returns are stripped", func(t *testing.T) {
		doc, err := Parse("model.erd", []byte("erdiagram Shop\r\nnotation=crowsfoot\r\n"))
		require.NoError(t, err)
		require.Len(t, doc.Lines, 2)
		assert.Equal(t, "erdiagram Shop", doc.Lines[0].Raw)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.erd")
		require.NoError(t, os.WriteFile(path, []byte("erdiagram Shop\n"), 0o644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		require.Len(t, doc.Lines, 1)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.erd"))
		assert.Error(t, err)
	})
}
