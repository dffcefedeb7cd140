package erd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Document represents one ERD source file as an ordered line sequence
type Document struct {
	Path  string
	Lines []Line
}

// Line is a single source line with its 1-based number
type Line struct {
	Number  int
	Raw     string
	Trimmed string
}

// Load reads the file at path and splits it into lines
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Parse(path, data)
}

// Parse splits raw file contents into a Document
func Parse(path string, data []byte) (*Document, error) {
	doc := &Document{
		Path:  path,
		Lines: []Line{},
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()

		doc.Lines = append(doc.Lines, Line{
			Number:  lineNum,
			Raw:     raw,
			Trimmed: strings.TrimSpace(raw),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}
