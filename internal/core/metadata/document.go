// Package metadata detects inline script metadata blocks (# /// script ... # ///)
// in single-file Python scripts and answers position queries against them.
//
// Everything in this package is a pure function over a Document snapshot: no I/O,
// no errors, no shared state. Callers may invoke these from every keystroke.
package metadata

import "strings"

// Document is an immutable line-indexed view of a text buffer.
type Document struct {
	lines []string
}

// Position addresses a point in a Document. Line and Char are zero-based;
// Char is a byte offset within the line.
type Position struct {
	Line int `json:"line"`
	Char int `json:"char"`
}

// NewDocument splits text into lines. Both \n and \r\n endings are handled;
// the line terminators themselves are not part of any line.
func NewDocument(text string) Document {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Document{lines: lines}
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of line i, or "" when i is out of range.
func (d Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Window returns the first n lines joined as a single blob. Documents shorter
// than n return their full content.
func (d Document) Window(n int) string {
	if n > len(d.lines) {
		n = len(d.lines)
	}
	if n <= 0 {
		return ""
	}
	return strings.Join(d.lines[:n], "\n")
}
