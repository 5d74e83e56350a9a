package metadata

import (
	"regexp"
	"strings"
)

// prefixRe captures a line's leading whitespace, comment marker, and the
// whitespace that follows it.
var prefixRe = regexp.MustCompile(`^[ \t]*#[ \t]*`)

// InsertSpec describes the text an editor should splice into the buffer at the
// requested position when the user presses Enter. The caller applies the edit;
// this package never mutates anything.
type InsertSpec struct {
	Text string `json:"text"`
}

// Continuation computes the newline insertion for pos. Outside the metadata
// block, or on a non-comment line, the result is a bare line break. Inside the
// block the current line's comment prefix is carried over so the block stays
// well-formed as the user types.
//
// The prefix is truncated at the cursor: pressing Enter in the middle of
// "# " keeps only what is left of the cursor. When the cursor sits at or
// before the line's first non-whitespace character, the prefix is inserted
// before the break instead, pushing the existing content down and leaving the
// new empty line first.
func Continuation(doc Document, pos Position) InsertSpec {
	line := doc.Line(pos.Line)
	if !isCommentLine(line) || !InsideBlock(doc, pos) {
		return InsertSpec{Text: "\n"}
	}

	prefix := prefixRe.FindString(line)
	if pos.Char >= 0 && pos.Char < len(prefix) {
		prefix = prefix[:pos.Char]
	}

	first := firstNonSpace(line)
	trimmed := strings.TrimLeft(line, " \t")
	if pos.Char <= first && strings.HasPrefix(trimmed, strings.TrimLeft(prefix, " \t")) {
		return InsertSpec{Text: prefix + "\n"}
	}

	return InsertSpec{Text: "\n" + prefix}
}

// firstNonSpace returns the index of the first byte that is not a space or
// tab, or len(line) for an all-whitespace line.
func firstNonSpace(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}
