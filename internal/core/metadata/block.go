package metadata

import (
	"regexp"
	"strings"
)

// headerWindow bounds how many leading lines are searched for an open marker.
// The block is declared at the top of the file by convention; scanning further
// would only cost time on large buffers.
const headerWindow = 20

var (
	// headerRe matches any line that begins with the open marker, with
	// arbitrary trailing content. Used for the cheap "is there a header at
	// all" probe over the leading window.
	headerRe = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*///[ \t]*script`)

	// openRe matches a line that is exactly the block-open marker.
	openRe = regexp.MustCompile(`^[ \t]*#[ \t]*///[ \t]*script[ \t]*$`)

	// closeRe matches a line that is exactly the block-close marker
	// (delimiter with no trailing kind keyword).
	closeRe = regexp.MustCompile(`^[ \t]*#[ \t]*///[ \t]*$`)
)

// HasHeader reports whether the first 20 lines of the document contain a
// metadata block open marker. Whitespace between the comment marker, the
// delimiter, and the "script" keyword is optional: "# /// script",
// "#/// script", "# ///script", and "#///script" all match.
func HasHeader(doc Document) bool {
	return headerRe.MatchString(doc.Window(headerWindow))
}

// InsideBlock reports whether pos lies inside the metadata block.
//
// Block policy: the open marker must occupy an entire line; an explicit close
// marker line closes the block; a non-comment line also closes it (a malformed
// block terminates early); once closed, the block never re-opens. The open
// line itself reports true, the close line reports false.
func InsideBlock(doc Document, pos Position) bool {
	// Cheap rejections first: this runs on every keystroke.
	if !isCommentLine(doc.Line(pos.Line)) {
		return false
	}
	if !HasHeader(doc) {
		return false
	}

	inside := false
	closed := false
	for i := 0; i <= pos.Line && i < doc.LineCount(); i++ {
		line := doc.Line(i)
		switch {
		case !inside && !closed && openRe.MatchString(line):
			inside = true
		case inside && (closeRe.MatchString(line) || !isCommentLine(line)):
			inside = false
			closed = true
		}
	}
	return inside
}

// isCommentLine reports whether the line's trimmed content starts with the
// comment marker.
func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}
