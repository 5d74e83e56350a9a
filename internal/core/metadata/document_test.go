package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument(t *testing.T) {
	doc := NewDocument("one\ntwo\r\nthree")

	assert.Equal(t, 3, doc.LineCount())
	assert.Equal(t, "one", doc.Line(0))
	assert.Equal(t, "two", doc.Line(1), "carriage returns are stripped")
	assert.Equal(t, "three", doc.Line(2))

	assert.Equal(t, "", doc.Line(-1))
	assert.Equal(t, "", doc.Line(3))

	assert.Equal(t, "one\ntwo", doc.Window(2))
	assert.Equal(t, "one\ntwo\nthree", doc.Window(100))
	assert.Equal(t, "", doc.Window(0))
}

func TestDocument_Empty(t *testing.T) {
	doc := NewDocument("")

	// An empty string is a single empty line, mirroring how editors model it.
	assert.Equal(t, 1, doc.LineCount())
	assert.Equal(t, "", doc.Line(0))
}
