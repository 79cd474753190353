package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "abc", Document{"_id": "abc"}.ID())
	assert.Equal(t, "", Document{}.ID())
	assert.Equal(t, "", Document{"_id": 42}.ID())
	assert.Equal(t, "", Document(nil).ID())
}

func TestDocumentClone(t *testing.T) {
	doc := Document{"_id": "1", "text": "hi"}
	clone := doc.Clone()

	clone["text"] = "bye"
	assert.Equal(t, "hi", doc["text"])
	assert.Equal(t, "bye", clone["text"])
}

func TestDocumentClone_NilIsAssignable(t *testing.T) {
	clone := Document(nil).Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone)

	clone["_id"] = "1"
	assert.Equal(t, "1", clone.ID())
}
