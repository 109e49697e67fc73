package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	id := uuid.MustParse("7d3c1c70-53a4-4b8e-9f61-0c5f0e6f2a11")

	key := ObjectKey(id, "Standup Recording.MP3")
	assert.True(t, strings.HasPrefix(key, "meetings/7d3c1c70-53a4-4b8e-9f61-0c5f0e6f2a11/"), key)
	assert.True(t, strings.HasSuffix(key, ".mp3"), key)

	key = ObjectKey(id, `C:\uploads\call.wav`)
	assert.True(t, strings.HasSuffix(key, ".wav"), key)
	assert.NotContains(t, key, "uploads")

	key = ObjectKey(id, "")
	assert.Len(t, key, len("meetings/")+36+1+36)

	assert.NotEqual(t, ObjectKey(id, "a.wav"), ObjectKey(id, "a.wav"))
}
