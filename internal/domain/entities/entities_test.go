package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, 1, EstimateDuration(0))
	assert.Equal(t, 1, EstimateDuration(BytesPerSecond-1))
	assert.Equal(t, 1, EstimateDuration(BytesPerSecond))
	assert.Equal(t, 1800, EstimateDuration(1800*BytesPerSecond))
}

func TestActionStatus_IsValid(t *testing.T) {
	for _, s := range []ActionStatus{ActionStatusOpen, ActionStatusInProgress, ActionStatusCompleted, ActionStatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range []ActionStatus{"", "done", "OPEN", "pending"} {
		assert.False(t, s.IsValid(), s)
	}
}

func TestParseDueDate(t *testing.T) {
	d, err := ParseDueDate("2025-11-30")
	require.NoError(t, err)

	item := NewActionItem(uuid.New(), "Book venue")
	item.DueDate = d
	assert.Equal(t, "2025-11-30", item.DueDateString())
	assert.Equal(t, ActionStatusOpen, item.Status)

	_, err = ParseDueDate("30/11/2025")
	assert.Error(t, err)
}

func TestNewSummary_EmptyLists(t *testing.T) {
	s := NewSummary(uuid.New(), []string{"one"}, nil, nil)
	assert.Equal(t, []string{"one"}, []string(s.Bullets))
	assert.NotNil(t, s.Decisions)
	assert.Len(t, s.Risks, 0)
}
