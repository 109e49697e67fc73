package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource_FindsEmbeddedMigrations(t *testing.T) {
	found, err := MigrationSource().FindMigrations()
	require.NoError(t, err)
	require.Len(t, found, 4)

	assert.Equal(t, "20250101000001_create_meetings.sql", found[0].Id)
	assert.Equal(t, "20250101000004_create_action_items.sql", found[3].Id)
	for _, m := range found {
		assert.NotEmpty(t, m.Up, m.Id)
		assert.NotEmpty(t, m.Down, m.Id)
	}
}
