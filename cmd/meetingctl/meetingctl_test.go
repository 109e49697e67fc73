package main

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entities.Meeting{}, &entities.Transcript{}, &entities.Summary{}, &entities.ActionItem{}))
	return db
}

func TestSeedSample(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	m, err := seedSample(ctx, db, now)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Weekly Team Standup - Q3 Review", m.Title)

	stored, err := repository.NewMeetingRepository(db).FindByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Transcript)
	assert.Equal(t, 1800, stored.Transcript.DurationSec)
	require.NotNil(t, stored.Summary)
	assert.Len(t, stored.Summary.Bullets, 6)
	assert.Len(t, stored.Summary.Decisions, 3)
	require.Len(t, stored.ActionItems, 4)

	inProgress := 0
	for _, item := range stored.ActionItems {
		if item.Status == entities.ActionStatusInProgress {
			inProgress++
			assert.Equal(t, "2025-07-04", item.DueDateString())
		}
	}
	assert.Equal(t, 1, inProgress)

	again, err := seedSample(ctx, db, now)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestMigrationPlan(t *testing.T) {
	dir, max := migrationPlan("up", 0)
	assert.Equal(t, migrate.Up, dir)
	assert.Equal(t, 0, max)

	dir, max = migrationPlan("down", 0)
	assert.Equal(t, migrate.Down, dir)
	assert.Equal(t, 1, max)

	dir, max = migrationPlan("down", 3)
	assert.Equal(t, migrate.Down, dir)
	assert.Equal(t, 3, max)
}

func TestMigrateCommandArgs(t *testing.T) {
	assert.Error(t, migrateCmd.Args(migrateCmd, []string{"sideways"}))
	assert.Error(t, migrateCmd.Args(migrateCmd, nil))
	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"up"}))
}
