package meeting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
	"github.com/johnquangdev/meeting-summarizer/pkg/ai"
)

// fakeProvider wraps the mock fixtures and counts calls
type fakeProvider struct {
	transcribeCalls int
	summarizeCalls  int
	transcribeErr   error
	summary         *ai.SummaryData
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Transcribe(ctx context.Context, audio ai.Audio) (string, error) {
	p.transcribeCalls++
	if p.transcribeErr != nil {
		return "", p.transcribeErr
	}
	return ai.MockTranscript, nil
}

func (p *fakeProvider) Summarize(ctx context.Context, transcript string) (*ai.SummaryData, error) {
	p.summarizeCalls++
	if p.summary != nil {
		return p.summary, nil
	}
	return ai.MockSummary(), nil
}

type fakeArchive struct {
	objects map[string][]byte
	putErr  error
}

func (a *fakeArchive) Put(_ context.Context, meetingID uuid.UUID, filename, _ string, data []byte) (string, error) {
	if a.putErr != nil {
		return "", a.putErr
	}
	key := "meetings/" + meetingID.String() + "/" + filename
	a.objects[key] = data
	return key, nil
}

func (a *fakeArchive) Delete(_ context.Context, key string) error {
	delete(a.objects, key)
	return nil
}

// failingTranscriptRepo rejects every insert
type failingTranscriptRepo struct {
	repositories.TranscriptRepository
}

func (failingTranscriptRepo) Create(context.Context, *entities.Transcript) error {
	return errors.New("disk full")
}

type testEnv struct {
	db       *gorm.DB
	svc      *MeetingService
	provider *fakeProvider
	archive  *fakeArchive
	store    *cache.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entities.Meeting{}, &entities.Transcript{}, &entities.Summary{}, &entities.ActionItem{}))

	env := &testEnv{
		db:       db,
		provider: &fakeProvider{},
		archive:  &fakeArchive{objects: map[string][]byte{}},
		store:    cache.NewMemoryStore(),
	}
	t.Cleanup(func() { env.store.Close() })

	env.svc = NewMeetingService(
		repository.NewMeetingRepository(db),
		repository.NewTranscriptRepository(db),
		repository.NewSummaryRepository(db),
		repository.NewActionItemRepository(db),
		env.provider,
		zap.NewNop(),
		WithCache(env.store, time.Minute),
		WithArchive(env.archive),
	)
	return env
}

func (env *testEnv) createTranscribed(t *testing.T, title string) *entities.Meeting {
	t.Helper()
	ctx := context.Background()
	m, err := env.svc.CreateMeeting(ctx, title)
	require.NoError(t, err)
	_, err = env.svc.Transcribe(ctx, TranscribeInput{
		MeetingID:   m.ID,
		Filename:    "standup.wav",
		ContentType: "audio/wav",
		Data:        make([]byte, 96000),
	})
	require.NoError(t, err)
	return m
}

func TestCreateMeeting_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateMeeting(ctx, "   ")
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	_, err = env.svc.CreateMeeting(ctx, strings.Repeat("x", 201))
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	m, err := env.svc.CreateMeeting(ctx, "  Sprint planning ")
	require.NoError(t, err)
	assert.Equal(t, "Sprint planning", m.Title)
}

func TestTranscribe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.createTranscribed(t, "Weekly")

	transcript, err := env.svc.GetTranscript(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, ai.MockTranscript, transcript.Text)
	assert.Equal(t, 3, transcript.DurationSec)
	require.NotNil(t, transcript.AudioKey)
	assert.Contains(t, env.archive.objects, *transcript.AudioKey)

	_, err = env.svc.Transcribe(ctx, TranscribeInput{MeetingID: m.ID, ContentType: "audio/wav", Data: []byte{1}})
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptExists)
	assert.Equal(t, 1, env.provider.transcribeCalls)
}

func TestTranscribe_RejectsBeforeProviderCall(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Transcribe(ctx, TranscribeInput{MeetingID: uuid.New(), ContentType: "audio/wav"})
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	m, err := env.svc.CreateMeeting(ctx, "Weekly")
	require.NoError(t, err)

	_, err = env.svc.Transcribe(ctx, TranscribeInput{MeetingID: m.ID, ContentType: "text/plain", Data: []byte("hi")})
	assert.ErrorIs(t, err, usecaseErrors.ErrUnsupportedMedia)
	assert.Contains(t, err.Error(), "text/plain")
	assert.Equal(t, 0, env.provider.transcribeCalls)
}

func TestTranscribe_ProviderFailureStoresNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.provider.transcribeErr = &ai.ProviderError{Provider: "openai", Op: ai.OpTranscribe, StatusCode: 500, Err: errors.New("boom")}

	m, err := env.svc.CreateMeeting(ctx, "Weekly")
	require.NoError(t, err)

	_, err = env.svc.Transcribe(ctx, TranscribeInput{MeetingID: m.ID, ContentType: "application/octet-stream", Data: []byte("x")})
	var provErr *ai.ProviderError
	require.True(t, errors.As(err, &provErr))

	_, err = env.svc.GetTranscript(ctx, m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptNotFound)
	assert.Empty(t, env.archive.objects)
}

func TestTranscribe_ArchiveFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	env.archive.putErr = errors.New("bucket offline")
	m := env.createTranscribed(t, "Weekly")

	transcript, err := env.svc.GetTranscript(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Nil(t, transcript.AudioKey)
}

func TestSummarize_RequiresTranscript(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.Summarize(ctx, uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	m, err := env.svc.CreateMeeting(ctx, "Weekly")
	require.NoError(t, err)

	_, _, err = env.svc.Summarize(ctx, m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptRequired)
	assert.Equal(t, 0, env.provider.summarizeCalls)
}

func TestSummarize_SeedsActionsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.createTranscribed(t, "Weekly")

	summary, items, err := env.svc.Summarize(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Bullets, 5)
	assert.Len(t, items, 4)

	_, _, err = env.svc.Summarize(ctx, m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrSummaryExists)
	assert.Equal(t, 1, env.provider.summarizeCalls)

	actions, err := env.svc.ListMeetingActions(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, actions, 4)
}

func TestSummarize_NormalizesDrafts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	due, bad := "2025-12-01", "soon"
	env.provider.summary = &ai.SummaryData{
		Bullets: []string{"Only bullet"},
		Actions: []ai.ActionDraft{
			{Text: ""},
			{Text: "Send notes", DueDate: &due, Status: "in_progress"},
			{Text: "Chase vendor", DueDate: &bad, Status: "whenever"},
		},
	}
	m := env.createTranscribed(t, "Weekly")

	_, items, err := env.svc.Summarize(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, entities.ActionStatusInProgress, items[0].Status)
	assert.Equal(t, "2025-12-01", items[0].DueDateString())
	assert.Equal(t, entities.ActionStatusOpen, items[1].Status)
	assert.Nil(t, items[1].DueDate)
}

func TestDeleteMeeting_Cascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.createTranscribed(t, "Weekly")
	_, _, err := env.svc.Summarize(ctx, m.ID)
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteMeeting(ctx, m.ID))

	_, err = env.svc.GetMeeting(ctx, m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
	_, err = env.svc.GetTranscript(ctx, m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptNotFound)
	_, err = env.svc.GetSummary(ctx, m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrSummaryNotFound)
	all, err := env.svc.ListActions(ctx, ListActionsInput{})
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, env.archive.objects)

	assert.ErrorIs(t, env.svc.DeleteMeeting(ctx, m.ID), usecaseErrors.ErrMeetingNotFound)
}

func TestActionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m, err := env.svc.CreateMeeting(ctx, "Weekly")
	require.NoError(t, err)

	_, err = env.svc.CreateAction(ctx, CreateActionInput{MeetingID: m.ID, Text: "Book room", Status: "done"})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidStatus)
	var statusErr *usecaseErrors.InvalidStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "done", statusErr.Status)

	_, err = env.svc.CreateAction(ctx, CreateActionInput{MeetingID: uuid.New(), Text: "Book room"})
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	kim := "Kim"
	item, err := env.svc.CreateAction(ctx, CreateActionInput{MeetingID: m.ID, Text: "Book room", Assignee: &kim})
	require.NoError(t, err)
	assert.Equal(t, entities.ActionStatusOpen, item.Status)

	for _, status := range []string{"in_progress", "completed", "cancelled", "open"} {
		s := status
		updated, err := env.svc.UpdateAction(ctx, item.ID, UpdateActionInput{Status: &s})
		require.NoError(t, err, status)
		assert.Equal(t, entities.ActionStatus(status), updated.Status)
	}

	bogus := "archived"
	_, err = env.svc.UpdateAction(ctx, item.ID, UpdateActionInput{Status: &bogus})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidStatus)

	due := "2025-10-31"
	updated, err := env.svc.UpdateAction(ctx, item.ID, UpdateActionInput{DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, "Book room", updated.Text)
	require.NotNil(t, updated.Assignee)
	assert.Equal(t, "Kim", *updated.Assignee)
	assert.Equal(t, "2025-10-31", updated.DueDateString())
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	_, err = env.svc.UpdateAction(ctx, uuid.New(), UpdateActionInput{})
	assert.ErrorIs(t, err, usecaseErrors.ErrActionItemNotFound)

	require.NoError(t, env.svc.DeleteAction(ctx, item.ID))
	assert.ErrorIs(t, env.svc.DeleteAction(ctx, item.ID), usecaseErrors.ErrActionItemNotFound)
}

func TestListActions_Filters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.createTranscribed(t, "Weekly")
	_, _, err := env.svc.Summarize(ctx, m.ID)
	require.NoError(t, err)

	items, err := env.svc.ListActions(ctx, ListActionsInput{Assignee: "Engineering Team"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = env.svc.ListActions(ctx, ListActionsInput{Status: "completed"})
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = env.svc.ListActions(ctx, ListActionsInput{Status: "nope"})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidStatus)
}

func TestGetStats_CachedAndInvalidated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stats, err := env.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalMeetings)

	_, ok, _ := env.store.Get(ctx, statsCacheKey)
	assert.True(t, ok)

	m := env.createTranscribed(t, "Weekly")
	_, _, err = env.svc.Summarize(ctx, m.ID)
	require.NoError(t, err)

	stats, err = env.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalMeetings)
	assert.EqualValues(t, 1, stats.TranscribedCount)
	assert.EqualValues(t, 1, stats.SummarizedCount)
	assert.EqualValues(t, 4, stats.ActionItemsCount)
}

func TestTranscribe_SaveFailureRemovesArchivedAudio(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	svc := NewMeetingService(
		repository.NewMeetingRepository(env.db),
		failingTranscriptRepo{repository.NewTranscriptRepository(env.db)},
		repository.NewSummaryRepository(env.db),
		repository.NewActionItemRepository(env.db),
		env.provider,
		zap.NewNop(),
		WithArchive(env.archive),
	)

	m, err := svc.CreateMeeting(ctx, "Retro")
	require.NoError(t, err)

	_, err = svc.Transcribe(ctx, TranscribeInput{
		MeetingID:   m.ID,
		Filename:    "retro.wav",
		ContentType: "audio/wav",
		Data:        make([]byte, 32000),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, env.archive.objects)
}
