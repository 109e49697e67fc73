package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
	"github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
)

const (
	statsCacheKey = "meeting-summarizer:stats"

	maxTitleLength    = 200
	maxActionLength   = 500
	maxAssigneeLength = 100
)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo    repositories.MeetingRepository
	transcriptRepo repositories.TranscriptRepository
	summaryRepo    repositories.SummaryRepository
	actionRepo     repositories.ActionItemRepository
	provider       ai.Provider
	cache          cache.Cache
	statsTTL       time.Duration
	archive        AudioArchive
	logger         *zap.Logger
}

// Option configures optional MeetingService collaborators
type Option func(*MeetingService)

// WithCache caches stats for ttl
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *MeetingService) {
		s.cache = c
		s.statsTTL = ttl
	}
}

// WithArchive stores uploaded audio in archive
func WithArchive(archive AudioArchive) Option {
	return func(s *MeetingService) {
		s.archive = archive
	}
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	transcriptRepo repositories.TranscriptRepository,
	summaryRepo repositories.SummaryRepository,
	actionRepo repositories.ActionItemRepository,
	provider ai.Provider,
	logger *zap.Logger,
	opts ...Option,
) *MeetingService {
	s := &MeetingService{
		meetingRepo:    meetingRepo,
		transcriptRepo: transcriptRepo,
		summaryRepo:    summaryRepo,
		actionRepo:     actionRepo,
		provider:       provider,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProviderName returns the active provider name
func (s *MeetingService) ProviderName() string {
	return s.provider.Name()
}

// CreateMeeting creates a new meeting
func (s *MeetingService) CreateMeeting(ctx context.Context, title string) (*entities.Meeting, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title must be 1-%d characters", usecaseErrors.ErrInvalidInput, maxTitleLength)
	}

	meeting := entities.NewMeeting(title)
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	metrics.IncrementArtifactsCreated("meeting", 1)
	s.invalidateStats(ctx)
	return meeting, nil
}

// ListMeetings retrieves all meetings, newest first
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// GetMeeting retrieves a meeting with its transcript, summary and action items
func (s *MeetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// DeleteMeeting deletes a meeting and everything derived from it. Archived audio
// is removed best-effort after the rows are gone.
func (s *MeetingService) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	meeting, err := s.GetMeeting(ctx, id)
	if err != nil {
		return err
	}

	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	s.invalidateStats(ctx)

	if s.archive != nil && meeting.Transcript != nil && meeting.Transcript.AudioKey != nil {
		if err := s.archive.Delete(ctx, *meeting.Transcript.AudioKey); err != nil {
			s.logger.Warn("failed to remove archived audio",
				zap.String("meeting_id", id.String()),
				zap.String("audio_key", *meeting.Transcript.AudioKey),
				zap.Error(err),
			)
		}
	}
	return nil
}

// GetStats returns dashboard counters, served from cache when possible
func (s *MeetingService) GetStats(ctx context.Context) (*repositories.Stats, error) {
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, statsCacheKey); err != nil {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		} else if ok {
			var stats repositories.Stats
			if err := json.Unmarshal([]byte(raw), &stats); err == nil {
				metrics.RecordStatsCache(true)
				return &stats, nil
			}
		}
		metrics.RecordStatsCache(false)
	}

	stats, err := s.meetingRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, string(raw), s.statsTTL); err != nil {
				s.logger.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// Transcribe converts an uploaded recording into the meeting's transcript
func (s *MeetingService) Transcribe(ctx context.Context, input TranscribeInput) (*entities.Transcript, error) {
	if err := s.ensureMeeting(ctx, input.MeetingID); err != nil {
		return nil, err
	}

	if _, err := s.transcriptRepo.FindByMeetingID(ctx, input.MeetingID); err == nil {
		return nil, usecaseErrors.ErrTranscriptExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check transcript: %w", err)
	}

	if !IsSupportedContentType(input.ContentType) {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrUnsupportedMedia, input.ContentType)
	}

	text, err := s.provider.Transcribe(ctx, ai.Audio{
		Filename:    input.Filename,
		ContentType: input.ContentType,
		Data:        input.Data,
	})
	if err != nil {
		return nil, err
	}

	transcript := entities.NewTranscript(input.MeetingID, text, len(input.Data))

	if s.archive != nil {
		key, err := s.archive.Put(ctx, input.MeetingID, input.Filename, input.ContentType, input.Data)
		if err != nil {
			s.logger.Warn("failed to archive audio",
				zap.String("meeting_id", input.MeetingID.String()),
				zap.Error(err),
			)
		} else {
			transcript.AudioKey = &key
		}
	}

	if err := s.transcriptRepo.Create(ctx, transcript); err != nil {
		if transcript.AudioKey != nil {
			if delErr := s.archive.Delete(ctx, *transcript.AudioKey); delErr != nil {
				s.logger.Warn("failed to remove archived audio",
					zap.String("key", *transcript.AudioKey),
					zap.Error(delErr),
				)
			}
		}
		return nil, fmt.Errorf("failed to save transcript: %w", err)
	}

	metrics.IncrementArtifactsCreated("transcript", 1)
	s.invalidateStats(ctx)

	s.logger.Info("meeting transcribed",
		zap.String("meeting_id", input.MeetingID.String()),
		zap.String("provider", s.provider.Name()),
		zap.Int("duration_sec", transcript.DurationSec),
	)
	return transcript, nil
}

// GetTranscript retrieves the meeting's transcript
func (s *MeetingService) GetTranscript(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error) {
	transcript, err := s.transcriptRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return transcript, nil
}

// Summarize generates the meeting's summary and seeds its action items in one transaction
func (s *MeetingService) Summarize(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, []*entities.ActionItem, error) {
	if err := s.ensureMeeting(ctx, meetingID); err != nil {
		return nil, nil, err
	}

	transcript, err := s.transcriptRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, usecaseErrors.ErrTranscriptRequired
		}
		return nil, nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	if _, err := s.summaryRepo.FindByMeetingID(ctx, meetingID); err == nil {
		return nil, nil, usecaseErrors.ErrSummaryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("failed to check summary: %w", err)
	}

	data, err := s.provider.Summarize(ctx, transcript.Text)
	if err != nil {
		return nil, nil, err
	}
	data = ai.Normalize(data, s.logger)

	summary := entities.NewSummary(meetingID, data.Bullets, data.Decisions, data.Risks)
	items := make([]*entities.ActionItem, 0, len(data.Actions))
	for _, draft := range data.Actions {
		items = append(items, actionFromDraft(meetingID, draft))
	}

	if err := s.summaryRepo.CreateWithActions(ctx, summary, items); err != nil {
		return nil, nil, fmt.Errorf("failed to save summary: %w", err)
	}

	metrics.IncrementArtifactsCreated("summary", 1)
	metrics.IncrementArtifactsCreated("action_item", len(items))
	s.invalidateStats(ctx)

	s.logger.Info("meeting summarized",
		zap.String("meeting_id", meetingID.String()),
		zap.String("provider", s.provider.Name()),
		zap.Int("bullets", len(summary.Bullets)),
		zap.Int("action_items", len(items)),
	)
	return summary, items, nil
}

// GetSummary retrieves the meeting's summary
func (s *MeetingService) GetSummary(ctx context.Context, meetingID uuid.UUID) (*entities.Summary, error) {
	summary, err := s.summaryRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return summary, nil
}

// ListMeetingActions retrieves a meeting's action items
func (s *MeetingService) ListMeetingActions(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	if err := s.ensureMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	items, err := s.actionRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// CreateAction adds an action item to a meeting
func (s *MeetingService) CreateAction(ctx context.Context, input CreateActionInput) (*entities.ActionItem, error) {
	if err := s.ensureMeeting(ctx, input.MeetingID); err != nil {
		return nil, err
	}

	text, err := validateText(input.Text)
	if err != nil {
		return nil, err
	}

	item := entities.NewActionItem(input.MeetingID, text)
	if input.Status != "" {
		status := entities.ActionStatus(input.Status)
		if !status.IsValid() {
			return nil, &usecaseErrors.InvalidStatusError{Status: input.Status}
		}
		item.Status = status
	}
	if err := applyAssignee(item, input.Assignee); err != nil {
		return nil, err
	}
	if err := applyDueDate(item, input.DueDate); err != nil {
		return nil, err
	}

	if err := s.actionRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}

	metrics.IncrementArtifactsCreated("action_item", 1)
	s.invalidateStats(ctx)
	return item, nil
}

// UpdateAction changes the provided fields of an action item
func (s *MeetingService) UpdateAction(ctx context.Context, id uuid.UUID, input UpdateActionInput) (*entities.ActionItem, error) {
	item, err := s.findAction(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		text, err := validateText(*input.Text)
		if err != nil {
			return nil, err
		}
		item.Text = text
	}
	if input.Status != nil {
		status := entities.ActionStatus(*input.Status)
		if !status.IsValid() {
			return nil, &usecaseErrors.InvalidStatusError{Status: *input.Status}
		}
		item.Status = status
	}
	if err := applyAssignee(item, input.Assignee); err != nil {
		return nil, err
	}
	if err := applyDueDate(item, input.DueDate); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()

	if err := s.actionRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// DeleteAction deletes an action item
func (s *MeetingService) DeleteAction(ctx context.Context, id uuid.UUID) error {
	if err := s.actionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrActionItemNotFound
		}
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	s.invalidateStats(ctx)
	return nil
}

// ListActions retrieves action items across meetings
func (s *MeetingService) ListActions(ctx context.Context, input ListActionsInput) ([]*entities.ActionItem, error) {
	var filters repositories.ActionItemFilters
	if input.Status != "" {
		status := entities.ActionStatus(input.Status)
		if !status.IsValid() {
			return nil, &usecaseErrors.InvalidStatusError{Status: input.Status}
		}
		filters.Status = &status
	}
	if input.Assignee != "" {
		assignee := input.Assignee
		filters.Assignee = &assignee
	}

	items, err := s.actionRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

func (s *MeetingService) ensureMeeting(ctx context.Context, id uuid.UUID) error {
	exists, err := s.meetingRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check meeting: %w", err)
	}
	if !exists {
		return usecaseErrors.ErrMeetingNotFound
	}
	return nil
}

func (s *MeetingService) findAction(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	item, err := s.actionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}
	return item, nil
}

func (s *MeetingService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

// IsSupportedContentType accepts audio/* and application/octet-stream
func IsSupportedContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(ct, "audio/") || strings.HasPrefix(ct, "application/octet-stream")
}

func actionFromDraft(meetingID uuid.UUID, draft ai.ActionDraft) *entities.ActionItem {
	item := entities.NewActionItem(meetingID, truncate(draft.Text, maxActionLength))
	item.Status = entities.ActionStatus(draft.Status)
	if draft.Assignee != nil {
		assignee := truncate(*draft.Assignee, maxAssigneeLength)
		item.Assignee = &assignee
	}
	if draft.DueDate != nil {
		if d, err := entities.ParseDueDate(*draft.DueDate); err == nil {
			item.DueDate = d
		}
	}
	return item
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > maxActionLength {
		return "", fmt.Errorf("%w: text must be 1-%d characters", usecaseErrors.ErrInvalidInput, maxActionLength)
	}
	return text, nil
}

func applyAssignee(item *entities.ActionItem, assignee *string) error {
	if assignee == nil {
		return nil
	}
	name := strings.TrimSpace(*assignee)
	if utf8.RuneCountInString(name) > maxAssigneeLength {
		return fmt.Errorf("%w: assignee must be at most %d characters", usecaseErrors.ErrInvalidInput, maxAssigneeLength)
	}
	if name == "" {
		item.Assignee = nil
		return nil
	}
	item.Assignee = &name
	return nil
}

func applyDueDate(item *entities.ActionItem, dueDate *string) error {
	if dueDate == nil {
		return nil
	}
	if strings.TrimSpace(*dueDate) == "" {
		item.DueDate = nil
		return nil
	}
	d, err := entities.ParseDueDate(strings.TrimSpace(*dueDate))
	if err != nil {
		return fmt.Errorf("%w: due_date must be YYYY-MM-DD", usecaseErrors.ErrInvalidInput)
	}
	item.DueDate = d
	return nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

var _ Service = (*MeetingService)(nil)
