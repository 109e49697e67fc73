package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Omit("Transcript", "Summary", "ActionItems").Create(meeting).Error
}

// FindByID retrieves a meeting with its transcript, summary and action items
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Transcript").
		Preload("Summary").
		Preload("ActionItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Exists reports whether a meeting with id exists
func (r *meetingRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// List retrieves all meetings, newest first
func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&meetings).Error
	return meetings, err
}

// Delete removes the meeting's action items, summary and transcript, then the meeting
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.ActionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.Summary{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.Transcript{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&entities.Meeting{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Stats aggregates counts over all meetings
func (r *meetingRepository) Stats(ctx context.Context) (*repositories.Stats, error) {
	var stats repositories.Stats
	db := r.db.WithContext(ctx)

	if err := db.Model(&entities.Meeting{}).Count(&stats.TotalMeetings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.Transcript{}).Distinct("meeting_id").Count(&stats.TranscribedCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.Summary{}).Distinct("meeting_id").Count(&stats.SummarizedCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.ActionItem{}).Count(&stats.ActionItemsCount).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
