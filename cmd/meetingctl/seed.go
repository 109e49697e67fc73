package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/database"
)

const sampleTranscript = `Welcome to our weekly team standup. Today we're reviewing Q3 performance and planning Q4.

John: Q3 sales exceeded targets by 15%. The new marketing campaign was very successful.
Sarah: Customer satisfaction scores are up to 4.8 out of 5. Great feedback on the new features.
Mike: Engineering team completed 3 major features on schedule. Security audit is 80% complete.

We discussed the upcoming product launch. Engineering needs to finish testing by next Friday.
Marketing will start the campaign the following Monday.

Action items: John to prepare Q4 forecast, Sarah to update customer feedback process,
Engineering team to complete security audit and final testing.

Meeting concluded with reminder about company holiday party next month.`

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a sample meeting with transcript, summary and action items",
	Long:  `seed inserts one fully processed sample meeting. It does nothing when any meeting already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.CloseDB(db)

		meeting, err := seedSample(cmd.Context(), db, time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if meeting == nil {
			fmt.Fprintln(out, "Database already seeded. Skipping...")
			return nil
		}
		fmt.Fprintf(out, "Created sample meeting: %s (%s)\n", meeting.Title, meeting.ID)
		fmt.Fprintf(out, "Created transcript with %d characters\n", len(meeting.Transcript.Text))
		fmt.Fprintf(out, "Created summary with %d bullet points\n", len(meeting.Summary.Bullets))
		fmt.Fprintf(out, "Created %d action items\n", len(meeting.ActionItems))
		return nil
	},
}

// seedSample writes the sample meeting and returns it, or nil when meetings already exist
func seedSample(ctx context.Context, db *gorm.DB, now time.Time) (*entities.Meeting, error) {
	meetingRepo := repository.NewMeetingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	stats, err := meetingRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting meetings: %w", err)
	}
	if stats.TotalMeetings > 0 {
		return nil, nil
	}

	meeting := entities.NewMeeting("Weekly Team Standup - Q3 Review")
	if err := meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("creating meeting: %w", err)
	}

	transcript := entities.NewTranscript(meeting.ID, sampleTranscript, 0)
	transcript.DurationSec = 1800
	if err := transcriptRepo.Create(ctx, transcript); err != nil {
		return nil, fmt.Errorf("creating transcript: %w", err)
	}

	summary := entities.NewSummary(meeting.ID,
		[]string{
			"Q3 sales exceeded targets by 15%",
			"New marketing campaign was successful",
			"Customer satisfaction improved to 4.8/5",
			"3 major features completed on schedule",
			"Security audit 80% complete",
			"Product launch scheduled for next month",
		},
		[]string{
			"Engineering team to complete testing by next Friday",
			"Marketing campaign to start the following Monday",
			"Q4 forecast preparation assigned to John",
		},
		[]string{
			"Security audit completion timeline",
			"Customer feedback process updates needed",
		},
	)

	samples := []struct {
		text     string
		assignee string
		dueDays  int
		status   entities.ActionStatus
	}{
		{"Prepare Q4 sales forecast", "John", 7, entities.ActionStatusOpen},
		{"Update customer feedback process", "Sarah", 5, entities.ActionStatusOpen},
		{"Complete security audit", "Engineering Team", 3, entities.ActionStatusInProgress},
		{"Finalize product testing", "Engineering Team", 7, entities.ActionStatusOpen},
	}
	items := make([]*entities.ActionItem, 0, len(samples))
	for _, s := range samples {
		item := entities.NewActionItem(meeting.ID, s.text)
		assignee := s.assignee
		item.Assignee = &assignee
		due := datatypes.Date(now.AddDate(0, 0, s.dueDays))
		item.DueDate = &due
		item.Status = s.status
		items = append(items, item)
	}

	if err := summaryRepo.CreateWithActions(ctx, summary, items); err != nil {
		return nil, fmt.Errorf("creating summary: %w", err)
	}

	meeting.Transcript = transcript
	meeting.Summary = summary
	for _, item := range items {
		meeting.ActionItems = append(meeting.ActionItems, *item)
	}
	return meeting, nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
