package ai

import (
	"context"
	"time"
)

// MockTranscript is the fixed transcript returned by the mock provider
const MockTranscript = `Good morning everyone, welcome to our weekly team meeting.

John: Let's start with the Q3 sales results. We exceeded our targets by 15%, which is fantastic news. The new marketing campaign really paid off.

Sarah: That's great to hear. On the customer side, our satisfaction scores improved to 4.8 out of 5. We still need to update the customer feedback process though.

Mike: For engineering, the product launch is scheduled for next month. We need to complete all testing by next Friday. The security audit is still pending and could affect the timeline.

John: Good. Marketing will start the new campaign the following Monday. I'll take the Q4 sales forecast.

Sarah: I'll own the feedback process update.

Mike: The engineering team will finish the security audit and the final product testing.

John: One last thing, the company holiday party is next month. Thanks everyone.`

// MockProvider returns deterministic fixtures after a simulated delay
type MockProvider struct {
	transcribeDelay time.Duration
	summarizeDelay  time.Duration
}

// NewMockProvider creates a mock provider. Summaries take twice the transcription delay.
func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{
		transcribeDelay: delay,
		summarizeDelay:  2 * delay,
	}
}

func (p *MockProvider) Name() string { return ProviderMock }

func (p *MockProvider) Transcribe(ctx context.Context, _ Audio) (string, error) {
	if err := sleep(ctx, p.transcribeDelay); err != nil {
		return "", transcribeError(ProviderMock, 0, err)
	}
	return MockTranscript, nil
}

func (p *MockProvider) Summarize(ctx context.Context, _ string) (*SummaryData, error) {
	if err := sleep(ctx, p.summarizeDelay); err != nil {
		return nil, summarizeError(ProviderMock, 0, err)
	}
	return MockSummary(), nil
}

// MockSummary returns the fixed summary of MockTranscript
func MockSummary() *SummaryData {
	john, sarah, eng := "John", "Sarah", "Engineering Team"
	return &SummaryData{
		Bullets: []string{
			"Q3 sales exceeded targets by 15%",
			"New marketing campaign was successful",
			"Customer satisfaction scores improved to 4.8/5",
			"Product launch scheduled for next month",
			"Company holiday party next month",
		},
		Decisions: []string{
			"Engineering team to complete testing by next Friday",
			"Marketing campaign to start the following Monday",
			"Q4 forecast preparation assigned to John",
		},
		Risks: []string{
			"Security audit completion timeline",
			"Customer feedback process updates needed",
		},
		Actions: []ActionDraft{
			{Text: "Prepare Q4 sales forecast", Assignee: &john, Status: StatusOpen},
			{Text: "Update customer feedback process", Assignee: &sarah, Status: StatusOpen},
			{Text: "Complete security audit", Assignee: &eng, Status: StatusOpen},
			{Text: "Finalize product testing", Assignee: &eng, Status: StatusOpen},
		},
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
