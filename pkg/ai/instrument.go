package ai

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
	"go.uber.org/zap"
)

type instrumented struct {
	next   Provider
	logger *zap.Logger
}

// Instrument wraps p so every call is timed in Prometheus and logged
func Instrument(p Provider, logger *zap.Logger) Provider {
	return &instrumented{next: p, logger: logger}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Transcribe(ctx context.Context, audio Audio) (string, error) {
	start := time.Now()
	text, err := i.next.Transcribe(ctx, audio)
	i.observe(OpTranscribe, start, err,
		zap.String("filename", audio.Filename),
		zap.Int("bytes", len(audio.Data)),
	)
	return text, err
}

func (i *instrumented) Summarize(ctx context.Context, transcript string) (*SummaryData, error) {
	start := time.Now()
	data, err := i.next.Summarize(ctx, transcript)
	i.observe(OpSummarize, start, err, zap.Int("transcript_chars", len(transcript)))
	return data, err
}

func (i *instrumented) observe(op string, start time.Time, err error, fields ...zap.Field) {
	elapsed := time.Since(start)
	metrics.RecordProviderCall(i.next.Name(), op, err, elapsed)

	fields = append(fields,
		zap.String("provider", i.next.Name()),
		zap.String("operation", op),
		zap.Duration("duration", elapsed),
	)
	if err != nil {
		i.logger.Error("provider call failed", append(fields, zap.Error(err))...)
		return
	}
	i.logger.Info("provider call completed", fields...)
}
