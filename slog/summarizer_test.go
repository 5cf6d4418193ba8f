package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/awalczak/govnotice/mock"
	govslog "github.com/awalczak/govnotice/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs title, size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, title, content string) (string, error) {
				return "A short summary.", nil
			},
		}

		svc := govslog.NewLoggingSummarizer(inner, logger)
		summary, err := svc.Summarize(context.Background(), "Road closure notice", "Main street closes Monday.")

		require.NoError(t, err)
		assert.Equal(t, "A short summary.", summary)
		output := buf.String()
		assert.Contains(t, output, "summarize")
		assert.Contains(t, output, "title=\"Road closure notice\"")
		assert.Contains(t, output, "bytes=16")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, title, content string) (string, error) {
				return "", errors.New("model unavailable")
			},
		}

		svc := govslog.NewLoggingSummarizer(inner, logger)
		_, err := svc.Summarize(context.Background(), "Road closure notice", "Main street closes Monday.")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"model unavailable\"")
	})
}
