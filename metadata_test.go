package govnotice_test

import (
	"strings"
	"testing"

	"github.com/awalczak/govnotice"
	"github.com/stretchr/testify/assert"
)

// words builds a space-joined string of n single-letter words.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("w ", n))
}

func TestComputeMetadata(t *testing.T) {
	t.Parallel()

	t.Run("short content", func(t *testing.T) {
		t.Parallel()

		meta := govnotice.ComputeMetadata("a b c")
		assert.Equal(t, 3, meta.WordCount)
		assert.Equal(t, 1, meta.ReadingTime)
		assert.Equal(t, govnotice.ImportanceLow, meta.Importance)
	})

	t.Run("empty content counts one token", func(t *testing.T) {
		t.Parallel()

		// Split on a single space yields [""] for empty input; the word
		// count floor keeps reading time at one minute.
		meta := govnotice.ComputeMetadata("")
		assert.Equal(t, 1, meta.WordCount)
		assert.Equal(t, 1, meta.ReadingTime)
		assert.Equal(t, govnotice.ImportanceLow, meta.Importance)
	})

	t.Run("reading time rounds up", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1, govnotice.ComputeMetadata(words(200)).ReadingTime)
		assert.Equal(t, 2, govnotice.ComputeMetadata(words(201)).ReadingTime)
		assert.Equal(t, 3, govnotice.ComputeMetadata(words(401)).ReadingTime)
	})

	t.Run("importance tiers", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			wordCount int
			want      govnotice.Importance
		}{
			{50, govnotice.ImportanceLow},
			{200, govnotice.ImportanceLow},
			{201, govnotice.ImportanceMedium},
			{300, govnotice.ImportanceMedium},
			{500, govnotice.ImportanceMedium},
			{501, govnotice.ImportanceHigh},
			{700, govnotice.ImportanceHigh},
		}
		for _, tt := range tests {
			meta := govnotice.ComputeMetadata(words(tt.wordCount))
			assert.Equal(t, tt.wordCount, meta.WordCount)
			assert.Equal(t, tt.want, meta.Importance, "wordCount=%d", tt.wordCount)
		}
	})

	t.Run("consecutive spaces count as extra tokens", func(t *testing.T) {
		t.Parallel()

		// Naive split semantics, preserved deliberately.
		assert.Equal(t, 4, govnotice.ComputeMetadata("a  b c").WordCount)
	})
}
