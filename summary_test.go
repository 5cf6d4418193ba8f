package govnotice_test

import (
	"strings"
	"testing"

	"github.com/awalczak/govnotice"
	"github.com/stretchr/testify/assert"
)

func TestFallbackSummary(t *testing.T) {
	t.Parallel()

	t.Run("short content returned verbatim", func(t *testing.T) {
		t.Parallel()

		content := "Applications close on Friday."
		assert.Equal(t, content, govnotice.FallbackSummary(content))
	})

	t.Run("exactly 200 bytes returned verbatim", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("x", 200)
		assert.Equal(t, content, govnotice.FallbackSummary(content))
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("x", 201)
		got := govnotice.FallbackSummary(content)
		assert.Equal(t, strings.Repeat("x", 200)+"...", got)
		assert.Len(t, got, 203)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("notice ", 100)
		assert.Equal(t, govnotice.FallbackSummary(content), govnotice.FallbackSummary(content))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", govnotice.Truncate("abc", 10))
	assert.Equal(t, "ab", govnotice.Truncate("abcd", 2))
	assert.Equal(t, "", govnotice.Truncate("abcd", 0))

	// Never splits a multi-byte rune.
	s := "aé" // 'é' is two bytes starting at index 1
	assert.Equal(t, "a", govnotice.Truncate(s, 2))
}
