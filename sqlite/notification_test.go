package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/awalczak/govnotice"
	"github.com/awalczak/govnotice/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNotification returns a valid notification for tests, with a unique
// title per suffix so identity collisions are explicit.
func testNotification(suffix string) *govnotice.Notification {
	return &govnotice.Notification{
		Title:     "Water supply interruption " + suffix,
		Content:   "Maintenance work on Tuesday affects Ward 4 residents.",
		Summary:   "Water off Tuesday in Ward 4.",
		SourceURL: "https://city.example.gov/notices",
		Category:  govnotice.CategoryGeneral,
		Metadata: govnotice.Metadata{
			WordCount:   8,
			ReadingTime: 1,
			Importance:  govnotice.ImportanceLow,
		},
		IsActive: true,
	}
}

func TestNotificationService_CreateNotification(t *testing.T) {
	t.Parallel()

	t.Run("fills in generated fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		ctx := context.Background()

		n := testNotification("a")
		err := svc.CreateNotification(ctx, n)
		require.NoError(t, err)

		assert.NotEmpty(t, n.ID, "ID should be generated")
		assert.NotEmpty(t, n.ContentHash, "ContentHash should be generated")
		assert.Equal(t, "city.example.gov", n.SourceDomain)
		assert.False(t, n.ScrapedAt.IsZero(), "ScrapedAt should be set")
		assert.Equal(t, n.ScrapedAt, n.PublishedDate, "PublishedDate defaults to ScrapedAt")
	})

	t.Run("keeps a caller-supplied published date", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		ctx := context.Background()

		published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		n := testNotification("b")
		n.PublishedDate = published

		require.NoError(t, svc.CreateNotification(ctx, n))

		found, err := svc.FindNotificationByID(ctx, n.ID)
		require.NoError(t, err)
		assert.True(t, found.PublishedDate.Equal(published))
	})

	t.Run("defaults empty category to general", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		ctx := context.Background()

		n := testNotification("c")
		n.Category = ""

		require.NoError(t, svc.CreateNotification(ctx, n))
		assert.Equal(t, govnotice.CategoryGeneral, n.Category)
	})

	t.Run("returns error for invalid notification", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		ctx := context.Background()

		err := svc.CreateNotification(ctx, &govnotice.Notification{}) // missing required fields
		require.Error(t, err)
		assert.Equal(t, govnotice.EINVALID, govnotice.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate identity key", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateNotification(ctx, testNotification("d")))

		err := svc.CreateNotification(ctx, testNotification("d"))
		require.Error(t, err)
		assert.Equal(t, govnotice.ECONFLICT, govnotice.ErrorCode(err))
	})
}

func TestNotificationService_NotificationExists(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewNotificationService(db)
	ctx := context.Background()

	n := testNotification("e")
	require.NoError(t, svc.CreateNotification(ctx, n))

	t.Run("true for stored identity key", func(t *testing.T) {
		exists, err := svc.NotificationExists(ctx, n.Title, n.SourceURL)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("false for unknown title", func(t *testing.T) {
		exists, err := svc.NotificationExists(ctx, "Another title", n.SourceURL)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("matching is byte-exact", func(t *testing.T) {
		// A trailing space makes a distinct identity; no normalization.
		exists, err := svc.NotificationExists(ctx, n.Title+" ", n.SourceURL)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestNotificationService_FindNotificationByID(t *testing.T) {
	t.Parallel()

	t.Run("returns notification when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		ctx := context.Background()

		n := testNotification("f")
		n.Category = govnotice.CategoryHealth
		require.NoError(t, svc.CreateNotification(ctx, n))

		found, err := svc.FindNotificationByID(ctx, n.ID)
		require.NoError(t, err)
		assert.Equal(t, n.ID, found.ID)
		assert.Equal(t, n.Title, found.Title)
		assert.Equal(t, n.Content, found.Content)
		assert.Equal(t, n.Summary, found.Summary)
		assert.Equal(t, n.SourceURL, found.SourceURL)
		assert.Equal(t, n.SourceDomain, found.SourceDomain)
		assert.Equal(t, govnotice.CategoryHealth, found.Category)
		assert.Equal(t, n.ContentHash, found.ContentHash)
		assert.Equal(t, n.Metadata, found.Metadata)
		assert.True(t, found.IsActive)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)

		_, err := svc.FindNotificationByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, govnotice.ENOTFOUND, govnotice.ErrorCode(err))
	})
}

func TestNotificationService_FindNotifications(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.NotificationService) {
		t.Helper()
		ctx := context.Background()
		base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			n := testNotification(fmt.Sprintf("seed-%d", i))
			n.PublishedDate = base.Add(time.Duration(i) * time.Hour)
			if i%2 == 0 {
				n.Category = govnotice.CategoryHealth
			}
			require.NoError(t, svc.CreateNotification(ctx, n))
		}
	}

	t.Run("sorts newest published first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		seed(t, svc)

		ns, total, err := svc.FindNotifications(context.Background(), govnotice.NotificationFilter{})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, ns, 5)
		for i := 1; i < len(ns); i++ {
			assert.False(t, ns[i].PublishedDate.After(ns[i-1].PublishedDate))
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		seed(t, svc)

		category := govnotice.CategoryHealth
		ns, total, err := svc.FindNotifications(context.Background(), govnotice.NotificationFilter{Category: &category})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		for _, n := range ns {
			assert.Equal(t, govnotice.CategoryHealth, n.Category)
		}
	})

	t.Run("paginates with total count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)
		seed(t, svc)

		ns, total, err := svc.FindNotifications(context.Background(), govnotice.NotificationFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total, "total counts all matching rows, not the page")
		assert.Len(t, ns, 2)
	})

	t.Run("empty store yields empty result", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewNotificationService(db)

		ns, total, err := svc.FindNotifications(context.Background(), govnotice.NotificationFilter{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, ns)
	})
}

func TestNotificationService_CategoryCounts(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewNotificationService(db)
	ctx := context.Background()

	for i, category := range []govnotice.Category{
		govnotice.CategoryHealth, govnotice.CategoryHealth, govnotice.CategoryTaxation,
	} {
		n := testNotification(fmt.Sprintf("stats-%d", i))
		n.Category = category
		require.NoError(t, svc.CreateNotification(ctx, n))
	}

	counts, err := svc.CategoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[govnotice.CategoryHealth])
	assert.Equal(t, 1, counts[govnotice.CategoryTaxation])
	assert.Zero(t, counts[govnotice.CategoryLegal])
}
