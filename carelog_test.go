package carelog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/carelog"
	"github.com/alwitt/carelog/db"
	"github.com/alwitt/carelog/models"
	"github.com/alwitt/carelog/notify"
	"github.com/alwitt/carelog/store"
	"github.com/alwitt/carelog/vitals"
	"github.com/apex/log"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

// memoryNotificationCenter in-memory notification center for end-to-end tests
type memoryNotificationCenter struct {
	pending map[string]notify.NotificationRequest
}

func (c *memoryNotificationCenter) RequestAuthorization(_ context.Context) (bool, error) {
	return true, nil
}

func (c *memoryNotificationCenter) Add(
	_ context.Context, request notify.NotificationRequest,
) error {
	c.pending[request.Identifier] = request
	return nil
}

func (c *memoryNotificationCenter) RemovePending(_ context.Context, identifier string) error {
	delete(c.pending, identifier)
	return nil
}

// TestCareLogStoreEndToEnd performs a full end‑to‑end test of the
// CareLogStore. A temporary SQLite database is created, the
// `carelog.NewCareLogStore` constructor is exercised, and care records are
// written, summarized, amended, and finally deleted, along with a pass over
// the daily reminder settings.
func TestCareLogStoreEndToEnd(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	// ------------------------------------------------------------------
	// 1. Create a temporary SQLite database
	// ------------------------------------------------------------------
	ctx := context.Background()

	testDB := fmt.Sprintf("/tmp/carelog_ut_%s.db", ulid.Make().String())
	dbClient, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	assert.Nil(err)

	// Create tables
	assert.Nil(dbClient.RunSQLInTransaction(ctx, db.DefineTables))

	// ------------------------------------------------------------------
	// 2. Create the care log store
	// ------------------------------------------------------------------
	center := &memoryNotificationCenter{pending: map[string]notify.NotificationRequest{}}
	uut, err := carelog.NewCareLogStore(
		ctx, db.GetSqliteDialector(testDB), logger.Error, center,
	)
	assert.Nil(err)

	day := time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local)

	// ------------------------------------------------------------------
	// 3. Save a morning vitals record
	// ------------------------------------------------------------------
	transcript := "Morning check, looks well"
	morning, err := uut.SaveRecord(ctx, store.SaveRecordParams{
		Timestamp:      day.Add(7*time.Hour + 30*time.Minute),
		Category:       models.CareCategoryVitalSigns,
		TranscriptText: &transcript,
		RawVitals: vitals.RawFields{
			BodyTemperature: "36,8",
			SystolicBP:      "118",
			DiastolicBP:     "72",
			PulseRate:       "64",
		},
	}, nil)
	assert.Nil(err)
	assert.NotEmpty(morning.ID)
	assert.InDelta(36.8, *morning.BodyTemperature, 0.0001)
	assert.Equal(64, *morning.PulseRate)

	// ------------------------------------------------------------------
	// 4. Save an evening free memo
	// ------------------------------------------------------------------
	memoText := "Doctor called"
	evening, err := uut.SaveRecord(ctx, store.SaveRecordParams{
		Timestamp:    day.Add(18 * time.Hour),
		Category:     models.CareCategoryFreeMemo,
		FreeMemoText: &memoText,
	}, nil)
	assert.Nil(err)

	// ------------------------------------------------------------------
	// 5. List the day's records – chronological order
	// ------------------------------------------------------------------
	records, err := uut.RecordsOnDay(ctx, day.Add(12*time.Hour), time.Local, nil)
	assert.Nil(err)
	assert.Len(records, 2)
	assert.Equal(morning.ID, records[0].ID)
	assert.Equal(evening.ID, records[1].ID)

	// ------------------------------------------------------------------
	// 6. Render the daily summary
	// ------------------------------------------------------------------
	text, err := uut.DailySummaryText(ctx, day, time.Local, "en", true, nil)
	assert.Nil(err)
	assert.Contains(text, "Daily Summary (2026-02-14)")
	assert.Contains(text, "Vitals: 1")
	assert.Contains(text, "- Doctor called")
	assert.Contains(text, "Temp 36.8, BP 118/72, Pulse 64")

	// ------------------------------------------------------------------
	// 7. Amend the morning record
	// ------------------------------------------------------------------
	newTranscript := "Morning check, slight fever"
	amended, err := uut.AmendRecord(ctx, morning.ID, db.RecordChanges{
		Category:       models.CareCategoryVitalSigns,
		TranscriptText: &newTranscript,
		Vitals:         morning.Vitals(),
	}, nil)
	assert.Nil(err)
	assert.Equal(newTranscript, *amended.TranscriptText)

	// ------------------------------------------------------------------
	// 8. Enable the daily reminder
	// ------------------------------------------------------------------
	settings, err := uut.UpdateDailyReminder(ctx, true, 20, 0, "en", nil)
	assert.Nil(err)
	assert.True(settings.DailyReminderEnabled)
	scheduled, ok := center.pending[notify.ReminderIdentifier]
	assert.True(ok)
	assert.Equal(20, scheduled.Hour)

	// ------------------------------------------------------------------
	// 9. Disable the daily reminder – pending notification removed
	// ------------------------------------------------------------------
	settings, err = uut.UpdateDailyReminder(ctx, false, 20, 0, "en", nil)
	assert.Nil(err)
	assert.False(settings.DailyReminderEnabled)
	_, ok = center.pending[notify.ReminderIdentifier]
	assert.False(ok)

	// ------------------------------------------------------------------
	// 10. Delete the evening record
	// ------------------------------------------------------------------
	assert.Nil(uut.RemoveRecord(ctx, evening.ID, nil))
	records, err = uut.RecordsOnDay(ctx, day, time.Local, nil)
	assert.Nil(err)
	assert.Len(records, 1)

	// ------------------------------------------------------------------
	// 11. Fetching the deleted record should fail
	// ------------------------------------------------------------------
	_, err = uut.AmendRecord(ctx, evening.ID, db.RecordChanges{
		Category: models.CareCategoryFreeMemo,
	}, nil)
	assert.Error(err)
}
