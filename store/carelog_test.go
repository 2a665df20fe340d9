package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/carelog/db"
	"github.com/alwitt/carelog/models"
	"github.com/alwitt/carelog/notify"
	"github.com/alwitt/carelog/store"
	"github.com/alwitt/carelog/vitals"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// fakeCenter minimal notification center for wiring the scheduler
type fakeCenter struct {
	added   []notify.NotificationRequest
	removed []string
}

func (c *fakeCenter) RequestAuthorization(_ context.Context) (bool, error) {
	return true, nil
}

func (c *fakeCenter) Add(_ context.Context, request notify.NotificationRequest) error {
	c.added = append(c.added, request)
	return nil
}

func (c *fakeCenter) RemovePending(_ context.Context, identifier string) error {
	c.removed = append(c.removed, identifier)
	return nil
}

func newTestStore(t *testing.T) (store.CareLogStore, *fakeCenter) {
	testDB := fmt.Sprintf("/tmp/carelog_ut_%s.db", ulid.Make().String())

	persistence, err := db.NewConnection(db.GetSqliteDialector(testDB), logger.Error)
	require.Nil(t, err)
	require.Nil(t, persistence.RunSQLInTransaction(context.Background(), db.DefineTables))

	center := &fakeCenter{}
	uut, err := store.NewCareLogStore(
		context.Background(), persistence, notify.NewReminderScheduler(center),
	)
	require.Nil(t, err)
	return uut, center
}

func strPtr(v string) *string { return &v }

// TestStoreSaveRecordBlocksInvalidVitals verifies invalid vital input blocks
// the save with the combined validation error.
func TestStoreSaveRecordBlocksInvalidVitals(t *testing.T) {
	assert := assert.New(t)
	utCtx := context.Background()

	uut, _ := newTestStore(t)

	_, err := uut.SaveRecord(utCtx, store.SaveRecordParams{
		Timestamp: time.Now(),
		Category:  models.CareCategoryVitalSigns,
		RawVitals: vitals.RawFields{
			BodyTemperature: "warm",
			PulseRate:       "fast",
		},
	}, nil)

	assert.Error(err)
	var invalidErr store.InvalidVitalSignsError
	assert.ErrorAs(err, &invalidErr)
	assert.Equal([]vitals.Field{
		vitals.FieldBodyTemperature,
		vitals.FieldPulseRate,
	}, invalidErr.Result.InvalidFields)

	// Nothing was stored
	records, err := uut.RecordsOnDay(utCtx, time.Now(), time.Local, nil)
	assert.Nil(err)
	assert.Empty(records)
}

// TestStoreSaveAndSummarize verifies the save → query → format flow.
func TestStoreSaveAndSummarize(t *testing.T) {
	assert := assert.New(t)
	utCtx := context.Background()

	uut, _ := newTestStore(t)

	day := time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local)

	// 1 – Save a morning vitals check and an evening memo
	saved, err := uut.SaveRecord(utCtx, store.SaveRecordParams{
		Timestamp: day.Add(7*time.Hour + 30*time.Minute),
		Category:  models.CareCategoryVitalSigns,
		RawVitals: vitals.RawFields{
			BodyTemperature: "36,8",
			SystolicBP:      "118",
			DiastolicBP:     "72",
		},
	}, nil)
	assert.Nil(err)
	assert.InDelta(36.8, *saved.BodyTemperature, 0.0001)

	_, err = uut.SaveRecord(utCtx, store.SaveRecordParams{
		Timestamp:    day.Add(18 * time.Hour),
		Category:     models.CareCategoryFreeMemo,
		FreeMemoText: strPtr("  Doctor called  "),
	}, nil)
	assert.Nil(err)

	// 2 – Summary with vital trend
	text, err := uut.DailySummaryText(utCtx, day, time.Local, "en", true, nil)
	assert.Nil(err)
	assert.Contains(text, "Vital Trends")
	assert.Contains(text, "07:30")
	assert.Contains(text, "Temp 36.8")
	assert.Contains(text, "BP 118/72")
	assert.Contains(text, "- Doctor called")

	// 3 – Summary without vital trend
	text, err = uut.DailySummaryText(utCtx, day, time.Local, "en", false, nil)
	assert.Nil(err)
	assert.NotContains(text, "Vital Trends")
}

// TestStoreAmendAndRemove verifies record edit and removal pass-throughs.
func TestStoreAmendAndRemove(t *testing.T) {
	assert := assert.New(t)
	utCtx := context.Background()

	uut, _ := newTestStore(t)

	day := time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local)
	saved, err := uut.SaveRecord(utCtx, store.SaveRecordParams{
		Timestamp:      day.Add(9 * time.Hour),
		Category:       models.CareCategoryMeal,
		TranscriptText: strPtr("Before"),
	}, nil)
	assert.Nil(err)

	// 1 – Amend
	amended, err := uut.AmendRecord(utCtx, saved.ID, db.RecordChanges{
		Category:       models.CareCategoryMedication,
		TranscriptText: strPtr("After"),
	}, nil)
	assert.Nil(err)
	assert.Equal(models.CareCategoryMedication, amended.Category)
	assert.Equal("After", *amended.TranscriptText)

	// 2 – Remove
	assert.Nil(uut.RemoveRecord(utCtx, saved.ID, nil))
	records, err := uut.RecordsOnDay(utCtx, day, time.Local, nil)
	assert.Nil(err)
	assert.Empty(records)
}

// TestStoreUpdateDailyReminder verifies settings persistence and notification
// scheduling move together.
func TestStoreUpdateDailyReminder(t *testing.T) {
	assert := assert.New(t)
	utCtx := context.Background()

	uut, center := newTestStore(t)

	// 1 – Enable
	settings, err := uut.UpdateDailyReminder(utCtx, true, 20, 30, "en", nil)
	assert.Nil(err)
	assert.True(settings.DailyReminderEnabled)
	assert.Len(center.added, 1)
	assert.Equal(20, center.added[0].Hour)

	// 2 – The persisted settings match
	settings, err = uut.ReminderSettings(utCtx, nil)
	assert.Nil(err)
	assert.True(settings.DailyReminderEnabled)
	assert.Equal(20, settings.DailyReminderHour)
	assert.Equal(30, settings.DailyReminderMinute)

	// 3 – Disable clears the pending notification
	settings, err = uut.UpdateDailyReminder(utCtx, false, 20, 30, "en", nil)
	assert.Nil(err)
	assert.False(settings.DailyReminderEnabled)
	assert.Len(center.added, 1)
	assert.GreaterOrEqual(len(center.removed), 2)
}
