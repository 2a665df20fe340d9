package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/alwitt/carelog/db"
	"github.com/stretchr/testify/assert"
)

// TestDBReminderSettings verifies the singleton reminder settings entry.
func TestDBReminderSettings(t *testing.T) {
	assert := assert.New(t)

	utCtx := context.Background()
	uut := newTestClient(t)

	// -------------------------------------------------------------------------
	// 1 – First read creates the entry with defaults
	err := uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		settings, err := dbClient.GetReminderSettings(ctx)
		if err != nil {
			return err
		}
		assert.Equal(db.GlobalReminderSettingsEntryID, settings.ID)
		assert.False(settings.DailyReminderEnabled)
		assert.Equal(db.DefaultReminderHour, settings.DailyReminderHour)
		assert.Equal(0, settings.DailyReminderMinute)
		return nil
	})
	assert.Nil(err)

	// 2 – Enable with a new time
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		settings, err := dbClient.SetReminderSettings(ctx, true, 20, 30)
		if err != nil {
			return err
		}
		assert.True(settings.DailyReminderEnabled)
		assert.Equal(20, settings.DailyReminderHour)
		assert.Equal(30, settings.DailyReminderMinute)
		return nil
	})
	assert.Nil(err)

	// 3 – Setting identical values is a no-op
	var updatedAt time.Time
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		settings, err := dbClient.GetReminderSettings(ctx)
		if err != nil {
			return err
		}
		updatedAt = settings.UpdatedAt
		return nil
	})
	assert.Nil(err)
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		settings, err := dbClient.SetReminderSettings(ctx, true, 20, 30)
		if err != nil {
			return err
		}
		assert.WithinDuration(updatedAt, settings.UpdatedAt, time.Second)
		return nil
	})
	assert.Nil(err)

	// 4 – Out-of-range time is rejected
	err = uut.UseDatabaseInTransaction(utCtx, func(ctx context.Context, dbClient db.Database) error {
		_, err := dbClient.SetReminderSettings(ctx, true, 24, 0)
		return err
	})
	assert.Error(err)
}
