package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/carelog/models"
)

// GlobalReminderSettingsEntryID ID of the singleton reminder settings entry
const GlobalReminderSettingsEntryID = "reminder-settings"

// DefaultReminderHour default daily reminder hour
const DefaultReminderHour = 9

// getReminderSettingsEntry fetch the reminder settings entry
//
// If the entry does not exist, initialize a new one.
func (d *databaseImpl) getReminderSettingsEntry() (ReminderSettingsDBEntry, error) {
	var entries []ReminderSettingsDBEntry
	dbErr := d.db.Where("id = ?", GlobalReminderSettingsEntryID).Find(&entries).Error
	if dbErr != nil {
		return ReminderSettingsDBEntry{}, fmt.Errorf(
			"failed to read reminder settings table [%w]", dbErr,
		)
	}
	if len(entries) == 0 {
		// Make a new one
		newEntry := ReminderSettingsDBEntry{
			ReminderSettings: models.ReminderSettings{
				ID:                   GlobalReminderSettingsEntryID,
				DailyReminderEnabled: false,
				DailyReminderHour:    DefaultReminderHour,
				DailyReminderMinute:  0,
			},
		}
		if dbErr = d.db.Create(&newEntry).Error; dbErr != nil {
			return ReminderSettingsDBEntry{}, fmt.Errorf(
				"failed to setup singleton reminder settings entry [%w]", dbErr,
			)
		}
		return newEntry, nil
	}
	return entries[0], nil
}

/*
GetReminderSettings fetch the singleton reminder settings entry

	@param ctx context.Context - execution context
	@returns the settings entry
*/
func (d *databaseImpl) GetReminderSettings(_ context.Context) (models.ReminderSettings, error) {
	entry, err := d.getReminderSettingsEntry()
	if err != nil {
		return entry.ReminderSettings, fmt.Errorf(
			"unable to fetch reminder settings entry [%w]", err,
		)
	}
	return entry.ReminderSettings, nil
}

/*
SetReminderSettings update the singleton reminder settings entry

	@param ctx context.Context - execution context
	@param enabled bool - whether the daily reminder is active
	@param hour int - reminder hour of day, 0-23
	@param minute int - reminder minute, 0-59
	@returns the settings entry after the update
*/
func (d *databaseImpl) SetReminderSettings(
	_ context.Context, enabled bool, hour, minute int,
) (models.ReminderSettings, error) {
	entry, err := d.getReminderSettingsEntry()
	if err != nil {
		return models.ReminderSettings{}, fmt.Errorf(
			"unable to fetch reminder settings entry [%w]", err,
		)
	}

	if entry.DailyReminderEnabled == enabled &&
		entry.DailyReminderHour == hour &&
		entry.DailyReminderMinute == minute {
		// NOOP
		return entry.ReminderSettings, nil
	}

	entry.DailyReminderEnabled = enabled
	entry.DailyReminderHour = hour
	entry.DailyReminderMinute = minute
	entry.UpdatedAt = time.Now()

	if err := d.validator.Struct(&entry); err != nil {
		return models.ReminderSettings{}, fmt.Errorf(
			"reminder settings update is not valid [%w]", err,
		)
	}

	if tmp := d.db.Save(&entry); tmp.Error != nil {
		return models.ReminderSettings{}, fmt.Errorf("reminder settings update failed [%w]", tmp.Error)
	}

	return entry.ReminderSettings, nil
}
