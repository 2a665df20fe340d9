// Package store - care log controllers
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/carelog/db"
	"github.com/alwitt/carelog/models"
	"github.com/alwitt/carelog/notify"
	"github.com/alwitt/carelog/summary"
	"github.com/alwitt/carelog/vitals"
	"github.com/alwitt/goutils"
	"github.com/apex/log"
)

// InvalidVitalSignsError vital sign input failed to parse; the save is blocked
// until the input is corrected
type InvalidVitalSignsError struct {
	// Result the parse result naming every invalid field
	Result vitals.ParseResult
}

// Error implement error
func (e InvalidVitalSignsError) Error() string {
	return e.Result.InvalidInputMessage("en")
}

// SaveRecordParams parameters for saving a finished voice memo or manual entry
type SaveRecordParams struct {
	// Timestamp the moment the care event pertains to
	Timestamp time.Time
	// Category care note category
	Category models.CareCategory
	// TranscriptText transcribed speech, raw
	TranscriptText *string
	// FreeMemoText free-form memo, raw
	FreeMemoText *string
	// CaregiverName caregiver who logged the event, raw
	CaregiverName *string
	// RawVitals raw vital sign input field text
	RawVitals vitals.RawFields
	// DurationSeconds recording duration. Nil or zero means not tracked.
	DurationSeconds *int
}

// CareLogStore care record store pairing persistence with report generation
// and reminder scheduling
type CareLogStore interface {
	/*
		SaveRecord validate and persist a new care record

		The raw vital sign fields are parsed first; any invalid field blocks the
		save with an InvalidVitalSignsError naming every failed field.

			@param ctx context.Context - execution context
			@param params SaveRecordParams - the record to save
			@param activeDBClient db.Database - existing database transaction
			@returns the stored record
	*/
	SaveRecord(
		ctx context.Context, params SaveRecordParams, activeDBClient db.Database,
	) (models.CareRecord, error)

	/*
		AmendRecord apply edits to a stored care record

		A no-op edit leaves the record, including UpdatedAt, untouched.

			@param ctx context.Context - execution context
			@param recordID string - care record ID
			@param changes db.RecordChanges - the new field values
			@param activeDBClient db.Database - existing database transaction
			@returns the record after the edit
	*/
	AmendRecord(
		ctx context.Context, recordID string, changes db.RecordChanges, activeDBClient db.Database,
	) (models.CareRecord, error)

	/*
		RemoveRecord delete a care record permanently

			@param ctx context.Context - execution context
			@param recordID string - care record ID
			@param activeDBClient db.Database - existing database transaction
	*/
	RemoveRecord(ctx context.Context, recordID string, activeDBClient db.Database) error

	/*
		RecordsOnDay list the care records of one civil day, ascending

			@param ctx context.Context - execution context
			@param day time.Time - any instant within the target day
			@param tz *time.Location - time zone defining the day boundary
			@param activeDBClient db.Database - existing database transaction
			@return the day's records
	*/
	RecordsOnDay(
		ctx context.Context, day time.Time, tz *time.Location, activeDBClient db.Database,
	) ([]models.CareRecord, error)

	/*
		DailySummaryText render the shareable daily summary for one day

			@param ctx context.Context - execution context
			@param day time.Time - the day to summarize
			@param tz *time.Location - time zone defining the day boundary
			@param locale string - BCP-47 locale tag
			@param includeVitalTrend bool - append the vital trend section
			@param activeDBClient db.Database - existing database transaction
			@return the rendered report
	*/
	DailySummaryText(
		ctx context.Context,
		day time.Time,
		tz *time.Location,
		locale string,
		includeVitalTrend bool,
		activeDBClient db.Database,
	) (string, error)

	/*
		ReminderSettings fetch the current daily reminder settings

			@param ctx context.Context - execution context
			@param activeDBClient db.Database - existing database transaction
			@returns the settings entry
	*/
	ReminderSettings(
		ctx context.Context, activeDBClient db.Database,
	) (models.ReminderSettings, error)

	/*
		UpdateDailyReminder persist new reminder settings and reschedule the
		daily reminder notification

		Settings are persisted before the platform notification is touched;
		scheduling errors propagate after persistence.

			@param ctx context.Context - execution context
			@param enabled bool - whether the daily reminder is active
			@param hour int - reminder hour of day, 0-23
			@param minute int - reminder minute, 0-59
			@param locale string - BCP-47 locale tag for the notification text
			@param activeDBClient db.Database - existing database transaction
			@returns the settings entry after the update
	*/
	UpdateDailyReminder(
		ctx context.Context,
		enabled bool,
		hour, minute int,
		locale string,
		activeDBClient db.Database,
	) (models.ReminderSettings, error)
}

// careLogStore implements CareLogStore
type careLogStore struct {
	goutils.Component

	persistence db.Client

	scheduler notify.ReminderScheduler
}

/*
NewCareLogStore define new care log store

	@param ctx context.Context - execution context
	@param persistence db.Client - persistence layer client
	@param scheduler notify.ReminderScheduler - daily reminder scheduler
	@returns store instance
*/
func NewCareLogStore(
	_ context.Context, persistence db.Client, scheduler notify.ReminderScheduler,
) (CareLogStore, error) {
	logTags := log.Fields{"module": "store", "component": "care-log-store"}

	instance := &careLogStore{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		persistence: persistence,
		scheduler:   scheduler,
	}

	return instance, nil
}

/*
SaveRecord validate and persist a new care record

	@param ctx context.Context - execution context
	@param params SaveRecordParams - the record to save
	@param activeDBClient db.Database - existing database transaction
	@returns the stored record
*/
func (s *careLogStore) SaveRecord(
	ctx context.Context, params SaveRecordParams, activeDBClient db.Database,
) (models.CareRecord, error) {
	parsed := vitals.Parse(params.RawVitals)
	if parsed.HasInvalidInput() {
		return models.CareRecord{}, InvalidVitalSignsError{Result: parsed}
	}

	var result models.CareRecord
	err := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(ctx context.Context, dbClient db.Database) error {
			record, err := dbClient.AddRecord(ctx, db.NewRecordParams{
				Timestamp:       params.Timestamp,
				Category:        params.Category,
				TranscriptText:  params.TranscriptText,
				FreeMemoText:    params.FreeMemoText,
				CaregiverName:   params.CaregiverName,
				Vitals:          parsed.Values,
				DurationSeconds: params.DurationSeconds,
			})
			if err != nil {
				return fmt.Errorf("failed to persist care record [%w]", err)
			}
			result = record
			return nil
		},
	)
	return result, err
}

/*
AmendRecord apply edits to a stored care record

	@param ctx context.Context - execution context
	@param recordID string - care record ID
	@param changes db.RecordChanges - the new field values
	@param activeDBClient db.Database - existing database transaction
	@returns the record after the edit
*/
func (s *careLogStore) AmendRecord(
	ctx context.Context, recordID string, changes db.RecordChanges, activeDBClient db.Database,
) (models.CareRecord, error) {
	var result models.CareRecord
	err := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(ctx context.Context, dbClient db.Database) error {
			record, err := dbClient.UpdateRecord(ctx, recordID, changes)
			if err != nil {
				return fmt.Errorf("failed to update care record %s [%w]", recordID, err)
			}
			result = record
			return nil
		},
	)
	return result, err
}

/*
RemoveRecord delete a care record permanently

	@param ctx context.Context - execution context
	@param recordID string - care record ID
	@param activeDBClient db.Database - existing database transaction
*/
func (s *careLogStore) RemoveRecord(
	ctx context.Context, recordID string, activeDBClient db.Database,
) error {
	return db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(ctx context.Context, dbClient db.Database) error {
			return dbClient.DeleteRecord(ctx, recordID)
		},
	)
}

/*
RecordsOnDay list the care records of one civil day, ascending

	@param ctx context.Context - execution context
	@param day time.Time - any instant within the target day
	@param tz *time.Location - time zone defining the day boundary
	@param activeDBClient db.Database - existing database transaction
	@return the day's records
*/
func (s *careLogStore) RecordsOnDay(
	ctx context.Context, day time.Time, tz *time.Location, activeDBClient db.Database,
) ([]models.CareRecord, error) {
	var result []models.CareRecord
	err := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(ctx context.Context, dbClient db.Database) error {
			records, err := dbClient.ListRecordsOnDay(ctx, day, tz)
			if err != nil {
				return err
			}
			result = records
			return nil
		},
	)
	return result, err
}

/*
DailySummaryText render the shareable daily summary for one day

	@param ctx context.Context - execution context
	@param day time.Time - the day to summarize
	@param tz *time.Location - time zone defining the day boundary
	@param locale string - BCP-47 locale tag
	@param includeVitalTrend bool - append the vital trend section
	@param activeDBClient db.Database - existing database transaction
	@return the rendered report
*/
func (s *careLogStore) DailySummaryText(
	ctx context.Context,
	day time.Time,
	tz *time.Location,
	locale string,
	includeVitalTrend bool,
	activeDBClient db.Database,
) (string, error) {
	records, err := s.RecordsOnDay(ctx, day, tz, activeDBClient)
	if err != nil {
		return "", fmt.Errorf("failed to fetch records for daily summary [%w]", err)
	}
	return summary.Format(records, day, locale, includeVitalTrend), nil
}

/*
ReminderSettings fetch the current daily reminder settings

	@param ctx context.Context - execution context
	@param activeDBClient db.Database - existing database transaction
	@returns the settings entry
*/
func (s *careLogStore) ReminderSettings(
	ctx context.Context, activeDBClient db.Database,
) (models.ReminderSettings, error) {
	var result models.ReminderSettings
	err := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(ctx context.Context, dbClient db.Database) error {
			settings, err := dbClient.GetReminderSettings(ctx)
			if err != nil {
				return err
			}
			result = settings
			return nil
		},
	)
	return result, err
}

/*
UpdateDailyReminder persist new reminder settings and reschedule the daily
reminder notification

	@param ctx context.Context - execution context
	@param enabled bool - whether the daily reminder is active
	@param hour int - reminder hour of day, 0-23
	@param minute int - reminder minute, 0-59
	@param locale string - BCP-47 locale tag for the notification text
	@param activeDBClient db.Database - existing database transaction
	@returns the settings entry after the update
*/
func (s *careLogStore) UpdateDailyReminder(
	ctx context.Context,
	enabled bool,
	hour, minute int,
	locale string,
	activeDBClient db.Database,
) (models.ReminderSettings, error) {
	var result models.ReminderSettings
	err := db.ActiveSessionWrapper(
		ctx, activeDBClient, s.persistence, func(ctx context.Context, dbClient db.Database) error {
			settings, err := dbClient.SetReminderSettings(ctx, enabled, hour, minute)
			if err != nil {
				return fmt.Errorf("failed to persist reminder settings [%w]", err)
			}
			result = settings
			return nil
		},
	)
	if err != nil {
		return models.ReminderSettings{}, err
	}

	if err := s.scheduler.UpdateDailyReminder(ctx, enabled, hour, minute, locale); err != nil {
		return result, fmt.Errorf("failed to reschedule daily reminder [%w]", err)
	}

	return result, nil
}
