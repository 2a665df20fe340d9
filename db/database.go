package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/carelog/models"
	"github.com/alwitt/goutils"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewRecordParams parameters for defining a new care record
type NewRecordParams struct {
	// Timestamp the moment the care event pertains to
	Timestamp time.Time
	// Category care note category
	Category models.CareCategory
	// TranscriptText transcribed speech, raw. Normalized on write.
	TranscriptText *string
	// FreeMemoText free-form memo, raw. Normalized on write.
	FreeMemoText *string
	// CaregiverName caregiver who logged the event, raw. Normalized on write.
	CaregiverName *string
	// Vitals optional vital sign measurements
	Vitals models.VitalSigns
	// DurationSeconds recording duration. Nil or zero means not tracked.
	DurationSeconds *int
}

// RecordChanges the caller-editable fields of a care record
//
// Every field is applied on update; a field the caller wants to keep must be
// passed with its current value.
type RecordChanges struct {
	// Category care note category
	Category models.CareCategory
	// TranscriptText transcribed speech, raw. Normalized before the diff.
	TranscriptText *string
	// FreeMemoText free-form memo, raw. Normalized before the diff.
	FreeMemoText *string
	// Vitals vital sign measurements
	Vitals models.VitalSigns
}

// Database the database handle for interacting with the data base
type Database interface {
	// ------------------------------------------------------------------------------------
	// Care records

	/*
		AddRecord define a new care record

		All text fields are normalized before storage. CreatedAt and UpdatedAt are
		both stamped with the insertion time.

			@param ctx context.Context - execution context
			@param params NewRecordParams - new record parameters
			@returns the stored record
	*/
	AddRecord(ctx context.Context, params NewRecordParams) (models.CareRecord, error)

	/*
		GetRecord fetch a care record by ID

			@param ctx context.Context - execution context
			@param recordID string - care record ID
			@returns record entry
	*/
	GetRecord(ctx context.Context, recordID string) (models.CareRecord, error)

	/*
		UpdateRecord apply changes to a care record

		The changes are normalized and compared field-by-field against the stored
		values. If nothing differs, this returns without writing and UpdatedAt is
		left untouched. Otherwise all changes are applied together and UpdatedAt
		advances.

			@param ctx context.Context - execution context
			@param recordID string - care record ID
			@param changes RecordChanges - the new field values
			@returns the record after the update
	*/
	UpdateRecord(
		ctx context.Context, recordID string, changes RecordChanges,
	) (models.CareRecord, error)

	/*
		DeleteRecord delete a care record permanently

			@param ctx context.Context - execution context
			@param recordID string - care record ID
	*/
	DeleteRecord(ctx context.Context, recordID string) error

	/*
		ListRecordsOnDay list the care records of one civil day

		The day window is [start of day, start of next day) computed with calendar
		arithmetic in the given time zone, so the window stays correct across DST
		transitions. Results are in ascending timestamp order.

			@param ctx context.Context - execution context
			@param day time.Time - any instant within the target day
			@param tz *time.Location - time zone defining the day boundary
			@return the day's records
	*/
	ListRecordsOnDay(
		ctx context.Context, day time.Time, tz *time.Location,
	) ([]models.CareRecord, error)

	/*
		CategoryCountsOnDay count the day's records per category

		Categories without records on the day are absent from the result.

			@param ctx context.Context - execution context
			@param day time.Time - any instant within the target day
			@param tz *time.Location - time zone defining the day boundary
			@return record count per category
	*/
	CategoryCountsOnDay(
		ctx context.Context, day time.Time, tz *time.Location,
	) (map[models.CareCategory]int, error)

	/*
		FreeMemoRecordsOnDay list the day's records with category freeMemo

			@param ctx context.Context - execution context
			@param day time.Time - any instant within the target day
			@param tz *time.Location - time zone defining the day boundary
			@return the day's free memo records
	*/
	FreeMemoRecordsOnDay(
		ctx context.Context, day time.Time, tz *time.Location,
	) ([]models.CareRecord, error)

	// ------------------------------------------------------------------------------------
	// Reminder settings

	/*
		GetReminderSettings fetch the singleton reminder settings entry

		If no entry exists yet, one is created with the reminder disabled at the
		default 09:00 time.

			@param ctx context.Context - execution context
			@returns the settings entry
	*/
	GetReminderSettings(ctx context.Context) (models.ReminderSettings, error)

	/*
		SetReminderSettings update the singleton reminder settings entry

			@param ctx context.Context - execution context
			@param enabled bool - whether the daily reminder is active
			@param hour int - reminder hour of day, 0-23
			@param minute int - reminder minute, 0-59
			@returns the settings entry after the update
	*/
	SetReminderSettings(
		ctx context.Context, enabled bool, hour, minute int,
	) (models.ReminderSettings, error)
}

// databaseImpl implements Database
type databaseImpl struct {
	goutils.Component
	db        *gorm.DB
	validator *validator.Validate
}

// newDatabase define a new database client
func newDatabase(_ context.Context, sqlClient *gorm.DB) (Database, error) {
	logTags := log.Fields{"package": "carelog", "module": "db", "component": "db-client"}

	instance := &databaseImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		db:        sqlClient,
		validator: validator.New(),
	}

	if err := models.RegisterWithValidator(instance.validator); err != nil {
		return nil, fmt.Errorf("failed to install custom validation macros [%w]", err)
	}

	return instance, nil
}
