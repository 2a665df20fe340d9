// Package db - persistence layer
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/carelog/models"
	"github.com/google/uuid"
)

// ======================================================================================
// Care records

/*
AddRecord define a new care record

All text fields are normalized before storage. CreatedAt and UpdatedAt are
both stamped with the insertion time.

	@param ctx context.Context - execution context
	@param params NewRecordParams - new record parameters
	@returns the stored record
*/
func (d *databaseImpl) AddRecord(
	_ context.Context, params NewRecordParams,
) (models.CareRecord, error) {
	now := time.Now()
	newEntry := CareRecordDBEntry{
		CareRecord: models.CareRecord{
			ID:              uuid.NewString(),
			Timestamp:       params.Timestamp,
			Category:        params.Category,
			TranscriptText:  models.NormalizeText(params.TranscriptText),
			FreeMemoText:    models.NormalizeText(params.FreeMemoText),
			CaregiverName:   models.NormalizeText(params.CaregiverName),
			DurationSeconds: params.DurationSeconds,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
	newEntry.SetVitals(params.Vitals)

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.CareRecord{}, fmt.Errorf("new care record is not valid [%w]", err)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.CareRecord{}, fmt.Errorf("new care record failed insert [%w]", tmp.Error)
	}

	return newEntry.CareRecord, nil
}

// getCareRecordEntry find a care record by ID
func (d *databaseImpl) getCareRecordEntry(recordID string) (CareRecordDBEntry, error) {
	var entry CareRecordDBEntry
	err := d.db.Where("id = ?", recordID).First(&entry).Error
	return entry, err
}

/*
GetRecord fetch a care record by ID

	@param ctx context.Context - execution context
	@param recordID string - care record ID
	@returns record entry
*/
func (d *databaseImpl) GetRecord(
	_ context.Context, recordID string,
) (models.CareRecord, error) {
	entry, err := d.getCareRecordEntry(recordID)
	if err != nil {
		return models.CareRecord{}, fmt.Errorf("failed to fetch care record %s [%w]", recordID, err)
	}

	return entry.CareRecord, nil
}

/*
UpdateRecord apply changes to a care record

The changes are normalized and compared field-by-field against the stored
values. If nothing differs, this returns without writing and UpdatedAt is left
untouched. Otherwise all changes are applied together and UpdatedAt advances.

	@param ctx context.Context - execution context
	@param recordID string - care record ID
	@param changes RecordChanges - the new field values
	@returns the record after the update
*/
func (d *databaseImpl) UpdateRecord(
	_ context.Context, recordID string, changes RecordChanges,
) (models.CareRecord, error) {
	entry, err := d.getCareRecordEntry(recordID)
	if err != nil {
		return models.CareRecord{}, fmt.Errorf("failed to fetch care record %s [%w]", recordID, err)
	}

	newTranscript := models.NormalizeText(changes.TranscriptText)
	newMemo := models.NormalizeText(changes.FreeMemoText)

	if entry.Category == changes.Category &&
		models.TextPtrEqual(entry.TranscriptText, newTranscript) &&
		models.TextPtrEqual(entry.FreeMemoText, newMemo) &&
		entry.Vitals().Equal(changes.Vitals) {
		// NOOP
		return entry.CareRecord, nil
	}

	entry.Category = changes.Category
	entry.TranscriptText = newTranscript
	entry.FreeMemoText = newMemo
	entry.SetVitals(changes.Vitals)
	entry.UpdatedAt = time.Now()

	if err := d.validator.Struct(&entry); err != nil {
		return models.CareRecord{}, fmt.Errorf(
			"care record %s update is not valid [%w]", recordID, err,
		)
	}

	// Save instead of Updates so fields cleared to NULL are written as well
	if tmp := d.db.Save(&entry); tmp.Error != nil {
		return models.CareRecord{}, fmt.Errorf(
			"care record %s update failed [%w]", recordID, tmp.Error,
		)
	}

	return entry.CareRecord, nil
}

/*
DeleteRecord delete a care record permanently

	@param ctx context.Context - execution context
	@param recordID string - care record ID
*/
func (d *databaseImpl) DeleteRecord(_ context.Context, recordID string) error {
	entry, err := d.getCareRecordEntry(recordID)
	if err != nil {
		return fmt.Errorf("failed to fetch care record %s [%w]", recordID, err)
	}

	if tmp := d.db.Delete(&entry); tmp.Error != nil {
		return fmt.Errorf("failed to delete care record %s [%w]", recordID, tmp.Error)
	}

	return nil
}

// dayWindow compute the [start of day, start of next day) window of an instant.
//
// Uses AddDate for the upper bound so the window covers 23 or 25 hours on DST
// transition days instead of a fixed 24h offset.
func dayWindow(day time.Time, tz *time.Location) (time.Time, time.Time) {
	local := day.In(tz)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)
	return start, start.AddDate(0, 0, 1)
}

/*
ListRecordsOnDay list the care records of one civil day

	@param ctx context.Context - execution context
	@param day time.Time - any instant within the target day
	@param tz *time.Location - time zone defining the day boundary
	@return the day's records
*/
func (d *databaseImpl) ListRecordsOnDay(
	_ context.Context, day time.Time, tz *time.Location,
) ([]models.CareRecord, error) {
	start, end := dayWindow(day, tz)

	var entries []CareRecordDBEntry
	if tmp := d.db.
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Order("timestamp").
		Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list care records [%w]", tmp.Error)
	}

	result := []models.CareRecord{}
	for _, entry := range entries {
		result = append(result, entry.CareRecord)
	}

	return result, nil
}

/*
CategoryCountsOnDay count the day's records per category

	@param ctx context.Context - execution context
	@param day time.Time - any instant within the target day
	@param tz *time.Location - time zone defining the day boundary
	@return record count per category
*/
func (d *databaseImpl) CategoryCountsOnDay(
	ctx context.Context, day time.Time, tz *time.Location,
) (map[models.CareCategory]int, error) {
	records, err := d.ListRecordsOnDay(ctx, day, tz)
	if err != nil {
		return nil, err
	}

	counts := map[models.CareCategory]int{}
	for _, record := range records {
		counts[record.Category]++
	}

	return counts, nil
}

/*
FreeMemoRecordsOnDay list the day's records with category freeMemo

	@param ctx context.Context - execution context
	@param day time.Time - any instant within the target day
	@param tz *time.Location - time zone defining the day boundary
	@return the day's free memo records
*/
func (d *databaseImpl) FreeMemoRecordsOnDay(
	ctx context.Context, day time.Time, tz *time.Location,
) ([]models.CareRecord, error) {
	records, err := d.ListRecordsOnDay(ctx, day, tz)
	if err != nil {
		return nil, err
	}

	result := []models.CareRecord{}
	for _, record := range records {
		if record.Category == models.CareCategoryFreeMemo {
			result = append(result, record)
		}
	}

	return result, nil
}
