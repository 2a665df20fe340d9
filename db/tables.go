package db

import (
	"context"

	"github.com/alwitt/carelog/models"
	"gorm.io/gorm"
)

// --------------------------------------------------------------------------------------
// Care records

// CareRecordDBEntry care record DB entry
type CareRecordDBEntry struct {
	models.CareRecord
}

// TableName hard code table name
func (CareRecordDBEntry) TableName() string {
	return "care_records"
}

// AfterFind map unrecognized persisted categories to freeMemo, so records
// written by newer builds with additional categories still load
func (e *CareRecordDBEntry) AfterFind(_ *gorm.DB) error {
	e.Category = models.ParseCareCategory(string(e.Category))
	return nil
}

// --------------------------------------------------------------------------------------
// Reminder settings

// ReminderSettingsDBEntry reminder settings DB entry
type ReminderSettingsDBEntry struct {
	models.ReminderSettings
}

// TableName hard code table name
func (ReminderSettingsDBEntry) TableName() string {
	return "reminder_settings"
}

// --------------------------------------------------------------------------------------
// Table setup

// DefineTables prepare a database with the expected tables
func DefineTables(_ context.Context, db *gorm.DB) error {
	return db.AutoMigrate(
		CareRecordDBEntry{},
		ReminderSettingsDBEntry{},
	)
}
