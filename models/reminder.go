package models

import "time"

// ReminderSettings daily reminder notification settings
//
// A single settings row exists per installation.
type ReminderSettings struct {
	// ID settings entry ID. It must always be reminder-settings
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required,oneof=reminder-settings"`

	// DailyReminderEnabled whether the daily reminder is active
	DailyReminderEnabled bool `json:"daily_reminder_enabled" gorm:"column:daily_reminder_enabled;not null"`

	// DailyReminderHour reminder hour of day, 0-23
	DailyReminderHour int `json:"daily_reminder_hour" gorm:"column:daily_reminder_hour;not null" validate:"min=0,max=23"`
	// DailyReminderMinute reminder minute, 0-59
	DailyReminderMinute int `json:"daily_reminder_minute" gorm:"column:daily_reminder_minute;not null" validate:"min=0,max=59"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}
