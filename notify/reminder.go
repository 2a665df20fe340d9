// Package notify - local daily reminder notifications
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/alwitt/carelog/models"
	"github.com/alwitt/goutils"
	"github.com/apex/log"
)

// ReminderIdentifier the identifier of the single daily reminder request
const ReminderIdentifier = "daily-care-reminder"

// ErrNotificationPermissionDenied notification permission was refused
var ErrNotificationPermissionDenied = errors.New("notification permission denied")

// NotificationRequest one scheduled repeating notification
type NotificationRequest struct {
	// Identifier request identifier, used to replace an earlier schedule
	Identifier string
	// Title notification title
	Title string
	// Body notification body text
	Body string
	// Hour trigger hour of day, 0-23
	Hour int
	// Minute trigger minute, 0-59
	Minute int
}

// NotificationCenter platform local-notification capability
type NotificationCenter interface {
	/*
		RequestAuthorization ask the user for notification permission

			@param ctx context.Context - execution context
			@returns whether permission was granted
	*/
	RequestAuthorization(ctx context.Context) (bool, error)

	/*
		Add schedule a repeating notification

			@param ctx context.Context - execution context
			@param request NotificationRequest - the notification to schedule
	*/
	Add(ctx context.Context, request NotificationRequest) error

	/*
		RemovePending unschedule any pending notification with the identifier

			@param ctx context.Context - execution context
			@param identifier string - request identifier
	*/
	RemovePending(ctx context.Context, identifier string) error
}

// ReminderScheduler drives the daily reminder notification
type ReminderScheduler interface {
	/*
		UpdateDailyReminder reschedule, or clear, the daily reminder

		Any previously scheduled reminder is always removed first. Notification
		permission is requested only when enabling; a refusal surfaces as
		ErrNotificationPermissionDenied.

			@param ctx context.Context - execution context
			@param enabled bool - whether the reminder should fire
			@param hour int - reminder hour of day, 0-23
			@param minute int - reminder minute, 0-59
			@param locale string - BCP-47 locale tag for the notification text
	*/
	UpdateDailyReminder(ctx context.Context, enabled bool, hour, minute int, locale string) error
}

// reminderSchedulerImpl implements ReminderScheduler
type reminderSchedulerImpl struct {
	goutils.Component
	center NotificationCenter
}

/*
NewReminderScheduler define a new reminder scheduler

	@param center NotificationCenter - platform notification capability
	@returns new scheduler
*/
func NewReminderScheduler(center NotificationCenter) ReminderScheduler {
	logTags := log.Fields{"package": "carelog", "module": "notify", "component": "reminder-scheduler"}

	return &reminderSchedulerImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		center: center,
	}
}

/*
UpdateDailyReminder reschedule, or clear, the daily reminder

	@param ctx context.Context - execution context
	@param enabled bool - whether the reminder should fire
	@param hour int - reminder hour of day, 0-23
	@param minute int - reminder minute, 0-59
	@param locale string - BCP-47 locale tag for the notification text
*/
func (s *reminderSchedulerImpl) UpdateDailyReminder(
	ctx context.Context, enabled bool, hour, minute int, locale string,
) error {
	if err := s.center.RemovePending(ctx, ReminderIdentifier); err != nil {
		return fmt.Errorf("failed to clear previous daily reminder [%w]", err)
	}
	if !enabled {
		log.WithFields(s.LogTags).Debug("Daily reminder disabled")
		return nil
	}

	granted, err := s.center.RequestAuthorization(ctx)
	if err != nil {
		return fmt.Errorf("notification permission request failed [%w]", err)
	}
	if !granted {
		return ErrNotificationPermissionDenied
	}

	title := "Care Log Reminder"
	body := "Time to record today's care notes."
	if models.LocaleIsJapanese(locale) {
		title = "ケア記録リマインダー"
		body = "今日のケア記録を残しましょう。"
	}

	if err := s.center.Add(ctx, NotificationRequest{
		Identifier: ReminderIdentifier,
		Title:      title,
		Body:       body,
		Hour:       hour,
		Minute:     minute,
	}); err != nil {
		return fmt.Errorf("failed to schedule daily reminder [%w]", err)
	}

	log.WithFields(s.LogTags).
		WithField("time", fmt.Sprintf("%02d:%02d", hour, minute)).
		Debug("Daily reminder scheduled")
	return nil
}
