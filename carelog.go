// Package carelog - home-care voice memo logging core
package carelog

import (
	"context"
	"fmt"

	"github.com/alwitt/carelog/db"
	"github.com/alwitt/carelog/notify"
	"github.com/alwitt/carelog/store"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
NewCareLogStore initialize a care log store instance.

Each instance is backed by a SQL database; two instances using the same
database are essentially copies of each other.

	@param ctx context.Context - execution context
	@param dbDialector gorm.Dialector - GORM dialector
	@param dbLogLevel logger.LogLevel - SQL log level
	@param notificationCenter notify.NotificationCenter - platform local-notification capability
	@returns new store instance
*/
func NewCareLogStore(
	ctx context.Context,
	dbDialector gorm.Dialector,
	dbLogLevel logger.LogLevel,
	notificationCenter notify.NotificationCenter,
) (store.CareLogStore, error) {
	// Prepare persistence
	persistence, err := db.NewConnection(dbDialector, dbLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialized persistence client [%w]", err)
	}

	scheduler := notify.NewReminderScheduler(notificationCenter)

	store, err := store.NewCareLogStore(ctx, persistence, scheduler)
	if err != nil {
		return nil, fmt.Errorf("failed to initialized care log store [%w]", err)
	}

	return store, nil
}
