package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alwitt/carelog/db"
	"github.com/alwitt/carelog/models"
	"github.com/alwitt/carelog/notify"
	"github.com/alwitt/carelog/store"
	"github.com/alwitt/carelog/vitals"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm/logger"
)

// consoleNotificationCenter stand-in notification capability for dev machines.
// There is no platform notification center to drive, so scheduling just prints
// what a device build would register.
type consoleNotificationCenter struct{}

func (consoleNotificationCenter) RequestAuthorization(_ context.Context) (bool, error) {
	return true, nil
}

func (consoleNotificationCenter) Add(_ context.Context, request notify.NotificationRequest) error {
	fmt.Printf(
		"Daily reminder %q scheduled for %02d:%02d\n",
		request.Title, request.Hour, request.Minute,
	)
	return nil
}

func (consoleNotificationCenter) RemovePending(_ context.Context, _ string) error {
	return nil
}

// defaultDBPath the sqlite file used when --db is not given
func defaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "carelog.db"
	}
	return filepath.Join(homeDir, ".carelog", "carelog.db")
}

// openStore open the sqlite-backed store, creating tables as needed
func openStore(dbFile string) (store.CareLogStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory [%w]", err)
	}

	persistence, err := db.NewConnection(db.GetSqliteDialector(dbFile), logger.Error)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB %s [%w]", dbFile, err)
	}

	ctx := context.Background()
	if err := persistence.RunSQLInTransaction(ctx, db.DefineTables); err != nil {
		return nil, fmt.Errorf("failed to prepare DB tables [%w]", err)
	}

	scheduler := notify.NewReminderScheduler(consoleNotificationCenter{})
	return store.NewCareLogStore(ctx, persistence, scheduler)
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	return &cli.App{
		Name:    "carelog",
		Usage:   "Home-care voice memo log",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Value: defaultDBPath(),
				Usage: "Sqlite DB file",
			},
		},
		Commands: []*cli.Command{
			addCmd(),
			listCmd(),
			summaryCmd(),
			reminderCmd(),
		},
	}
}

// addCmd creates the add command.
func addCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Log a care record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Value:   string(models.CareCategoryFreeMemo),
				Usage:   "Care category",
			},
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Transcript text"},
			&cli.StringFlag{Name: "memo", Aliases: []string{"m"}, Usage: "Free memo text"},
			&cli.StringFlag{Name: "caregiver", Usage: "Caregiver name"},
			&cli.StringFlag{
				Name:  "time",
				Usage: "Event time, RFC3339 or HH:MM today (default now)",
			},
			&cli.StringFlag{Name: "temp", Usage: "Body temperature in °C"},
			&cli.StringFlag{Name: "systolic", Usage: "Systolic blood pressure"},
			&cli.StringFlag{Name: "diastolic", Usage: "Diastolic blood pressure"},
			&cli.StringFlag{Name: "pulse", Usage: "Pulse rate"},
			&cli.StringFlag{Name: "spo2", Usage: "Oxygen saturation in %"},
		},
		Action: func(c *cli.Context) error {
			careStore, err := openStore(c.String("db"))
			if err != nil {
				return err
			}

			timestamp, err := parseEventTime(c.String("time"))
			if err != nil {
				return err
			}

			category := models.ParseCareCategory(c.String("category"))
			record, err := careStore.SaveRecord(c.Context, store.SaveRecordParams{
				Timestamp:      timestamp,
				Category:       category,
				TranscriptText: optionalString(c.String("text")),
				FreeMemoText:   optionalString(c.String("memo")),
				CaregiverName:  optionalString(c.String("caregiver")),
				RawVitals: vitals.RawFields{
					BodyTemperature:  c.String("temp"),
					SystolicBP:       c.String("systolic"),
					DiastolicBP:      c.String("diastolic"),
					PulseRate:        c.String("pulse"),
					OxygenSaturation: c.String("spo2"),
				},
			}, nil)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s (%s)\n", record.ID, record.Category)
			return nil
		},
	}
}

// listCmd creates the list command.
func listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the records of one day",
		ArgsUsage: "[yyyy-mm-dd]",
		Action: func(c *cli.Context) error {
			careStore, err := openStore(c.String("db"))
			if err != nil {
				return err
			}

			day, err := parseDayArg(c)
			if err != nil {
				return err
			}

			records, err := careStore.RecordsOnDay(c.Context, day, time.Local, nil)
			if err != nil {
				return err
			}

			for _, record := range records {
				line := fmt.Sprintf(
					"%s  %-12s", record.Timestamp.Local().Format("15:04"), record.Category,
				)
				if record.TranscriptText != nil {
					line += "  " + *record.TranscriptText
				} else if record.FreeMemoText != nil {
					line += "  " + *record.FreeMemoText
				}
				fmt.Println(line)
			}
			fmt.Printf("%d record(s)\n", len(records))
			return nil
		},
	}
}

// summaryCmd creates the summary command.
func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Usage:     "Print the shareable daily summary",
		ArgsUsage: "[yyyy-mm-dd]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "locale", Aliases: []string{"l"}, Value: "en", Usage: "BCP-47 locale tag"},
			&cli.BoolFlag{Name: "vitals", Usage: "Include the vital trend section"},
		},
		Action: func(c *cli.Context) error {
			careStore, err := openStore(c.String("db"))
			if err != nil {
				return err
			}

			day, err := parseDayArg(c)
			if err != nil {
				return err
			}

			text, err := careStore.DailySummaryText(
				c.Context, day, time.Local, c.String("locale"), c.Bool("vitals"), nil,
			)
			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}
}

// reminderCmd creates the reminder command.
func reminderCmd() *cli.Command {
	return &cli.Command{
		Name:  "reminder",
		Usage: "Show or change the daily reminder",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "enable", Usage: "Enable the daily reminder"},
			&cli.BoolFlag{Name: "disable", Usage: "Disable the daily reminder"},
			&cli.StringFlag{Name: "time", Usage: "Reminder time HH:MM"},
			&cli.StringFlag{Name: "locale", Aliases: []string{"l"}, Value: "en", Usage: "BCP-47 locale tag"},
		},
		Action: func(c *cli.Context) error {
			careStore, err := openStore(c.String("db"))
			if err != nil {
				return err
			}

			settings, err := careStore.ReminderSettings(c.Context, nil)
			if err != nil {
				return err
			}

			if !c.Bool("enable") && !c.Bool("disable") && !c.IsSet("time") {
				state := "disabled"
				if settings.DailyReminderEnabled {
					state = "enabled"
				}
				fmt.Printf(
					"Daily reminder %s at %02d:%02d\n",
					state, settings.DailyReminderHour, settings.DailyReminderMinute,
				)
				return nil
			}
			if c.Bool("enable") && c.Bool("disable") {
				return fmt.Errorf("--enable and --disable are mutually exclusive")
			}

			enabled := settings.DailyReminderEnabled
			if c.Bool("enable") {
				enabled = true
			}
			if c.Bool("disable") {
				enabled = false
			}

			hour := settings.DailyReminderHour
			minute := settings.DailyReminderMinute
			if c.IsSet("time") {
				hour, minute, err = parseClockTime(c.String("time"))
				if err != nil {
					return err
				}
			}

			_, err = careStore.UpdateDailyReminder(
				c.Context, enabled, hour, minute, c.String("locale"), nil,
			)
			return err
		},
	}
}

// optionalString nil for an empty flag value
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// parseEventTime parse the --time flag; empty means now
func parseEventTime(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	hour, minute, err := parseClockTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparsable event time '%s'", value)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.Local), nil
}

// parseClockTime parse "HH:MM"
func parseClockTime(value string) (int, int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unparsable clock time '%s', expect HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("unparsable clock time '%s', expect HH:MM", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("unparsable clock time '%s', expect HH:MM", value)
	}
	return hour, minute, nil
}

// parseDayArg the optional yyyy-mm-dd positional argument; default today
func parseDayArg(c *cli.Context) (time.Time, error) {
	if c.NArg() == 0 {
		return time.Now(), nil
	}
	raw := c.Args().First()
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparsable day '%s', expect yyyy-mm-dd", raw)
	}
	return day, nil
}
