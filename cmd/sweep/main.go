package main

import (
	"context"
	"flag"
	"log"

	"github.com/fatih/color"

	"contract-renewal-be/internal/bootstrap"
	"contract-renewal-be/internal/config"
	"contract-renewal-be/pkg/database"
)

// One-shot runner for the daily jobs. Meant for external schedulers
// and manual operation; the REST process runs the same jobs on its own
// timer.
func main() {
	runRenew := flag.Bool("auto-renew", true, "run the auto-renew sweep")
	runReminders := flag.Bool("reminders", true, "run the reminder scan")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	// The dispatcher must be live or queued reminders go nowhere.
	if err := container.MailDispatchService.Consume(ctx); err != nil {
		log.Fatalf("Failed to start mail dispatcher: %v", err)
	}

	if *runRenew {
		color.Yellow("Running auto-renew sweep...")
		res, err := container.RenewalService.Sweep(ctx)
		if err != nil {
			color.Red("Sweep failed: %v", err)
		} else {
			color.Green("Sweep done: scanned=%d advanced=%d skipped=%d failed=%d",
				res.Scanned, res.Advanced, res.Skipped, res.Failed)
		}
	}

	if *runReminders {
		color.Yellow("Running reminder scan...")
		res, err := container.ReminderService.Run(ctx)
		if err != nil {
			color.Red("Reminder scan failed: %v", err)
		} else {
			color.Green("Reminders done: scanned=%d queued=%d", res.Scanned, res.Queued)
		}
	}
}
