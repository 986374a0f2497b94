package main

import (
	"context"
	"log"

	"contract-renewal-be/internal/bootstrap"
	"contract-renewal-be/internal/config"
	"contract-renewal-be/internal/server"
	"contract-renewal-be/internal/tracer"
	"contract-renewal-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Mail Dispatch Service...")
		if err := container.MailDispatchService.Consume(context.Background()); err != nil {
			log.Printf("Background Mail Dispatch Error: %v", err)
		}
	}()

	if cfg.Cron.EnableSchedule {
		log.Println("Background: Starting Daily Scheduler...")
		container.SchedulerService.Start(context.Background())
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
