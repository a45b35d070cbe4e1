package main

import (
	"context"
	"flag"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/seed"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

func main() {
	var (
		pin      = flag.String("pin", seed.DefaultPIN, "staff PIN for the seeded professionals")
		bookings = flag.Int("bookings", 40, "random bookings to generate")
		date     = flag.String("date", "", "booking date YYYY-MM-DD (default: tomorrow)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("invalid configuration", "error", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "salon-seed"})
	log.Info("seed starting")

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("connect database", "error", err)
	}

	if err := seed.Postgres(db, *pin); err != nil {
		log.Fatal("seed catalogue", "error", err)
	}
	log.Info("catalogue seeded")

	now := timezone.Clock(cfg.Timezone)
	if *date == "" {
		*date = now().AddDate(0, 0, 1).Format("2006-01-02")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log.Logger)
	defer dispatcher.Close()

	create := ucAppointment.NewCreateAppointment(
		repository.NewAppointmentGormRepository(db),
		lock.NewLocalLocker(),
		dispatcher,
		cfg.SlotIntervalMinutes,
		now,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := seed.Bookings(ctx, create, gofakeit.New(0), *date, *bookings)
	if err != nil {
		log.Fatal("seed bookings", "error", err)
	}

	log.Info("seed complete",
		"date", *date,
		"created", res.Created,
		"conflicts", res.Conflicts,
		"rejected", res.Rejected,
	)
}
