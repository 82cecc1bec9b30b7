package main

import (
	"context"
	"flag"
	"log"
	"time"

	appschedule "github.com/erenoa/vrc-shift-scheduler/backend/internal/app/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/config"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/timeutil"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/infra/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

// BatchConfig extends config.Config with the batch-only settings: which
// team to generate for and on what cadence. A production deployment runs
// one of these per team.
type BatchConfig struct {
	config.Config
	TeamID   string `envconfig:"TEAM_ID" required:"true"`
	CronSpec string `envconfig:"GENERATION_CRON" default:"0 6 * * 1"` // Monday 06:00
}

func main() {
	once := flag.Bool("once", false, "run a single generation immediately and exit, instead of scheduling")
	flag.Parse()

	log.Println("VRC shift scheduler batch runner starting")

	var cfg BatchConfig
	if err := loadBatchConfig(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Database connected")

	generateUC := buildGenerateUsecase(pool, cfg)

	runGeneration := func() {
		if err := runNextWeekGeneration(ctx, generateUC, cfg); err != nil {
			log.Printf("generation failed: %v", err)
		}
	}

	if *once {
		runGeneration()
		log.Println("Batch run complete")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSpec, runGeneration); err != nil {
		log.Fatalf("Invalid cron spec %q: %v", cfg.CronSpec, err)
	}
	log.Printf("Scheduled generation for team %s on %q", cfg.TeamID, cfg.CronSpec)
	c.Run()
}

func loadBatchConfig(cfg *BatchConfig) error {
	return envconfig.Process("", cfg)
}

func buildGenerateUsecase(pool *pgxpool.Pool, cfg BatchConfig) *appschedule.GenerateScheduleUsecase {
	txManager := db.NewPgxTxManager(pool)
	return appschedule.NewGenerateScheduleUsecase(
		db.NewScheduleRepository(pool),
		db.NewAssignmentRepository(pool),
		db.NewMemberRepository(pool),
		db.NewUnavailablePeriodRepository(pool),
		db.NewFairnessCountRepository(pool),
		db.NewAuditEntryRepository(pool),
		txManager,
		cfg.SchedulingConfig(),
	)
}

// runNextWeekGeneration generates the Monday-Saturday window following
// the current one, the cadence implied by "subsequent generations"
// without naming a caller.
func runNextWeekGeneration(ctx context.Context, uc *appschedule.GenerateScheduleUsecase, cfg BatchConfig) error {
	now := time.Now().In(cfg.SchedulingConfig().Location())
	currentWeekStart, _ := timeutil.WeekBucket(now)
	nextWeekStart := timeutil.AddDays(currentWeekStart, 7)
	nextWeekEnd := timeutil.AddDays(nextWeekStart, 5)

	log.Printf("generating schedule for team %s: %s - %s", cfg.TeamID,
		nextWeekStart.Format("2006-01-02"), nextWeekEnd.Format("2006-01-02"))

	output, err := uc.Execute(ctx, appschedule.GenerateScheduleInput{
		TeamID:         cfg.TeamID,
		StartDate:      nextWeekStart,
		EndDate:        nextWeekEnd,
		Seed:           now.UnixNano(),
		Aggressiveness: cfg.DefaultAggressiveness,
	})
	if err != nil {
		return err
	}

	log.Printf("generated schedule %s: %d assignments, %d warnings",
		output.ScheduleID, len(output.Assignments), len(output.Warnings))
	return nil
}
