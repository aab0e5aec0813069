package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/internal/jobs"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler регистрирует и запускает фоновые задачи по cron-расписанию
type Scheduler struct {
	cron   *cron.Cron
	jobs   *jobs.Runner
	logger Logger
}

// New создает планировщик и регистрирует задачи из конфигурации
func New(cfg config.SchedulerConfig, runner *jobs.Runner, logger Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:   c,
		jobs:   runner,
		logger: logger,
	}

	if _, err := c.AddFunc(cfg.StaleReservationSweep, runner.SweepStaleReservations); err != nil {
		logger.Error("Scheduler: failed to register SweepStaleReservations job: %v", err)
	} else {
		logger.Info("Scheduler: registered SweepStaleReservations job (%s)", cfg.StaleReservationSweep)
	}

	return s
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler: started")
}

// Stop останавливает планировщик, дожидаясь завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler: stopped")
}
