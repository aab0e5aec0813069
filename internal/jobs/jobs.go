package jobs

import (
	"context"
	"time"
)

// ReservationRepository интерфейс репозитория броней для фоновых задач
type ReservationRepository interface {
	CancelStalePending(ctx context.Context, now time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// jobTimeout ограничение на выполнение одной фоновой задачи
const jobTimeout = 30 * time.Second

// Runner фоновые задачи сервиса
type Runner struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewRunner создает runner фоновых задач
func NewRunner(reservationRepo ReservationRepository, logger Logger) *Runner {
	return &Runner{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// SweepStaleReservations отменяет PENDING брони, чье время начала прошло.
// PENDING бронь не блокирует машину, но держать её после начала окна
// бессмысленно: подтвердить её уже нельзя без конфликта с настоящим.
func (r *Runner) SweepStaleReservations() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cancelled, err := r.reservationRepo.CancelStalePending(ctx, time.Now())
	if err != nil {
		r.logger.Error("SweepStaleReservations: failed to cancel stale reservations: %v", err)
		return
	}

	if cancelled > 0 {
		r.logger.Info("SweepStaleReservations: cancelled %d stale pending reservations", cancelled)
	}
}
