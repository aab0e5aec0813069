package set_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	setReservationStatus "github.com/m04kA/SMC-RentalService/internal/usecase/set_reservation_status"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingActor         = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgNotFound             = "бронь не найдена"
	msgInvalidStatus        = "некорректный статус брони"
	msgInvalidTransition    = "недопустимый переход статусов"
	msgIntervalConflict     = "интервал уже удержан другой бронью или арендой"
)

type Handler struct {
	useCase SetReservationStatusUseCase
	logger  Logger
}

func NewHandler(useCase SetReservationStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req SetReservationStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &setReservationStatus.Request{
		Actor:         actor,
		ReservationID: reservationID,
		NewStatus:     req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, setReservationStatus.ErrPermissionDenied):
			h.logger.Warn("PATCH /reservations/{id}/status - Permission denied: reservation_id=%d, actor=%d", reservationID, actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, setReservationStatus.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, setReservationStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, setReservationStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: reservation_id=%d, target=%s", reservationID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, setReservationStatus.ErrIntervalConflict):
			h.logger.Warn("PATCH /reservations/{id}/status - Interval conflict: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgIntervalConflict)

		case errors.Is(err, setReservationStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to set status: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status updated successfully: reservation_id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
