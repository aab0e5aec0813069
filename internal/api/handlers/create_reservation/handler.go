package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingActor       = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotVerified        = "бронирование доступно только верифицированным клиентам"
	msgClientNotFound     = "клиент не найден"
	msgVehicleNotFound    = "машина не найдена"
	msgInvalidInterval    = "некорректный интервал брони"
	msgDuplicateHold      = "у вас уже есть бронь этой машины на пересекающийся интервал"
	msgVehicleBusy        = "машина занята активной арендой на этом интервале"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrPermissionDenied):
			h.logger.Warn("POST /reservations - Permission denied: actor=%d", actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createReservation.ErrClientNotVerified):
			h.logger.Warn("POST /reservations - Client not verified: actor=%d", actor.ActorID())
			handlers.RespondForbidden(w, msgNotVerified)

		case errors.Is(err, createReservation.ErrClientNotFound):
			h.logger.Warn("POST /reservations - Client not found: actor=%d", actor.ActorID())
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createReservation.ErrVehicleNotFound):
			h.logger.Warn("POST /reservations - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createReservation.ErrInvalidInterval):
			h.logger.Warn("POST /reservations - Invalid interval: actor=%d", actor.ActorID())
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createReservation.ErrDuplicateHold):
			h.logger.Warn("POST /reservations - Duplicate hold: actor=%d, vehicle_id=%d", actor.ActorID(), req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateHold)

		case errors.Is(err, createReservation.ErrVehicleBusy):
			h.logger.Warn("POST /reservations - Vehicle busy: vehicle_id=%d", req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleBusy)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: actor=%d, error=%v", actor.ActorID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, client_id=%d", result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
