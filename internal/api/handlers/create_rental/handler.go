package create_rental

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingActor       = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgClientNotFound     = "клиент не найден"
	msgVehicleNotFound    = "машина не найдена"
	msgStationNotFound    = "станция не найдена"
	msgStationInactive    = "станция не работает"
	msgInvalidInterval    = "некорректный интервал аренды"
	msgActiveRentalExists = "у клиента уже есть активная аренда"
	msgVehicleReserved    = "машина забронирована на этот интервал"
	msgInsufficientFunds  = "недостаточно средств на балансе"
)

type Handler struct {
	useCase CreateRentalUseCase
	logger  Logger
}

func NewHandler(useCase CreateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /rentals - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req CreateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /rentals - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRental.ErrPermissionDenied):
			h.logger.Warn("POST /rentals - Permission denied: actor=%d", actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createRental.ErrClientNotFound):
			h.logger.Warn("POST /rentals - Client not found: actor=%d", actor.ActorID())
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createRental.ErrVehicleNotFound):
			h.logger.Warn("POST /rentals - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createRental.ErrStationNotFound):
			h.logger.Warn("POST /rentals - Station not found: station_id=%d", req.PickupStationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, createRental.ErrStationInactive):
			h.logger.Warn("POST /rentals - Station inactive: station_id=%d", req.PickupStationID)
			handlers.RespondBadRequest(w, msgStationInactive)

		case errors.Is(err, createRental.ErrInvalidInterval):
			h.logger.Warn("POST /rentals - Invalid interval: actor=%d", actor.ActorID())
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createRental.ErrActiveRentalExists):
			h.logger.Warn("POST /rentals - Active rental exists: actor=%d", actor.ActorID())
			handlers.RespondError(w, http.StatusConflict, msgActiveRentalExists)

		case errors.Is(err, createRental.ErrVehicleReserved):
			h.logger.Warn("POST /rentals - Vehicle reserved: vehicle_id=%d", req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleReserved)

		case errors.Is(err, createRental.ErrInsufficientFunds):
			h.logger.Warn("POST /rentals - Insufficient funds: actor=%d", actor.ActorID())
			handlers.RespondError(w, http.StatusConflict, msgInsufficientFunds)

		case errors.Is(err, createRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /rentals - Failed to create rental: actor=%d, error=%v", actor.ActorID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals - Rental created successfully: rental_id=%d, client_id=%d", result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
