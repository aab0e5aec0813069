package update_rental_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	updateRentalDates "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental_dates"
)

const (
	msgInvalidRentalID    = "некорректный ID аренды"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingActor       = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "аренда не найдена"
	msgNotPending         = "даты можно менять только до активации аренды"
	msgInvalidInterval    = "некорректный интервал аренды"
	msgVehicleReserved    = "машина забронирована на этот интервал"
	msgInsufficientFunds  = "недостаточно средств для доплаты"
)

type Handler struct {
	useCase UpdateRentalDatesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateRentalDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{rentalId}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{id}/dates - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /rentals/{id}/dates - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req UpdateRentalDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rentals/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, rentalID)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{id}/dates - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateRentalDates.ErrPermissionDenied):
			h.logger.Warn("PATCH /rentals/{id}/dates - Permission denied: rental_id=%d, actor=%d", rentalID, actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateRentalDates.ErrRentalNotFound):
			h.logger.Warn("PATCH /rentals/{id}/dates - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateRentalDates.ErrInvalidTransition):
			h.logger.Warn("PATCH /rentals/{id}/dates - Rental is not pending: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		case errors.Is(err, updateRentalDates.ErrInvalidInterval):
			h.logger.Warn("PATCH /rentals/{id}/dates - Invalid interval: rental_id=%d", rentalID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, updateRentalDates.ErrVehicleReserved):
			h.logger.Warn("PATCH /rentals/{id}/dates - Vehicle reserved: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleReserved)

		case errors.Is(err, updateRentalDates.ErrInsufficientFunds):
			h.logger.Warn("PATCH /rentals/{id}/dates - Insufficient funds: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientFunds)

		case errors.Is(err, updateRentalDates.ErrInvalidInput):
			h.logger.Warn("PATCH /rentals/{id}/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /rentals/{id}/dates - Failed to update dates: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/{id}/dates - Dates updated successfully: rental_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
