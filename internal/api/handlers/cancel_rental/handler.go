package cancel_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	cancelRental "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_rental"
)

const (
	msgInvalidRentalID = "некорректный ID аренды"
	msgMissingActor    = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
	msgNotFound        = "аренда не найдена"
	msgNotPending      = "отменить можно только неактивированную аренду"
)

type Handler struct {
	useCase CancelRentalUseCase
	logger  Logger
}

func NewHandler(useCase CancelRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{rentalId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{id}/cancel - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /rentals/{id}/cancel - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelRental.Request{
		Actor:    actor,
		RentalID: rentalID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelRental.ErrPermissionDenied):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Permission denied: rental_id=%d, actor=%d", rentalID, actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelRental.ErrRentalNotFound):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelRental.ErrInvalidTransition):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Rental is not pending: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		case errors.Is(err, cancelRental.ErrInvalidInput):
			h.logger.Warn("PATCH /rentals/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRentalID)

		default:
			h.logger.Error("PATCH /rentals/{id}/cancel - Failed to cancel rental: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/{id}/cancel - Rental cancelled successfully: rental_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
