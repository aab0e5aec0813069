package delete_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	deleteRental "github.com/m04kA/SMC-RentalService/internal/usecase/delete_rental"
)

const (
	msgInvalidRentalID = "некорректный ID аренды"
	msgMissingActor    = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
	msgNotFound        = "аренда не найдена"
	msgNotDeletable    = "удалить можно только неактивированную аренду"
)

type Handler struct {
	useCase DeleteRentalUseCase
	logger  Logger
}

func NewHandler(useCase DeleteRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/rentals/{rentalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rentals/{id} - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /rentals/{id} - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	_, err = h.useCase.Execute(r.Context(), &deleteRental.Request{
		Actor:    actor,
		RentalID: rentalID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteRental.ErrPermissionDenied):
			h.logger.Warn("DELETE /rentals/{id} - Permission denied: rental_id=%d, actor=%d", rentalID, actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, deleteRental.ErrRentalNotFound):
			h.logger.Warn("DELETE /rentals/{id} - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteRental.ErrNotDeletable):
			h.logger.Warn("DELETE /rentals/{id} - Rental is not pending: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgNotDeletable)

		case errors.Is(err, deleteRental.ErrInvalidInput):
			h.logger.Warn("DELETE /rentals/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRentalID)

		default:
			h.logger.Error("DELETE /rentals/{id} - Failed to delete rental: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rentals/{id} - Rental deleted successfully: rental_id=%d", rentalID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
