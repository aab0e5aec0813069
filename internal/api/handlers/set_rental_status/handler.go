package set_rental_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	setRentalStatus "github.com/m04kA/SMC-RentalService/internal/usecase/set_rental_status"
)

const (
	msgInvalidRentalID      = "некорректный ID аренды"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingActor         = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgNotFound             = "аренда не найдена"
	msgInvalidStatus        = "некорректный статус аренды"
	msgInvalidTransition    = "недопустимый переход статусов"
	msgVehicleReserved      = "машина забронирована на этот интервал"
	msgVehicleUnavailable   = "машина уже выдана"
	msgMissingReturnStation = "станция возврата не установлена"
)

type Handler struct {
	useCase SetRentalStatusUseCase
	logger  Logger
}

func NewHandler(useCase SetRentalStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{rentalId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{id}/status - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /rentals/{id}/status - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req SetRentalStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rentals/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &setRentalStatus.Request{
		Actor:     actor,
		RentalID:  rentalID,
		NewStatus: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, setRentalStatus.ErrPermissionDenied):
			h.logger.Warn("PATCH /rentals/{id}/status - Permission denied: rental_id=%d, actor=%d", rentalID, actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, setRentalStatus.ErrRentalNotFound):
			h.logger.Warn("PATCH /rentals/{id}/status - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, setRentalStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /rentals/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, setRentalStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /rentals/{id}/status - Invalid transition: rental_id=%d, target=%s", rentalID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, setRentalStatus.ErrVehicleReserved):
			h.logger.Warn("PATCH /rentals/{id}/status - Vehicle reserved: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleReserved)

		case errors.Is(err, setRentalStatus.ErrVehicleUnavailable):
			h.logger.Warn("PATCH /rentals/{id}/status - Vehicle unavailable: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleUnavailable)

		case errors.Is(err, setRentalStatus.ErrMissingReturnStation):
			h.logger.Warn("PATCH /rentals/{id}/status - Missing return station: rental_id=%d", rentalID)
			handlers.RespondError(w, http.StatusConflict, msgMissingReturnStation)

		case errors.Is(err, setRentalStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /rentals/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /rentals/{id}/status - Failed to set status: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/{id}/status - Status updated successfully: rental_id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
