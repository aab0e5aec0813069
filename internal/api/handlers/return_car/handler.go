package return_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	returnCar "github.com/m04kA/SMC-RentalService/internal/usecase/return_car"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingActor       = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNoActiveRental     = "у клиента нет активной аренды"
	msgStationNotFound    = "станция не найдена"
	msgStationInactive    = "станция не работает"
	msgNotNearStation     = "вы находитесь слишком далеко от станции"
)

type Handler struct {
	useCase ReturnCarUseCase
	logger  Logger
}

func NewHandler(useCase ReturnCarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals/return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /rentals/return - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req ReturnCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals/return - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &returnCar.Request{
		Actor:     actor,
		StationID: req.StationID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, returnCar.ErrPermissionDenied):
			h.logger.Warn("POST /rentals/return - Permission denied: actor=%d", actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, returnCar.ErrNoActiveRental):
			h.logger.Warn("POST /rentals/return - No active rental: actor=%d", actor.ActorID())
			handlers.RespondError(w, http.StatusConflict, msgNoActiveRental)

		case errors.Is(err, returnCar.ErrStationNotFound):
			h.logger.Warn("POST /rentals/return - Station not found: station_id=%d", req.StationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, returnCar.ErrStationInactive):
			h.logger.Warn("POST /rentals/return - Station inactive: station_id=%d", req.StationID)
			handlers.RespondBadRequest(w, msgStationInactive)

		case errors.Is(err, returnCar.ErrNotNearStation):
			h.logger.Warn("POST /rentals/return - Not near station: actor=%d, station_id=%d", actor.ActorID(), req.StationID)
			handlers.RespondError(w, http.StatusConflict, msgNotNearStation)

		case errors.Is(err, returnCar.ErrInvalidInput):
			h.logger.Warn("POST /rentals/return - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /rentals/return - Failed to return car: actor=%d, error=%v", actor.ActorID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals/return - Car returned successfully: rental_id=%d, station_id=%d", result.ID, result.ReturnStationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
