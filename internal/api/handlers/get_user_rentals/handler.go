package get_user_rentals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingActor  = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный статус в фильтре"
)

type Handler struct {
	service RentalService
	logger  Logger
}

func NewHandler(service RentalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/rentals?status=ACTIVE
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/rentals - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/rentals - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	// Клиент видит только свою историю, менеджер - любую
	if client, isClient := actor.(domain.ClientActor); isClient && client.ID != userID {
		h.logger.Warn("GET /users/{id}/rentals - Access denied: user_id=%d, actor=%d", userID, actor.ActorID())
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetUserRentalsRequest{ClientID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserRentals(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/rentals - Invalid status filter: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/rentals - Failed to get rentals: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/rentals - Retrieved %d rentals for user_id=%d", len(result.Rentals), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
