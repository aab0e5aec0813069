package get_user_payments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingActor  = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/payments - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/payments - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	// Клиент видит только свою историю движений, менеджер - любую
	if client, isClient := actor.(domain.ClientActor); isClient && client.ID != userID {
		h.logger.Warn("GET /users/{id}/payments - Access denied: user_id=%d, actor=%d", userID, actor.ActorID())
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetUserPayments(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/payments - Failed to get payments: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/payments - Retrieved %d payments for user_id=%d", len(result.Payments), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
