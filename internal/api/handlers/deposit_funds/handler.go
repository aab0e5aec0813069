package deposit_funds

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	depositFunds "github.com/m04kA/SMC-RentalService/internal/usecase/deposit_funds"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingActor       = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgClientNotFound     = "клиент не найден"
	msgNonPositiveAmount  = "сумма пополнения должна быть положительной"
)

type Handler struct {
	useCase DepositFundsUseCase
	logger  Logger
}

func NewHandler(useCase DepositFundsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/balance/deposit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /balance/deposit - Missing actor in context")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req DepositFundsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /balance/deposit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &depositFunds.Request{
		Actor:  actor,
		Amount: req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, depositFunds.ErrPermissionDenied):
			h.logger.Warn("POST /balance/deposit - Permission denied: actor=%d", actor.ActorID())
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, depositFunds.ErrClientNotFound):
			h.logger.Warn("POST /balance/deposit - Client not found: actor=%d", actor.ActorID())
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, depositFunds.ErrNonPositiveAmount):
			h.logger.Warn("POST /balance/deposit - Non-positive amount: actor=%d, amount=%.2f", actor.ActorID(), req.Amount)
			handlers.RespondBadRequest(w, msgNonPositiveAmount)

		case errors.Is(err, depositFunds.ErrInvalidInput):
			h.logger.Warn("POST /balance/deposit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /balance/deposit - Failed to deposit: actor=%d, error=%v", actor.ActorID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /balance/deposit - Deposit successful: client_id=%d, amount=%.2f", result.ClientID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
