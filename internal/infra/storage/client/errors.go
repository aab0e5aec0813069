package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrInsufficientFunds возвращается, когда баланса не хватает для списания
	ErrInsufficientFunds = errors.New("client.repository: insufficient funds")

	// ErrNonPositiveAmount возвращается при попытке провести нулевую или отрицательную сумму
	ErrNonPositiveAmount = errors.New("client.repository: amount must be positive")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
