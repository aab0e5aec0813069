package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	Actor     domain.Actor // инициатор операции (верифицированный клиент)
	VehicleID int64        // ID машины
	StartDate time.Time    // Начало интервала брони
	EndDate   time.Time    // Конец интервала брони
}

// Response модель ответа с созданной бронью.
// Бронь бесплатна: денежных полей в ответе нет.
type Response struct {
	ID        int64     // ID брони
	ClientID  int64     // ID клиента
	VehicleID int64     // ID машины
	StartDate time.Time // Начало интервала
	EndDate   time.Time // Конец интервала
	Status    string    // Статус брони (PENDING)
}
