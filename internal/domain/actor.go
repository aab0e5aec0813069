package domain

// Actor типизированный субъект операции. Вместо проверки строковой роли
// по месту, use case делает исчерпывающий type switch на границе API.
type Actor interface {
	ActorID() int64
	isActor()
}

// ClientActor клиент сервиса проката
type ClientActor struct {
	ID int64
}

// ActorID возвращает идентификатор клиента
func (a ClientActor) ActorID() int64 { return a.ID }

func (ClientActor) isActor() {}

// ManagerActor менеджер автопарка
type ManagerActor struct {
	ID int64
}

// ActorID возвращает идентификатор менеджера
func (a ManagerActor) ActorID() int64 { return a.ID }

func (ManagerActor) isActor() {}
