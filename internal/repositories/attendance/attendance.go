// attendance - пакет с моделью отметки рабочего времени и интерфейсом хранилища отметок.
package attendance

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInstantOutOfRange - ошибка создания отметки, момент времени отметки находится вне допустимого окна вокруг серверного времени.
	ErrInstantOutOfRange = errors.New("instant range not allowed")
	// ErrCooldownNotElapsed - ошибка создания отметки, с последней отметки пользователя прошло недостаточно времени.
	ErrCooldownNotElapsed = errors.New("instant range not satisfied")
)

// Recorder - интерфейс хранилища отметок рабочего времени.
type Recorder interface {
	AddPoint(ctx context.Context, userID int64, instant time.Time) (id int64, err error) // Метод для создания новой отметки.
	GetPoints(ctx context.Context, userID int64) ([]Point, error)                        // Метод для получения всех отметок пользователя.
}

// Point - модель отметки рабочего времени. Отметка неизменяемая, хранилище только дописывает новые.
type Point struct {
	ID      int64     `json:"id"`      // идентификатор отметки, монотонно возрастающая последовательность
	UserID  int64     `json:"user_id"` // идентификатор пользователя, к которому относится отметка
	Instant time.Time `json:"instant"` // момент времени отметки с часовым поясом
}

// PointData - структура данных для создания новой отметки.
type PointData struct {
	UserID  int64     `json:"user_id"` // идентификатор пользователя, для которого создается отметка
	Instant time.Time `json:"instant"` // момент времени отметки
}
