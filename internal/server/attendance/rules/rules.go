// rules - пакет с бизнес-правилами приема отметок рабочего времени.
package rules

import "time"

// Значения допусков по умолчанию. Применяются, если иные значения не заданы конфигурацией.
const (
	DefaultLateTolerance  = 10 * time.Second // допустимое отставание отметки от серверного времени
	DefaultEarlyTolerance = time.Second      // допустимое опережение отметки относительно серверного времени
	DefaultCooldown       = 30 * time.Minute // минимальный интервал между соседними отметками одного пользователя
)

// WithinAdmissionWindow - функция для проверки попадания момента отметки в допустимое окно вокруг текущего серверного времени.
// Окно определяется как [now - late, now + early], границы окна включаются.
func WithinAdmissionWindow(check, now time.Time, late, early time.Duration) bool {
	lowerBound := now.Add(-late)
	higherBound := now.Add(early)
	return !check.Before(lowerBound) && !check.After(higherBound)
}

// CooldownElapsed - функция для проверки, что с момента последней отметки пользователя прошло не меньше cooldown.
// Момент last - это максимальный момент среди уже принятых отметок пользователя.
func CooldownElapsed(last, check time.Time, cooldown time.Duration) bool {
	return check.Sub(last) >= cooldown
}
