// inmemory - пакет с потокобезопасным хранилищем пользователей и отметок рабочего времени в оперативной памяти.
// Хранилище создается при старте процесса и теряется при его остановке, никакой сериализации не предусмотрено.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/abezemskiy/punchclock/internal/repositories/attendance"
	"github.com/abezemskiy/punchclock/internal/repositories/identity"
	"github.com/abezemskiy/punchclock/internal/server/attendance/rules"
)

// Store - реализует интерфейс storage.IPunchClockStorage и хранит все данные в оперативной памяти.
// Коллекции пользователей и отметок независимы, каждая защищена собственным мьютексом.
// Ни одна операция не удерживает оба мьютекса одновременно.
type Store struct {
	usersMutex sync.Mutex
	users      []identity.User
	lastUserID int64 // идентификатор последнего зарегистрированного пользователя

	pointsMutex sync.Mutex
	points      []attendance.Point
	lastPointID int64 // идентификатор последней принятой отметки

	lateTolerance  time.Duration // допустимое отставание отметки от серверного времени
	earlyTolerance time.Duration // допустимое опережение отметки
	cooldown       time.Duration // минимальный интервал между отметками одного пользователя

	now func() time.Time // функция получения текущего серверного времени
}

// NewStore - возвращает новый экземпляр хранилища с заданными допусками окна приема и интервалом между отметками.
func NewStore(lateTolerance, earlyTolerance, cooldown time.Duration) *Store {
	return &Store{
		lateTolerance:  lateTolerance,
		earlyTolerance: earlyTolerance,
		cooldown:       cooldown,
		now:            time.Now,
	}
}

// SetClock - устанавливает функцию получения текущего времени.
// Необходима для тестирования правил приема отметок с фиксированным временем.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Register - метод для регистрации нового пользователя.
// Проверка уникальности email и добавление пользователя выполняются в одной критической секции,
// поэтому две конкурентные регистрации с одинаковым email не могут завершиться успешно обе.
// Идентификатор расходуется только при фактическом добавлении пользователя.
func (s *Store) Register(_ context.Context, name, hash, email string, isAdmin bool) (int64, error) {
	s.usersMutex.Lock()
	defer s.usersMutex.Unlock()

	// Проверяю, что пользователь с таким email еще не зарегистрирован (email должен быть уникальным).
	for _, u := range s.users {
		if u.Email == email {
			return 0, identity.ErrEmailAlreadyExists
		}
	}

	// Назначаю следующий идентификатор и добавляю нового пользователя в коллекцию.
	s.lastUserID++
	s.users = append(s.users, identity.User{
		ID:      s.lastUserID,
		Name:    name,
		Hash:    hash,
		Email:   email,
		IsAdmin: isAdmin,
	})

	return s.lastUserID, nil
}

// Authorize - метод для получения авторизационных данных пользователя по email.
// Если пользователь с таким email не зарегистрирован, возвращается ok = false.
func (s *Store) Authorize(_ context.Context, email string) (identity.AuthorizationData, bool, error) {
	s.usersMutex.Lock()
	defer s.usersMutex.Unlock()

	// Ищу пользователя по email.
	for _, u := range s.users {
		if u.Email == email {
			// Наружу отдаю только проекцию пользователя, необходимую для авторизации.
			return identity.AuthorizationData{
				ID:      u.ID,
				Hash:    u.Hash,
				IsAdmin: u.IsAdmin,
			}, true, nil
		}
	}
	return identity.AuthorizationData{}, false, nil
}

// AddPoint - метод для создания новой отметки рабочего времени.
// Момент отметки должен попадать в допустимое окно вокруг текущего серверного времени,
// а с последней по моменту времени отметки пользователя должно пройти не меньше установленного интервала.
// Проверка интервала и добавление отметки выполняются в одной критической секции.
func (s *Store) AddPoint(_ context.Context, userID int64, instant time.Time) (int64, error) {
	// Проверяю попадание момента отметки в допустимое окно. Серверное время фиксируется в момент проверки.
	if !rules.WithinAdmissionWindow(instant, s.now(), s.lateTolerance, s.earlyTolerance) {
		return 0, attendance.ErrInstantOutOfRange
	}

	s.pointsMutex.Lock()
	defer s.pointsMutex.Unlock()

	// Среди отметок пользователя ищу отметку с максимальным моментом времени.
	// Порядок добавления не подходит: отметки разных пользователей чередуются в коллекции произвольно.
	var last time.Time
	found := false
	for _, p := range s.points {
		if p.UserID == userID && (!found || p.Instant.After(last)) {
			last = p.Instant
			found = true
		}
	}

	// Если отметки уже есть, проверяю что с последней прошло достаточно времени.
	if found && !rules.CooldownElapsed(last, instant, s.cooldown) {
		return 0, attendance.ErrCooldownNotElapsed
	}

	// Назначаю следующий идентификатор и добавляю новую отметку в коллекцию.
	s.lastPointID++
	s.points = append(s.points, attendance.Point{
		ID:      s.lastPointID,
		UserID:  userID,
		Instant: instant,
	})
	return s.lastPointID, nil
}

// GetPoints - метод для получения всех отметок пользователя.
func (s *Store) GetPoints(_ context.Context, userID int64) ([]attendance.Point, error) {
	s.pointsMutex.Lock()
	defer s.pointsMutex.Unlock()

	// Копирую отметки пользователя для обеспечения потокобезопасности.
	points := make([]attendance.Point, 0)
	for _, p := range s.points {
		if p.UserID == userID {
			points = append(points, p)
		}
	}
	return points, nil
}
