package storage

import (
	"github.com/abezemskiy/punchclock/internal/repositories/attendance"
	"github.com/abezemskiy/punchclock/internal/repositories/identity"
)

// IPunchClockStorage - интерфейс сервера для хранения пользователей и отметок рабочего времени.
type IPunchClockStorage interface {
	identity.Identifier
	attendance.Recorder
}
