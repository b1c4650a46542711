package userservice

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

// Permissions права пользователя на даты календаря
// Unrestricted - любая дата; иначе только даты из AllowedDates (YYYY-MM-DD)
type Permissions struct {
	UserID       int64    `json:"user_id"`
	Unrestricted bool     `json:"unrestricted"`
	AllowedDates []string `json:"allowed_dates"`
}

// CanEditDate проверяет, может ли пользователь менять расписание на дату
func (p *Permissions) CanEditDate(date time.Time) bool {
	if p == nil {
		return false
	}
	if p.Unrestricted {
		return true
	}
	return slices.Contains(p.AllowedDates, date.Format(domain.DateFormat))
}
