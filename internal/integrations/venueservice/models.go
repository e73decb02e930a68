package venueservice

import "time"

// Venue данные площадки из сервиса управления площадками
// Ядро бронирования использует их для денормализации названия
// и как входы для расчёта стоимости
type Venue struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	IsPublished        bool       `json:"isPublished"`
	BasePrice          float64    `json:"basePrice"`
	DiscountPercent    float64    `json:"discount"`
	DealEnabled        bool       `json:"dealEnabled"`
	DealEndTime        *time.Time `json:"dealEndTime,omitempty"`
	AdditionalHourCost float64    `json:"additionalHourCost"`
}

// DealActive возвращает true, если скидочная акция площадки действует
func (v *Venue) DealActive(now time.Time) bool {
	return v.DealEnabled && v.DealEndTime != nil && v.DealEndTime.After(now)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
