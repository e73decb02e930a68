package booking

import (
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
