package roomreservation

import "github.com/castelmar/CH-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics:
// репозиторий одинаково работает с *sql.DB и обёрткой с метриками
type DBExecutor = dbmetrics.DBExecutor
