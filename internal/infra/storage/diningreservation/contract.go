package diningreservation

import "github.com/castelmar/CH-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
