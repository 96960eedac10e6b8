// Серверная модель студента
package models

import (
	"time"

	"github.com/google/uuid"
)

// Student — запись студента, как она хранится в базе данных.
// PasswordHash доступен только внутри сервера и не попадает в API-ответы.
type Student struct {
	ID           uuid.UUID
	StudentID    string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
