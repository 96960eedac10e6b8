// Package service содержит бизнес-логику реестра студентов.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-student-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Students StudentsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Students *StudentsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и подписи токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Students, cfg),
		Students: NewStudentsService(repos.Students, cfg),
	}
}

// StudentPatch — частичное обновление записи студента.
// nil-поле означает "не трогать". Пустых строк сюда не попадает:
// валидация выполняется в сервисном слое до вызова репозитория.
type StudentPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// StudentsRepo — репозиторий студентов.
//
// Create и UpdatePartial обязаны транслировать нарушение уникального индекса
// (studentId/email) в ErrAlreadyExists: предварительная проверка в сервисе —
// это только быстрый путь, а настоящая защита от гонок — уникальный индекс БД.
type StudentsRepo interface {
	Create(ctx context.Context, studentID, name, email, passwordHash string) (models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (models.Student, error)
	GetByStudentIDOrEmail(ctx context.Context, studentID, email string) (models.Student, error)
	UpdatePartial(ctx context.Context, studentID string, patch StudentPatch) (models.Student, error)
	Delete(ctx context.Context, studentID string) (models.Student, error)
}
