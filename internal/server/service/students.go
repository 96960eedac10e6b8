package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-student-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-student-registry/internal/shared/errors"
)

// StudentsService реализует бизнес-логику работы с записями студентов.
// Сервис:
//   - валидирует входные данные;
//   - собирает патч для частичного обновления (last-write-wins, без версий);
//   - не знает о HTTP и БД напрямую.
type StudentsService struct {
	repo StudentsRepo
	pass crypto.BcryptParams
}

// NewStudentsService создаёт новый StudentsService.
func NewStudentsService(repo StudentsRepo, cfg *config.Config) *StudentsService {
	return &StudentsService{
		repo: repo,
		pass: crypto.BcryptParams{Cost: cfg.Password.Bcrypt.Cost},
	}
}

// Get возвращает запись студента по studentId.
//
// Ошибки:
//   - ErrInvalidInput — пустой studentId;
//   - ErrNotFound — записи нет.
func (s *StudentsService) Get(ctx context.Context, studentID string) (models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return models.Student{}, serr.ErrInvalidInput
	}
	return s.repo.GetByStudentID(ctx, studentID)
}

// Update частично обновляет запись студента.
//
// Обновляемые поля: name, email, password. nil означает "не менять".
// Хотя бы одно поле должно быть задано, иначе ErrInvalidInput.
//
// Особые случаи:
//   - email нормализуется (trim + lowercase) и проверяется по форме;
//     смена на занятый email даст ErrAlreadyExists от уникального индекса;
//   - password хэшируется здесь — в БД и в ответах хэш в открытом виде
//     никогда не оказывается.
//
// Ошибки:
//   - ErrInvalidInput, ErrNotFound, ErrAlreadyExists, ErrInternal.
func (s *StudentsService) Update(ctx context.Context, studentID string, name, email, password *string) (models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return models.Student{}, serr.ErrInvalidInput
	}
	if name == nil && email == nil && password == nil {
		return models.Student{}, serr.ErrInvalidInput
	}

	var patch StudentPatch

	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return models.Student{}, serr.ErrInvalidInput
		}
		patch.Name = &n
	}

	if email != nil {
		e := NormalizeEmail(*email)
		if !emailRe.MatchString(e) {
			return models.Student{}, serr.ErrInvalidInput
		}
		patch.Email = &e
	}

	if password != nil {
		// пароль не trim-ится: пробелы в нём значимы
		if *password == "" {
			return models.Student{}, serr.ErrInvalidInput
		}
		hash, err := crypto.HashPassword(*password, s.pass)
		if err != nil {
			return models.Student{}, serr.ErrInternal
		}
		patch.PasswordHash = &hash
	}

	return s.repo.UpdatePartial(ctx, studentID, patch)
}

// Delete физически удаляет запись студента (soft-delete нет).
//
// Возвращает удалённую запись. Повторное удаление того же studentId
// даст ErrNotFound — удаление идемпотентно по эффекту.
func (s *StudentsService) Delete(ctx context.Context, studentID string) (models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return models.Student{}, serr.ErrInvalidInput
	}
	return s.repo.Delete(ctx, studentID)
}
