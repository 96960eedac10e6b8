package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/IvanChernomyrdin/go-student-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-student-registry/internal/shared/errors"
)

// emailRe — проверка формы email (без попытки валидировать RFC целиком).
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService реализует бизнес-логику регистрации и входа студентов.
//
// Ответственность:
//   - регистрация (валидация, проверка дублей, хэширование пароля)
//   - аутентификация (логин) без раскрытия существования studentId
//   - выпуск access токенов
type AuthService struct {
	students StudentsRepo

	pass crypto.BcryptParams
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(students StudentsRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		students: students,

		pass: crypto.BcryptParams{
			Cost: cfg.Password.Bcrypt.Cost,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// NormalizeEmail приводит email к каноническому виду: trim + нижний регистр.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// Register регистрирует нового студента.
//
// Валидация:
//   - studentId, name, email, password обязательны
//   - email должен быть валидным по форме (после trim + lowercase)
//   - пароль не нормализуется: пробелы в нём значимы, принимается как есть
//
// Перед созданием выполняется проверка дублей по studentId И по email —
// это быстрый путь для нормальной ошибки; гонку двух одновременных
// регистраций ловит уникальный индекс БД (репозиторий вернёт ErrAlreadyExists).
//
// Возвращает созданную запись студента (с хэшем, который api-слой не отдаёт наружу).
func (s *AuthService) Register(ctx context.Context, studentID, name, email, password string) (models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if studentID == "" || name == "" || email == "" || password == "" {
		return models.Student{}, serr.ErrInvalidInput
	}
	if !emailRe.MatchString(email) {
		return models.Student{}, serr.ErrInvalidInput
	}

	// быстрый путь: дубль по любому из двух уникальных полей
	_, err := s.students.GetByStudentIDOrEmail(ctx, studentID, email)
	if err == nil {
		return models.Student{}, serr.ErrAlreadyExists
	}
	if !errors.Is(err, serr.ErrNotFound) {
		return models.Student{}, err
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.Student{}, serr.ErrInternal
	}
	return s.students.Create(ctx, studentID, name, email, hash)
}

// Login аутентифицирует студента и выдаёт access токен.
//
// Поведение:
//   - не раскрывает факт существования studentId: и для неизвестного id,
//     и для неверного пароля возвращается один и тот же ErrInvalidCredentials
//   - ошибка хэшера (битый хэш в БД) — это ErrInternal, а не отказ в доступе
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
//   - ErrInternal
func (s *AuthService) Login(ctx context.Context, studentID, password string) (string, models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" || password == "" {
		return "", models.Student{}, serr.ErrInvalidInput
	}
	// получаем студента по id
	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		// не палим существование studentId
		if errors.Is(err, serr.ErrNotFound) {
			return "", models.Student{}, serr.ErrInvalidCredentials
		}
		return "", models.Student{}, err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, student.PasswordHash)
	if err != nil {
		return "", models.Student{}, serr.ErrInternal
	}
	if !ok {
		return "", models.Student{}, serr.ErrInvalidCredentials
	}
	// выпускаем access токен с subject = studentId
	access, err := crypto.NewAccessToken(student.StudentID, s.jwt)
	if err != nil {
		return "", models.Student{}, serr.ErrInternal
	}

	return access, student, nil
}
