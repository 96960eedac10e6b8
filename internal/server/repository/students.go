package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-student-registry/internal/server/models"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-student-registry/internal/shared/errors"
)

// uniqueViolation — код ошибки PostgreSQL для нарушения уникального индекса.
const uniqueViolation = "23505"

// studentColumns — общий список колонок для RETURNING/SELECT,
// чтобы scanStudent работал одинаково во всех запросах.
const studentColumns = "id, student_id, name, email, password_hash, created_at, updated_at"

// StudentsRepository реализует доступ к хранилищу студентов (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Каждый запрос выполняется с ограниченным таймаутом (queryTimeout из конфига),
// чтобы зависший вызов к базе не держал обработчик бесконечно.
type StudentsRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewStudentsRepository создаёт новый экземпляр StudentsRepository.
func NewStudentsRepository(db *sql.DB, queryTimeout time.Duration) *StudentsRepository {
	return &StudentsRepository{db: db, queryTimeout: queryTimeout}
}

// withTimeout навешивает таймаут на контекст запроса к БД.
func (r *StudentsRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// scanStudent читает одну строку в models.Student.
func scanStudent(row *sql.Row) (models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.StudentID, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create сохраняет нового студента.
//
// Ошибки:
//   - ErrAlreadyExists — нарушен уникальный индекс по student_id или email
//     (в том числе при гонке двух одновременных регистраций);
//   - ErrInternal — прочие ошибки базы данных.
func (r *StudentsRepository) Create(ctx context.Context, studentID, name, email, passwordHash string) (models.Student, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO students (student_id, name, email, password_hash)
		 VALUES ($1,$2,$3,$4)
		 RETURNING `+studentColumns,
		studentID, name, email, passwordHash,
	)

	s, err := scanStudent(row)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == uniqueViolation {
				return models.Student{}, serr.ErrAlreadyExists
			}
		}
		return models.Student{}, serr.ErrInternal
	}

	return s, nil
}

// GetByStudentID возвращает студента по studentId.
//
// Ошибки:
//   - ErrNotFound — записи нет;
//   - ErrInternal — прочие ошибки базы данных.
func (r *StudentsRepository) GetByStudentID(ctx context.Context, studentID string) (models.Student, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE student_id=$1`,
		studentID,
	)

	s, err := scanStudent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Student{}, serr.ErrNotFound
		}
		return models.Student{}, serr.ErrInternal
	}

	return s, nil
}

// GetByStudentIDOrEmail ищет студента по любому из двух уникальных полей.
// Используется перед регистрацией как быстрая проверка на дубль.
func (r *StudentsRepository) GetByStudentIDOrEmail(ctx context.Context, studentID, email string) (models.Student, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// LIMIT 1: при коллизии сразу по обоим полям достаточно любой записи
	row := r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE student_id=$1 OR email=$2 LIMIT 1`,
		studentID, email,
	)

	s, err := scanStudent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Student{}, serr.ErrNotFound
		}
		return models.Student{}, serr.ErrInternal
	}

	return s, nil
}

// UpdatePartial применяет частичное обновление записи (last-write-wins).
//
// SET собирается только из заданных полей патча; сервисный слой гарантирует,
// что патч непустой и значения уже нормализованы/захэшированы.
//
// Ошибки:
//   - ErrNotFound — студента с таким studentId нет (запись не создаётся);
//   - ErrAlreadyExists — новый email занят другой записью;
//   - ErrInternal — прочие ошибки базы данных.
func (r *StudentsRepository) UpdatePartial(ctx context.Context, studentID string, patch service.StudentPatch) (models.Student, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	set := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name=$%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		set = append(set, fmt.Sprintf("email=$%d", len(args)))
	}
	if patch.PasswordHash != nil {
		args = append(args, *patch.PasswordHash)
		set = append(set, fmt.Sprintf("password_hash=$%d", len(args)))
	}
	if len(set) == 0 {
		return models.Student{}, serr.ErrInvalidInput
	}
	set = append(set, "updated_at=now()")

	args = append(args, studentID)
	query := fmt.Sprintf(
		`UPDATE students SET %s WHERE student_id=$%d RETURNING %s`,
		strings.Join(set, ", "), len(args), studentColumns,
	)

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Student{}, serr.ErrNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == uniqueViolation {
				return models.Student{}, serr.ErrAlreadyExists
			}
		}
		return models.Student{}, serr.ErrInternal
	}

	return s, nil
}

// Delete физически удаляет студента и возвращает удалённую запись.
//
// Ошибки:
//   - ErrNotFound — записи уже нет (повторное удаление);
//   - ErrInternal — прочие ошибки базы данных.
func (r *StudentsRepository) Delete(ctx context.Context, studentID string) (models.Student, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`DELETE FROM students WHERE student_id=$1 RETURNING `+studentColumns,
		studentID,
	)

	s, err := scanStudent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Student{}, serr.ErrNotFound
		}
		return models.Student{}, serr.ErrInternal
	}

	return s, nil
}
