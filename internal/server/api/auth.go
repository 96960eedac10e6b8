// HTTP-хендлеры регистрации и логина студентов
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-student-registry/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-student-registry/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации студента.
type RegisterRequest struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest описывает тело запроса входа студента.
type LoginRequest struct {
	StudentID string `json:"studentId"`
	Password  string `json:"password"`
}

// LoginData описывает полезную нагрузку успешного входа.
type LoginData struct {
	Token   string         `json:"token"`
	Student shared.Student `json:"student"`
}

// Register обрабатывает регистрацию студента.
//
// Ответы:
//   - 201 Created: регистрация успешна, в data только публичные поля;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 409 Conflict: studentId или email уже заняты;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register student
// @Description  Creates a new student record. The response never contains the password hash.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} Response
// @Failure      400 {object} Response "Invalid input or bad JSON"
// @Failure      409 {object} Response "studentId or email already taken"
// @Failure      500 {object} Response "Internal server error"
// @Router       /students/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	student, err := h.Svc.Auth.Register(r.Context(), req.StudentID, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Errorw("register failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, toPublic(student))
}

// Login обрабатывает вход студента и выдачу access токена.
//
// Для неизвестного studentId и для неверного пароля статус и тело ответа
// полностью совпадают — по ответу нельзя перечислять существующие аккаунты.
//
// Ответы:
//   - 200 OK: успешный вход, в data токен и публичные поля студента;
//   - 400 Bad Request: неверный JSON или пустые поля;
//   - 401 Unauthorized: неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login student
// @Description  Authenticates a student and returns a time-limited bearer token.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} Response
// @Failure      400 {object} Response "Invalid input or bad JSON"
// @Failure      401 {object} Response "Invalid credentials"
// @Failure      500 {object} Response "Internal server error"
// @Router       /students/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, student, err := h.Svc.Auth.Login(r.Context(), req.StudentID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Errorw("login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, LoginData{
		Token:   token,
		Student: toPublic(student),
	})
}
