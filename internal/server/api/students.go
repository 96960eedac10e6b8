package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-student-registry/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-student-registry/internal/shared/errors"
)

// UpdateFields — частичные данные обновления. nil-поле не трогается.
// Пароль принимается открытым текстом и хэшируется в сервисном слое;
// в ответе его (и хэша) не бывает никогда.
type UpdateFields struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateRequest описывает тело запроса частичного обновления.
type UpdateRequest struct {
	StudentID string        `json:"studentId"`
	NewData   *UpdateFields `json:"newData"`
}

// DeleteRequest описывает тело запроса удаления.
type DeleteRequest struct {
	StudentID string `json:"studentId"`
}

// Search возвращает запись студента по studentId из query-параметра.
//
// Публичный эндпоинт: токен не требуется. Хэш пароля в ответ не попадает.
//
// Ответы:
//   - 200 OK: запись найдена;
//   - 400 Bad Request: пустой studentId;
//   - 404 Not Found: записи нет;
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      Search student
// @Description  Returns public student fields by studentId.
// @Tags         students
// @Produce      json
// @Param        studentId query string true "Student identifier"
// @Success      200 {object} Response
// @Failure      400 {object} Response "Missing studentId"
// @Failure      404 {object} Response "Not found"
// @Failure      500 {object} Response "Internal server error"
// @Router       /students/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("studentId")

	student, err := h.Svc.Students.Get(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("search failed", "error", err, "student_id", studentID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toPublic(student))
}

// Me возвращает профиль студента, которому принадлежит access токен.
//
// Защищённый эндпоинт: studentId берётся из claims токена (middleware).
// 404 возможен, если запись удалили после выдачи токена.
//
// @Summary      Own profile
// @Description  Returns the profile of the token owner.
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response
// @Failure      401 {object} Response "Missing or invalid token"
// @Failure      404 {object} Response "Record deleted"
// @Failure      500 {object} Response "Internal server error"
// @Router       /students/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	student, err := h.Svc.Students.Get(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("me failed", "error", err, "student_id", studentID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toPublic(student))
}

// Update частично обновляет запись студента (last-write-wins).
//
// Ответы:
//   - 200 OK: обновлённая запись (без хэша);
//   - 400 Bad Request: пустой studentId или пустой newData;
//   - 404 Not Found: записи нет (запись при этом НЕ создаётся);
//   - 409 Conflict: новый email занят;
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      Update student
// @Description  Applies a partial patch (name/email/password). Password is re-hashed server-side.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body UpdateRequest true "Update request"
// @Success      200 {object} Response
// @Failure      400 {object} Response "Missing studentId or empty patch"
// @Failure      404 {object} Response "Not found"
// @Failure      409 {object} Response "Email already taken"
// @Failure      500 {object} Response "Internal server error"
// @Router       /students/update [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}
	if req.NewData == nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	student, err := h.Svc.Students.Update(
		r.Context(),
		req.StudentID,
		req.NewData.Name,
		req.NewData.Email,
		req.NewData.Password,
	)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Errorw("update failed", "error", err, "student_id", req.StudentID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toPublic(student))
}

// Delete физически удаляет запись студента.
//
// Повторный вызов для того же studentId вернёт 404 — удаление идемпотентно
// по эффекту.
//
// Ответы:
//   - 200 OK: удалённая запись (подтверждение);
//   - 400 Bad Request: пустой studentId;
//   - 404 Not Found: записи нет;
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      Delete student
// @Description  Physically removes the record. Second delete of the same id returns 404.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body DeleteRequest true "Delete request"
// @Success      200 {object} Response
// @Failure      400 {object} Response "Missing studentId"
// @Failure      404 {object} Response "Not found"
// @Failure      500 {object} Response "Internal server error"
// @Router       /students/delete [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	student, err := h.Svc.Students.Delete(r.Context(), req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("delete failed", "error", err, "student_id", req.StudentID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toPublic(student))
}
