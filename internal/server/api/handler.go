// Package api реализует HTTP-слой сервера реестра студентов.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - единый конверт ответа {success, data?|error?}.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-student-registry/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/models"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/service"
	"github.com/IvanChernomyrdin/go-student-registry/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/go-student-registry/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Response — единый конверт всех ответов API.
//
// Успех:  {"success": true,  "data": {...}}
// Ошибка: {"success": false, "error": "человекочитаемое сообщение"}
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// WriteJSON пишет успешный ответ в общем конверте.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Success: true,
		Data:    data,
	})
}

// WriteError пишет ошибку в общем конверте.
// Текст ошибки — это всегда доменная sentinel-ошибка, внутренние детали
// (SQL, стек) наружу не уходят.
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Success: false,
		Error:   err.Error(),
	})
}

// toPublic превращает серверную модель в публичную: хэш пароля отбрасывается
// на уровне типа, попасть в JSON ему просто неоткуда.
func toPublic(s models.Student) shared.Student {
	return shared.Student{
		StudentID: s.StudentID,
		Name:      s.Name,
		Email:     s.Email,
	}
}
