// Package http реализует маршрутизацию HTTP-слоя сервера реестра студентов.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - подключение проверки JWT access-токенов на защищённых путях.
package http

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-student-registry/internal/server/api"
	"github.com/IvanChernomyrdin/go-student-registry/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты реестра под префиксом /students;
//   - middleware логирования для всех запросов;
//   - защищённый JWT эндпоинт /students/me.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/students", func(r chi.Router) {
		// Публичные пути
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/search", h.Search) // поиск по ?studentId=
		r.Put("/update", h.Update) // частичное обновление
		r.Delete("/delete", h.Delete)

		// защищённый путь: профиль владельца токена
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/me", h.Me)
		})
	})

	return r
}
