package models

// Student — публичное представление записи студента, используемое в HTTP API.
//
// Модель сознательно НЕ содержит поля с хэшем пароля: хэш никогда
// не сериализуется в ответах сервера, ни на одном эндпоинте.
//
// Поля:
//   - StudentID: уникальный идентификатор студента (задаётся при регистрации)
//   - Name: имя студента
//   - Email: email (уникальный, хранится в нижнем регистре)
type Student struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}
