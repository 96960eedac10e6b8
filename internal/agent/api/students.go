// В этом файле описаны методы клиента для работы с эндпоинтами реестра:
// регистрация, вход, поиск, собственный профиль, обновление и удаление.
package api

import "net/url"

// Student — публичные поля записи студента, как их отдаёт сервер.
type Student struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

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
	Token   string  `json:"token"`
	Student Student `json:"student"`
}

// UpdateFields — частичные данные обновления; nil-поле не отправляется.
type UpdateFields struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateRequest описывает тело запроса частичного обновления.
type UpdateRequest struct {
	StudentID string       `json:"studentId"`
	NewData   UpdateFields `json:"newData"`
}

// DeleteRequest описывает тело запроса удаления.
type DeleteRequest struct {
	StudentID string `json:"studentId"`
}

// studentEnvelope — конверт ответа сервера с одной записью студента.
type studentEnvelope struct {
	Success bool    `json:"success"`
	Data    Student `json:"data"`
}

// loginEnvelope — конверт ответа сервера на логин.
type loginEnvelope struct {
	Success bool      `json:"success"`
	Data    LoginData `json:"data"`
}

// Register выполняет регистрацию студента на сервере.
//
// Метод отправляет POST запрос на /students/register и возвращает публичные
// поля созданной записи. В случае ошибки возвращает непустую ошибку.
func (c *Client) Register(studentID, name, email, password string) (Student, error) {
	var resp studentEnvelope
	err := c.PostJSON("/students/register", RegisterRequest{
		StudentID: studentID,
		Name:      name,
		Email:     email,
		Password:  password,
	}, &resp, "")
	return resp.Data, err
}

// Login выполняет вход студента и получает access токен.
//
// Метод отправляет POST запрос на /students/login и возвращает LoginData
// с токеном и публичными полями студента.
func (c *Client) Login(studentID, password string) (LoginData, error) {
	var resp loginEnvelope
	err := c.PostJSON("/students/login", LoginRequest{
		StudentID: studentID,
		Password:  password,
	}, &resp, "")
	return resp.Data, err
}

// Get запрашивает публичную запись студента по studentId.
//
// Метод отправляет GET запрос на /students/search (токен не требуется).
func (c *Client) Get(studentID string) (Student, error) {
	var resp studentEnvelope
	err := c.GetJSON("/students/search?studentId="+url.QueryEscape(studentID), &resp, "")
	return resp.Data, err
}

// Me запрашивает профиль владельца access токена.
//
// Метод отправляет GET запрос на /students/me с заголовком Authorization.
func (c *Client) Me(accessToken string) (Student, error) {
	var resp studentEnvelope
	err := c.GetJSON("/students/me", &resp, accessToken)
	return resp.Data, err
}

// Update отправляет частичное обновление записи студента.
//
// nil-поля в fields не попадают в JSON и сервером не трогаются.
func (c *Client) Update(studentID string, fields UpdateFields) (Student, error) {
	var resp studentEnvelope
	err := c.PutJSON("/students/update", UpdateRequest{
		StudentID: studentID,
		NewData:   fields,
	}, &resp, "")
	return resp.Data, err
}

// Delete удаляет запись студента по studentId.
//
// Возвращает удалённую запись как подтверждение.
func (c *Client) Delete(studentID string) (Student, error) {
	var resp studentEnvelope
	err := c.DeleteJSON("/students/delete", DeleteRequest{StudentID: studentID}, &resp, "")
	return resp.Data, err
}
