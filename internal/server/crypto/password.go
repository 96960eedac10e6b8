// Хэширование паролей
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptParams задаёт параметры хэширования паролей.
type BcryptParams struct {
	Cost int
}

// HashPassword возвращает bcrypt-хэш пароля.
//
// Соль генерируется заново на каждый вызов, поэтому два хэша одного и того же
// пароля никогда не совпадают. Cost берётся из конфига (валидация конфига
// гарантирует cost >= 10).
func HashPassword(password string, p BcryptParams) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохранённого bcrypt-хэша.
//
// Несовпадение пароля — это НЕ ошибка: возвращается (false, nil).
// Ошибка возвращается только если хэш битый/некорректный, чтобы вызывающий
// код мог отличить "неверный пароль" от "испорченные данные".
func VerifyPassword(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("bcrypt compare: %w", err)
}
