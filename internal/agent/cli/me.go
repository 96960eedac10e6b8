package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCmd создаёт CLI-команду получения собственного профиля.
//
// Команда использует access токен, сохранённый командой login.
// Если токена нет — возвращает ошибку с подсказкой залогиниться.
//
// Пример использования:
//
//	studentctl me
func NewMeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Профиль владельца сохранённого токена",
		Long: `Профиль владельца сохранённого access токена.

Пример:
  studentctl me
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return errors.New("no saved token; run: studentctl login")
			}

			c := NewAPIClient(app.ServerURL)
			student, err := c.Me(app.Creds.AccessToken)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "studentId: %s\nname: %s\nemail: %s\n",
				student.StudentID, student.Name, student.Email)
			return nil
		},
	}

	return cmd
}
