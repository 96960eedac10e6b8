package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-student-registry/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа студента.
//
// Команда выполняет аутентификацию на сервере реестра, получает access токен
// и сохраняет его в локальный конфигурационный файл.
//
// Пример использования:
//
//	studentctl login --student-id S1 --password p@ss1234
//
// В случае успешного выполнения токен сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var studentID, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин студента (получить access токен)",
		Long: `Логин студента.

Пример:
  studentctl login --student-id S1 --password p@ss1234
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := ReadPassword(cmd, password)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// выполняем логин студента
			resp, err := c.Login(studentID, pw)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.AccessToken = resp.Token

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student-id", "", "student identifier for login")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.MarkFlagRequired("student-id")

	return cmd
}
