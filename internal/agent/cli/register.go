package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового студента.
//
// Команда выполняет регистрацию на сервере реестра. Обязательные флаги:
// --student-id, --name, --email. Пароль можно передать флагом --password,
// иначе он будет запрошен с терминала без эха.
//
// Пример использования:
//
//	studentctl register --student-id S1 --name Ann --email ann@x.com --password p@ss1234
//
// В случае успешной регистрации выводятся публичные поля созданной записи.
func NewRegisterCmd(app *App) *cobra.Command {
	var studentID, name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового студента",
		Long: `Регистрация нового студента на сервере.

Пример:
  studentctl register --student-id S1 --name Ann --email ann@x.com --password p@ss1234
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := ReadPassword(cmd, password)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового студента в реестр
			student, err := c.Register(studentID, name, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered: %s (%s, %s)\n",
				student.StudentID, student.Name, student.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student-id", "", "unique student identifier")
	cmd.Flags().StringVar(&name, "name", "", "student name")
	cmd.Flags().StringVar(&email, "email", "", "student email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.MarkFlagRequired("student-id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
