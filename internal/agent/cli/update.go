package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-student-registry/internal/agent/api"
)

// NewUpdateCmd создаёт CLI-команду частичного обновления записи студента.
//
// Отправляются только те поля, чьи флаги заданы явно; остальные сервер
// не трогает. Хотя бы один из флагов --name/--email/--password обязателен.
//
// Пример использования:
//
//	studentctl update --student-id S1 --name "Ann Lee"
//	studentctl update --student-id S1 --email ann.lee@x.com --password newp@ss1
func NewUpdateCmd(app *App) *cobra.Command {
	var studentID, name, email, password string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Частичное обновление записи студента",
		Long: `Частичное обновление записи студента.

Пример:
  studentctl update --student-id S1 --name "Ann Lee"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields api.UpdateFields
			if cmd.Flags().Changed("name") {
				fields.Name = &name
			}
			if cmd.Flags().Changed("email") {
				fields.Email = &email
			}
			if cmd.Flags().Changed("password") {
				fields.Password = &password
			}
			if fields.Name == nil && fields.Email == nil && fields.Password == nil {
				return errors.New("nothing to update: pass --name, --email or --password")
			}

			c := NewAPIClient(app.ServerURL)
			student, err := c.Update(studentID, fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated: %s (%s, %s)\n",
				student.StudentID, student.Name, student.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student-id", "", "student identifier")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.MarkFlagRequired("student-id")

	return cmd
}
