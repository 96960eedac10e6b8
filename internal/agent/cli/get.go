package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCmd создаёт CLI-команду поиска студента по studentId.
//
// Команда обращается к публичному эндпоинту поиска — токен не требуется.
//
// Пример использования:
//
//	studentctl get --student-id S1
func NewGetCmd(app *App) *cobra.Command {
	var studentID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Поиск студента по studentId",
		Long: `Поиск студента по studentId.

Пример:
  studentctl get --student-id S1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			student, err := c.Get(studentID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "studentId: %s\nname: %s\nemail: %s\n",
				student.StudentID, student.Name, student.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student-id", "", "student identifier")
	cmd.MarkFlagRequired("student-id")

	return cmd
}
