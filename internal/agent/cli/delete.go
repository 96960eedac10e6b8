package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd создаёт CLI-команду удаления записи студента.
//
// Удаление физическое и необратимое; повторный вызов для того же
// studentId вернёт ошибку not found.
//
// Пример использования:
//
//	studentctl delete --student-id S1
func NewDeleteCmd(app *App) *cobra.Command {
	var studentID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удаление записи студента",
		Long: `Удаление записи студента (физическое, без восстановления).

Пример:
  studentctl delete --student-id S1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			student, err := c.Delete(studentID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted: %s\n", student.StudentID)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student-id", "", "student identifier")
	cmd.MarkFlagRequired("student-id")

	return cmd
}
