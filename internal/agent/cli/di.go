package cli

import (
	"github.com/IvanChernomyrdin/go-student-registry/internal/agent/api"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = func(cmd *cobra.Command, flagValue string) (string, error) {
		return readPassword(cmd, flagValue)
	}
)
