package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword возвращает пароль для команды.
//
// Если пароль передан флагом — используется он. Иначе пароль запрашивается
// с терминала без эха (term.ReadPassword). Если stdin не терминал —
// возвращается ошибка с подсказкой использовать флаг.
func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	// срезаем только перевод строки: пробелы в пароле значимы
	pw := strings.TrimRight(string(pwBytes), "\r\n")
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
