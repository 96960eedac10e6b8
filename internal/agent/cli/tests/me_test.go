package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-student-registry/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-student-registry/internal/agent/config"
)

func TestNewMeCmd_UsesSavedToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/students/me", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer access-1" {
			t.Fatalf("expected Authorization Bearer access-1, got %q", auth)
		}
		writeStudentEnvelope(w, http.StatusOK, "s-1001", "Ivan Petrov", "ivan@mail.com")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		Creds:     &config.Credentials{AccessToken: "access-1"},
	}

	cmd := cli.NewMeCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "studentId: s-1001") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewMeCmd_NoSavedToken_ReturnsError(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:8080",
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewMeCmd(app)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "login") {
		t.Fatalf("unexpected error: %v", err)
	}
}
