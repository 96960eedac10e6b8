package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-student-registry/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-student-registry/internal/agent/config"
)

func TestNewDeleteCmd_Success_PrintsDeletedID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/students/delete", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}

		var req struct {
			StudentID string `json:"studentId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.StudentID != "s-1001" {
			t.Fatalf("expected studentId s-1001, got %q", req.StudentID)
		}

		writeStudentEnvelope(w, http.StatusOK, "s-1001", "Ivan Petrov", "ivan@mail.com")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	cmd := cli.NewDeleteCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--student-id", "s-1001"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "deleted: s-1001") {
		t.Fatalf("unexpected output: %q", got)
	}
}

// Повторное удаление того же studentId — сервер вернёт 404
func TestNewDeleteCmd_NotFound_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/students/delete", func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusNotFound, "not found")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	cmd := cli.NewDeleteCmd(app)
	cmd.SetArgs([]string{"--student-id", "s-1001"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}
