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

func TestNewUpdateCmd_SendsOnlyChangedFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/students/update", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if raw["studentId"] != "s-1001" {
			t.Fatalf("expected studentId s-1001, got %#v", raw["studentId"])
		}

		newData, ok := raw["newData"].(map[string]any)
		if !ok {
			t.Fatalf("expected newData object, got %#v", raw["newData"])
		}
		if newData["name"] != "Ann Lee" {
			t.Fatalf("expected name=Ann Lee, got %#v", newData["name"])
		}
		// не переданные флагами поля не сериализуются
		if _, has := newData["email"]; has {
			t.Fatalf("email must not be sent: %#v", newData)
		}
		if _, has := newData["password"]; has {
			t.Fatalf("password must not be sent: %#v", newData)
		}

		writeStudentEnvelope(w, http.StatusOK, "s-1001", "Ann Lee", "ivan@mail.com")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	cmd := cli.NewUpdateCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--student-id", "s-1001",
		"--name", "Ann Lee",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "updated: s-1001") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewUpdateCmd_NoFields_ReturnsError(t *testing.T) {
	app := &cli.App{ServerURL: "https://127.0.0.1:8080", Creds: &config.Credentials{}}

	cmd := cli.NewUpdateCmd(app)
	cmd.SetArgs([]string{"--student-id", "s-1001"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "nothing to update") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewUpdateCmd_EmailConflict_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/students/update", func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusConflict, "already exists")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	cmd := cli.NewUpdateCmd(app)
	cmd.SetArgs([]string{
		"--student-id", "s-1001",
		"--email", "taken@mail.com",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected error: %v", err)
	}
}
