package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bfkr/alerts/internal/config"
	"github.com/bfkr/alerts/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderToast(t *testing.T) {
	out, err := run(t, "render", "-C", t.TempDir(), "-m", "<Saved>", "-t", "success", "--action", "Undo")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`id="bfkr-toast-container-top-right"`,
		"bfkr-toast bfkr-animate-slide",
		"&lt;Saved&gt;",
		"SUCCESS",
		"bfkr-toast-action",
		"animation-duration: 3500ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "data-hid") {
		t.Error("static render should omit hydration ids")
	}
}

func TestRenderDialogPage(t *testing.T) {
	out, err := run(t, "render", "-C", t.TempDir(), "-k", "prompt", "-m", "Name?", "--page")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "bfkr-show", "Submit", "#bfkr-dialog-overlay"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"toast": {"position": "bottom-center", "duration": "2s"}}`
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "render", "-C", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "bfkr-toast-container-bottom-center") {
		t.Error("configured position not used")
	}
	if !strings.Contains(out, "animation-duration: 2000ms") {
		t.Error("configured duration not used")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := run(t, "render", "-C", t.TempDir(), "-k", "banner")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestTerm(t *testing.T) {
	out, err := run(t, "term", "-C", t.TempDir(), "-k", "confirm", "-m", "Delete file?")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Delete file?") {
		t.Errorf("output missing message:\n%s", out)
	}
}

func TestColorsJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := "[colors]\nsuccess = \"#000000\"\n"
	if err := os.WriteFile(filepath.Join(dir, config.TOMLConfigFileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "colors", "-C", dir, "--json")
	if err != nil {
		t.Fatal(err)
	}
	var colors map[string]string
	if err := json.Unmarshal([]byte(out), &colors); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if colors["success"] != "#000000" || colors["info"] == "" {
		t.Errorf("colors = %v", colors)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, "init", "-C", dir); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Colors["success"] == "" {
		t.Error("init should write the default color table")
	}

	_, err = run(t, "init", "-C", dir)
	if errors.Code(err) != "" || err == nil {
		t.Errorf("second init should fail with an uncoded CLI error, got %v", err)
	}
	if _, err := run(t, "init", "-C", dir, "--force"); err != nil {
		t.Errorf("--force should overwrite: %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "colors", "-C", dir)
	if errors.Code(err) != "E101" {
		t.Errorf("expected E101, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q", out)
	}
}
