package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runSeqq executes a fresh root command, isolating it from any host
// configuration by pointing --config at a path that does not exist.
func runSeqq(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestAddListPop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "queue")
	source := filepath.Join(t.TempDir(), "reading.json")
	if err := os.WriteFile(source, []byte(`{"temp": 21.5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runSeqq(t, "--dir", dir, "add", source)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	path := strings.TrimSpace(out)
	if filepath.Base(path) != "00000001" {
		t.Fatalf("add printed %q, want path ending in 00000001", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("queue file missing: %v", err)
	}

	out, err = runSeqq(t, "--dir", dir, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "00000001") {
		t.Fatalf("list output missing entry: %q", out)
	}

	out, err = runSeqq(t, "--dir", dir, "pop")
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("pop printed %q, want %q", strings.TrimSpace(out), path)
	}
}

func TestPopEmptyQueue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "queue")
	out, err := runSeqq(t, "--dir", dir, "pop")
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if !strings.Contains(out, "Queue is empty") {
		t.Fatalf("unexpected pop output: %q", out)
	}
}

func TestStatusJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "queue")
	out, err := runSeqq(t, "--dir", dir, "--json", "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}

	var status map[string]any
	if err := json.Unmarshal([]byte(out), &status); err != nil {
		t.Fatalf("status --json produced invalid JSON: %v\n%s", err, out)
	}
	if status["dir"] != dir {
		t.Fatalf("status dir = %v, want %q", status["dir"], dir)
	}
	if status["pending"] != float64(0) {
		t.Fatalf("status pending = %v, want 0", status["pending"])
	}
}

func TestReserveThenListIsEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "queue")

	out, err := runSeqq(t, "--dir", dir, "reserve")
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if filepath.Base(strings.TrimSpace(out)) != "00000001" {
		t.Fatalf("reserve printed %q", out)
	}

	// Reservations are in-memory only; a fresh invocation sees nothing.
	out, err = runSeqq(t, "--dir", dir, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Queue is empty") {
		t.Fatalf("list output = %q, want empty queue", out)
	}
}

func TestWipeRemovesDirectory(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "queue")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested", "stray"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runSeqq(t, "--dir", dir, "wipe", "--remove-dir")
	if err != nil {
		t.Fatalf("wipe failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("queue directory still present, stat err = %v", err)
	}
}

func TestCommandsRequireDir(t *testing.T) {
	if _, err := runSeqq(t, "list"); err == nil {
		t.Fatal("expected error when no queue directory is configured")
	}
}

func TestRemoveCommandValidatesNumber(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "queue")
	if _, err := runSeqq(t, "--dir", dir, "rm", "zero"); err == nil {
		t.Fatal("expected error for non-numeric file number")
	}
	if _, err := runSeqq(t, "--dir", dir, "rm", "0"); err == nil {
		t.Fatal("expected error for file number zero")
	}
}
