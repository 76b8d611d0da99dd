package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"seqq/internal/config"
	"seqq/internal/testsupport"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if cfg.Queue.Pattern != "%08d" {
		t.Fatalf("default pattern = %q, want %%08d", cfg.Queue.Pattern)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqq.toml")
	testsupport.WriteFile(t, path, []byte(`
[queue]
dir = "`+dir+`/readings/"
pattern = "%06d"
extension = ".jsonl"

[logging]
level = "DEBUG"
format = "JSON"
`))

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if strings.HasSuffix(cfg.Queue.Dir, "/") {
		t.Fatalf("queue dir kept trailing slash: %q", cfg.Queue.Dir)
	}
	if cfg.Queue.Extension != "jsonl" {
		t.Fatalf("extension = %q, want leading dot stripped", cfg.Queue.Extension)
	}
	if cfg.Queue.Pattern != "%06d" {
		t.Fatalf("pattern = %q", cfg.Queue.Pattern)
	}
	if cfg.Queue.LockFile != cfg.Queue.Dir+".lock" {
		t.Fatalf("lock file = %q, want default next to queue dir", cfg.Queue.LockFile)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging not lowercased: %+v", cfg.Logging)
	}
}

func TestValidateRejectsRootDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqq.toml")
	testsupport.WriteFile(t, path, []byte("[queue]\ndir = \"/\"\n"))

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for root queue dir")
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqq.toml")
	testsupport.WriteFile(t, path, []byte("[logging]\nlevel = \"verbose\"\n"))

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestValidateRejectsPatternWithoutVerb(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqq.toml")
	testsupport.WriteFile(t, path, []byte("[queue]\npattern = \"plain\"\n"))

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for pattern without conversion verb")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after CreateSample")
	}
	if cfg.Queue.Pattern != "%08d" {
		t.Fatalf("sample pattern = %q", cfg.Queue.Pattern)
	}
}
