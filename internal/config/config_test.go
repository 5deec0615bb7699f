package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Format != FormatPretty {
		t.Errorf("Expected default format %q, got %q", FormatPretty, cfg.Format)
	}
	if cfg.NoColor {
		t.Error("Expected colors enabled by default")
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbonc.yaml")
	content := "format: sarif\nno_color: true\nsarif_output: out.sarif\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Format != FormatSARIF {
		t.Errorf("Expected format sarif, got %q", cfg.Format)
	}
	if !cfg.NoColor {
		t.Error("Expected no_color true")
	}
	if cfg.SARIFOutput != "out.sarif" {
		t.Errorf("Expected sarif_output out.sarif, got %q", cfg.SARIFOutput)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbonc.yaml")
	if err := os.WriteFile(path, []byte("format: xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected an error for unknown format")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbonc.yaml")
	if err := os.WriteFile(path, []byte("format: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected an error for malformed YAML")
	}
}
