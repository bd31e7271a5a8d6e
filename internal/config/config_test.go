package config

import (
	"testing"

	"github.com/dvora/yoman/internal/models"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want default", cfg.ServerURL)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := &models.Config{ServerURL: "http://example.com:9000", CelebrationMS: 1500}

	if err := Save(dir, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.ServerURL != in.ServerURL || out.CelebrationMS != in.CelebrationMS {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
