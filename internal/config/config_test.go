package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Game.StartLife != 100 || cfg.Game.StartMoney != 400 || cfg.Game.StartWave != 1 {
		t.Errorf("Unexpected economy defaults: %+v", cfg.Game)
	}
	if len(cfg.Game.Speeds) != 3 || cfg.Game.Speeds[2] != 4 {
		t.Errorf("Expected speeds [1 2 4], got %v", cfg.Game.Speeds)
	}
	if cfg.Sim.FixedStep != 0.02 || cfg.Sim.AimTolerance != 5 {
		t.Errorf("Unexpected sim defaults: %+v", cfg.Sim)
	}
	if cfg.Waves.Policy != PolicyStandard {
		t.Errorf("Expected standard policy, got %q", cfg.Waves.Policy)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	body := "game:\n  start_money: 900\nwaves:\n  policy: projected\nstorage:\n  dir: saves\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Game.StartMoney != 900 {
		t.Errorf("Expected start money 900, got %d", cfg.Game.StartMoney)
	}
	if cfg.Game.StartLife != 100 {
		t.Errorf("Expected untouched start life 100, got %d", cfg.Game.StartLife)
	}
	if cfg.Waves.Policy != PolicyProjected || cfg.Storage.Dir != "saves" {
		t.Errorf("Unexpected overrides: %+v %+v", cfg.Waves, cfg.Storage)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SPLINEDEF_GAME_START_LIFE", "7")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Game.StartLife != 7 {
		t.Errorf("Expected env override 7, got %d", cfg.Game.StartLife)
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("waves:\n  policy: chaos\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for an unknown wave policy")
	}
}
