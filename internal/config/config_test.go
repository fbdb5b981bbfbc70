package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ringsidegames/cornerman/internal/domain/fighter"
)

func TestDefaultsAreValid(t *testing.T) {
	tables := Default()
	if err := tables.validate(); err != nil {
		t.Fatalf("Default tables failed validation: %v", err)
	}
}

func TestDefaultTierRanges(t *testing.T) {
	tables := Default()

	scrub := tables.TierRanges[fighter.TierScrub]
	if scrub.Min != 2 || scrub.Max != 4 || scrub.Potential != 6 {
		t.Errorf("Scrub range = %+v, want {2 4 6}", scrub)
	}
	elite := tables.TierRanges[fighter.TierElite]
	if elite.Min != 7 || elite.Max != 10 || elite.Potential != 10 {
		t.Errorf("Elite range = %+v, want {7 10 10}", elite)
	}
}

func TestUpgradeForLevel(t *testing.T) {
	tables := Default()

	up := tables.UpgradeForLevel(2)
	if up == nil || up.Cost != 5000 || up.Rent != 1000 || up.MaxFighters != 4 {
		t.Errorf("UpgradeForLevel(2) = %+v", up)
	}
	if tables.UpgradeForLevel(6) != nil {
		t.Error("UpgradeForLevel(6) should be nil, ladder tops out at 5")
	}
	if tables.UpgradeForLevel(0) != nil {
		t.Error("UpgradeForLevel(0) should be nil")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	yaml := "starting_money: 9999\ntraining_cost: 50\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tables.StartingMoney != 9999 {
		t.Errorf("StartingMoney = %d, want 9999", tables.StartingMoney)
	}
	if tables.TrainingCost != 50 {
		t.Errorf("TrainingCost = %d, want 50", tables.TrainingCost)
	}
	// Untouched keys keep their defaults.
	if tables.StarterSalary != 300 {
		t.Errorf("StarterSalary = %d, want default 300", tables.StarterSalary)
	}
	if len(tables.EventTemplates) != 7 {
		t.Errorf("EventTemplates = %d entries, want default 7", len(tables.EventTemplates))
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestLoadRejectsBrokenTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	// An explicit empty ladder must not validate.
	if err := os.WriteFile(path, []byte("gym_upgrades: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with empty gym ladder should fail validation")
	}
}
