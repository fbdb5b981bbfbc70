package fighter

import "testing"

func TestStatsGetSet(t *testing.T) {
	var s Stats
	s.Set(Striking, 6.5)
	if got := s.Get(Striking); got != 6.5 {
		t.Errorf("Get(Striking) = %v, want 6.5", got)
	}

	s.Set(Grappling, 14)
	if got := s.Get(Grappling); got != 10 {
		t.Errorf("Set should clamp at 10, got %v", got)
	}

	s.Set(Durability, -3)
	if got := s.Get(Durability); got != 0 {
		t.Errorf("Set should clamp at 0, got %v", got)
	}
}

func TestStatsAverage(t *testing.T) {
	s := Stats{Striking: 4, Grappling: 6, Conditioning: 8, Durability: 2}
	if got := s.Average(); got != 5 {
		t.Errorf("Average = %v, want 5", got)
	}
}

func TestClampVitals(t *testing.T) {
	f := Fighter{
		Health: 140,
		Morale: -20,
		Fame:   250.5,
		Stats:  Stats{Striking: 11, Grappling: -1},
	}
	f.ClampVitals()

	if f.Health != 100 {
		t.Errorf("Health = %d, want 100", f.Health)
	}
	if f.Morale != 0 {
		t.Errorf("Morale = %d, want 0", f.Morale)
	}
	if f.Fame != 100 {
		t.Errorf("Fame = %v, want 100", f.Fame)
	}
	if f.Stats.Striking != 10 || f.Stats.Grappling != 0 {
		t.Errorf("Stats not clamped: %+v", f.Stats)
	}
}

func TestRanked(t *testing.T) {
	f := Fighter{}
	if f.Ranked() {
		t.Error("Zero ranking should mean unranked")
	}
	f.Ranking = 15
	if !f.Ranked() {
		t.Error("Ranking 15 should count as ranked")
	}
}

func TestInjured(t *testing.T) {
	f := Fighter{Injury: InjuryNone}
	if f.Injured() {
		t.Error("InjuryNone should not report injured")
	}
	f.Injury = InjuryMinor
	if !f.Injured() {
		t.Error("InjuryMinor should report injured")
	}
}
