package career

import (
	"strings"
	"testing"

	"github.com/ringsidegames/cornerman/internal/config"
	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/gym"
	"github.com/ringsidegames/cornerman/internal/domain/sponsor"
	"github.com/ringsidegames/cornerman/internal/gen"
	"github.com/ringsidegames/cornerman/internal/platform/logger"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
)

// quietTables disables random events so tests drive deterministic weeks.
func quietTables() *config.Tables {
	tables := config.Default()
	tables.WeeklyEventChance = 0
	tables.DailyEventChance = 0
	return tables
}

func testEngine(tables *config.Tables, seed int64) *Engine {
	source := rng.New(seed)
	return New(tables, source, gen.New(source, rng.NewIDSource(), tables), logger.NewLogger())
}

func starterState() *game.State {
	return &game.State{
		Day:   1,
		Week:  1,
		Money: 5000,
		Fighters: []fighter.Fighter{{
			ID:                "fighter-1",
			Name:              "Tony \"The Hammer\" Silva",
			Health:            100,
			Morale:            60,
			Salary:            300,
			ContractWeeksLeft: 12,
			Injury:            fighter.InjuryNone,
		}},
		Gym: gym.State{Level: 1, Rent: 500, MaxFighters: 2, Reputation: 20, Equipment: 30},
	}
}

func TestSevenDaysOfProgression(t *testing.T) {
	e := testEngine(quietTables(), 1)
	gs := starterState()

	for i := 0; i < 7; i++ {
		gs, _ = e.AdvanceDay(gs)
	}

	if gs.Day != 8 {
		t.Errorf("Day = %d, want 8", gs.Day)
	}
	if gs.Week != 2 {
		t.Errorf("Week = %d, want 2", gs.Week)
	}
	// One settlement happened on day 7: salary 300 + rent 500.
	if gs.Money != 5000-800 {
		t.Errorf("Money = %d, want %d", gs.Money, 5000-800)
	}
	if gs.Fighters[0].ContractWeeksLeft != 11 {
		t.Errorf("ContractWeeksLeft = %d, want 11", gs.Fighters[0].ContractWeeksLeft)
	}
	if len(gs.Finances) != 1 {
		t.Errorf("Finances = %d entries, want 1", len(gs.Finances))
	}
}

func TestWeekBoundaryOnlyOnMultiplesOfSeven(t *testing.T) {
	e := testEngine(quietTables(), 2)
	gs := starterState()

	// Days 2..6 are plain days: no payroll, no contract ticks.
	for i := 0; i < 5; i++ {
		gs, _ = e.AdvanceDay(gs)
	}
	if gs.Money != 5000 {
		t.Errorf("Money changed on a non-boundary day: %d", gs.Money)
	}
	if gs.Fighters[0].ContractWeeksLeft != 12 {
		t.Errorf("Contract ticked on a non-boundary day: %d", gs.Fighters[0].ContractWeeksLeft)
	}
	if gs.Week != 1 {
		t.Errorf("Week = %d, want 1 until day 7", gs.Week)
	}
}

func TestDailyHealing(t *testing.T) {
	e := testEngine(quietTables(), 3)
	gs := starterState()
	gs.Fighters[0].Health = 50

	gs, _ = e.AdvanceDay(gs)
	if gs.Fighters[0].Health != 52 {
		t.Errorf("Health = %d, want 52 (+2/day)", gs.Fighters[0].Health)
	}

	gs.Gym.Staff.Nutritionist = true
	gs, _ = e.AdvanceDay(gs)
	if gs.Fighters[0].Health != 56 {
		t.Errorf("Health = %d, want 56 (+4/day with nutritionist)", gs.Fighters[0].Health)
	}
}

func TestInjuryCountdownClears(t *testing.T) {
	e := testEngine(quietTables(), 4)
	gs := starterState()
	gs.Fighters[0].Injury = fighter.InjuryMinor
	gs.Fighters[0].InjuryDaysLeft = 2

	gs, _ = e.AdvanceDay(gs)
	f := gs.Fighters[0]
	if !f.Injured() || f.InjuryDaysLeft != 1 {
		t.Errorf("After day 1: injury=%s daysLeft=%d, want still injured with 1 day", f.Injury, f.InjuryDaysLeft)
	}

	gs, _ = e.AdvanceDay(gs)
	f = gs.Fighters[0]
	if f.Injured() || f.InjuryDaysLeft != 0 {
		t.Errorf("After day 2: injury=%s daysLeft=%d, want healed", f.Injury, f.InjuryDaysLeft)
	}
}

func TestContractExpiryReleasesFighter(t *testing.T) {
	e := testEngine(quietTables(), 5)
	gs := starterState()
	gs.Day = 6 // next day is a boundary
	gs.Fighters[0].ContractWeeksLeft = 1

	gs, dialogs := e.AdvanceDay(gs)

	if len(gs.Fighters) != 0 {
		t.Fatalf("Fighter should have left, roster has %d", len(gs.Fighters))
	}
	found := false
	for _, d := range dialogs {
		if d.Speaker == "FRONT DESK" && strings.Contains(d.Text, "contract has expired") {
			found = true
		}
	}
	if !found {
		t.Errorf("No contract-expiry dialog in %v", dialogs)
	}
	// No salary paid for a departed fighter; only rent comes out.
	if gs.Money != 5000-500 {
		t.Errorf("Money = %d, want %d", gs.Money, 5000-500)
	}
}

func TestSponsorPaysWhileRequirementMet(t *testing.T) {
	e := testEngine(quietTables(), 6)
	gs := starterState()
	gs.Day = 6
	gs.Sponsors = []sponsor.Deal{
		{ID: "sponsor-1", Name: "FIGHT MILK INC", WeeklyPayment: 400, WeeksLeft: 5, RequirementMet: true},
		{ID: "sponsor-2", Name: "TAP-OUT WEAR", WeeklyPayment: 900, WeeksLeft: 5, RequirementMet: false},
	}

	gs, _ = e.AdvanceDay(gs)

	// salary 300 + rent 500 out, 400 sponsor money in. The unmet deal pays
	// nothing this week.
	if gs.Money != 5000-800+400 {
		t.Errorf("Money = %d, want %d", gs.Money, 5000-800+400)
	}
	if gs.Finances[0].Income.Sponsors != 400 {
		t.Errorf("Ledger sponsors = %d, want 400", gs.Finances[0].Income.Sponsors)
	}
	// Unconditional deals have their requirement re-marked met for the
	// next period.
	for _, d := range gs.Sponsors {
		if !d.RequirementMet {
			t.Errorf("Deal %s should be met again after recompute", d.ID)
		}
	}
}

func TestSponsorExpiry(t *testing.T) {
	e := testEngine(quietTables(), 7)
	gs := starterState()
	gs.Day = 6
	gs.Sponsors = []sponsor.Deal{
		{ID: "sponsor-1", Name: "FIGHT MILK INC", WeeklyPayment: 400, WeeksLeft: 1, RequirementMet: true},
	}

	gs, dialogs := e.AdvanceDay(gs)

	if len(gs.Sponsors) != 0 {
		t.Fatalf("Expired sponsor still active: %v", gs.Sponsors)
	}
	// The final week pays nothing: the deal expires as it ticks to zero.
	if gs.Money != 5000-800 {
		t.Errorf("Money = %d, want %d", gs.Money, 5000-800)
	}
	found := false
	for _, d := range dialogs {
		if strings.Contains(d.Text, "has ended") {
			found = true
		}
	}
	if !found {
		t.Errorf("No sponsor-ended dialog in %v", dialogs)
	}
}

func TestWinStreakRequirementRecompute(t *testing.T) {
	e := testEngine(quietTables(), 8)
	gs := starterState()
	gs.Day = 6
	gs.Sponsors = []sponsor.Deal{
		{ID: "sponsor-1", WeeklyPayment: 400, WeeksLeft: 5, Requirement: sponsor.RequirementWinStreak2, RequirementMet: false},
	}
	gs.FightHistory = []fight.Outcome{
		{WinnerID: "fighter-1"},
		{WinnerID: "fighter-1"},
	}

	gs, _ = e.AdvanceDay(gs)

	if !gs.Sponsors[0].RequirementMet {
		t.Error("win_streak_2 should be met with two straight wins")
	}
}

func TestDebtWarning(t *testing.T) {
	e := testEngine(quietTables(), 9)
	gs := starterState()
	gs.Day = 6
	gs.Money = 100

	_, dialogs := e.AdvanceDay(gs)

	found := false
	for _, d := range dialogs {
		if d.Speaker == "ACCOUNTANT" && strings.Contains(d.Text, "debt") {
			found = true
		}
	}
	if !found {
		t.Errorf("No debt warning in %v", dialogs)
	}
}

func TestFightDayDialogFiresOnAnyDay(t *testing.T) {
	e := testEngine(quietTables(), 10)

	// Day 7 is a settlement day and also fight day; the promoter must still
	// show up.
	gs := starterState()
	gs.Day = 6
	gs.Schedule = []fight.ScheduledFight{{
		ID:        "fight-1",
		Day:       7,
		FighterID: "fighter-1",
		Opponent:  fighter.Fighter{ID: "opp-1", Name: "Ivan \"Sledge\" Petrov"},
		Venue:     "The Warehouse",
	}}

	_, dialogs := e.AdvanceDay(gs)

	found := false
	for _, d := range dialogs {
		if d.Speaker == "PROMOTER" && strings.Contains(d.Text, "FIGHT DAY") {
			found = true
			if len(d.Choices) != 2 {
				t.Errorf("Fight-day dialog should offer 2 choices, got %d", len(d.Choices))
			}
		}
	}
	if !found {
		t.Errorf("No fight-day dialog on a week boundary, got %v", dialogs)
	}
}

func TestEventEffectsApply(t *testing.T) {
	tables := quietTables()
	tables.WeeklyEventChance = 1 // force the weekly event
	tables.EventTemplates = []config.EventTemplate{{
		Kind:       config.EventInjury,
		Title:      "TRAINING INJURY",
		Text:       "{fighter} tweaked their knee during sparring.",
		Morale:     -10,
		HealthCost: 15,
		InjuryDays: 3,
	}}
	e := testEngine(tables, 11)

	gs := starterState()
	gs.Day = 6

	gs, dialogs := e.AdvanceDay(gs)

	f := gs.Fighters[0]
	if f.Morale != 50 {
		t.Errorf("Morale = %d, want 50", f.Morale)
	}
	// Daily heal clamps at 100 before the event's -15 lands.
	if f.Health != 85 {
		t.Errorf("Health = %d, want 85", f.Health)
	}
	if !f.Injured() || f.InjuryDaysLeft != 3 {
		t.Errorf("Injury = %s/%d, want minor/3", f.Injury, f.InjuryDaysLeft)
	}

	found := false
	for _, d := range dialogs {
		if d.Speaker == "TRAINING INJURY" && strings.Contains(d.Text, f.Name) {
			found = true
		}
	}
	if !found {
		t.Errorf("Event dialog missing or unfilled template: %v", dialogs)
	}
}

func TestNonWeeklyEventSkipsHardEffects(t *testing.T) {
	tables := quietTables()
	tables.DailyEventChance = 1
	tables.EventTemplates = []config.EventTemplate{{
		Kind:      config.EventDrama,
		Title:     "LOCKER ROOM BEEF",
		Text:      "{fighter} got into an argument.",
		Morale:    -15,
		MoneyCost: 500, // weekly-only effect, must not apply on a plain day
	}}
	e := testEngine(tables, 12)

	gs := starterState() // day 1 -> 2, not a boundary

	gs, _ = e.AdvanceDay(gs)

	if gs.Fighters[0].Morale != 45 {
		t.Errorf("Morale = %d, want 45", gs.Fighters[0].Morale)
	}
	if gs.Money != 5000 {
		t.Errorf("Money = %d, daily events must not charge money", gs.Money)
	}
}
