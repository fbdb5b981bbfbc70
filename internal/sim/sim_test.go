package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
)

func testFighter(id string, level float64) fighter.Fighter {
	return fighter.Fighter{
		ID:          id,
		Name:        id,
		WeightClass: fighter.Lightweight,
		Stats:       fighter.Stats{Striking: level, Grappling: level, Conditioning: level, Durability: level},
		Health:      100,
		Morale:      60,
		Fame:        20,
	}
}

func testScheduledFight(opponent fighter.Fighter) fight.ScheduledFight {
	return fight.ScheduledFight{
		ID:                 "fight-1",
		Day:                10,
		FighterID:          "fighter-1",
		Opponent:           opponent,
		Venue:              "The Rusty Cage",
		BasePurse:          2000,
		TicketRevenueSplit: 10,
		Prestige:           4,
	}
}

// Every fight, whatever the seed, must terminate with a coherent outcome.
func TestSimulateFightTotality(t *testing.T) {
	player := testFighter("fighter-1", 6)
	sf := testScheduledFight(testFighter("opp-1", 6))

	for seed := int64(0); seed < 300; seed++ {
		s := New(rng.New(seed))
		outcome := s.SimulateFight(sf, player)

		require.NotEqual(t, outcome.WinnerID, outcome.LoserID, "seed %d: winner equals loser", seed)
		require.Contains(t, []string{"fighter-1", "opp-1"}, outcome.WinnerID, "seed %d", seed)
		require.Contains(t, []string{"fighter-1", "opp-1"}, outcome.LoserID, "seed %d", seed)

		require.NotEmpty(t, outcome.Rounds, "seed %d: no rounds", seed)
		require.LessOrEqual(t, len(outcome.Rounds), MaxRounds, "seed %d: too many rounds", seed)
		require.Equal(t, len(outcome.Rounds), outcome.FinalRound, "seed %d: final round mismatch", seed)

		switch outcome.Result {
		case fight.ResultKO, fight.ResultTKO, fight.ResultSubmission, fight.ResultDecision, fight.ResultDraw:
		default:
			t.Fatalf("seed %d: unexpected result %q", seed, outcome.Result)
		}

		for _, r := range outcome.Rounds {
			require.GreaterOrEqual(t, r.F1HPEnd, 0.0, "seed %d: negative HP", seed)
			require.GreaterOrEqual(t, r.F2HPEnd, 0.0, "seed %d: negative HP", seed)
			require.NotEmpty(t, r.Events, "seed %d round %d: no commentary", seed, r.Number)
		}
	}
}

func TestEarlyStoppageEndsTheFight(t *testing.T) {
	player := testFighter("fighter-1", 9)
	sf := testScheduledFight(testFighter("opp-1", 2))

	sawStoppage := false
	for seed := int64(0); seed < 200; seed++ {
		s := New(rng.New(seed))
		outcome := s.SimulateFight(sf, player)

		switch outcome.Result {
		case fight.ResultKO, fight.ResultTKO, fight.ResultSubmission:
		default:
			continue
		}
		sawStoppage = true

		last := outcome.Rounds[len(outcome.Rounds)-1]
		if outcome.Result == fight.ResultSubmission {
			assert.Equal(t, fight.EventSubmission, last.Events[len(last.Events)-1].Kind, "seed %d", seed)
		}
		// Stopped fights end before the scheduled distance or on the final bell.
		assert.LessOrEqual(t, outcome.FinalRound, MaxRounds, "seed %d", seed)
		loserHP := last.F2HPEnd
		if outcome.WinnerID == "opp-1" {
			loserHP = last.F1HPEnd
		}
		assert.Zero(t, loserHP, "seed %d: stoppage with loser HP left", seed)
	}
	require.True(t, sawStoppage, "a 9-vs-2 mismatch should produce at least one stoppage in 200 fights")
}

// A stopped fight's final round must end on the stoppage call for the
// winning corner; stoppages from accumulated damage are labelled TKO.
func TestStoppageEndsOnStoppageEvent(t *testing.T) {
	player := testFighter("fighter-1", 8)
	sf := testScheduledFight(testFighter("opp-1", 3))

	sawTKO := false
	for seed := int64(0); seed < 400; seed++ {
		s := New(rng.New(seed))
		outcome := s.SimulateFight(sf, player)

		switch outcome.Result {
		case fight.ResultKO, fight.ResultTKO, fight.ResultSubmission:
		default:
			continue
		}

		last := outcome.Rounds[len(outcome.Rounds)-1]
		require.NotEmpty(t, last.Events, "seed %d", seed)
		ev := last.Events[len(last.Events)-1]

		switch outcome.Result {
		case fight.ResultKO:
			assert.Equal(t, fight.EventKnockout, ev.Kind, "seed %d", seed)
		case fight.ResultTKO:
			assert.Equal(t, fight.EventTKO, ev.Kind, "seed %d", seed)
			sawTKO = true
		case fight.ResultSubmission:
			assert.Equal(t, fight.EventSubmission, ev.Kind, "seed %d", seed)
		}

		wantSide := fight.SidePlayer
		if outcome.WinnerID == "opp-1" {
			wantSide = fight.SideOpponent
		}
		assert.Equal(t, wantSide, ev.Side, "seed %d: stoppage credited to the wrong corner", seed)
	}
	require.True(t, sawTKO, "400 mismatched fights should include an accumulated-damage stoppage")
}

func TestSimulateFightDoesNotMutateInputs(t *testing.T) {
	player := testFighter("fighter-1", 6)
	opponent := testFighter("opp-1", 5)
	sf := testScheduledFight(opponent)

	playerBefore := player
	sfBefore := sf

	s := New(rng.New(11))
	_ = s.SimulateFight(sf, player)

	assert.Equal(t, playerBefore, player, "player fighter mutated")
	assert.Equal(t, sfBefore.Opponent, sf.Opponent, "opponent mutated")
}

func TestEarningsIdentity(t *testing.T) {
	player := testFighter("fighter-1", 6)
	sf := testScheduledFight(testFighter("opp-1", 6))
	sf.IsMainEvent = true
	sf.PPVPoints = 5

	for seed := int64(0); seed < 100; seed++ {
		s := New(rng.New(seed))
		outcome := s.SimulateFight(sf, player)
		e := outcome.Earnings

		sum := e.BasePurse + e.WinBonus + e.PPVRevenue + e.TicketRevenue + e.SponsorBonuses - e.MedicalCosts
		require.Equal(t, sum, e.Total, "seed %d: earnings components do not add up", seed)
		require.Equal(t, sf.BasePurse, e.BasePurse, "seed %d", seed)
		require.Positive(t, e.PPVRevenue, "seed %d: main event should draw PPV money", seed)

		won := outcome.WinnerID == player.ID
		if won {
			require.Equal(t, sf.BasePurse/2, e.WinBonus, "seed %d", seed)
			require.Equal(t, sf.Prestige*200, e.SponsorBonuses, "seed %d", seed)
		} else {
			require.Zero(t, e.WinBonus, "seed %d: loser got a win bonus", seed)
			require.Zero(t, e.SponsorBonuses, "seed %d: loser got sponsor bonuses", seed)
		}
	}
}

func TestNonMainEventHasNoPPV(t *testing.T) {
	player := testFighter("fighter-1", 6)
	sf := testScheduledFight(testFighter("opp-1", 6))

	s := New(rng.New(21))
	outcome := s.SimulateFight(sf, player)
	assert.Zero(t, outcome.Earnings.PPVRevenue)
}

func TestFameAndRankingFollowTheResult(t *testing.T) {
	player := testFighter("fighter-1", 6)
	sf := testScheduledFight(testFighter("opp-1", 6))
	sf.Prestige = 6

	for seed := int64(0); seed < 100; seed++ {
		s := New(rng.New(seed))
		outcome := s.SimulateFight(sf, player)

		if outcome.WinnerID == player.ID {
			assert.Equal(t, sf.Prestige*3, outcome.FameGain, "seed %d", seed)
			assert.Equal(t, -2, outcome.RankingChange, "seed %d: win should climb ceil(6/3) spots", seed)
		} else {
			assert.Equal(t, -sf.Prestige, outcome.FameGain, "seed %d", seed)
			assert.Equal(t, 2, outcome.RankingChange, "seed %d", seed)
		}
	}
}

func TestMainEventFameBonus(t *testing.T) {
	player := testFighter("fighter-1", 9)
	sf := testScheduledFight(testFighter("opp-1", 2))
	sf.IsMainEvent = true
	sf.Prestige = 5

	for seed := int64(0); seed < 50; seed++ {
		s := New(rng.New(seed))
		outcome := s.SimulateFight(sf, player)
		if outcome.WinnerID == player.ID {
			assert.Equal(t, 5*3+10, outcome.FameGain, "seed %d", seed)
			return
		}
	}
	t.Fatal("stacked fighter never won in 50 fights")
}
