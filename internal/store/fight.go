package store

import (
	"fmt"

	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/sponsor"
	"github.com/ringsidegames/cornerman/internal/events"
)

// ResolveFight runs a scheduled bout through the simulator and commits the
// outcome. Returns false for an unknown fight id or a fighter that has left
// the roster since booking.
func (s *Store) ResolveFight(fightID string) (fight.Outcome, bool) {
	s.mu.RLock()
	var sf *fight.ScheduledFight
	var pf *fighter.Fighter
	if s.state != nil {
		if found := s.state.FightByID(fightID); found != nil {
			sf = found
			pf = s.state.FighterByID(found.FighterID)
		}
	}
	if sf == nil || pf == nil {
		s.mu.RUnlock()
		return fight.Outcome{}, false
	}
	scheduled := *sf
	player := *pf
	s.mu.RUnlock()

	outcome := s.sim.SimulateFight(scheduled, player)
	s.RecordFight(outcome)
	return outcome, true
}

// statGrowthChances orders the per-stat improvement rolls a fight grants.
var statGrowthChances = []struct {
	stat   fighter.StatName
	chance float64
}{
	{fighter.Striking, 0.4},
	{fighter.Grappling, 0.4},
	{fighter.Conditioning, 0.3},
	{fighter.Durability, 0.2},
}

// RecordFight applies a resolved bout to the game state: record and stat
// changes, fame and ranking movement, injuries, the purse, gym reputation
// and sponsor requirement flags. The scheduled fight comes off the calendar
// and the outcome goes into career history.
func (s *Store) RecordFight(outcome fight.Outcome) bool {
	var (
		rosterID string
		newRank  int
		ranked   bool
	)
	ok := s.mutate(func(gs *game.State) bool {
		for i := range gs.Fighters {
			f := &gs.Fighters[i]
			if f.ID != outcome.WinnerID && f.ID != outcome.LoserID {
				continue
			}
			rosterID = f.ID
			won := f.ID == outcome.WinnerID

			s.applyFightToFighter(f, outcome, won, gs.Gym.Staff.Cutman)
			newRank, ranked = f.Ranking, f.Ranked()

			if won {
				gs.Gym.Reputation = fighter.ClampPercent(gs.Gym.Reputation + s.rng.Between(1, 3))
			} else {
				// A sponsor betting on the next fight just lost that bet.
				for j := range gs.Sponsors {
					if gs.Sponsors[j].Requirement == sponsor.RequirementWinNextFight {
						gs.Sponsors[j].RequirementMet = false
					}
				}
			}
		}
		if rosterID == "" {
			return false
		}

		kept := gs.Schedule[:0]
		for _, sf := range gs.Schedule {
			if sf.ID != outcome.FightID {
				kept = append(kept, sf)
			}
		}
		gs.Schedule = kept

		total := outcome.Earnings.Total
		gs.Money += total
		if total > 0 {
			gs.TotalEarnings += total
		}
		gs.FightHistory = append(gs.FightHistory, outcome)

		if ranked && newRank <= 3 {
			gs.DialogQueue = append(gs.DialogQueue, game.DialogMessage{
				Speaker: "ANNOUNCER",
				Text:    fmt.Sprintf("Unbelievable! They're now ranked #%d in the division!", newRank),
			})
		}
		return true
	})

	if ok {
		s.record(events.EventTypeFightRecorded, rosterID, outcome.FightID, s.day(), outcome.Result)
		s.log.Event("FIGHT_RECORDED", rosterID, fmt.Sprintf("%s, earnings $%d", outcome.Result, outcome.Earnings.Total))
	}
	return ok
}

// applyFightToFighter mutates one roster fighter with everything a bout
// does to them.
func (s *Store) applyFightToFighter(f *fighter.Fighter, outcome fight.Outcome, won, cutman bool) {
	if won {
		f.Wins++
		if outcome.Result == fight.ResultKO || outcome.Result == fight.ResultTKO {
			f.Knockouts++
		}
		f.Morale += 15
		f.Fame += float64(outcome.FameGain)
		f.Health -= s.rng.Between(10, 25)
		if f.Health < 40 {
			f.Health = 40
		}
	} else {
		f.Losses++
		f.Morale -= 20
		// Losses sting a third as hard as wins shine.
		f.Fame += float64(outcome.FameGain) * 0.3
		f.Health -= s.rng.Between(20, 40)
		if f.Health < 20 {
			f.Health = 20
		}
	}

	// Ring time teaches. Smaller lessons from a loss, and never past 10.
	growth := 0.1
	if won {
		growth = 0.2
	}
	for _, g := range statGrowthChances {
		if !s.rng.Chance(g.chance) {
			continue
		}
		v := f.Stats.Get(g.stat) + growth
		if v > 10 {
			v = 10
		}
		f.Stats.Set(g.stat, v)
	}

	// RankingChange is signed: negative climbs, positive slides. A first
	// win enters the rankings at #15; sliding past #15 drops back out.
	if won {
		if !f.Ranked() {
			f.Ranking = 15
		}
		f.Ranking += outcome.RankingChange
		if f.Ranking < 1 {
			f.Ranking = 1
		}
	} else if f.Ranked() {
		f.Ranking += outcome.RankingChange
		if f.Ranking > 15 {
			f.Ranking = 0
		}
	}

	if outcome.InjuryToPlayer != fighter.InjuryNone {
		f.Injury = outcome.InjuryToPlayer
		days := 0
		switch outcome.InjuryToPlayer {
		case fighter.InjuryMinor:
			days = s.rng.Between(3, 7)
		case fighter.InjuryMajor:
			days = s.rng.Between(10, 21)
		case fighter.InjuryCritical:
			days = s.rng.Between(28, 56)
		}
		if cutman && days > 1 {
			days /= 2
		}
		f.InjuryDaysLeft = days
	}

	f.ClampVitals()
}
