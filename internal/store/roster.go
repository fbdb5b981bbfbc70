package store

import (
	"fmt"

	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/events"
)

// TrainOutcome tells the caller how a training session went.
type TrainOutcome int

const (
	// TrainRejected means nothing happened: no game, unknown fighter,
	// injured fighter or not enough money.
	TrainRejected TrainOutcome = iota
	// TrainMaxedOut means the stat already sits at its potential ceiling.
	// The session is refused before any money changes hands.
	TrainMaxedOut
	// TrainNoImprovement means the session ran (and was paid for) but the
	// improvement roll failed. Morale still dips.
	TrainNoImprovement
	// TrainImproved means the stat went up.
	TrainImproved
)

// TrainFighter runs one paid training session on a single stat. Success
// raises the stat by one point, capped by the fighter's potential (never
// above 10); a hired trainer improves the odds. Failure costs the fee and
// a little morale anyway.
func (s *Store) TrainFighter(id string, stat fighter.StatName) TrainOutcome {
	outcome := TrainRejected
	s.mutate(func(gs *game.State) bool {
		f := gs.FighterByID(id)
		if f == nil || f.Injured() {
			return false
		}
		cost := s.tables.TrainingCost
		if cost > gs.Money {
			return false
		}

		cap := f.Potential.Get(stat)
		if cap > 10 {
			cap = 10
		}
		if f.Stats.Get(stat) >= cap {
			outcome = TrainMaxedOut
			return false
		}

		gs.Money -= cost
		gs.TotalSpent += cost

		chance := s.tables.TrainSuccessChance
		if gs.Gym.Staff.Trainer {
			chance += 0.15
		}
		if s.rng.Chance(chance) {
			next := f.Stats.Get(stat) + 1
			if next > cap {
				next = cap
			}
			f.Stats.Set(stat, next)
			f.Morale += 5
			outcome = TrainImproved
		} else {
			f.Morale -= 3
			outcome = TrainNoImprovement
		}
		f.ClampVitals()
		return true
	})

	if outcome == TrainImproved || outcome == TrainNoImprovement {
		s.record(events.EventTypeFighterTrained, id, string(stat), s.day(), outcome == TrainImproved)
	}
	return outcome
}

// ScoutPool rolls the prospects the manager's scouting trip turns up. A
// hired gym scout extends the manager's reach into better circuits. The
// pool is held in the store until the next trip; scouting and signing go by
// prospect id, so the client never supplies fighter data. Returns nil
// before StartGame.
func (s *Store) ScoutPool() []fighter.Fighter {
	s.mu.RLock()
	m := s.manager
	scouted := s.state != nil && s.state.Gym.Staff.Scout
	s.mu.RUnlock()
	if m == nil {
		return nil
	}
	eff := *m
	if scouted {
		eff.Scouting += 2
	}
	pool := s.gen.ScoutPool(eff)

	s.mu.Lock()
	s.prospects = pool
	s.mu.Unlock()

	out := make([]fighter.Fighter, len(pool))
	copy(out, pool)
	return out
}

// prospectIndex finds a pooled prospect. Callers must hold s.mu.
func (s *Store) prospectIndex(id string) int {
	for i := range s.prospects {
		if s.prospects[i].ID == id {
			return i
		}
	}
	return -1
}

// ScoutCost is what one potential reveal costs with the current manager.
// Better scouts pay less.
func (s *Store) ScoutCost() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.manager == nil {
		return 0
	}
	cost := s.tables.ScoutBaseCost - s.manager.Scouting*20
	if cost < 0 {
		cost = 0
	}
	return cost
}

// ScoutProspect pays the scouting fee and reveals a pooled prospect's
// potential. Only ids from the current pool are accepted.
func (s *Store) ScoutProspect(id string) (fighter.Fighter, bool) {
	cost := s.ScoutCost()
	var revealed fighter.Fighter
	ok := s.mutate(func(gs *game.State) bool {
		i := s.prospectIndex(id)
		if i < 0 || s.prospects[i].PotentialRevealed {
			return false
		}
		if cost > gs.Money {
			return false
		}
		gs.Money -= cost
		gs.TotalSpent += cost
		s.prospects[i].PotentialRevealed = true
		revealed = s.prospects[i]
		return true
	})
	if ok {
		s.record(events.EventTypeFighterScouted, id, "", s.day(), cost)
	}
	return revealed, ok
}

// SignProspect puts a pooled prospect under contract: signing bonus up
// front, then a weekly salary for a negotiated number of weeks. Fails for
// ids outside the current pool, a full gym or an unaffordable bonus.
func (s *Store) SignProspect(id string) bool {
	s.mu.RLock()
	m := s.manager
	s.mu.RUnlock()
	if m == nil {
		return false
	}

	var f fighter.Fighter
	var bonus, weeks int
	signed := s.mutate(func(gs *game.State) bool {
		i := s.prospectIndex(id)
		if i < 0 {
			return false
		}
		f = s.prospects[i]
		bonus = f.Salary * s.tables.SigningBonusFactor
		weeks = 8 + m.Negotiation*3/2

		if len(gs.Fighters) >= gs.Gym.MaxFighters {
			return false
		}
		if bonus > gs.Money {
			return false
		}
		gs.Money -= bonus
		gs.TotalSpent += bonus

		f.ContractWeeksLeft = weeks
		f.SignedDay = gs.Day
		gs.Fighters = append(gs.Fighters, f)
		s.prospects = append(s.prospects[:i], s.prospects[i+1:]...)
		return true
	})

	if signed {
		s.record(events.EventTypeFighterSigned, f.ID, "", s.day(), bonus)
		s.log.Event("FIGHTER_SIGNED", f.ID, fmt.Sprintf("%s signed for $%d bonus, %d weeks", f.Name, bonus, weeks))
	}
	return signed
}

// ReleaseFighter cuts a fighter immediately. Any fight they were booked
// into is cancelled with them.
func (s *Store) ReleaseFighter(id string) bool {
	released := s.mutate(func(gs *game.State) bool {
		f := gs.FighterByID(id)
		if f == nil {
			return false
		}
		kept := gs.Fighters[:0]
		for _, fi := range gs.Fighters {
			if fi.ID != id {
				kept = append(kept, fi)
			}
		}
		gs.Fighters = kept

		fights := gs.Schedule[:0]
		for _, sf := range gs.Schedule {
			if sf.FighterID != id {
				fights = append(fights, sf)
			}
		}
		gs.Schedule = fights
		return true
	})
	if released {
		s.record(events.EventTypeFighterReleased, id, "", s.day(), nil)
	}
	return released
}

// FightOffers rolls what the promoter has on the table right now. Returns
// nil before StartGame.
func (s *Store) FightOffers() []fight.Offer {
	s.mu.RLock()
	m := s.manager
	s.mu.RUnlock()
	if m == nil {
		return nil
	}
	return s.gen.GenerateOffers(*m)
}

// BookFight accepts a promoter offer for one of the roster fighters. The
// opponent is generated at booking time so the player can study them before
// fight night. Fails for unknown, injured or already-booked fighters.
func (s *Store) BookFight(offer fight.Offer, fighterID string) bool {
	var booked fight.ScheduledFight
	ok := s.mutate(func(gs *game.State) bool {
		f := gs.FighterByID(fighterID)
		if f == nil || f.Injured() {
			return false
		}
		for _, sf := range gs.Schedule {
			if sf.FighterID == fighterID {
				return false
			}
		}

		booked = fight.ScheduledFight{
			ID:                 s.ids.Next("fight"),
			Day:                gs.Day + offer.DaysOut,
			FighterID:          fighterID,
			Opponent:           s.gen.GenerateOpponent(*f, offer.Difficulty),
			Venue:              offer.Venue,
			IsMainEvent:        offer.IsMainEvent,
			BasePurse:          offer.BasePurse,
			PPVPoints:          offer.PPVPoints,
			TicketRevenueSplit: offer.TicketRevenueSplit,
			Prestige:           offer.Prestige,
		}
		gs.Schedule = append(gs.Schedule, booked)
		return true
	})

	if ok {
		s.record(events.EventTypeFightBooked, fighterID, booked.ID, s.day(), booked.Opponent.Name)
		s.log.Event("FIGHT_BOOKED", fighterID, fmt.Sprintf("vs %s at %s on day %d", booked.Opponent.Name, booked.Venue, booked.Day))
	}
	return ok
}

// day reads the current game day for event stamps (0 when no game).
func (s *Store) day() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return 0
	}
	return s.state.Day
}
