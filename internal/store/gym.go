package store

import (
	"fmt"

	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/gym"
	"github.com/ringsidegames/cornerman/internal/events"
)

// UpgradeGym buys the next tier of facility: higher rent, more roster
// slots, and a bump to reputation and equipment. Fails at the top of the
// ladder or when the upgrade fee is unaffordable.
func (s *Store) UpgradeGym() bool {
	var next int
	ok := s.mutate(func(gs *game.State) bool {
		up := s.tables.UpgradeForLevel(gs.Gym.Level + 1)
		if up == nil {
			return false
		}
		if up.Cost > gs.Money {
			return false
		}
		gs.Money -= up.Cost
		gs.TotalSpent += up.Cost

		gs.Gym.Level = up.Level
		gs.Gym.Rent = up.Rent
		gs.Gym.MaxFighters = up.MaxFighters
		gs.Gym.Equipment = fighter.ClampPercent(gs.Gym.Equipment + 20)
		gs.Gym.Reputation = fighter.ClampPercent(gs.Gym.Reputation + 5)
		next = up.Level
		return true
	})

	if ok {
		s.record(events.EventTypeGymUpgraded, "gym", "", s.day(), next)
		s.log.Event("GYM_UPGRADED", "gym", fmt.Sprintf("now level %d", next))
	}
	return ok
}

// HireStaff puts one of the four specialists on payroll: a one-off hire
// fee now, a weekly wage from the next settlement on. Fails when the role
// is already filled or the fee is unaffordable.
func (s *Store) HireStaff(role gym.StaffRole) bool {
	cost, known := s.tables.StaffCosts[role]
	if !known {
		return false
	}
	ok := s.mutate(func(gs *game.State) bool {
		if gs.Gym.Staff.Hired(role) {
			return false
		}
		if cost.Hire > gs.Money {
			return false
		}
		gs.Money -= cost.Hire
		gs.TotalSpent += cost.Hire
		gs.Gym.Staff.Hire(role)
		return true
	})

	if ok {
		s.record(events.EventTypeStaffHired, "gym", string(role), s.day(), cost.Hire)
	}
	return ok
}
