// Package career advances the game world one day at a time: healing,
// payroll, contracts, sponsors and random narrative events. The engine is a
// pure state transform: it returns a new state plus the dialogs to enqueue
// and never touches the fight simulator.
package career

import (
	"fmt"
	"strings"

	"github.com/ringsidegames/cornerman/internal/config"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/sponsor"
	"github.com/ringsidegames/cornerman/internal/gen"
	"github.com/ringsidegames/cornerman/internal/platform/logger"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
)

// Engine applies day/week progression to a game state.
type Engine struct {
	tables *config.Tables
	rng    *rng.Source
	gen    *gen.Generator
	log    *logger.Logger
}

// New creates a career engine.
func New(tables *config.Tables, source *rng.Source, generator *gen.Generator, log *logger.Logger) *Engine {
	return &Engine{tables: tables, rng: source, gen: generator, log: log}
}

// AdvanceDay moves the world forward one day. The input state is not
// mutated; the returned state and dialog list are for the store to commit.
func (e *Engine) AdvanceDay(gs *game.State) (*game.State, []game.DialogMessage) {
	next := gs.Clone()
	next.Day = gs.Day + 1
	next.Week = (next.Day + 6) / 7 // ceil(day/7)
	isNewWeek := next.Day%7 == 0

	var dialogs []game.DialogMessage

	e.healFighters(next)

	if isNewWeek {
		dialogs = append(dialogs, e.expireContracts(next)...)
		dialogs = append(dialogs, e.settleWeek(next)...)
		if e.rng.Chance(e.tables.WeeklyEventChance) && len(next.Fighters) > 0 {
			dialogs = append(dialogs, e.fireEvent(next, true)...)
		}
	} else if e.rng.Chance(e.tables.DailyEventChance) && len(next.Fighters) > 0 {
		dialogs = append(dialogs, e.fireEvent(next, false)...)
	}

	if todays := next.FightOnDay(next.Day); todays != nil {
		name := "Your fighter"
		if f := next.FighterByID(todays.FighterID); f != nil {
			name = f.Name
		}
		dialogs = append(dialogs, game.DialogMessage{
			Speaker: "PROMOTER",
			Text:    fmt.Sprintf("FIGHT DAY! %s vs %s at %s. Head to the arena!", name, todays.Opponent.Name, todays.Venue),
			Choices: []game.DialogChoice{
				{Label: "GO TO ARENA", Action: "screen:fight"},
				{Label: "I KNOW", Action: "dismiss"},
			},
		})
	}

	metrics.Get().IncrDaysAdvanced()
	return next, dialogs
}

// healFighters applies the daily +2 HP recovery (+4 with a nutritionist)
// and ticks injury countdowns. An injury clears on its final day.
func (e *Engine) healFighters(gs *game.State) {
	heal := 2
	if gs.Gym.Staff.Nutritionist {
		heal = 4
	}
	for i := range gs.Fighters {
		f := &gs.Fighters[i]
		f.Health = fighter.ClampPercent(f.Health + heal)
		if f.InjuryDaysLeft <= 1 {
			f.Injury = fighter.InjuryNone
		}
		if f.InjuryDaysLeft > 0 {
			f.InjuryDaysLeft--
		}
	}
}

// expireContracts decrements every contract and releases fighters whose
// deals ran out. Weekly only.
func (e *Engine) expireContracts(gs *game.State) []game.DialogMessage {
	var dialogs []game.DialogMessage
	kept := gs.Fighters[:0]
	for i := range gs.Fighters {
		f := gs.Fighters[i]
		f.ContractWeeksLeft--
		if f.ContractWeeksLeft <= 0 {
			dialogs = append(dialogs, game.DialogMessage{
				Speaker: "FRONT DESK",
				Text:    fmt.Sprintf("%s's contract has expired. They've left the gym.", f.Name),
			})
			continue
		}
		kept = append(kept, f)
	}
	gs.Fighters = kept
	return dialogs
}

// settleWeek runs payroll: salaries, rent and staff out; sponsor payments
// in; sponsor countdowns, expiry and requirement rechecks; and the weekly
// finance ledger entry.
func (e *Engine) settleWeek(gs *game.State) []game.DialogMessage {
	var dialogs []game.DialogMessage

	salaries := 0
	for _, f := range gs.Fighters {
		salaries += f.Salary
	}
	staffCost := 0
	for _, role := range gs.Gym.Staff.HiredRoles() {
		staffCost += e.tables.StaffCosts[role].Weekly
	}
	gs.Money -= salaries + gs.Gym.Rent + staffCost

	// Sponsors pay before expiry is applied, but only while their
	// requirement holds.
	sponsorIncome := 0
	kept := gs.Sponsors[:0]
	for i := range gs.Sponsors {
		s := gs.Sponsors[i]
		s.WeeksLeft--
		if s.WeeksLeft <= 0 {
			dialogs = append(dialogs, game.DialogMessage{
				Speaker: "FRONT DESK",
				Text:    fmt.Sprintf("Sponsorship deal with %s has ended.", s.Name),
			})
			continue
		}
		if s.RequirementMet {
			sponsorIncome += s.WeeklyPayment
		}
		kept = append(kept, s)
	}
	gs.Sponsors = kept
	gs.Money += sponsorIncome

	for i := range gs.Sponsors {
		gs.Sponsors[i].RequirementMet = e.requirementMet(gs, gs.Sponsors[i].Requirement)
	}

	gs.Finances = append(gs.Finances, game.WeeklyFinances{
		Week:     gs.Week,
		Income:   game.WeeklyIncome{Sponsors: sponsorIncome},
		Expenses: game.WeeklyExpenses{Salaries: salaries, GymRent: gs.Gym.Rent, Staff: staffCost},
	})

	if gs.Money < 0 {
		dialogs = append(dialogs, game.DialogMessage{
			Speaker: "ACCOUNTANT",
			Text:    fmt.Sprintf("You're $%d in debt! Cut costs or find income fast.", -gs.Money),
		})
	}
	return dialogs
}

// requirementMet evaluates a sponsor requirement against the current state.
// win_next_fight starts every settlement period met; RecordFight trips it
// when the gym's fighter loses, which withholds exactly one payment.
func (e *Engine) requirementMet(gs *game.State, req sponsor.Requirement) bool {
	switch req {
	case sponsor.RequirementWinStreak2:
		for _, f := range gs.Fighters {
			if game.WinStreak(gs.FightHistory, f.ID) >= 2 {
				return true
			}
		}
		return false
	case sponsor.RequirementTitleHolder:
		for _, f := range gs.Fighters {
			if f.TitleHolder {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// fireEvent draws one narrative event template and applies it to a random
// roster fighter. Week boundaries get the full table and full effects;
// other days skip news items and only swing morale, health and fame.
func (e *Engine) fireEvent(gs *game.State, weekly bool) []game.DialogMessage {
	pool := e.tables.EventTemplates
	if !weekly {
		pool = nil
		for _, t := range e.tables.EventTemplates {
			if t.Kind != config.EventNews {
				pool = append(pool, t)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	template := rng.Pick(e.rng, pool)
	target := &gs.Fighters[e.rng.Intn(len(gs.Fighters))]

	dialogs := []game.DialogMessage{{
		Speaker: template.Title,
		Text:    strings.ReplaceAll(template.Text, "{fighter}", target.Name),
	}}

	target.Morale = fighter.ClampPercent(target.Morale + template.Morale)
	target.Health = fighter.ClampPercent(target.Health - template.HealthCost)
	target.Fame += float64(template.FameGain)
	target.ClampVitals()

	if weekly {
		if template.InjuryDays > 0 {
			target.InjuryDaysLeft = template.InjuryDays
			target.Injury = fighter.InjuryMinor
		}
		if template.RepCost > 0 {
			gs.Gym.Reputation = fighter.ClampPercent(gs.Gym.Reputation - template.RepCost)
		}
		if template.MoneyCost > 0 {
			gs.Money -= template.MoneyCost
		}
		if template.SponsorOffer && len(gs.Sponsors) < sponsor.MaxConcurrentDeals {
			deal := e.gen.GenerateSponsor(gs.Gym.Level)
			gs.Sponsors = append(gs.Sponsors, deal)
			dialogs = append(dialogs, game.DialogMessage{
				Speaker: "SPONSOR",
				Text: fmt.Sprintf("%s offered a deal: $%d/week + $%d/fight for %d weeks!",
					deal.Name, deal.WeeklyPayment, deal.FightBonus, deal.WeeksLeft),
			})
		}
	}
	return dialogs
}
