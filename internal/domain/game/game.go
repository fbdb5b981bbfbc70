// Package game defines the root aggregate the store owns: one State per
// running game, mutated only through store actions.
package game

import (
	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/gym"
	"github.com/ringsidegames/cornerman/internal/domain/sponsor"
)

// Screen is the active UI surface. The core only stores the pointer; the
// presentation layer decides what each screen looks like.
type Screen string

const (
	ScreenOverworld Screen = "overworld"
	ScreenRoster    Screen = "roster"
	ScreenFight     Screen = "fight"
	ScreenFinance   Screen = "finance"
	ScreenScout     Screen = "scout"
	ScreenContract  Screen = "contract"
	ScreenDialog    Screen = "dialog"
	ScreenEvent     Screen = "event"
	ScreenPreFight  Screen = "prefight"
	ScreenPostFight Screen = "postfight"
)

// MapID names an overworld map.
type MapID string

const (
	MapGym          MapID = "gym"
	MapDowntown     MapID = "downtown"
	MapArena        MapID = "arena"
	MapRivalGym     MapID = "rival_gym"
	MapAgentsOffice MapID = "agents_office"
)

// Direction is the player's facing on the overworld.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// WorldState is the overworld position snapshot the UI renders from.
type WorldState struct {
	CurrentMap MapID     `json:"current_map"`
	PlayerX    int       `json:"player_x"`
	PlayerY    int       `json:"player_y"`
	PlayerDir  Direction `json:"player_dir"`
}

// DialogChoice is one selectable option on a dialog message. Action is an
// opaque key the presentation layer resolves.
type DialogChoice struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// DialogMessage is one entry in the narrative FIFO queue. The UI consumes
// messages strictly head-first.
type DialogMessage struct {
	Speaker string         `json:"speaker"`
	Text    string         `json:"text"`
	Choices []DialogChoice `json:"choices,omitempty"`
}

// WeeklyIncome itemizes a week's revenue.
type WeeklyIncome struct {
	Purses   int `json:"purses"`
	PPV      int `json:"ppv"`
	Tickets  int `json:"tickets"`
	Merch    int `json:"merch"`
	Sponsors int `json:"sponsors"`
}

// WeeklyExpenses itemizes a week's costs.
type WeeklyExpenses struct {
	Salaries  int `json:"salaries"`
	GymRent   int `json:"gym_rent"`
	Equipment int `json:"equipment"`
	Medical   int `json:"medical"`
	Scouting  int `json:"scouting"`
	Travel    int `json:"travel"`
	Staff     int `json:"staff"`
}

// WeeklyFinances is one ledger entry, appended at every week boundary.
type WeeklyFinances struct {
	Week     int            `json:"week"`
	Income   WeeklyIncome   `json:"income"`
	Expenses WeeklyExpenses `json:"expenses"`
}

// State is the authoritative game state. Exactly one instance exists per
// running game; simulation components receive copies and return data, and
// the store commits the results by whole-state replacement.
type State struct {
	Day           int `json:"day"`
	Week          int `json:"week"`
	Money         int `json:"money"`
	TotalEarnings int `json:"total_earnings"`
	TotalSpent    int `json:"total_spent"`

	Fighters []fighter.Fighter      `json:"fighters"`
	Schedule []fight.ScheduledFight `json:"schedule"`
	Gym      gym.State              `json:"gym"`
	Sponsors []sponsor.Deal         `json:"sponsors"`
	Finances []WeeklyFinances       `json:"finances"`

	World        WorldState      `json:"world"`
	ActiveScreen Screen          `json:"active_screen"`
	DialogQueue  []DialogMessage `json:"dialog_queue"`

	ChampionsWon int             `json:"champions_won"`
	FightHistory []fight.Outcome `json:"fight_history"`
}

// Clone returns a copy safe to mutate without touching the receiver.
// Fight outcomes are immutable once recorded, so their inner round slices
// may be shared; every slice that gets appended to or whose elements get
// mutated is copied.
func (s *State) Clone() *State {
	out := *s
	out.Fighters = append([]fighter.Fighter(nil), s.Fighters...)
	out.Schedule = append([]fight.ScheduledFight(nil), s.Schedule...)
	out.Sponsors = append([]sponsor.Deal(nil), s.Sponsors...)
	out.Finances = append([]WeeklyFinances(nil), s.Finances...)
	out.DialogQueue = append([]DialogMessage(nil), s.DialogQueue...)
	out.FightHistory = append([]fight.Outcome(nil), s.FightHistory...)
	return &out
}

// FighterByID returns a pointer into s.Fighters, or nil.
func (s *State) FighterByID(id string) *fighter.Fighter {
	for i := range s.Fighters {
		if s.Fighters[i].ID == id {
			return &s.Fighters[i]
		}
	}
	return nil
}

// FightByID returns a pointer into s.Schedule, or nil.
func (s *State) FightByID(id string) *fight.ScheduledFight {
	for i := range s.Schedule {
		if s.Schedule[i].ID == id {
			return &s.Schedule[i]
		}
	}
	return nil
}

// FightOnDay returns the scheduled fight happening on the given day, or nil.
func (s *State) FightOnDay(day int) *fight.ScheduledFight {
	for i := range s.Schedule {
		if s.Schedule[i].Day == day {
			return &s.Schedule[i]
		}
	}
	return nil
}

// AvailableFighters returns roster members who are uninjured and not already
// booked. Booking flows only offer these.
func (s *State) AvailableFighters() []fighter.Fighter {
	var out []fighter.Fighter
	for _, f := range s.Fighters {
		if f.Injured() {
			continue
		}
		booked := false
		for _, sf := range s.Schedule {
			if sf.FighterID == f.ID {
				booked = true
				break
			}
		}
		if !booked {
			out = append(out, f)
		}
	}
	return out
}

// WinStreak counts consecutive wins for a fighter at the tail of history.
func WinStreak(history []fight.Outcome, fighterID string) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].WinnerID != fighterID {
			break
		}
		streak++
	}
	return streak
}
