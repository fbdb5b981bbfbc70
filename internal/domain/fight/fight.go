// Package fight defines booked bouts and their immutable outcomes.
// Like the other domain packages it stays free of infrastructure imports.
package fight

import "github.com/ringsidegames/cornerman/internal/domain/fighter"

// Result is how a bout ended.
type Result string

const (
	ResultKO         Result = "ko"
	ResultTKO        Result = "tko"
	ResultSubmission Result = "submission"
	ResultDecision   Result = "decision"
	ResultDraw       Result = "draw"
)

// EventKind categorizes a single commentary line.
type EventKind string

const (
	EventStrike     EventKind = "strike"
	EventGrapple    EventKind = "grapple"
	EventKnockout   EventKind = "knockout"
	EventTKO        EventKind = "tko"
	EventSubmission EventKind = "submission"
	EventTaunt      EventKind = "taunt"
	EventRecovery   EventKind = "recovery"
	EventInfo       EventKind = "info"
)

// Side says which corner a round event belongs to.
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// RoundEvent is one line of fight commentary.
type RoundEvent struct {
	Text string    `json:"text"`
	Kind EventKind `json:"kind"`
	Side Side      `json:"side"`
}

// Round captures everything that happened in one round.
type Round struct {
	Number  int          `json:"number"`
	Events  []RoundEvent `json:"events"`
	F1HPEnd float64      `json:"f1_hp_end"`
	F2HPEnd float64      `json:"f2_hp_end"`
	F1Score int          `json:"f1_score"`
	F2Score int          `json:"f2_score"`
}

// ScheduledFight is a booked bout waiting on the calendar. The opponent is
// an embedded generated fighter that exists only for this fight; it is never
// roster-owned.
type ScheduledFight struct {
	ID                 string          `json:"id"`
	Day                int             `json:"day"`
	FighterID          string          `json:"fighter_id"`
	Opponent           fighter.Fighter `json:"opponent"`
	Venue              string          `json:"venue"`
	IsMainEvent        bool            `json:"is_main_event"`
	BasePurse          int             `json:"base_purse"`
	PPVPoints          int             `json:"ppv_points"`           // % of PPV revenue if main event
	TicketRevenueSplit int             `json:"ticket_revenue_split"` // % of gate
	Prestige           int             `json:"prestige"`             // 1-10
}

// Earnings is the money breakdown of one resolved fight.
// Total = BasePurse + WinBonus + PPVRevenue + TicketRevenue + SponsorBonuses - MedicalCosts.
type Earnings struct {
	BasePurse      int `json:"base_purse"`
	WinBonus       int `json:"win_bonus"`
	PPVRevenue     int `json:"ppv_revenue"`
	TicketRevenue  int `json:"ticket_revenue"`
	SponsorBonuses int `json:"sponsor_bonuses"`
	MedicalCosts   int `json:"medical_costs"`
	Total          int `json:"total"`
}

// Outcome is the immutable result of one resolved fight. It is appended to
// career history and never mutated afterwards.
type Outcome struct {
	FightID        string               `json:"fight_id"`
	WinnerID       string               `json:"winner_id"`
	LoserID        string               `json:"loser_id"`
	Result         Result               `json:"result"`
	Rounds         []Round              `json:"rounds"`
	FinalRound     int                  `json:"final_round"`
	Earnings       Earnings             `json:"earnings"`
	InjuryToPlayer fighter.InjuryStatus `json:"injury_to_player"`
	RankingChange  int                  `json:"ranking_change"`
	FameGain       int                  `json:"fame_gain"`
}

// Offer is a promoter's proposed bout, before a fighter is attached.
type Offer struct {
	ID                 string `json:"id"`
	Venue              string `json:"venue"`
	Prestige           int    `json:"prestige"`
	IsMainEvent        bool   `json:"is_main_event"`
	BasePurse          int    `json:"base_purse"`
	PPVPoints          int    `json:"ppv_points"`
	TicketRevenueSplit int    `json:"ticket_revenue_split"`
	DaysOut            int    `json:"days_out"`
	Difficulty         int    `json:"difficulty"` // matchmaking offset, usually -1..2
}
