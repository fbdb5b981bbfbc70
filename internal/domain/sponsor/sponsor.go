// Package sponsor defines weekly sponsorship deals and their requirements.
package sponsor

// Requirement is an optional condition a deal attaches to its payments.
// Requirements are recomputed at every week boundary; an unmet requirement
// suspends the weekly payment without cancelling the deal.
type Requirement string

const (
	RequirementNone        Requirement = ""
	RequirementWinNextFight Requirement = "win_next_fight"
	RequirementWinStreak2   Requirement = "win_streak_2"
	RequirementTitleHolder  Requirement = "title_holder"
)

// Deal is one active sponsorship.
type Deal struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"` // "MEGA PROTEIN 9000"
	WeeklyPayment  int         `json:"weekly_payment"`
	FightBonus     int         `json:"fight_bonus"` // per fight
	WeeksLeft      int         `json:"weeks_left"`
	Requirement    Requirement `json:"requirement,omitempty"`
	RequirementMet bool        `json:"requirement_met"`
}

// MaxConcurrentDeals caps how many sponsors a gym can carry at once.
const MaxConcurrentDeals = 3
