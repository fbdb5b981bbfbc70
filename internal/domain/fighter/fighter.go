// Package fighter defines the core roster entity for the management game.
// This package is PURE and must NOT import any infrastructure packages
// (network, events, platform).
package fighter

// WeightClass is the division a fighter competes in. Bouts are only booked
// within a single weight class.
type WeightClass string

const (
	Flyweight     WeightClass = "flyweight"
	Bantamweight  WeightClass = "bantamweight"
	Featherweight WeightClass = "featherweight"
	Lightweight   WeightClass = "lightweight"
	Welterweight  WeightClass = "welterweight"
	Middleweight  WeightClass = "middleweight"
	Heavyweight   WeightClass = "heavyweight"
)

// WeightClasses lists every division, in ascending weight order.
var WeightClasses = []WeightClass{
	Flyweight, Bantamweight, Featherweight, Lightweight,
	Welterweight, Middleweight, Heavyweight,
}

// Personality is a flavor archetype surfaced in commentary and dialogs.
type Personality string

const (
	Cocky  Personality = "cocky"
	Humble Personality = "humble"
	Shy    Personality = "shy"
	Joker  Personality = "joker"
)

// Personalities lists every archetype.
var Personalities = []Personality{Cocky, Humble, Shy, Joker}

// InjuryStatus describes how banged up a fighter currently is.
type InjuryStatus string

const (
	InjuryNone     InjuryStatus = "none"
	InjuryMinor    InjuryStatus = "minor"
	InjuryMajor    InjuryStatus = "major"
	InjuryCritical InjuryStatus = "critical"
)

// Tier is the coarse talent bracket controlling stat rolls and salary bands.
type Tier string

const (
	TierScrub    Tier = "scrub"
	TierLocal    Tier = "local"
	TierRegional Tier = "regional"
	TierNational Tier = "national"
	TierElite    Tier = "elite"
)

// StatName identifies one of the four trainable attributes.
type StatName string

const (
	Striking     StatName = "striking"
	Grappling    StatName = "grappling"
	Conditioning StatName = "conditioning"
	Durability   StatName = "durability"
)

// StatNames lists the four attributes.
var StatNames = []StatName{Striking, Grappling, Conditioning, Durability}

// Stats holds the four core attributes. Values live in [0,10]; fight-outcome
// growth adds fractional increments, so these are floats.
type Stats struct {
	Striking     float64 `json:"striking" yaml:"striking"`
	Grappling    float64 `json:"grappling" yaml:"grappling"`
	Conditioning float64 `json:"conditioning" yaml:"conditioning"`
	Durability   float64 `json:"durability" yaml:"durability"`
}

// Get returns the named stat.
func (s Stats) Get(name StatName) float64 {
	switch name {
	case Striking:
		return s.Striking
	case Grappling:
		return s.Grappling
	case Conditioning:
		return s.Conditioning
	case Durability:
		return s.Durability
	}
	return 0
}

// Set assigns the named stat, clamped into [0,10].
func (s *Stats) Set(name StatName, v float64) {
	v = ClampStat(v)
	switch name {
	case Striking:
		s.Striking = v
	case Grappling:
		s.Grappling = v
	case Conditioning:
		s.Conditioning = v
	case Durability:
		s.Durability = v
	}
}

// Average returns the mean of the four stats. Matchmaking keys off this.
func (s Stats) Average() float64 {
	return (s.Striking + s.Grappling + s.Conditioning + s.Durability) / 4
}

// Clamp forces every stat into [0,10].
func (s *Stats) Clamp() {
	s.Striking = ClampStat(s.Striking)
	s.Grappling = ClampStat(s.Grappling)
	s.Conditioning = ClampStat(s.Conditioning)
	s.Durability = ClampStat(s.Durability)
}

// Fighter represents a roster member or a generated opponent.
type Fighter struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"` // `First "Nickname" Last`
	Nickname    string      `json:"nickname"`
	WeightClass WeightClass `json:"weight_class"`
	Personality Personality `json:"personality"`

	// Visible stats
	Stats Stats `json:"stats"`

	// Hidden per-stat ceiling, revealed only by scouting. Training never
	// pushes a stat past its potential.
	Potential         Stats `json:"potential"`
	PotentialRevealed bool  `json:"potential_revealed"`

	// Condition
	Health         int          `json:"health"` // 0-100
	Morale         int          `json:"morale"` // 0-100
	Fame           float64      `json:"fame"`   // 0-100, drives PPV buys
	Injury         InjuryStatus `json:"injury"`
	InjuryDaysLeft int          `json:"injury_days_left"`

	// Record
	Wins        int  `json:"wins"`
	Losses      int  `json:"losses"`
	Knockouts   int  `json:"knockouts"`
	Ranking     int  `json:"ranking"` // 0 = unranked, 1 = top contender
	TitleHolder bool `json:"title_holder"`

	// Contract
	Salary            int `json:"salary"` // per week
	ContractWeeksLeft int `json:"contract_weeks_left"`
	FightBonus        int `json:"fight_bonus"` // % of purse
	SignedDay         int `json:"signed_day"`

	// Seed for procedural portrait rendering on the client.
	AvatarSeed int `json:"avatar_seed"`
}

// Ranked reports whether the fighter holds a ranking spot.
func (f *Fighter) Ranked() bool {
	return f.Ranking > 0
}

// Injured reports whether the fighter is carrying any injury.
func (f *Fighter) Injured() bool {
	return f.Injury != InjuryNone
}

// ClampVitals forces health, morale and fame back into [0,100] and the
// stats into [0,10]. Call after every mutation.
func (f *Fighter) ClampVitals() {
	f.Health = ClampPercent(f.Health)
	f.Morale = ClampPercent(f.Morale)
	f.Fame = clampFloat(f.Fame, 0, 100)
	f.Stats.Clamp()
}

// ClampPercent bounds an int into [0,100].
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampStat bounds a stat into [0,10].
func ClampStat(v float64) float64 {
	return clampFloat(v, 0, 10)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
