// Package config holds the static game data the core consumes: tier rolls,
// the gym upgrade ladder, staff costs, name pools and narrative event
// templates. Compiled-in defaults can be overridden from a YAML file so the
// balance can be tuned without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/gym"
)

// TierRange is the stat-roll band and potential cap for one talent tier.
type TierRange struct {
	Min       int `yaml:"min"`
	Max       int `yaml:"max"`
	Potential int `yaml:"potential"`
}

// Band is an inclusive money range.
type Band struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// GymUpgrade is one rung of the fixed upgrade ladder.
type GymUpgrade struct {
	Level       int    `yaml:"level"`
	Cost        int    `yaml:"cost"`
	Rent        int    `yaml:"rent"`
	MaxFighters int    `yaml:"max_fighters"`
	Label       string `yaml:"label"`
}

// StaffCost is the one-time hire cost and recurring weekly cost of a role.
type StaffCost struct {
	Hire   int `yaml:"hire"`
	Weekly int `yaml:"weekly"`
}

// EventKind categorizes a narrative event template.
type EventKind string

const (
	EventInjury      EventKind = "injury"
	EventDrama       EventKind = "drama"
	EventOpportunity EventKind = "opportunity"
	EventNews        EventKind = "news"
)

// EventTemplate is one entry of the random narrative event table. Text may
// contain a {fighter} placeholder filled with the target's name.
type EventTemplate struct {
	Kind         EventKind `yaml:"kind"`
	Title        string    `yaml:"title"`
	Text         string    `yaml:"text"`
	Morale       int       `yaml:"morale"`
	HealthCost   int       `yaml:"health_cost"`
	InjuryDays   int       `yaml:"injury_days"`
	FameGain     int       `yaml:"fame_gain"`
	RepCost      int       `yaml:"rep_cost"`
	MoneyCost    int       `yaml:"money_cost"`
	SponsorOffer bool      `yaml:"sponsor_offer"`
}

// Tables is the full static configuration surface of the core.
type Tables struct {
	TierRanges   map[fighter.Tier]TierRange `yaml:"tier_ranges"`
	TierSalaries map[fighter.Tier]Band      `yaml:"tier_salaries"`

	GymUpgrades []GymUpgrade                `yaml:"gym_upgrades"`
	StaffCosts  map[gym.StaffRole]StaffCost `yaml:"staff_costs"`

	FirstNames   []string `yaml:"first_names"`
	LastNames    []string `yaml:"last_names"`
	Nicknames    []string `yaml:"nicknames"`
	Venues       []string `yaml:"venues"`
	SponsorNames []string `yaml:"sponsor_names"`

	EventTemplates []EventTemplate `yaml:"event_templates"`

	// Tunables for the career engine and store.
	WeeklyEventChance  float64 `yaml:"weekly_event_chance"`
	DailyEventChance   float64 `yaml:"daily_event_chance"`
	TrainingCost       int     `yaml:"training_cost"`
	TrainSuccessChance float64 `yaml:"train_success_chance"`
	ScoutBaseCost      int     `yaml:"scout_base_cost"`
	SigningBonusFactor int     `yaml:"signing_bonus_factor"`
	StartingMoney      int     `yaml:"starting_money"`
	StarterSalary      int     `yaml:"starter_salary"`
	StarterWeeks       int     `yaml:"starter_weeks"`
}

// UpgradeForLevel returns the ladder entry for the given level, or nil when
// the level is off the ladder (past max).
func (t *Tables) UpgradeForLevel(level int) *GymUpgrade {
	for i := range t.GymUpgrades {
		if t.GymUpgrades[i].Level == level {
			return &t.GymUpgrades[i]
		}
	}
	return nil
}

// Default returns the compiled-in game balance.
func Default() *Tables {
	return &Tables{
		TierRanges: map[fighter.Tier]TierRange{
			fighter.TierScrub:    {Min: 2, Max: 4, Potential: 6},
			fighter.TierLocal:    {Min: 3, Max: 5, Potential: 7},
			fighter.TierRegional: {Min: 4, Max: 7, Potential: 8},
			fighter.TierNational: {Min: 6, Max: 8, Potential: 9},
			fighter.TierElite:    {Min: 7, Max: 10, Potential: 10},
		},
		TierSalaries: map[fighter.Tier]Band{
			fighter.TierScrub:    {Min: 200, Max: 400},
			fighter.TierLocal:    {Min: 300, Max: 600},
			fighter.TierRegional: {Min: 500, Max: 1000},
			fighter.TierNational: {Min: 800, Max: 2000},
			fighter.TierElite:    {Min: 1500, Max: 4000},
		},
		GymUpgrades: []GymUpgrade{
			{Level: 1, Cost: 0, Rent: 500, MaxFighters: 2, Label: "Garage Gym"},
			{Level: 2, Cost: 5000, Rent: 1000, MaxFighters: 4, Label: "Strip Mall Gym"},
			{Level: 3, Cost: 15000, Rent: 2000, MaxFighters: 6, Label: "Real Gym"},
			{Level: 4, Cost: 40000, Rent: 4000, MaxFighters: 8, Label: "Pro Facility"},
			{Level: 5, Cost: 100000, Rent: 8000, MaxFighters: 12, Label: "World Class HQ"},
		},
		StaffCosts: map[gym.StaffRole]StaffCost{
			gym.RoleTrainer:      {Hire: 800, Weekly: 400},
			gym.RoleCutman:       {Hire: 500, Weekly: 250},
			gym.RoleNutritionist: {Hire: 600, Weekly: 300},
			gym.RoleScout:        {Hire: 700, Weekly: 350},
		},
		FirstNames: []string{
			"Marcus", "Diego", "Tony", "Ray", "Sergei", "Kenji", "Dario",
			"Floyd", "Ivan", "Leon", "Maurice", "Paulo", "Ritchie", "Sam",
			"Terrence", "Viktor", "Wallace", "Yusuf", "Ezekiel", "Hank",
		},
		LastNames: []string{
			"Silva", "Brooks", "Kowalski", "Nakamura", "Ortiz", "Petrov",
			"Reyes", "Sandoval", "Thompson", "Vance", "Walcott", "Ferreira",
			"Gallagher", "Hargrove", "Ibrahim", "Jennings", "Kruger", "Moreau",
			"Okafor", "Quinn",
		},
		Nicknames: []string{
			"The Hammer", "Sledge", "Quicksilver", "Bonecrusher", "The Ghost",
			"Mad Dog", "Iron Jaw", "The Professor", "Thunderbolt", "Wildcard",
			"The Anvil", "Razor", "Stone Cold", "The Viper", "Knockout",
			"The Machine", "Sandman", "Cyclone", "The Butcher", "Pretty Boy",
		},
		Venues: []string{
			"The Rusty Cage", "Duke's Boxing Hall", "Riverside Pavilion",
			"Steel City Arena", "The Warehouse", "Golden Gloves Casino",
			"Metro Convention Center", "The Colosseum", "Kings Road Arena",
			"Harborfront Stadium",
		},
		SponsorNames: []string{
			"MEGA PROTEIN 9000", "IRON FIST ENERGY", "TAP-OUT WEAR",
			"CAGE FURY GEAR", "KNOCKOUT SUPPLEMENTS", "GRAPPLE GRIPS",
			"FIGHT MILK INC", "SAVAGE NUTRITION", "WARRIOR WEAR",
			"OCTAGON OPTICS", "BLOOD & GUTS GYM SUPPLY", "COMBAT CREATINE",
		},
		EventTemplates: []EventTemplate{
			{Kind: EventInjury, Title: "TRAINING INJURY", Text: "{fighter} tweaked their knee during sparring.", Morale: -10, HealthCost: 15, InjuryDays: 3},
			{Kind: EventDrama, Title: "LOCKER ROOM BEEF", Text: "{fighter} got into an argument with another fighter. Morale is down.", Morale: -15},
			{Kind: EventOpportunity, Title: "MEDIA APPEARANCE", Text: "A local TV show wants to feature {fighter}. Fame boost incoming!", Morale: 10, FameGain: 8},
			{Kind: EventDrama, Title: "RIVAL GYM TRASH TALK", Text: "A rival gym called your operation a joke on social media.", Morale: -5, RepCost: 3},
			{Kind: EventOpportunity, Title: "FAN MEET & GREET", Text: "{fighter} did a fan meet and greet. Fans loved it!", Morale: 15, FameGain: 5},
			{Kind: EventNews, Title: "EQUIPMENT BREAKDOWN", Text: "Some gym equipment broke down. Repairs needed.", MoneyCost: 500},
			{Kind: EventOpportunity, Title: "SPONSORSHIP OFFER", Text: "A brand wants to sponsor your gym!", Morale: 5, SponsorOffer: true},
		},

		WeeklyEventChance:  0.35,
		DailyEventChance:   0.10,
		TrainingCost:       200,
		TrainSuccessChance: 0.7,
		ScoutBaseCost:      200,
		SigningBonusFactor: 2,
		StartingMoney:      5000,
		StarterSalary:      300,
		StarterWeeks:       12,
	}
}

// Load reads a YAML override file on top of the defaults. Only keys present
// in the file replace their default values.
func Load(path string) (*Tables, error) {
	tables := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}
	if err := yaml.Unmarshal(raw, tables); err != nil {
		return nil, fmt.Errorf("parse tables file: %w", err)
	}
	if err := tables.validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

func (t *Tables) validate() error {
	if len(t.GymUpgrades) == 0 {
		return fmt.Errorf("tables: gym upgrade ladder is empty")
	}
	for _, tier := range []fighter.Tier{fighter.TierScrub, fighter.TierLocal, fighter.TierRegional, fighter.TierNational, fighter.TierElite} {
		if _, ok := t.TierRanges[tier]; !ok {
			return fmt.Errorf("tables: missing tier range for %q", tier)
		}
		if _, ok := t.TierSalaries[tier]; !ok {
			return fmt.Errorf("tables: missing salary band for %q", tier)
		}
	}
	if len(t.FirstNames) == 0 || len(t.LastNames) == 0 || len(t.Nicknames) == 0 {
		return fmt.Errorf("tables: name pools must not be empty")
	}
	return nil
}
