// Package gen produces fighters, opponents, fight offers and sponsor deals
// from the static tables. Everything here is a pure function of (tables,
// injected randomness); nothing touches the game state.
package gen

import (
	"fmt"

	"github.com/ringsidegames/cornerman/internal/config"
	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/manager"
	"github.com/ringsidegames/cornerman/internal/domain/sponsor"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
)

// Generator rolls new fighters and deals. It holds no game state beyond the
// id counters.
type Generator struct {
	rng    *rng.Source
	ids    *rng.IDSource
	tables *config.Tables
}

// New creates a Generator.
func New(source *rng.Source, ids *rng.IDSource, tables *config.Tables) *Generator {
	return &Generator{rng: source, ids: ids, tables: tables}
}

// Options narrows what GenerateFighter rolls.
type Options struct {
	Tier             fighter.Tier        // empty = random local/regional
	ForceWeightClass fighter.WeightClass // empty = random
}

func (g *Generator) rollStats(tier fighter.Tier) fighter.Stats {
	r := g.tables.TierRanges[tier]
	return fighter.Stats{
		Striking:     float64(g.rng.Between(r.Min, r.Max)),
		Grappling:    float64(g.rng.Between(r.Min, r.Max)),
		Conditioning: float64(g.rng.Between(r.Min, r.Max)),
		Durability:   float64(g.rng.Between(r.Min, r.Max)),
	}
}

func (g *Generator) rollPotential(stats fighter.Stats, tier fighter.Tier) fighter.Stats {
	cap := g.tables.TierRanges[tier].Potential
	roll := func(current float64) float64 {
		v := g.rng.Between(int(current), cap)
		if v > 10 {
			v = 10
		}
		return float64(v)
	}
	return fighter.Stats{
		Striking:     roll(stats.Striking),
		Grappling:    roll(stats.Grappling),
		Conditioning: roll(stats.Conditioning),
		Durability:   roll(stats.Durability),
	}
}

// GenerateFighter rolls a new fighter. Stats are drawn uniformly from the
// tier's band, potential uniformly from [current, tier cap], capped at 10.
func (g *Generator) GenerateFighter(opts Options) fighter.Fighter {
	tier := opts.Tier
	if tier == "" {
		tier = rng.Pick(g.rng, []fighter.Tier{fighter.TierLocal, fighter.TierRegional})
	}
	stats := g.rollStats(tier)
	potential := g.rollPotential(stats, tier)

	wc := opts.ForceWeightClass
	if wc == "" {
		wc = rng.Pick(g.rng, fighter.WeightClasses)
	}

	first := rng.Pick(g.rng, g.tables.FirstNames)
	last := rng.Pick(g.rng, g.tables.LastNames)
	nick := rng.Pick(g.rng, g.tables.Nicknames)

	salary := g.tables.TierSalaries[tier]

	f := fighter.Fighter{
		ID:          g.ids.Next("fighter"),
		Name:        fmt.Sprintf("%s %q %s", first, nick, last),
		Nickname:    nick,
		WeightClass: wc,
		Personality: rng.Pick(g.rng, fighter.Personalities),
		Stats:       stats,
		Potential:   potential,
		Health:      100,
		Morale:      g.rng.Between(40, 80),
		Fame:        float64(g.rollFame(tier)),
		Injury:      fighter.InjuryNone,
		Salary:      g.rng.Between(salary.Min, salary.Max),
		FightBonus:  g.rng.Between(5, 20),
		AvatarSeed:  g.rng.Intn(100000),
	}

	// Tier-biased record: scrubs start near 0, everyone else carries a past.
	if tier == fighter.TierScrub {
		f.Wins = g.rng.Between(0, 2)
		f.Losses = g.rng.Between(1, 5)
	} else {
		f.Wins = g.rng.Between(2, 15)
		f.Losses = g.rng.Between(0, 8)
	}
	f.Knockouts = g.rng.Between(0, 4)

	metrics.Get().IncrFightersCreated()
	return f
}

func (g *Generator) rollFame(tier fighter.Tier) int {
	switch tier {
	case fighter.TierScrub:
		return g.rng.Between(1, 10)
	case fighter.TierElite:
		return g.rng.Between(60, 90)
	default:
		return g.rng.Between(10, 50)
	}
}

// GenerateOpponent matches an opponent to a fighter's skill level. The
// fighter's stat average plus the difficulty offset maps through fixed
// thresholds to an opponent tier; the weight class always matches. This is
// the sole matchmaking rule.
func (g *Generator) GenerateOpponent(f fighter.Fighter, difficulty int) fighter.Fighter {
	score := f.Stats.Average() + float64(difficulty)

	var tier fighter.Tier
	switch {
	case score <= 3:
		tier = fighter.TierScrub
	case score <= 5:
		tier = fighter.TierLocal
	case score <= 7:
		tier = fighter.TierRegional
	case score <= 9:
		tier = fighter.TierNational
	default:
		tier = fighter.TierElite
	}

	return g.GenerateFighter(Options{Tier: tier, ForceWeightClass: f.WeightClass})
}

// ScoutPool rolls the prospects a scouting trip turns up. Pool size and tier
// spread key off the manager's connections and scouting skill.
func (g *Generator) ScoutPool(m manager.Character) []fighter.Fighter {
	var tiers []fighter.Tier
	switch {
	case m.Scouting >= 7:
		tiers = []fighter.Tier{fighter.TierLocal, fighter.TierRegional, fighter.TierNational}
	case m.Scouting >= 4:
		tiers = []fighter.Tier{fighter.TierScrub, fighter.TierLocal, fighter.TierRegional}
	default:
		tiers = []fighter.Tier{fighter.TierScrub, fighter.TierLocal}
	}

	count := 4 + m.Connections/3
	pool := make([]fighter.Fighter, 0, count)
	for i := 0; i < count; i++ {
		pool = append(pool, g.GenerateFighter(Options{Tier: rng.Pick(g.rng, tiers)}))
	}
	return pool
}

// GenerateOffers rolls the fight offers a promoter puts on the table.
// Better-connected managers see more and bigger offers; negotiation fattens
// the ticket split.
func (g *Generator) GenerateOffers(m manager.Character) []fight.Offer {
	count := 2 + m.Connections/3
	offers := make([]fight.Offer, 0, count)
	for i := 0; i < count; i++ {
		maxPrestige := 3 + m.Connections/2
		if maxPrestige > 10 {
			maxPrestige = 10
		}
		prestige := g.rng.Between(1, maxPrestige)
		isMain := prestige >= 7 && g.rng.Chance(0.3)

		offer := fight.Offer{
			ID:                 g.ids.Next("offer"),
			Venue:              rng.Pick(g.rng, g.tables.Venues),
			Prestige:           prestige,
			IsMainEvent:        isMain,
			BasePurse:          prestige*500 + g.rng.Between(500, 2000),
			TicketRevenueSplit: g.rng.Between(5, 15+m.Negotiation*2),
			DaysOut:            g.rng.Between(3, 14),
			Difficulty:         g.rng.Between(-1, 2),
		}
		if isMain {
			offer.PPVPoints = g.rng.Between(2, 8)
		}
		offers = append(offers, offer)
	}
	return offers
}

// GenerateSponsor rolls a sponsorship offer scaled to the gym level.
func (g *Generator) GenerateSponsor(gymLevel int) sponsor.Deal {
	tier := gymLevel
	if tier > 3 {
		tier = 3
	}

	reqs := []sponsor.Requirement{
		sponsor.RequirementNone,
		sponsor.RequirementNone,
		sponsor.RequirementWinNextFight,
		sponsor.RequirementWinStreak2,
	}
	if gymLevel >= 3 {
		reqs = append(reqs, sponsor.RequirementTitleHolder)
	}

	return sponsor.Deal{
		ID:             g.ids.Next("sponsor"),
		Name:           rng.Pick(g.rng, g.tables.SponsorNames),
		WeeklyPayment:  g.rng.Between(100, 200) * tier,
		FightBonus:     g.rng.Between(200, 500) * tier,
		WeeksLeft:      g.rng.Between(8, 20),
		Requirement:    rng.Pick(g.rng, reqs),
		RequirementMet: true, // starts met, rechecked every week
	}
}
