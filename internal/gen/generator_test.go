package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringsidegames/cornerman/internal/config"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/manager"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
)

func newGenerator(seed int64) *Generator {
	return New(rng.New(seed), rng.NewIDSource(), config.Default())
}

func TestGenerateFighterStaysInTierBand(t *testing.T) {
	g := newGenerator(1)
	tables := config.Default()

	for _, tier := range []fighter.Tier{fighter.TierScrub, fighter.TierLocal, fighter.TierRegional, fighter.TierNational, fighter.TierElite} {
		r := tables.TierRanges[tier]
		band := tables.TierSalaries[tier]
		for i := 0; i < 50; i++ {
			f := g.GenerateFighter(Options{Tier: tier})

			for _, stat := range fighter.StatNames {
				v := f.Stats.Get(stat)
				assert.GreaterOrEqual(t, v, float64(r.Min), "%s %s below band", tier, stat)
				assert.LessOrEqual(t, v, float64(r.Max), "%s %s above band", tier, stat)

				p := f.Potential.Get(stat)
				assert.GreaterOrEqual(t, p, v, "%s potential below current %s", tier, stat)
				assert.LessOrEqual(t, p, 10.0, "%s potential above hard cap", tier)
			}
			assert.GreaterOrEqual(t, f.Salary, band.Min)
			assert.LessOrEqual(t, f.Salary, band.Max)
			assert.Equal(t, 100, f.Health)
			assert.Equal(t, fighter.InjuryNone, f.Injury)
			assert.False(t, f.PotentialRevealed)
		}
	}
}

func TestGenerateFighterUniqueIDs(t *testing.T) {
	g := newGenerator(2)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		f := g.GenerateFighter(Options{})
		require.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
}

func TestSeededGenerationIsDeterministic(t *testing.T) {
	a := newGenerator(42)
	b := newGenerator(42)

	for i := 0; i < 20; i++ {
		fa := a.GenerateFighter(Options{})
		fb := b.GenerateFighter(Options{})
		require.Equal(t, fa, fb, "fighter %d diverged between equal seeds", i)
	}
}

func TestGenerateOpponentTierThresholds(t *testing.T) {
	tables := config.Default()
	cases := []struct {
		avg        float64
		difficulty int
		wantTier   fighter.Tier
	}{
		{2, 0, fighter.TierScrub},     // 2 <= 3
		{3, 0, fighter.TierScrub},     // boundary
		{5, 0, fighter.TierLocal},     // boundary
		{5, 1, fighter.TierRegional},  // difficulty pushes over
		{7, 0, fighter.TierRegional},  // boundary
		{8, 1, fighter.TierNational},  // 9 <= 9
		{9, 1, fighter.TierElite},     // 10 > 9
		{5, -1, fighter.TierLocal},    // easy matchmaking
	}

	for _, tc := range cases {
		g := newGenerator(7)
		f := fighter.Fighter{
			WeightClass: fighter.Welterweight,
			Stats:       fighter.Stats{Striking: tc.avg, Grappling: tc.avg, Conditioning: tc.avg, Durability: tc.avg},
		}
		opp := g.GenerateOpponent(f, tc.difficulty)

		require.Equal(t, fighter.Welterweight, opp.WeightClass, "opponent must match weight class")
		r := tables.TierRanges[tc.wantTier]
		for _, stat := range fighter.StatNames {
			v := opp.Stats.Get(stat)
			assert.GreaterOrEqual(t, v, float64(r.Min), "avg %v diff %d: %s below %s band", tc.avg, tc.difficulty, stat, tc.wantTier)
			assert.LessOrEqual(t, v, float64(r.Max), "avg %v diff %d: %s above %s band", tc.avg, tc.difficulty, stat, tc.wantTier)
		}
	}
}

func TestScoutPoolScalesWithManager(t *testing.T) {
	g := newGenerator(3)

	rookie := manager.Character{Scouting: 1, Connections: 0}
	pool := g.ScoutPool(rookie)
	assert.Len(t, pool, 4)

	connected := manager.Character{Scouting: 8, Connections: 9}
	pool = g.ScoutPool(connected)
	assert.Len(t, pool, 7)
}

func TestGenerateOffersScalesWithConnections(t *testing.T) {
	g := newGenerator(4)

	offers := g.GenerateOffers(manager.Character{Connections: 0})
	require.Len(t, offers, 2)

	offers = g.GenerateOffers(manager.Character{Connections: 6, Negotiation: 5})
	require.Len(t, offers, 4)

	for _, o := range offers {
		assert.GreaterOrEqual(t, o.Prestige, 1)
		assert.LessOrEqual(t, o.Prestige, 10)
		assert.GreaterOrEqual(t, o.DaysOut, 3)
		assert.LessOrEqual(t, o.DaysOut, 14)
		assert.Positive(t, o.BasePurse)
		if !o.IsMainEvent {
			assert.Zero(t, o.PPVPoints, "PPV points only on main events")
		}
	}
}

func TestGenerateSponsorRespectsGymLevel(t *testing.T) {
	g := newGenerator(5)

	for i := 0; i < 50; i++ {
		deal := g.GenerateSponsor(1)
		assert.NotEmpty(t, deal.Name)
		assert.Positive(t, deal.WeeklyPayment)
		assert.Positive(t, deal.WeeksLeft)
		assert.True(t, deal.RequirementMet, "new deals start with requirement met")
		assert.NotEqual(t, "title_holder", string(deal.Requirement), "title requirement needs gym level 3")
	}
}
