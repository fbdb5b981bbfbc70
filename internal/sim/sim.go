// Package sim resolves a scheduled bout into rounds, commentary and an
// outcome. The simulator is a pure function of its inputs and the injected
// random source; it never mutates the fighters it is handed.
package sim

import (
	"math"

	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
)

// MaxRounds is the scheduled length of every bout.
const MaxRounds = 3

// Simulator resolves fights.
type Simulator struct {
	rng *rng.Source
}

// New creates a Simulator on the given random source.
func New(source *rng.Source) *Simulator {
	return &Simulator{rng: source}
}

// simulateRound plays out 4-6 exchanges between f1 (the player's fighter)
// and f2 (the opponent), starting from the given HP values.
func (s *Simulator) simulateRound(f1, f2 *fighter.Fighter, f1HP, f2HP float64, roundNum int) fight.Round {
	var events []fight.RoundEvent
	f1Score, f2Score := 0, 0

	// Conditioning slows the stamina decay across rounds; floor at 50%.
	f1Stamina := math.Max(0.5, 1-float64(roundNum-1)*(0.15-f1.Stats.Conditioning*0.01))
	f2Stamina := math.Max(0.5, 1-float64(roundNum-1)*(0.15-f2.Stats.Conditioning*0.01))

	f1Morale := 0.8 + float64(f1.Morale)/100*0.4
	f2Morale := 0.8 + float64(f2.Morale)/100*0.4

	exchanges := 4 + s.rng.Intn(3)

	for i := 0; i < exchanges; i++ {
		// Higher initiative attacks this exchange.
		f1Init := (f1.Stats.Striking+f1.Stats.Grappling)*f1Stamina*f1Morale + s.rng.Float()*4
		f2Init := (f2.Stats.Striking+f2.Stats.Grappling)*f2Stamina*f2Morale + s.rng.Float()*4
		attackerIsF1 := f1Init >= f2Init

		attacker, defender := f1, f2
		aStamina := f1Stamina
		side := fight.SidePlayer
		if !attackerIsF1 {
			attacker, defender = f2, f1
			aStamina = f2Stamina
			side = fight.SideOpponent
		}

		// Grapplers shoot more often, strikers throw hands.
		goesForGrapple := s.rng.Float() < attacker.Stats.Grappling/(attacker.Stats.Striking+attacker.Stats.Grappling)

		if goesForGrapple {
			success := s.rng.Float() < attacker.Stats.Grappling*aStamina/(attacker.Stats.Grappling+defender.Stats.Grappling+2)
			if success {
				dmg := (attacker.Stats.Grappling*0.8 + s.rng.Float()*3) * aStamina
				mitigated := dmg * (1 - defender.Stats.Durability*0.06)
				if attackerIsF1 {
					f2HP -= mitigated
					f1Score += 2
				} else {
					f1HP -= mitigated
					f2Score += 2
				}
				events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, grappleSuccessLines), attacker.Name, defender.Name), Kind: fight.EventGrapple, Side: side})
			} else {
				events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, grappleFailLines), attacker.Name, defender.Name), Kind: fight.EventGrapple, Side: side})
				// Defender scores for stuffing the shot.
				if attackerIsF1 {
					f2Score++
				} else {
					f1Score++
				}
			}
		} else {
			hitChance := attacker.Stats.Striking * aStamina / (attacker.Stats.Striking + defender.Stats.Durability + 3)
			if s.rng.Float() < hitChance {
				dmg := (attacker.Stats.Striking*1.2 + s.rng.Float()*4) * aStamina
				mitigated := dmg * (1 - defender.Stats.Durability*0.05)
				if attackerIsF1 {
					f2HP -= mitigated
					f1Score += 2
				} else {
					f1HP -= mitigated
					f2Score += 2
				}
				events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, strikeHitLines), attacker.Name, defender.Name), Kind: fight.EventStrike, Side: side})

				// A big clean shot can end it on the spot.
				if mitigated > 12 && s.rng.Chance(0.08) {
					if attackerIsF1 {
						f2HP = 0
					} else {
						f1HP = 0
					}
					events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, koLines), attacker.Name, defender.Name), Kind: fight.EventKnockout, Side: side})
					break
				}
			} else {
				events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, strikeMissLines), attacker.Name, defender.Name), Kind: fight.EventStrike, Side: side})
			}
		}

		// A grappler smells blood when the defender is below 30 HP.
		defenderHP := f2HP
		if !attackerIsF1 {
			defenderHP = f1HP
		}
		if attacker.Stats.Grappling >= 6 && defenderHP < 30 && s.rng.Chance(0.15) {
			subChance := attacker.Stats.Grappling / (attacker.Stats.Grappling + defender.Stats.Durability)
			if s.rng.Float() < subChance {
				if attackerIsF1 {
					f2HP = 0
				} else {
					f1HP = 0
				}
				events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, subLines), attacker.Name, defender.Name), Kind: fight.EventSubmission, Side: side})
				break
			}
		}

		if s.rng.Chance(0.05) {
			events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, tauntLines), attacker.Name, defender.Name), Kind: fight.EventTaunt, Side: side})
		}

		// Accumulated damage with no finishing blow: the ref stops it.
		// The depleted side is this exchange's defender, so the stoppage
		// is credited to the attacker.
		if f1HP <= 0 || f2HP <= 0 {
			events = append(events, fight.RoundEvent{Text: fillTemplate(rng.Pick(s.rng, tkoLines), attacker.Name, defender.Name), Kind: fight.EventTKO, Side: side})
			break
		}
	}

	return fight.Round{
		Number:  roundNum,
		Events:  events,
		F1HPEnd: math.Max(0, f1HP),
		F2HPEnd: math.Max(0, f2HP),
		F1Score: f1Score,
		F2Score: f2Score,
	}
}

// SimulateFight resolves a scheduled bout. It always terminates within
// MaxRounds and produces exactly one outcome with distinct winner and loser.
func (s *Simulator) SimulateFight(sf fight.ScheduledFight, playerFighter fighter.Fighter) fight.Outcome {
	f1 := playerFighter
	f2 := sf.Opponent

	var rounds []fight.Round
	f1HP, f2HP := 100.0, 100.0
	result := fight.ResultDecision
	finalRound := MaxRounds

	for r := 1; r <= MaxRounds; r++ {
		round := s.simulateRound(&f1, &f2, f1HP, f2HP, r)
		rounds = append(rounds, round)
		f1HP = round.F1HPEnd
		f2HP = round.F2HPEnd

		if f1HP <= 0 || f2HP <= 0 {
			result = fight.ResultKO
			if n := len(round.Events); n > 0 {
				switch round.Events[n-1].Kind {
				case fight.EventSubmission:
					result = fight.ResultSubmission
				case fight.EventTKO:
					result = fight.ResultTKO
				}
			}
			finalRound = r
			break
		}
	}

	totalF1, totalF2 := 0, 0
	for _, r := range rounds {
		totalF1 += r.F1Score
		totalF2 += r.F2Score
	}
	playerWon := f2HP <= 0 || (f1HP > 0 && totalF1 >= totalF2)

	if f1HP > 0 && f2HP > 0 {
		if totalF1 == totalF2 {
			result = fight.ResultDraw
		} else {
			result = fight.ResultDecision
		}
	}

	earnings := s.calculateEarnings(sf, f1, playerWon)

	// One roll decides the post-fight injury; losing is the risky side.
	injuryRoll := s.rng.Float()
	injury := fighter.InjuryNone
	if !playerWon && injuryRoll < 0.3 {
		injury = fighter.InjuryMinor
	}
	if !playerWon && injuryRoll < 0.1 {
		injury = fighter.InjuryMajor
	}
	if playerWon && injuryRoll < 0.1 {
		injury = fighter.InjuryMinor
	}

	fameGain := -sf.Prestige
	if playerWon {
		fameGain = sf.Prestige * 3
		if sf.IsMainEvent {
			fameGain += 10
		}
	}
	rankingChange := 2
	if playerWon {
		rankingChange = -int(math.Ceil(float64(sf.Prestige) / 3))
	}

	winnerID, loserID := f1.ID, f2.ID
	if !playerWon {
		winnerID, loserID = f2.ID, f1.ID
	}

	metrics.Get().IncrFightsSimulated()

	return fight.Outcome{
		FightID:        sf.ID,
		WinnerID:       winnerID,
		LoserID:        loserID,
		Result:         result,
		Rounds:         rounds,
		FinalRound:     finalRound,
		Earnings:       earnings,
		InjuryToPlayer: injury,
		RankingChange:  rankingChange,
		FameGain:       fameGain,
	}
}

func (s *Simulator) calculateEarnings(sf fight.ScheduledFight, f fighter.Fighter, won bool) fight.Earnings {
	basePurse := sf.BasePurse
	winBonus := 0
	if won {
		winBonus = basePurse / 2
	}

	// PPV only pays on main events: $50 per buy, cut by the fighter's points.
	ppvRevenue := 0
	if sf.IsMainEvent {
		ppvBuys := int(50000 + f.Fame*1000 + s.rng.Float()*20000)
		ppvRevenue = ppvBuys * 50 * sf.PPVPoints / 100
	}

	gateTotal := sf.Prestige*10000 + s.rng.Intn(20000)
	ticketRevenue := gateTotal * sf.TicketRevenueSplit / 100

	sponsorBonuses := 0
	if won {
		sponsorBonuses = sf.Prestige * 200
	}

	medicalCosts := s.rng.Between(500, 2000)
	if won {
		medicalCosts = s.rng.Between(100, 500)
	}

	total := basePurse + winBonus + ppvRevenue + ticketRevenue + sponsorBonuses - medicalCosts

	return fight.Earnings{
		BasePurse:      basePurse,
		WinBonus:       winBonus,
		PPVRevenue:     ppvRevenue,
		TicketRevenue:  ticketRevenue,
		SponsorBonuses: sponsorBonuses,
		MedicalCosts:   medicalCosts,
		Total:          total,
	}
}
