package sim

import "strings"

// Commentary template pools. {attacker} and {defender} are filled with
// fighter names when a line is emitted.

var strikeHitLines = []string{
	"{attacker} lands a CRISP jab!",
	"{attacker} connects with a heavy right hand!",
	"{attacker} throws a spinning back fist — IT LANDS!",
	"{attacker} lights up {defender} with a combo!",
	"{attacker} snaps {defender}'s head back with an uppercut!",
	"{attacker} lands a body shot that echoes through the arena!",
}

var strikeMissLines = []string{
	"{attacker} swings wild and misses!",
	"{defender} slips the punch beautifully!",
	"{attacker} throws leather but hits nothing but air!",
	"{defender} makes {attacker} look silly with the head movement!",
}

var grappleSuccessLines = []string{
	"{attacker} scores a HUGE takedown!",
	"{attacker} drags {defender} to the mat!",
	"{attacker} gets the clinch and trips {defender}!",
	"{attacker} shoots in — double leg! They're on the ground!",
}

var grappleFailLines = []string{
	"{attacker} shoots for a takedown — STUFFED!",
	"{defender} sprawls and stays on their feet!",
	"{attacker} can't get the clinch, {defender} shrugs it off!",
}

var koLines = []string{
	"{attacker} DROPS {defender}! IT'S ALL OVER!",
	"TIMBER! {defender} goes down like a sack of potatoes!",
	"{attacker} puts {defender}'s lights OUT! What a shot!",
	"OH! {defender} is STIFF! The ref waves it off!",
}

var tkoLines = []string{
	"{defender} can't continue! The ref steps in and waves it off!",
	"{attacker} pours it on and the referee has seen ENOUGH!",
	"{defender}'s corner throws in the towel! It's over!",
	"The doctor takes one look at {defender} and stops the fight!",
}

var subLines = []string{
	"{attacker} sinks in the choke! {defender} taps!",
	"{attacker} locks up the armbar — {defender} has no choice but to tap!",
	"Triangle choke by {attacker}! {defender} is going to sleep!",
}

var tauntLines = []string{
	"{attacker} does a little dance. The crowd loves it.",
	"{attacker} points at the camera and winks.",
	"{attacker} flexes after landing that combo.",
	"{attacker} trash-talks {defender}. Bold strategy.",
}

func fillTemplate(template, attacker, defender string) string {
	out := strings.ReplaceAll(template, "{attacker}", attacker)
	return strings.ReplaceAll(out, "{defender}", defender)
}
