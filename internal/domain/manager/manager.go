// Package manager defines the player character running the gym.
package manager

// Character is the manager the player created at game start. The four stats
// feed scouting range, scouting cost, contract length and fight offers.
type Character struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`

	Charisma    int `json:"charisma"`    // 1-10
	Negotiation int `json:"negotiation"` // 1-10
	Scouting    int `json:"scouting"`    // 1-10
	Connections int `json:"connections"` // 1-10
}
