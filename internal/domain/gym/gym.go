// Package gym defines the player's facility and its hired staff.
package gym

// StaffRole identifies one of the four independent hires.
type StaffRole string

const (
	RoleTrainer      StaffRole = "trainer"      // +training effectiveness
	RoleCutman       StaffRole = "cutman"       // reduces fight injuries
	RoleNutritionist StaffRole = "nutritionist" // faster daily healing
	RoleScout        StaffRole = "scout"        // +scouting range
)

// StaffRoles lists every hireable role.
var StaffRoles = []StaffRole{RoleTrainer, RoleCutman, RoleNutritionist, RoleScout}

// Staff tracks which roles are on payroll.
type Staff struct {
	Trainer      bool `json:"trainer" yaml:"trainer"`
	Cutman       bool `json:"cutman" yaml:"cutman"`
	Nutritionist bool `json:"nutritionist" yaml:"nutritionist"`
	Scout        bool `json:"scout" yaml:"scout"`
}

// Hired reports whether the given role is on payroll.
func (s Staff) Hired(role StaffRole) bool {
	switch role {
	case RoleTrainer:
		return s.Trainer
	case RoleCutman:
		return s.Cutman
	case RoleNutritionist:
		return s.Nutritionist
	case RoleScout:
		return s.Scout
	}
	return false
}

// Hire marks the given role as on payroll.
func (s *Staff) Hire(role StaffRole) {
	switch role {
	case RoleTrainer:
		s.Trainer = true
	case RoleCutman:
		s.Cutman = true
	case RoleNutritionist:
		s.Nutritionist = true
	case RoleScout:
		s.Scout = true
	}
}

// HiredRoles returns the roles currently on payroll.
func (s Staff) HiredRoles() []StaffRole {
	var roles []StaffRole
	for _, r := range StaffRoles {
		if s.Hired(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

// State is the gym at a moment in time.
type State struct {
	Level       int   `json:"level"`      // 1-5, indexes the upgrade ladder
	Reputation  int   `json:"reputation"` // 0-100
	Equipment   int   `json:"equipment"`  // 0-100
	Rent        int   `json:"rent"`       // weekly cost
	MaxFighters int   `json:"max_fighters"`
	Staff       Staff `json:"staff"`
}

// MaxLevel is the top of the upgrade ladder.
const MaxLevel = 5
