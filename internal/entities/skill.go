package entities

import "github.com/KirkDiggler/cultivation-api/internal/spiritroot"

// SkillType categorizes what a skill does
type SkillType string

// Skill types
const (
	SkillAttack  SkillType = "attack"
	SkillDefense SkillType = "defense"
	SkillSupport SkillType = "support"
	SkillControl SkillType = "control"
)

// Skill is a technique a player can use in combat
type Skill struct {
	ID          string
	Name        string
	Type        SkillType
	Element     spiritroot.Element
	Level       int // 1-5
	Proficiency int // 0-100
	BaseDamage  int64
	MPCost      int64
}
