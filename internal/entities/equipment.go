package entities

// EquipmentQuality is the grade of a piece of equipment
type EquipmentQuality string

// Equipment grades from lowest to highest
const (
	EquipmentMortal   EquipmentQuality = "mortal"
	EquipmentSpirit   EquipmentQuality = "spirit"
	EquipmentTreasure EquipmentQuality = "treasure"
	EquipmentImmortal EquipmentQuality = "immortal"
	EquipmentDivine   EquipmentQuality = "divine"
	EquipmentDao      EquipmentQuality = "dao"
	EquipmentChaos    EquipmentQuality = "chaos"
)

// MaxEnhanceLevel caps equipment enhancement
const MaxEnhanceLevel = 20

// Equipment is an item that contributes to a player's power score
type Equipment struct {
	ID           string
	Name         string
	Quality      EquipmentQuality
	EnhanceLevel int
	Attack       int64
	Defense      int64
	HPBonus      int64
	MPBonus      int64
	Equipped     bool
}

// TotalAttack includes the +10% per enhancement level
func (e Equipment) TotalAttack() int64 {
	return enhanced(e.Attack, e.EnhanceLevel)
}

// TotalDefense includes the +10% per enhancement level
func (e Equipment) TotalDefense() int64 {
	return enhanced(e.Defense, e.EnhanceLevel)
}

func enhanced(base int64, level int) int64 {
	return base + base*int64(level)/10
}
