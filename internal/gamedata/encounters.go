package gamedata

// =============================================================================
// ENCOUNTER DATA
// =============================================================================
//
// Every menu entry except quit is an encounter. Encounters are data: the
// narration and the numbers live in encounters.yaml and the encounter package
// applies them to the player according to Kind.
//
// Baseline numbers (variance disabled):
//   forest   hazard   damage 25, reward 40
//   mountain hazard   damage 35, reward 60
//   village  bargain  cost 20, reward 100, damage 10 when declined
//   potion   potion   heals by the item value (50), capped at full health

// DefaultFile is the embedded file holding encounter and item definitions.
const DefaultFile = "encounters.yaml"

// EncounterKind selects how an encounter's numbers are applied.
type EncounterKind string

const (
	KindHazard  EncounterKind = "hazard"
	KindBargain EncounterKind = "bargain"
	KindPotion  EncounterKind = "potion"
)

// Valid reports whether k is a known kind.
func (k EncounterKind) Valid() bool {
	switch k {
	case KindHazard, KindBargain, KindPotion:
		return true
	default:
		return false
	}
}

// EncounterDef defines a menu encounter loaded from YAML.
type EncounterDef struct {
	ID     string        `yaml:"id"`     // Unique identifier (e.g., "forest")
	Key    string        `yaml:"key"`    // Menu key the player types (e.g., "1")
	Menu   string        `yaml:"menu"`   // Menu label
	Kind   EncounterKind `yaml:"kind"`   // How the numbers below are applied
	Intro  []string      `yaml:"intro"`  // Narration shown before anything happens
	Prompt string        `yaml:"prompt"` // Question asked before a bargain resolves

	Damage int    `yaml:"damage"` // Hazard damage, or thief damage for a declined bargain
	Reward int    `yaml:"reward"` // Gold gained on success
	Cost   int    `yaml:"cost"`   // Gold paid to accept a bargain
	Spread int    `yaml:"spread"` // Half-width of the variance roll
	Item   string `yaml:"item"`   // Item ID consumed by a potion encounter

	Success  []string `yaml:"success"`  // Narration when the reward is earned
	Refused  []string `yaml:"refused"`  // Narration when nothing can happen (no gold, full health)
	Declined []string `yaml:"declined"` // Narration when a bargain is declined
}

// NeedsDecision reports whether the encounter waits for an accept/decline answer.
func (e *EncounterDef) NeedsDecision() bool {
	return e.Kind == KindBargain
}

// ItemDef defines an item loaded from YAML.
type ItemDef struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// EncountersFile represents the structure of encounters.yaml.
type EncountersFile struct {
	Items      []ItemDef      `yaml:"items"`
	Encounters []EncounterDef `yaml:"encounters"`
}

// LoadEncountersFile loads the embedded encounter file.
func LoadEncountersFile() (EncountersFile, error) {
	return Load[EncountersFile](DefaultFile)
}
