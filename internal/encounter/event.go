package encounter

// EventKind identifies what an Event reports.
type EventKind int

const (
	// EventScene opens a scene; renderers set it apart from what came before.
	EventScene EventKind = iota
	// EventNarration is a plain line of story text.
	EventNarration
	// EventDamage reports damage taken and the resulting health.
	EventDamage
	// EventGold reports gold collected and the resulting total.
	EventGold
	// EventSpend reports gold paid and the resulting total.
	EventSpend
	// EventHeal reports health restored by an item.
	EventHeal
	// EventFullHealth reports that an item had nothing to restore.
	EventFullHealth
	// EventRefused reports a bargain that could not be paid for.
	EventRefused
)

// String returns a human-readable kind name.
func (k EventKind) String() string {
	switch k {
	case EventScene:
		return "scene"
	case EventNarration:
		return "narration"
	case EventDamage:
		return "damage"
	case EventGold:
		return "gold"
	case EventSpend:
		return "spend"
	case EventHeal:
		return "heal"
	case EventFullHealth:
		return "full_health"
	case EventRefused:
		return "refused"
	default:
		return "unknown"
	}
}

// Event is one step of narration or one state change produced by an encounter.
// Health and Gold hold the player's values after the event.
type Event struct {
	Kind   EventKind
	Text   string
	Amount int
	Health int
	Gold   int
}

// Outcome contains everything an encounter did to the player.
type Outcome struct {
	Events    []Event
	Damage    int // Health actually lost
	Gold      int // Gold gained
	Spent     int // Gold paid
	Healed    int // Health actually restored
	Purchased bool
}
