package game

import (
	"errors"
	"strings"

	"github.com/samdwyer/refuge/internal/gamedata"
	"github.com/samdwyer/refuge/internal/ui"
)

var (
	ErrEmptyInput    = errors.New("no input")
	ErrInvalidChoice = errors.New("invalid choice")
)

const quitLabel = "Quit the adventure."

// Choice is a parsed menu selection: either an encounter or quit.
type Choice struct {
	Key       string
	Encounter *gamedata.EncounterDef // nil when Quit
	Quit      bool
}

// Menu lists the encounters in registry order followed by quit.
type Menu struct {
	registry *gamedata.EncounterRegistry
	quitKey  string
}

// NewMenu builds the menu. Quit takes the number after the last encounter.
func NewMenu(registry *gamedata.EncounterRegistry) *Menu {
	return &Menu{
		registry: registry,
		quitKey:  gamedata.QuitKey(registry.Count()),
	}
}

// QuitKey returns the key that ends the session.
func (m *Menu) QuitKey() string { return m.quitKey }

// Items returns the menu entries for display.
func (m *Menu) Items() []ui.MenuItem {
	items := make([]ui.MenuItem, 0, m.registry.Count()+1)
	for _, def := range m.registry.All() {
		items = append(items, ui.MenuItem{Key: def.Key, Label: def.Menu})
	}
	return append(items, ui.MenuItem{Key: m.quitKey, Label: quitLabel})
}

// Parse turns a raw input line into a Choice. Surrounding whitespace is
// ignored; blank input returns ErrEmptyInput and anything that is not a
// menu key returns ErrInvalidChoice.
func (m *Menu) Parse(input string) (Choice, error) {
	key := strings.TrimSpace(input)
	if key == "" {
		return Choice{}, ErrEmptyInput
	}
	if key == m.quitKey {
		return Choice{Key: key, Quit: true}, nil
	}
	if def := m.registry.GetByKey(key); def != nil {
		return Choice{Key: key, Encounter: def}, nil
	}
	return Choice{}, ErrInvalidChoice
}
