package gamedata

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNoEncounters  = errors.New("no encounters defined")
	ErrDuplicate     = errors.New("duplicate definition")
	ErrUnknownKind   = errors.New("unknown encounter kind")
	ErrUnknownItem   = errors.New("unknown item")
	ErrMissingPrompt = errors.New("bargain encounter without prompt")
	ErrReservedKey   = errors.New("menu key reserved for quit")
)

// QuitKey returns the menu key that follows count encounters.
func QuitKey(count int) string {
	return strconv.Itoa(count + 1)
}

// ItemRegistry holds loaded item definitions.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) (*ItemRegistry, error) {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef, len(items)),
		all:   items,
	}
	for i := range items {
		if _, ok := registry.items[items[i].ID]; ok {
			return nil, fmt.Errorf("item %q: %w", items[i].ID, ErrDuplicate)
		}
		registry.items[items[i].ID] = &items[i]
	}
	return registry, nil
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// Count returns the number of items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// EncounterRegistry
// =============================================================================

// EncounterRegistry holds encounter definitions in menu order.
type EncounterRegistry struct {
	byID  map[string]*EncounterDef
	byKey map[string]*EncounterDef
	all   []EncounterDef
	items *ItemRegistry
}

// NewEncounterRegistry validates encounter definitions against the item
// registry and indexes them by ID and menu key.
func NewEncounterRegistry(encounters []EncounterDef, items *ItemRegistry) (*EncounterRegistry, error) {
	if len(encounters) == 0 {
		return nil, ErrNoEncounters
	}

	registry := &EncounterRegistry{
		byID:  make(map[string]*EncounterDef, len(encounters)),
		byKey: make(map[string]*EncounterDef, len(encounters)),
		all:   encounters,
		items: items,
	}
	quitKey := QuitKey(len(encounters))
	for i := range encounters {
		def := &encounters[i]
		if !def.Kind.Valid() {
			return nil, fmt.Errorf("encounter %q: %w %q", def.ID, ErrUnknownKind, def.Kind)
		}
		if _, ok := registry.byID[def.ID]; ok {
			return nil, fmt.Errorf("encounter id %q: %w", def.ID, ErrDuplicate)
		}
		if def.Key == quitKey {
			return nil, fmt.Errorf("encounter %q key %q: %w", def.ID, def.Key, ErrReservedKey)
		}
		if _, ok := registry.byKey[def.Key]; ok {
			return nil, fmt.Errorf("encounter key %q: %w", def.Key, ErrDuplicate)
		}
		if def.Kind == KindBargain && def.Prompt == "" {
			return nil, fmt.Errorf("encounter %q: %w", def.ID, ErrMissingPrompt)
		}
		if def.Kind == KindPotion && (items == nil || items.GetByID(def.Item) == nil) {
			return nil, fmt.Errorf("encounter %q: %w %q", def.ID, ErrUnknownItem, def.Item)
		}
		registry.byID[def.ID] = def
		registry.byKey[def.Key] = def
	}
	return registry, nil
}

// LoadEncounterRegistry loads and creates a registry from the embedded encounters.yaml.
func LoadEncounterRegistry() (*EncounterRegistry, error) {
	file, err := LoadEncountersFile()
	if err != nil {
		return nil, err
	}
	return NewRegistryFromFile(file)
}

// NewRegistryFromFile builds item and encounter registries from a parsed file.
func NewRegistryFromFile(file EncountersFile) (*EncounterRegistry, error) {
	items, err := NewItemRegistry(file.Items)
	if err != nil {
		return nil, err
	}
	return NewEncounterRegistry(file.Encounters, items)
}

// MustLoadEncounterRegistry loads a registry, panicking on error.
func MustLoadEncounterRegistry() *EncounterRegistry {
	registry, err := LoadEncounterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the encounter with the given ID, or nil if not found.
func (r *EncounterRegistry) GetByID(id string) *EncounterDef {
	return r.byID[id]
}

// GetByKey returns the encounter bound to a menu key, or nil if not found.
func (r *EncounterRegistry) GetByKey(key string) *EncounterDef {
	return r.byKey[key]
}

// Items returns the item registry encounters were validated against.
func (r *EncounterRegistry) Items() *ItemRegistry {
	return r.items
}

// All returns all encounter definitions in menu order.
func (r *EncounterRegistry) All() []EncounterDef {
	return r.all
}

// Count returns the number of encounters in the registry.
func (r *EncounterRegistry) Count() int {
	return len(r.all)
}
