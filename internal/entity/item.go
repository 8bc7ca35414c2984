package entity

import "github.com/samdwyer/refuge/internal/gamedata"

// Item is an immutable carried object such as a potion.
type Item struct {
	ID    string
	Name  string
	Value int // Magnitude of the item's effect
}

// NewItem creates an item.
func NewItem(id, name string, value int) Item {
	return Item{ID: id, Name: name, Value: value}
}

// ItemFromDef builds an item from its data definition.
func ItemFromDef(def *gamedata.ItemDef) Item {
	if def == nil {
		return Item{}
	}
	return NewItem(def.ID, def.Name, def.Value)
}
