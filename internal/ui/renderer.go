package ui

import (
	"github.com/samdwyer/refuge/internal/encounter"
)

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Key   string
	Label string
}

// Renderer turns game events into the text the player reads.
type Renderer struct {
	console *Console
}

// NewRenderer creates a new renderer for the given console.
func NewRenderer(console *Console) *Renderer {
	return &Renderer{console: console}
}

// Welcome prints the opening banner.
func (r *Renderer) Welcome(defaultName string) {
	r.console.Println("Welcome to the Epic Text Adventure!")
	r.console.Printf("You are %s, a farmer in the Middle Ages who woke up far away from home.\n", defaultName)
}

// NamePrompt is shown when asking for the player's name.
func (r *Renderer) NamePrompt() string {
	return "Enter your name: "
}

// Menu prints the main menu and returns the prompt for the choice.
func (r *Renderer) Menu(items []MenuItem) string {
	r.console.Println()
	r.console.Println("You are lost and need to find a refuge before the sun comes down. Where will you go?")
	for _, item := range items {
		r.console.Printf("%s. %s\n", item.Key, item.Label)
	}
	if len(items) == 0 {
		return "Your choice: "
	}
	return "Your choice (" + items[0].Key + "-" + items[len(items)-1].Key + "): "
}

// EmptyInput prints the retry message for a blank answer.
func (r *Renderer) EmptyInput() {
	r.console.Println("No input detected. Please try again.")
}

// InvalidChoice prints the retry message for an unknown answer.
func (r *Renderer) InvalidChoice() {
	r.console.Println("Invalid choice. Please try again.")
}

// Events prints the events of one turn. name is the player's name.
func (r *Renderer) Events(name string, events []encounter.Event) {
	for _, ev := range events {
		r.Event(name, ev)
	}
}

// Event prints a single event.
func (r *Renderer) Event(name string, ev encounter.Event) {
	switch ev.Kind {
	case encounter.EventScene:
		r.console.Println()
		r.console.Println(ev.Text)
	case encounter.EventNarration, encounter.EventRefused, encounter.EventFullHealth:
		r.console.Println(ev.Text)
	case encounter.EventDamage:
		r.console.Printf("%s takes %d damage. Health: %d\n", name, ev.Amount, ev.Health)
	case encounter.EventGold:
		r.console.Printf("%s collects %d gold. Total gold: %d\n", name, ev.Amount, ev.Gold)
	case encounter.EventSpend:
		r.console.Printf("%s pays %d gold. Gold left: %d\n", name, ev.Amount, ev.Gold)
	case encounter.EventHeal:
		r.console.Printf("%s drinks a potion. Health restored to %d.\n", name, ev.Health)
	}
}

// Died prints the farewell for a player who ran out of health.
func (r *Renderer) Died() {
	r.console.Println()
	r.console.Println("You receive critical damage. You collapse and fade into darkness. Game Over!")
}

// Survived prints the farewell for a player who left the game alive.
func (r *Renderer) Survived(name string) {
	r.console.Println()
	r.console.Printf("Your adventure ends here, %s! Game Over!\n", name)
}

// Summary prints the final result line.
func (r *Renderer) Summary(summary string) {
	r.console.Println(summary)
}

// Saved confirms the result was persisted.
func (r *Renderer) Saved(location string) {
	r.console.Println()
	r.console.Printf("Game result saved to '%s'.\n", location)
}

// SaveFailed reports a persistence error without ending anything.
func (r *Renderer) SaveFailed(err error) {
	r.console.Printf("Error writing file: %v\n", err)
}
