// Package entity provides the player character and the items it carries.
package entity

import (
	"errors"
	"fmt"
)

// MaxHealth is both the starting and the maximum health of a player.
const MaxHealth = 100

// ErrInsufficientGold is returned by Spend when the player cannot afford a cost.
var ErrInsufficientGold = errors.New("insufficient gold")

// Stats is a read-only snapshot of a player's mutable attributes.
type Stats struct {
	Health int
	Gold   int
}

// Player is the single adventurer of a session.
// Health stays in [0, MaxHealth] and gold never drops below zero; all
// mutation goes through the methods below.
type Player struct {
	name   string
	health int
	gold   int
}

// NewPlayer creates a player at full health with no gold.
func NewPlayer(name string) *Player {
	return &Player{
		name:   name,
		health: MaxHealth,
		gold:   0,
	}
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Health returns current health.
func (p *Player) Health() int { return p.health }

// Gold returns current gold.
func (p *Player) Gold() int { return p.gold }

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.health > 0 }

// Snapshot returns the player's current stats.
func (p *Player) Snapshot() Stats {
	return Stats{Health: p.health, Gold: p.gold}
}

// TakeDamage reduces health, clamped at zero, and returns the damage actually taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.health {
		actual = p.health
	}
	p.health -= actual
	return actual
}

// Heal restores health up to MaxHealth and returns the amount actually restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.health+actual > MaxHealth {
		actual = MaxHealth - p.health
	}
	p.health += actual
	return actual
}

// CollectGold adds gold and returns the new total. There is no ceiling.
func (p *Player) CollectGold(amount int) int {
	if amount > 0 {
		p.gold += amount
	}
	return p.gold
}

// Spend debits gold. Gold is left untouched when the player cannot pay.
func (p *Player) Spend(amount int) error {
	if amount < 0 {
		return fmt.Errorf("spend: negative amount %d", amount)
	}
	if p.gold < amount {
		return fmt.Errorf("spend %d with %d available: %w", amount, p.gold, ErrInsufficientGold)
	}
	p.gold -= amount
	return nil
}
