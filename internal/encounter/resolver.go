// Package encounter resolves menu encounters against the player.
package encounter

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/refuge/internal/entity"
	"github.com/samdwyer/refuge/internal/gamedata"
	"github.com/samdwyer/refuge/internal/telemetry"
)

// Resolver applies encounter definitions to a player.
type Resolver struct {
	roller Roller
}

// NewResolver creates a resolver. A nil roller means FixedRoller.
func NewResolver(roller Roller) *Resolver {
	if roller == nil {
		roller = FixedRoller{}
	}
	return &Resolver{roller: roller}
}

// Intro returns the narration that opens an encounter. It does not touch the
// player, so callers can show it before asking for a decision.
func (r *Resolver) Intro(def *gamedata.EncounterDef) []Event {
	if def == nil {
		return nil
	}
	events := make([]Event, 0, len(def.Intro))
	for i, line := range def.Intro {
		kind := EventNarration
		if i == 0 {
			kind = EventScene
		}
		events = append(events, Event{Kind: kind, Text: line})
	}
	return events
}

// Resolve applies an encounter to the player and returns what happened.
// The decision is only consulted for bargains and the item only for potions.
// Intro narration is not included.
func (r *Resolver) Resolve(ctx context.Context, def *gamedata.EncounterDef, player *entity.Player, item entity.Item, decision Decision) Outcome {
	if def == nil || player == nil {
		return Outcome{}
	}

	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.resolve")
	defer span.End()

	var out Outcome
	switch def.Kind {
	case gamedata.KindHazard:
		out = r.resolveHazard(def, player)
	case gamedata.KindBargain:
		out = r.resolveBargain(def, player, decision)
	case gamedata.KindPotion:
		out = r.resolvePotion(def, player, item)
	}

	span.SetAttributes(
		attribute.String("encounter", def.ID),
		attribute.String("decision", decision.String()),
		attribute.Int("damage", out.Damage),
		attribute.Int("gold", out.Gold),
		attribute.Int("spent", out.Spent),
		attribute.Int("healed", out.Healed),
		attribute.Int("health_after", player.Health()),
		attribute.Int("gold_after", player.Gold()),
	)
	return out
}

// resolveHazard: damage, then the reward if the player is still standing.
func (r *Resolver) resolveHazard(def *gamedata.EncounterDef, player *entity.Player) Outcome {
	var out Outcome
	r.damage(&out, player, r.roller.Roll(def.Damage, def.Spread))
	if player.IsAlive() {
		narrate(&out, def.Success)
		r.reward(&out, player, r.roller.Roll(def.Reward, def.Spread))
	}
	return out
}

// resolveBargain: pay and collect, fail to pay, or decline and take damage.
func (r *Resolver) resolveBargain(def *gamedata.EncounterDef, player *entity.Player, decision Decision) Outcome {
	var out Outcome
	if decision != DecisionAccept {
		narrate(&out, def.Declined)
		r.damage(&out, player, r.roller.Roll(def.Damage, def.Spread))
		return out
	}

	if err := player.Spend(def.Cost); err != nil {
		if !errors.Is(err, entity.ErrInsufficientGold) {
			return out
		}
		for _, line := range def.Refused {
			out.Events = append(out.Events, Event{
				Kind:   EventRefused,
				Text:   line,
				Amount: def.Cost,
				Health: player.Health(),
				Gold:   player.Gold(),
			})
		}
		return out
	}

	out.Spent = def.Cost
	out.Purchased = true
	out.Events = append(out.Events, Event{
		Kind:   EventSpend,
		Amount: def.Cost,
		Health: player.Health(),
		Gold:   player.Gold(),
	})
	narrate(&out, def.Success)
	r.reward(&out, player, r.roller.Roll(def.Reward, def.Spread))
	return out
}

// resolvePotion restores health by the item value, capped at full health.
func (r *Resolver) resolvePotion(def *gamedata.EncounterDef, player *entity.Player, potion entity.Item) Outcome {
	var out Outcome
	if player.Health() >= entity.MaxHealth {
		text := ""
		if len(def.Refused) > 0 {
			text = def.Refused[0]
		}
		out.Events = append(out.Events, Event{
			Kind:   EventFullHealth,
			Text:   text,
			Health: player.Health(),
			Gold:   player.Gold(),
		})
		return out
	}

	out.Healed = player.Heal(potion.Value)
	out.Events = append(out.Events, Event{
		Kind:   EventHeal,
		Text:   potion.Name,
		Amount: out.Healed,
		Health: player.Health(),
		Gold:   player.Gold(),
	})
	return out
}

func (r *Resolver) damage(out *Outcome, player *entity.Player, amount int) {
	out.Damage += player.TakeDamage(amount)
	out.Events = append(out.Events, Event{
		Kind:   EventDamage,
		Amount: amount,
		Health: player.Health(),
		Gold:   player.Gold(),
	})
}

func (r *Resolver) reward(out *Outcome, player *entity.Player, amount int) {
	player.CollectGold(amount)
	out.Gold += amount
	out.Events = append(out.Events, Event{
		Kind:   EventGold,
		Amount: amount,
		Health: player.Health(),
		Gold:   player.Gold(),
	})
}

func narrate(out *Outcome, lines []string) {
	for _, line := range lines {
		out.Events = append(out.Events, Event{Kind: EventNarration, Text: line})
	}
}
