package encounter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/refuge/internal/entity"
	"github.com/samdwyer/refuge/internal/gamedata"
)

func loadDefs(t *testing.T) (*gamedata.EncounterRegistry, entity.Item) {
	t.Helper()
	registry, err := gamedata.LoadEncounterRegistry()
	require.NoError(t, err)
	potion := entity.ItemFromDef(registry.Items().GetByID("health_potion"))
	return registry, potion
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestResolveForest(t *testing.T) {
	registry, potion := loadDefs(t)
	r := NewResolver(nil)
	p := entity.NewPlayer("Ada")

	out := r.Resolve(context.Background(), registry.GetByID("forest"), p, potion, DecisionDecline)

	assert.Equal(t, 75, p.Health())
	assert.Equal(t, 40, p.Gold())
	assert.Equal(t, 25, out.Damage)
	assert.Equal(t, 40, out.Gold)
	assert.Equal(t,
		[]EventKind{EventDamage, EventNarration, EventNarration, EventGold},
		kinds(out.Events))

	last := out.Events[len(out.Events)-1]
	assert.Equal(t, 40, last.Amount)
	assert.Equal(t, 40, last.Gold)
}

func TestResolveMountainTwice(t *testing.T) {
	registry, potion := loadDefs(t)
	r := NewResolver(FixedRoller{})
	p := entity.NewPlayer("Steve")
	def := registry.GetByID("mountain")

	r.Resolve(context.Background(), def, p, potion, DecisionDecline)
	assert.Equal(t, entity.Stats{Health: 65, Gold: 60}, p.Snapshot())

	r.Resolve(context.Background(), def, p, potion, DecisionDecline)
	assert.Equal(t, entity.Stats{Health: 30, Gold: 120}, p.Snapshot())
}

func TestResolveHazardNoRewardWhenKilled(t *testing.T) {
	registry, potion := loadDefs(t)
	r := NewResolver(nil)
	p := entity.NewPlayer("Steve")
	p.TakeDamage(80)

	out := r.Resolve(context.Background(), registry.GetByID("mountain"), p, potion, DecisionDecline)

	assert.Equal(t, 0, p.Health())
	assert.Equal(t, 0, p.Gold())
	assert.Equal(t, 20, out.Damage, "only the remaining health is lost")
	assert.Equal(t, []EventKind{EventDamage}, kinds(out.Events))
	assert.Equal(t, 35, out.Events[0].Amount, "reported damage is the hit, not the clamped loss")
}

func TestResolveVillage(t *testing.T) {
	registry, potion := loadDefs(t)
	def := registry.GetByID("village")

	t.Run("accept with enough gold", func(t *testing.T) {
		p := entity.NewPlayer("Steve")
		p.CollectGold(20)

		out := NewResolver(nil).Resolve(context.Background(), def, p, potion, DecisionAccept)

		assert.Equal(t, 100, p.Gold())
		assert.Equal(t, 100, p.Health())
		assert.True(t, out.Purchased)
		assert.Equal(t, 20, out.Spent)
		assert.Equal(t, []EventKind{EventSpend, EventNarration, EventGold}, kinds(out.Events))
		assert.Contains(t, out.Events[1].Text, "chest containing 100 gold")
	})

	t.Run("accept without enough gold", func(t *testing.T) {
		p := entity.NewPlayer("Steve")
		p.CollectGold(19)

		out := NewResolver(nil).Resolve(context.Background(), def, p, potion, DecisionAccept)

		assert.Equal(t, entity.Stats{Health: 100, Gold: 19}, p.Snapshot())
		assert.False(t, out.Purchased)
		assert.Equal(t, []EventKind{EventRefused}, kinds(out.Events))
	})

	t.Run("decline meets the thief", func(t *testing.T) {
		p := entity.NewPlayer("Steve")

		out := NewResolver(nil).Resolve(context.Background(), def, p, potion, DecisionDecline)

		assert.Equal(t, entity.Stats{Health: 90, Gold: 0}, p.Snapshot())
		assert.Equal(t, []EventKind{EventNarration, EventDamage}, kinds(out.Events))
		assert.Contains(t, out.Events[0].Text, "thief")
	})
}

func TestResolvePotion(t *testing.T) {
	registry, potion := loadDefs(t)
	def := registry.GetByID("potion")
	r := NewResolver(nil)

	t.Run("heal is capped at full health", func(t *testing.T) {
		p := entity.NewPlayer("Steve")
		p.TakeDamage(40)

		out := r.Resolve(context.Background(), def, p, potion, DecisionDecline)

		assert.Equal(t, 100, p.Health())
		assert.Equal(t, 40, out.Healed)
		require.Len(t, out.Events, 1)
		assert.Equal(t, EventHeal, out.Events[0].Kind)
		assert.Equal(t, 100, out.Events[0].Health)
	})

	t.Run("full health is a no-op", func(t *testing.T) {
		p := entity.NewPlayer("Steve")
		p.CollectGold(7)

		out := r.Resolve(context.Background(), def, p, potion, DecisionDecline)

		assert.Equal(t, entity.Stats{Health: 100, Gold: 7}, p.Snapshot())
		assert.Equal(t, 0, out.Healed)
		require.Len(t, out.Events, 1)
		assert.Equal(t, EventFullHealth, out.Events[0].Kind)
		assert.Equal(t, "You are already at full health.", out.Events[0].Text)
	})
}

func TestIntroDoesNotTouchPlayer(t *testing.T) {
	registry, _ := loadDefs(t)
	r := NewResolver(nil)

	events := r.Intro(registry.GetByID("village"))
	require.Len(t, events, 2)
	assert.Equal(t, EventScene, events[0].Kind)
	assert.Equal(t, EventNarration, events[1].Kind)

	assert.Empty(t, r.Intro(registry.GetByID("potion")))
	assert.Nil(t, r.Intro(nil))
}

func TestRandRollerIsReproducible(t *testing.T) {
	r1 := NewRandRoller(12345)
	r2 := NewRandRoller(12345)

	for i := 0; i < 50; i++ {
		v1 := r1.Roll(25, 10)
		v2 := r2.Roll(25, 10)
		assert.Equal(t, v1, v2)
		assert.GreaterOrEqual(t, v1, 15)
		assert.LessOrEqual(t, v1, 35)
	}
}

func TestRandRollerEdges(t *testing.T) {
	r := NewRandRoller(1)

	assert.Equal(t, 20, r.Roll(20, 0), "no spread keeps the base")
	assert.Equal(t, 0, r.Roll(0, 10), "zero base stays zero")
	for i := 0; i < 50; i++ {
		assert.GreaterOrEqual(t, r.Roll(2, 10), 1)
	}
}

func TestVarianceKeepsInvariants(t *testing.T) {
	registry, potion := loadDefs(t)
	r := NewResolver(NewRandRoller(99))
	p := entity.NewPlayer("Steve")

	for i := 0; i < 200 && p.IsAlive(); i++ {
		def := registry.All()[i%registry.Count()]
		r.Resolve(context.Background(), &def, p, potion, Decision(i%2))
		assert.GreaterOrEqual(t, p.Health(), 0)
		assert.LessOrEqual(t, p.Health(), entity.MaxHealth)
		assert.GreaterOrEqual(t, p.Gold(), 0)
	}
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input string
		want  Decision
	}{
		{"yes", DecisionAccept},
		{"YES", DecisionAccept},
		{"  Yes \n", DecisionAccept},
		{"y", DecisionDecline},
		{"no", DecisionDecline},
		{"", DecisionDecline},
		{"yes please", DecisionDecline},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDecision(tt.input), "ParseDecision(%q)", tt.input)
	}
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "damage", EventDamage.String())
	assert.Equal(t, "full_health", EventFullHealth.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}
