package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/refuge/internal/encounter"
	"github.com/samdwyer/refuge/internal/entity"
	"github.com/samdwyer/refuge/internal/gamedata"
	"github.com/samdwyer/refuge/internal/logger"
	"github.com/samdwyer/refuge/internal/telemetry"
)

var (
	ErrSessionOver       = errors.New("session is over")
	ErrDecisionPending   = errors.New("waiting for a decision")
	ErrNoDecisionPending = errors.New("no decision pending")
)

const quitNarration = "You have been arrested by local soldiers. Game over!"

// Turn is what one call to Apply or Decide produced.
type Turn struct {
	Events []encounter.Event
	State  State
	// Prompt is set when the encounter waits for a Decide call.
	Prompt string
}

// Session owns the player and the state of one game.
type Session struct {
	id       string
	player   *entity.Player
	items    *gamedata.ItemRegistry
	state    State
	resolver *encounter.Resolver
	pending  *gamedata.EncounterDef
	turns    int
}

// NewSession starts a session in StatePlaying with a fresh player.
// Items named by encounters are looked up in the registry's item registry.
func NewSession(name string, registry *gamedata.EncounterRegistry, resolver *encounter.Resolver) (*Session, error) {
	if registry == nil || registry.Items() == nil {
		return nil, errors.New("new session: registry without items")
	}
	if resolver == nil {
		resolver = encounter.NewResolver(nil)
	}
	return &Session{
		id:       logger.NewSessionID(),
		player:   entity.NewPlayer(name),
		items:    registry.Items(),
		state:    StatePlaying,
		resolver: resolver,
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Player returns the session's player.
func (s *Session) Player() *entity.Player { return s.player }

// Item returns the item an encounter uses, if it names one.
func (s *Session) Item(def *gamedata.EncounterDef) (entity.Item, bool) {
	if def == nil || def.Item == "" {
		return entity.Item{}, false
	}
	item := s.items.GetByID(def.Item)
	if item == nil {
		return entity.Item{}, false
	}
	return entity.ItemFromDef(item), true
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Turns returns the number of completed turns.
func (s *Session) Turns() int { return s.turns }

// Pending reports whether the session waits for Decide.
func (s *Session) Pending() bool { return s.pending != nil }

// Apply runs a menu choice.
//
// Quit moves to StateQuit. An encounter that needs no decision is resolved
// immediately; if it leaves the player at zero health the session moves to
// StateDead. A bargain only returns its intro and prompt; the session then
// waits for Decide.
func (s *Session) Apply(ctx context.Context, choice Choice) (Turn, error) {
	if s.state.IsTerminal() {
		return Turn{State: s.state}, ErrSessionOver
	}
	if s.pending != nil {
		return Turn{State: s.state, Prompt: s.pending.Prompt}, ErrDecisionPending
	}

	if choice.Quit {
		s.state = StateQuit
		s.turns++
		return Turn{
			Events: []encounter.Event{{Kind: encounter.EventNarration, Text: quitNarration}},
			State:  s.state,
		}, nil
	}

	def := choice.Encounter
	if def == nil {
		return Turn{State: s.state}, ErrInvalidChoice
	}

	intro := s.resolver.Intro(def)
	if def.NeedsDecision() {
		s.pending = def
		return Turn{Events: intro, State: s.state, Prompt: def.Prompt}, nil
	}

	turn := s.resolve(ctx, def, encounter.DecisionDecline)
	turn.Events = append(intro, turn.Events...)
	return turn, nil
}

// Decide answers the pending bargain and resolves it.
func (s *Session) Decide(ctx context.Context, decision encounter.Decision) (Turn, error) {
	if s.state.IsTerminal() {
		return Turn{State: s.state}, ErrSessionOver
	}
	if s.pending == nil {
		return Turn{State: s.state}, ErrNoDecisionPending
	}
	def := s.pending
	s.pending = nil
	return s.resolve(ctx, def, decision), nil
}

// Abandon ends a session that is still playing as a quit, without narration.
// Game.Run uses it when input runs out or its context is cancelled.
func (s *Session) Abandon() {
	if !s.state.IsTerminal() {
		s.pending = nil
		s.state = StateQuit
	}
}

func (s *Session) resolve(ctx context.Context, def *gamedata.EncounterDef, decision encounter.Decision) Turn {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.turn")
	defer span.End()

	item, _ := s.Item(def)
	out := s.resolver.Resolve(ctx, def, s.player, item, decision)
	s.turns++
	if !s.player.IsAlive() {
		s.state = StateDead
	}

	span.SetAttributes(
		attribute.String("session_id", s.id),
		attribute.Int("turn", s.turns),
		attribute.String("encounter", def.ID),
		attribute.String("state", s.state.String()),
	)
	logger.FromContext(ctx).Debug("turn resolved",
		"turn", s.turns,
		"encounter", def.ID,
		"decision", decision.String(),
		"health", s.player.Health(),
		"gold", s.player.Gold(),
		"state", s.state.String(),
	)

	return Turn{Events: out.Events, State: s.state}
}
