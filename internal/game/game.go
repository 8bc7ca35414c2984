package game

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/refuge/internal/encounter"
	"github.com/samdwyer/refuge/internal/entity"
	"github.com/samdwyer/refuge/internal/gamedata"
	"github.com/samdwyer/refuge/internal/logger"
	"github.com/samdwyer/refuge/internal/report"
	"github.com/samdwyer/refuge/internal/telemetry"
	"github.com/samdwyer/refuge/internal/ui"
)

// Result describes a finished game.
type Result struct {
	State   State
	Name    string
	Stats   entity.Stats
	Turns   int
	Summary string
	// SaveErr is set when the summary could not be persisted. It does not
	// change anything else about the result.
	SaveErr error
}

// Game wires a session to the text interface and the result reporter.
type Game struct {
	cfg      Config
	console  *ui.Console
	renderer *ui.Renderer
	registry *gamedata.EncounterRegistry
	menu     *Menu
	resolver *encounter.Resolver
	reporter report.Reporter
}

// New creates a new game reading answers from in and writing narration to out.
func New(cfg Config, registry *gamedata.EncounterRegistry, in io.Reader, out io.Writer, reporter report.Reporter) (*Game, error) {
	if registry == nil {
		return nil, errors.New("game: nil encounter registry")
	}
	if reporter == nil {
		return nil, errors.New("game: nil reporter")
	}
	if cfg.DefaultName == "" {
		cfg.DefaultName = DefaultConfig().DefaultName
	}

	console := ui.NewConsole(in, out)
	return &Game{
		cfg:      cfg,
		console:  console,
		renderer: ui.NewRenderer(console),
		registry: registry,
		menu:     NewMenu(registry),
		resolver: encounter.NewResolver(newRoller(cfg)),
		reporter: reporter,
	}, nil
}

func newRoller(cfg Config) encounter.Roller {
	if !cfg.Variance {
		return encounter.FixedRoller{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return encounter.NewRandRoller(seed)
}

// Run plays one session to a terminal state and reports the result.
// Running out of input ends the session as a quit, as does cancelling ctx;
// cancellation is checked between turns and does not interrupt a pending read.
func (g *Game) Run(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("game")

	initCtx, initSpan := tracer.Start(ctx, "game.init")
	g.renderer.Welcome(g.cfg.DefaultName)
	name := g.readName(initCtx)

	session, err := NewSession(name, g.registry, g.resolver)
	if err != nil {
		initSpan.End()
		return Result{}, err
	}
	ctx = logger.WithSessionID(ctx, session.ID())
	initSpan.SetAttributes(
		attribute.String("session_id", session.ID()),
		attribute.Int("encounters", g.registry.Count()),
		attribute.Bool("variance", g.cfg.Variance),
	)
	initSpan.End()
	logger.FromContext(ctx).Info("session started", "player", name, "variance", g.cfg.Variance)

	for !session.State().IsTerminal() {
		if !g.playTurn(ctx, session) {
			session.Abandon()
		}
	}

	return g.finish(ctx, session), nil
}

func (g *Game) readName(ctx context.Context) string {
	line, err := g.console.Prompt(g.renderer.NamePrompt())
	if err != nil && !errors.Is(err, io.EOF) {
		logger.FromContext(ctx).Warn("reading name failed", "error", err)
	}
	if name := strings.TrimSpace(line); name != "" {
		return name
	}
	return g.cfg.DefaultName
}

// playTurn shows the menu and handles one answer. It returns false when
// input has run out or ctx is done.
func (g *Game) playTurn(ctx context.Context, s *Session) bool {
	if err := ctx.Err(); err != nil {
		logger.FromContext(ctx).Warn("context done, ending session", "error", err)
		return false
	}

	line, err := g.console.Prompt(g.renderer.Menu(g.menu.Items()))
	if err != nil {
		g.inputEnded(ctx, err)
		return false
	}

	choice, err := g.menu.Parse(line)
	switch {
	case errors.Is(err, ErrEmptyInput):
		g.renderer.EmptyInput()
		return true
	case err != nil:
		g.renderer.InvalidChoice()
		return true
	}

	turn, err := s.Apply(ctx, choice)
	if err != nil {
		logger.FromContext(ctx).Warn("choice rejected", "choice", choice.Key, "error", err)
		return true
	}
	name := s.Player().Name()
	g.renderer.Events(name, turn.Events)

	if turn.Prompt == "" {
		return true
	}

	// A missing answer declines the bargain; the next menu read ends the game.
	answer, err := g.console.Prompt(turn.Prompt)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.FromContext(ctx).Warn("reading decision failed", "error", err)
	}
	turn, err = s.Decide(ctx, encounter.ParseDecision(answer))
	if err != nil {
		logger.FromContext(ctx).Warn("decision rejected", "error", err)
		return true
	}
	g.renderer.Events(name, turn.Events)
	return true
}

func (g *Game) inputEnded(ctx context.Context, err error) {
	if errors.Is(err, io.EOF) {
		logger.FromContext(ctx).Info("input closed, ending session")
		return
	}
	logger.FromContext(ctx).Warn("reading choice failed, ending session", "error", err)
}

// finish prints the farewell for the terminal state and persists the summary.
func (g *Game) finish(ctx context.Context, s *Session) Result {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.end")
	defer span.End()

	p := s.Player()
	if s.State() == StateDead {
		g.renderer.Died()
	} else {
		g.renderer.Survived(p.Name())
	}

	res := Result{
		State:   s.State(),
		Name:    p.Name(),
		Stats:   p.Snapshot(),
		Turns:   s.Turns(),
		Summary: report.Summary(p.Name(), p.Snapshot()),
	}
	g.renderer.Summary(res.Summary)

	if err := g.reporter.Save(ctx, res.Summary); err != nil {
		res.SaveErr = err
		logger.FromContext(ctx).Warn("saving result failed", "error", err)
		g.renderer.SaveFailed(err)
	} else {
		g.renderer.Saved(g.reporter.Location())
	}

	span.SetAttributes(
		attribute.String("outcome", res.State.String()),
		attribute.Int("turns", res.Turns),
		attribute.Int("health", res.Stats.Health),
		attribute.Int("gold", res.Stats.Gold),
		attribute.Bool("saved", res.SaveErr == nil),
	)
	logger.FromContext(ctx).Info("session ended",
		"outcome", res.State.String(),
		"turns", res.Turns,
		"health", res.Stats.Health,
		"gold", res.Stats.Gold,
	)
	return res
}
