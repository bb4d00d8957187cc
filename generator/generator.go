package generator

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 20 * time.Second

// Generator produces mantras and oracle readings, from the configured LLM when
// one is available and from deterministic templates otherwise. Generation
// never fails: provider errors are absorbed into the fallback.
type Generator struct {
	llm     LLMClient
	timeout time.Duration
	logger  *zap.Logger
	metrics *Metrics
	now     func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// WithClock overrides the clock used to date mantras.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New builds a Generator. A nil llm selects fallback-only mode.
func New(llm LLMClient, opts ...Option) *Generator {
	g := &Generator{
		llm:     llm,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ProviderEnabled reports whether an LLM client is configured.
func (g *Generator) ProviderEnabled() bool {
	return g.llm != nil
}

// Mantra generates the daily mantra for req.
func (g *Generator) Mantra(ctx context.Context, req MantraRequest) MantraResult {
	res := MantraResult{
		Mood:  req.Mood,
		Stage: req.Stage,
		Theme: req.Theme,
		Date:  g.now().UTC().Format(time.DateOnly),
	}

	c := g.call(ctx, KindMantra, BuildMantraPrompt(req))
	if c.OK() {
		res.Text, res.Meaning = ParseMantra(c.Content)
		res.Source = SourceLLM
	} else {
		g.logFallback(KindMantra, req.UserID, c)
		res.Text, res.Meaning = FallbackMantra(req)
		res.Source = SourceFallback
	}
	g.metrics.observeResult(KindMantra, res.Source)
	return res
}

// Oracle interprets req.Prompt. Callers are expected to reject empty prompts.
func (g *Generator) Oracle(ctx context.Context, req OracleRequest) OracleResult {
	var res OracleResult

	c := g.call(ctx, KindOracle, BuildOraclePrompt(req))
	if c.OK() {
		res.Interpretation = ParseOracle(c.Content)
		res.References = cloneRefs(llmOracleRefs)
		res.Source = SourceLLM
	} else {
		g.logFallback(KindOracle, req.UserID, c)
		res.Interpretation, res.References = FallbackOracle()
		res.Source = SourceFallback
	}
	g.metrics.observeResult(KindOracle, res.Source)
	return res
}

// call detaches from the caller's cancellation; the timeout is the only bound.
func (g *Generator) call(ctx context.Context, kind Kind, prompt Prompt) Completion {
	c := complete(context.WithoutCancel(ctx), g.llm, prompt, g.timeout)
	if g.llm != nil {
		g.metrics.observeCall(kind, c)
	}
	return c
}

func (g *Generator) logFallback(kind Kind, userID string, c Completion) {
	if errors.Is(c.Err, ErrNoProvider) {
		g.logger.Debug("llm disabled, using fallback",
			zap.String("kind", string(kind)),
			zap.String("userID", userID),
		)
		return
	}
	g.logger.Warn("llm call failed, using fallback",
		zap.String("kind", string(kind)),
		zap.String("userID", userID),
		zap.Duration("duration", c.Duration),
		zap.Error(c.Err),
	)
}
