package explain

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphtutor/traversal"
)

// DefaultTimeout bounds one provider attempt.
const DefaultTimeout = 10 * time.Second

var errEmptyReply = errors.New("explain: empty reply")

// Tutor applies the fallback contract on top of a Gateway: exactly one
// attempt per call, bounded by a timeout, and local text on any failure.
type Tutor struct {
	gw      Gateway
	timeout time.Duration
	logger  *slog.Logger
	tracer  trace.Tracer
}

// TutorOption customizes a Tutor.
type TutorOption func(*Tutor)

// WithTimeout bounds each provider call. Non-positive values keep the default.
func WithTimeout(d time.Duration) TutorOption {
	return func(t *Tutor) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithLogger sets the logger for fallback records. Panics on nil.
func WithLogger(l *slog.Logger) TutorOption {
	if l == nil {
		panic("explain: WithLogger(nil)")
	}
	return func(t *Tutor) {
		t.logger = l
	}
}

// NewTutor wraps gw; a nil gw behaves as Unconfigured.
func NewTutor(gw Gateway, opts ...TutorOption) *Tutor {
	if gw == nil {
		gw = Unconfigured{}
	}
	t := &Tutor{
		gw:      gw,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		tracer:  otel.Tracer("graphtutor/explain"),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Configured reports whether a real provider backs the Tutor.
func (t *Tutor) Configured() bool {
	_, none := t.gw.(Unconfigured)

	return !none
}

// ExplainStep explains one snapshot, falling back to DefaultExplanation.
func (t *Tutor) ExplainStep(ctx context.Context, alg traversal.Algorithm, snap traversal.Snapshot, stepIndex, totalSteps int) string {
	ctx, span := t.tracer.Start(ctx, "explain.ExplainStep", trace.WithAttributes(
		attribute.String("algorithm", alg.String()),
		attribute.Int("step.index", stepIndex),
		attribute.Int("step.total", totalSteps),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.gw.ExplainStep(ctx, alg, snap, stepIndex, totalSteps)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyReply
	}
	if err != nil {
		t.fallback(ctx, span, "explain step", err)
		return DefaultExplanation(alg, snap)
	}
	span.SetAttributes(attribute.Bool("fallback", false))

	return text
}

// Chat answers question given the prior history and, when state is non-nil,
// the algorithm state the learner is looking at. Only the last MaxHistory
// messages of history are forwarded.
func (t *Tutor) Chat(ctx context.Context, history []Message, question string, alg traversal.Algorithm, state *traversal.Snapshot) string {
	ctx, span := t.tracer.Start(ctx, "explain.Chat", trace.WithAttributes(
		attribute.String("algorithm", alg.String()),
		attribute.Int("history.len", len(history)),
		attribute.Bool("state", state != nil),
	))
	defer span.End()

	msgs := TruncateHistory(history)
	if state != nil {
		msgs = append(msgs, StateMessage(*state))
	}
	msgs = append(msgs, Message{Role: RoleUser, Content: question})

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.gw.Chat(ctx, msgs, alg)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyReply
	}
	if err != nil {
		t.fallback(ctx, span, "chat", err)
		return DefaultChatResponse(alg)
	}
	span.SetAttributes(attribute.Bool("fallback", false))

	return text
}

// fallback records a degraded call. The unconfigured case is expected and
// logged at debug level.
func (t *Tutor) fallback(ctx context.Context, span trace.Span, op string, err error) {
	span.SetAttributes(attribute.Bool("fallback", true))
	span.RecordError(err)
	span.SetStatus(codes.Error, op+" fell back to local text")

	level := slog.LevelWarn
	if !t.Configured() {
		level = slog.LevelDebug
	}
	t.logger.Log(ctx, level, "explain: using local fallback", "op", op, "error", err)
}
