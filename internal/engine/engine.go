// Package engine is the hosting runtime around the pure reduction and
// composition pipeline: a bounded worker pool, a hot-swappable notification
// plan, and per-event metrics. The core transformation itself carries no
// state, so events are processed in parallel without coordination.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gyaneshwarpardhi/paynotify/internal/config"
	"github.com/gyaneshwarpardhi/paynotify/internal/filter"
	"github.com/gyaneshwarpardhi/paynotify/internal/metrics"
	"github.com/gyaneshwarpardhi/paynotify/internal/notify"
	"github.com/gyaneshwarpardhi/paynotify/internal/reduce"
	"github.com/gyaneshwarpardhi/paynotify/internal/slackblock"
	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

// Result is the outcome of processing a single raw payload.
type Result struct {
	ResultID   string              `json:"result_id"`
	EventID    string              `json:"event_id,omitempty"`
	Category   stripe.Category     `json:"category,omitempty"`
	DurationMs int64               `json:"duration_ms"`
	Canonical  *stripe.Event       `json:"canonical,omitempty"`
	Display    *slackblock.Message `json:"display,omitempty"`
	Notified   bool                `json:"notified"`
	Error      string              `json:"error,omitempty"`
}

// compiledRule is a notify rule with its expression parsed once.
type compiledRule struct {
	id   string
	expr filter.Expr
}

// plan is the immutable, compiled view of the notify config.
type plan struct {
	notify *config.NotifyConf
	rules  map[string][]compiledRule // category → rules covering it
}

// buildPlan compiles the notify rules. The config must already be validated;
// a rule that still fails to parse is skipped.
func buildPlan(cfg *config.PipelineConfig) *plan {
	p := &plan{
		notify: &cfg.Notify,
		rules:  make(map[string][]compiledRule),
	}
	cats := append([]stripe.Category{}, stripe.Categories...)
	cats = append(cats, stripe.CategoryUnhandled)
	for _, c := range cats {
		for _, r := range cfg.Notify.RulesFor(string(c)) {
			expr, err := filter.Parse(r.Expression)
			if err != nil {
				continue
			}
			p.rules[string(c)] = append(p.rules[string(c)], compiledRule{id: r.ID, expr: expr})
		}
	}
	return p
}

// Engine processes raw webhook payloads through reduce → filter → compose.
type Engine struct {
	plan atomic.Pointer[plan]
	pool *workerPool[*eventWork, *Result]
	conf *config.EngineConf
}

type eventWork struct {
	raw     []byte
	resultC chan *Result
}

// New creates an Engine using conf and starts the worker pool.
func New(ctx context.Context, cfg *config.PipelineConfig) *Engine {
	e := &Engine{conf: &cfg.Engine}
	e.plan.Store(buildPlan(cfg))

	e.pool = newWorkerPool[*eventWork, *Result](
		ctx,
		cfg.Engine.EventWorkers,
		cfg.Engine.QueueDepth,
		func(ctx context.Context, w *eventWork) (*Result, error) {
			res := e.processEvent(w.raw)
			if w.resultC != nil {
				w.resultC <- res
			}
			return res, nil
		},
	)

	return e
}

// SwapConfig atomically replaces the notify plan (used on hot-reload).
func (e *Engine) SwapConfig(cfg *config.PipelineConfig) {
	e.plan.Store(buildPlan(cfg))
}

// ProcessSync processes a raw payload synchronously and returns the result.
func (e *Engine) ProcessSync(ctx context.Context, raw []byte) (*Result, error) {
	resultC := make(chan *Result, 1)
	w := &eventWork{raw: raw, resultC: resultC}

	timeout := time.Duration(e.conf.EventTimeoutMs) * time.Millisecond
	if !e.pool.Submit(w) {
		metrics.EventsDropped.Inc()
		return nil, fmt.Errorf("event queue full (capacity %d)", e.conf.QueueDepth)
	}
	metrics.EventsEnqueued.Inc()

	select {
	case res := <-resultC:
		return res, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("event processing timeout after %v", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ProcessAsync enqueues a raw payload for background processing. Returns
// false if the queue is full.
func (e *Engine) ProcessAsync(raw []byte) bool {
	w := &eventWork{raw: raw}
	if !e.pool.Submit(w) {
		metrics.EventsDropped.Inc()
		return false
	}
	metrics.EventsEnqueued.Inc()
	return true
}

// QueueUtilization returns queue used / capacity (0–1).
func (e *Engine) QueueUtilization() float64 {
	if e.pool.QueueCap() == 0 {
		return 0
	}
	return float64(e.pool.QueueLen()) / float64(e.pool.QueueCap())
}

func (e *Engine) processEvent(raw []byte) *Result {
	start := time.Now()
	result := &Result{ResultID: uuid.New().String()}

	ev, err := reduce.Reduce(raw)
	if err != nil {
		metrics.EventsRejected.Inc()
		result.Error = err.Error()
		result.DurationMs = time.Since(start).Milliseconds()
		return result
	}

	result.EventID = ev.ID
	result.Category = ev.Category
	result.Canonical = ev
	metrics.EventsReduced.WithLabelValues(string(ev.Category)).Inc()

	if e.shouldNotify(ev) {
		msg := notify.Compose(ev)
		result.Display = &msg
		result.Notified = true
		metrics.NotificationsComposed.WithLabelValues(string(ev.Category)).Inc()
	}

	result.DurationMs = time.Since(start).Milliseconds()
	metrics.EventProcessingDuration.Observe(float64(result.DurationMs))
	return result
}

// shouldNotify applies the notify plan: the category must be enabled, and
// when rules cover the category at least one filter must match.
func (e *Engine) shouldNotify(ev *stripe.Event) bool {
	p := e.plan.Load()
	if !p.notify.CategoryEnabled(string(ev.Category)) {
		metrics.NotificationsSkipped.WithLabelValues("disabled").Inc()
		return false
	}
	rules := p.rules[string(ev.Category)]
	if len(rules) == 0 {
		return true
	}
	for _, r := range rules {
		if filter.Match(r.expr, ev) {
			return true
		}
	}
	metrics.NotificationsSkipped.WithLabelValues("filtered").Inc()
	return false
}

// Shutdown drains the pool gracefully.
func (e *Engine) Shutdown() {
	e.pool.Drain()
}
