package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/jongchichi12/convenience-store-system/pkg/logger"
)

// Engine runs the six report sections in fixed order against one snapshot,
// writing the report text to the sink.
type Engine struct {
	snap      *Snapshot
	sections  []Section
	sink      io.Writer
	logger    logger.Logger
	started   *atomic.Bool
	processed *atomic.Int64
}

// NewEngine builds an engine with the standard section order.
func NewEngine(snap *Snapshot, sink io.Writer, log logger.Logger) *Engine {
	return &Engine{
		snap:      snap,
		sections:  defaultSections(),
		sink:      sink,
		logger:    log,
		started:   atomic.NewBool(false),
		processed: atomic.NewInt64(0),
	}
}

// defaultSections is the fixed report order. Section order is part of the
// output contract, so this is a slice, not a registry map.
func defaultSections() []Section {
	return []Section{
		lowStockSection{},
		expirySection{},
		topSellerSection{},
		salesSummarySection{},
		analyticsSection{},
		totalsSection{},
	}
}

// Run renders all sections once. A second call is rejected: the engine is
// bound to a single snapshot and a single pass over the sink.
func (e *Engine) Run(ctx context.Context) error {
	if !e.started.CAS(false, true) {
		return errors.New("report engine already ran")
	}

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, "run_id", runID)

	e.logger.Infof(ctx, "[Engine] report run started, products: %d, sales entries: %d",
		len(e.snap.Products), len(e.snap.Sales))

	lw := &lineWriter{w: e.sink}
	lw.printf("========================================\n")
	lw.printf("  🏪 편의점 일일 재고 리포트 (%s)\n", e.snap.Today.Format("2006-01-02"))
	lw.printf("========================================\n")
	if lw.err != nil {
		return fmt.Errorf("write report header: %w", lw.err)
	}

	for _, section := range e.sections {
		sctx := context.WithValue(ctx, "section", section.Name())
		start := time.Now()

		if err := section.Render(sctx, e.snap, e.sink); err != nil {
			e.logger.Errorf(sctx, "[Engine] section failed: %s, err: %v", section.Name(), err)
			return fmt.Errorf("render section %s: %w", section.Name(), err)
		}

		e.processed.Inc()
		e.logger.Debugf(sctx, "[Engine] section done: %s, duration: %v",
			section.Name(), time.Since(start))
	}

	e.logger.Infof(ctx, "[Engine] report run complete, sections: %d", e.processed.Load())
	return nil
}

// Stats returns how many sections have completed.
func (e *Engine) Stats() int64 {
	return e.processed.Load()
}
