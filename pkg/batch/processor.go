package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/recordkit/pkg/async"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/reference"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// RecordValidator validates a single record.
type RecordValidator interface {
	Validate(raw record.Raw) (record.Normalized, error)
}

// Processor validates batches of records.
type Processor struct {
	validator   RecordValidator
	log         *slog.Logger
	concurrency int
}

// New returns a Processor that delegates per-record validation to v.
func New(v RecordValidator, opts ...Option) *Processor {
	p := &Processor{
		validator:   v,
		log:         slog.New(slog.DiscardHandler),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(logger.Component("batch"))
	return p
}

// ValidateBatch validates records against tables with a sequential,
// non-logging processor.
func ValidateBatch(ctx context.Context, tables reference.Tables, records []record.Raw, opts ...record.Option) Result {
	return New(record.New(tables, opts...)).Process(ctx, records)
}

// outcome is the result for one record: either normalized or failure is set.
type outcome struct {
	normalized record.Normalized
	failure    *Failure
}

// Process validates every record and partitions the results. It never
// fails: len(Accepted)+len(Failures) always equals len(records).
func (p *Processor) Process(ctx context.Context, records []record.Raw) Result {
	start := time.Now()
	res := Result{
		BatchID:  uuid.NewString(),
		Accepted: make([]record.Normalized, 0, len(records)),
		Failures: make([]Failure, 0),
	}
	log := p.log.With(logger.BatchID(res.BatchID))

	for _, o := range p.run(ctx, log, records) {
		if o.failure != nil {
			res.Failures = append(res.Failures, *o.failure)
			continue
		}
		res.Accepted = append(res.Accepted, o.normalized)
	}

	log.InfoContext(ctx, "batch processed",
		logger.Counts(res.Total(), res.AcceptedCount(), res.FailedCount()),
		logger.Duration(time.Since(start)),
	)
	return res
}

func (p *Processor) run(ctx context.Context, log *slog.Logger, records []record.Raw) []outcome {
	outcomes := make([]outcome, len(records))

	if p.concurrency < 2 || len(records) < 2 {
		for i, raw := range records {
			outcomes[i] = p.validate(ctx, log, i, raw)
		}
		return outcomes
	}

	results := async.Map(ctx, records, p.concurrency, func(ctx context.Context, i int, raw record.Raw) (outcome, error) {
		return p.validate(ctx, log, i, raw), nil
	})
	for i, r := range results {
		if r.Err != nil {
			outcomes[i] = outcome{failure: p.unexpected(ctx, log, i, records[i], r.Err)}
			continue
		}
		outcomes[i] = r.Value
	}
	return outcomes
}

// validate runs the record validator on one record and converts its error or
// panic into a Failure.
func (p *Processor) validate(ctx context.Context, log *slog.Logger, index int, raw record.Raw) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			o = outcome{failure: p.unexpected(ctx, log, index, raw, fmt.Errorf("panic: %v", r))}
		}
	}()

	n, err := p.validator.Validate(raw)
	if err == nil {
		return outcome{normalized: n}
	}

	ve, ok := validator.ExtractValidationError(err)
	if !ok || !ve.Kind.Recognized() {
		return outcome{failure: p.unexpected(ctx, log, index, raw, err)}
	}

	f := &Failure{
		Index:  index,
		ID:     record.ID(raw, index),
		Kind:   ve.Kind,
		Reason: err.Error(),
		Record: raw,
	}
	log.DebugContext(ctx, "record rejected",
		logger.RecordIndex(index),
		logger.RecordID(f.ID),
		logger.Kind(string(f.Kind)),
		logger.Reason(f.Reason),
	)
	return outcome{failure: f}
}

func (p *Processor) unexpected(ctx context.Context, log *slog.Logger, index int, raw record.Raw, err error) *Failure {
	f := &Failure{
		Index:  index,
		ID:     record.ID(raw, index),
		Kind:   validator.KindUnexpected,
		Reason: "unexpected error: " + err.Error(),
		Record: raw,
	}
	log.ErrorContext(ctx, "unexpected error while validating record",
		logger.RecordIndex(index),
		logger.RecordID(f.ID),
		logger.Error(err),
	)
	return f
}
