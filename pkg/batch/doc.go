// Package batch runs record validation over an ordered sequence of raw
// records and partitions them into accepted and rejected records.
//
// A batch never fails as a whole. Every input record ends up in exactly one
// bucket: Accepted (normalized records) or Failures (identifier, kind and
// reason). Recognized validation failures keep their validator.Kind. Any
// other error, or a panic raised while validating a record, is recorded as
// validator.KindUnexpected with an "unexpected error: ..." reason and logged
// at ERROR level so real bugs are not mistaken for bad data.
//
// Both buckets preserve input order. With WithConcurrency(n), records are
// validated n at a time through pkg/async and results are written back by
// index, so the output is identical to a sequential run.
//
// # Usage
//
//	p := batch.New(record.New(reference.Default()), batch.WithLogger(log))
//	res := p.Process(ctx, records)
//	fmt.Println(res.AcceptedCount(), res.FailedCount(), res.Total())
package batch
