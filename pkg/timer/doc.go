// Package timer provides thin, context-aware wrappers around the native
// time primitives: a one-shot Timer, a repeating Interval, and a Stopwatch
// for elapsed-time measurement.
//
// Timer and Interval each own a single goroutine that exits when the work
// is done, Stop is called, or the supplied context is cancelled, so they
// never leak. Callbacks run on that goroutine; keep them short or hand off
// to a worker.
//
// # Usage
//
//	import "github.com/dmitrymomot/typekit/pkg/timer"
//
//	t, err := timer.After(ctx, 5*time.Second, func() {
//	    session.Expire()
//	})
//	if err != nil {
//	    return err
//	}
//	defer t.Stop()
//
//	sw := timer.Start()
//	process(batch)
//	log.Printf("batch took %s", sw.Elapsed())
//
// # Error Handling
//
// Constructors validate their arguments up front and return sentinel
// errors (ErrNilCallback, ErrNegativeDelay, ErrNonPositiveInterval);
// nothing fails after construction. Panics inside callbacks propagate on
// the timer goroutine and are not recovered.
package timer
