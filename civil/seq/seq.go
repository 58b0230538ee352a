// Package seq iterates over civil time points and calendar intervals by
// repeatedly adding a fixed span to a starting point.
//
// An Iterator is a cursor: check Valid, read Current and Index, then call
// Next to advance. Reset rewinds it to the start. All adapts it to a
// range-over-func sequence:
//
//	it := seq.Days(types.NewDate(2012, 12, 20), seq.Before(types.NewDate(2012, 12, 25)))
//	for i, day := range it.All() {
//		fmt.Println(i, day)
//	}
//
// Each value is derived from the one before it, not from the start, so a
// monthly iterator starting on January 31 visits March 2 and then April 2
// in a leap year.
//
// Iterators are not safe for concurrent use.
package seq

import (
	"fmt"
	"iter"

	"github.com/theory/civiltime/civil/interval"
	"github.com/theory/civiltime/civil/types"
)

type boundKind int

const (
	unbounded boundKind = iota
	count
	before
	through
)

// Bound determines when an Iterator stops.
type Bound struct {
	kind  boundKind
	count int
	end   types.TimePoint
}

// Count returns a Bound that stops an iterator after n values. Zero or
// negative n yields no values.
func Count(n int) Bound { return Bound{kind: count, count: n} }

// Unbounded returns a Bound that never stops an iterator. Callers must limit
// consumption themselves.
func Unbounded() Bound { return Bound{kind: unbounded} }

// Before returns a Bound that stops an iterator once its current value is no
// longer before end.
func Before(end types.TimePoint) Bound { return Bound{kind: before, end: end} }

// Through returns a Bound that stops an iterator once its current value is
// after end.
func Through(end types.TimePoint) Bound { return Bound{kind: through, end: end} }

// String returns a description of the bound.
func (b Bound) String() string {
	switch b.kind {
	case count:
		return fmt.Sprintf("count %d", b.count)
	case before:
		return fmt.Sprintf("before %v", b.end)
	case through:
		return fmt.Sprintf("through %v", b.end)
	default:
		return "unbounded"
	}
}

// valid reports whether value at index falls within the bound.
func (b Bound) valid(index int, value types.TimePoint) bool {
	switch b.kind {
	case count:
		return index < b.count
	case before:
		return value.Compare(b.end) < 0
	case through:
		return value.Compare(b.end) <= 0
	default:
		return true
	}
}

// Iterator is a restartable cursor over values produced by adding step to a
// time point, converted to T.
type Iterator[T any] struct {
	start   types.TimePoint
	current types.TimePoint
	step    types.TimeSpan
	bound   Bound
	index   int
	convert func(types.TimePoint) T
}

func newIterator[T any](
	start types.TimePoint,
	step types.TimeSpan,
	bound Bound,
	convert func(types.TimePoint) T,
) *Iterator[T] {
	return &Iterator[T]{
		start:   start,
		current: start,
		step:    step,
		bound:   bound,
		convert: convert,
	}
}

func identity(tp types.TimePoint) types.TimePoint { return tp }

// NewTimeSpan returns an iterator that starts at start and adds step until
// bound stops it. Values have the same concrete type as start.
func NewTimeSpan(start types.TimePoint, step types.TimeSpan, bound Bound) *Iterator[types.TimePoint] {
	return newIterator(start, step, bound, identity)
}

// NewInterval returns an iterator that starts at the start of iv and adds
// step for as long as the value is before the end of iv. It never stops if
// step does not move toward the end.
func NewInterval(iv interval.Bounded, step types.TimeSpan) *Iterator[types.TimePoint] {
	return newIterator(iv.Start(), step, Before(iv.End()), identity)
}

// Valid returns true if the iterator has a current value.
func (it *Iterator[T]) Valid() bool { return it.bound.valid(it.index, it.current) }

// Current returns the current value. Its result is undefined when Valid
// returns false.
func (it *Iterator[T]) Current() T { return it.convert(it.current) }

// Index returns the zero-based index of the current value.
func (it *Iterator[T]) Index() int { return it.index }

// Next advances the iterator by one step.
func (it *Iterator[T]) Next() {
	it.current = it.step.ResolveToTimePoint(it.current)
	it.index++
}

// Reset rewinds the iterator to its start.
func (it *Iterator[T]) Reset() {
	it.current = it.start
	it.index = 0
}

// Step returns the span added at each step.
func (it *Iterator[T]) Step() types.TimeSpan { return it.step }

// Bound returns the bound that stops the iterator.
func (it *Iterator[T]) Bound() Bound { return it.bound }

// All resets the iterator and returns a sequence of its indexes and values.
// Consuming the sequence advances the iterator.
func (it *Iterator[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it.Reset(); it.Valid(); it.Next() {
			if !yield(it.index, it.Current()) {
				return
			}
		}
	}
}

// Values resets the iterator and returns a sequence of its values.
func (it *Iterator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range it.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Take resets the iterator and returns up to n of its values. It is the
// safe way to collect values from an Unbounded iterator.
func (it *Iterator[T]) Take(n int) []T {
	values := make([]T, 0, max(n, 0))
	for i, v := range it.All() {
		if i >= n {
			break
		}
		values = append(values, v)
	}
	return values
}
