package randaccess

import (
	"github.com/Pure-Company/randaccess/bulk"
)

// Driver is the lazy form of the callback-taking mutations. The caller
// pulls one element at a time with Next and answers it with Send; the
// container changes only in response to Send, so a caller that stops
// early leaves it mutated up to the last answered element.
//
// A Driver must not be used concurrently with other mutations of the
// same container.
//
// Example:
//
//	d, _ := a.RejectDriver()
//	for d.Next() {
//	    d.Send(d.Value()%2 == 0)
//	}
//	err := d.Err()
type Driver[T, R any] struct {
	n       int
	step    int
	index   int
	value   T
	pending bool
	done    bool
	err     error

	fetch  func(step int) (pos int, v T, err error)
	commit func(step, pos int, v T, r R) error
	finish func() error
}

// Next advances to the next element. It returns false when every element
// was handed out or an error occurred.
func (d *Driver[T, R]) Next() bool {
	if d.done || d.err != nil {
		return false
	}
	if d.step >= d.n {
		d.done = true
		if d.finish != nil {
			d.err = d.finish()
		}
		return false
	}
	pos, v, err := d.fetch(d.step)
	if err != nil {
		d.err = err
		return false
	}
	d.index, d.value, d.pending = pos, v, true
	d.step++
	return true
}

// Index returns the current position of the element returned by Value.
func (d *Driver[T, R]) Index() int {
	return d.index
}

// Value returns the current element.
func (d *Driver[T, R]) Value() T {
	return d.value
}

// Send answers the current element. An unanswered element is left as
// it is.
func (d *Driver[T, R]) Send(r R) error {
	if !d.pending {
		return argumentErrorf("send", "no pending element")
	}
	d.pending = false
	if err := d.commit(d.step-1, d.index, d.value, r); err != nil {
		d.err = err
		return err
	}
	return nil
}

// Err returns the first error met while driving.
func (d *Driver[T, R]) Err() error {
	return d.err
}

// Run answers every element with fn.
func (d *Driver[T, R]) Run(fn func(v T) R) error {
	for d.Next() {
		if err := d.Send(fn(d.Value())); err != nil {
			return err
		}
	}
	return d.Err()
}

// ============================================================================
// Drivers of Accessible
// ============================================================================

// CollectDriver replaces every element with the value sent for it.
func (a *Accessible[T]) CollectDriver() (*Driver[T, T], error) {
	n, err := a.Readable.size("collectDriver")
	if err != nil {
		return nil, err
	}
	return &Driver[T, T]{
		n: n,
		fetch: func(step int) (int, T, error) {
			v, err := a.read(step)
			return step, v, err
		},
		commit: func(_, pos int, _ T, r T) error {
			return a.write(pos, r)
		},
	}, nil
}

// RejectDriver removes every element answered with true.
func (a *Accessible[T]) RejectDriver() (*Driver[T, bool], error) {
	return a.filterDriver("rejectDriver", true)
}

// KeepDriver keeps only the elements answered with true.
func (a *Accessible[T]) KeepDriver() (*Driver[T, bool], error) {
	return a.filterDriver("keepDriver", false)
}

func (a *Accessible[T]) filterDriver(op string, drop bool) (*Driver[T, bool], error) {
	n, err := a.Readable.size(op)
	if err != nil {
		return nil, err
	}
	deleted := 0
	return &Driver[T, bool]{
		n: n,
		fetch: func(step int) (int, T, error) {
			v, err := a.read(step - deleted)
			return step - deleted, v, err
		},
		commit: func(_, pos int, _ T, r bool) error {
			if r != drop {
				return nil
			}
			if _, err := a.Writable.remove(pos); err != nil {
				return err
			}
			deleted++
			return nil
		},
	}, nil
}

// SortByDriver sorts the elements by the keys sent for them. The
// container is rewritten once, after the last element was answered;
// stopping early leaves it untouched.
func (a *Accessible[T]) SortByDriver() (*Driver[T, any], error) {
	vals, err := a.Readable.materialize("sortByDriver")
	if err != nil {
		return nil, err
	}
	keys := make([]any, len(vals))
	answered := make([]bool, len(vals))
	return &Driver[T, any]{
		n: len(vals),
		fetch: func(step int) (int, T, error) {
			return step, vals[step], nil
		},
		commit: func(step, _ int, _ T, r any) error {
			keys[step] = r
			answered[step] = true
			return nil
		},
		finish: func() error {
			for i, ok := range answered {
				if !ok {
					return argumentErrorf("sortByDriver", "no key sent for position %d", i)
				}
			}
			sorted, err := bulk.SortByKeys(vals, keys, a.Readable.compareKeys)
			if err != nil {
				return sortError("sortByDriver", err)
			}
			_, err = a.Replace(sorted)
			return err
		},
	}, nil
}
