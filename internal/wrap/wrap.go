// Package wrap implements the function-wrapping exercise: a higher-order
// utility that surrounds a zero-argument procedure with before and after
// actions.
package wrap

import (
	"fmt"
	"io"
)

// Proc is a zero-argument procedure
type Proc func()

// Wrap returns a procedure that runs before, then p, then after, in that
// order on the caller's goroutine. A panic inside p propagates unchanged;
// after is then not executed.
func Wrap(p Proc, before, after func()) Proc {
	return func() {
		if before != nil {
			before()
		}
		p()
		if after != nil {
			after()
		}
	}
}

// Announce wraps p so that entry and exit markers for name are written to w
func Announce(w io.Writer, name string, p Proc) Proc {
	return Wrap(p,
		func() { fmt.Fprintf(w, "--> %s\n", name) },
		func() { fmt.Fprintf(w, "<-- %s\n", name) },
	)
}
