package report

import (
	"context"
	"fmt"
	"io"
)

// Section renders one report block. Sections are pure readers of the
// snapshot: no section mutates it or depends on another section's output.
type Section interface {
	Name() string
	Render(ctx context.Context, snap *Snapshot, w io.Writer) error
}

// lineWriter prints report lines and keeps the first write error, so
// sections don't need a check after every line.
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) printf(format string, args ...interface{}) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintf(l.w, format, args...)
}
