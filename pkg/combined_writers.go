package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every Write out to all targets. A failing target
// does not stop the others, their errors get combined.
type CombinedWriter struct {
	targets []io.Writer
}

func NewCombinedWriter(targets ...io.Writer) *CombinedWriter {
	return &CombinedWriter{targets: targets}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.targets {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
