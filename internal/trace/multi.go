package trace

import (
	"errors"
	"io"
)

// MultiTracer fans events out to several tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		// каждому свою копию: трассеры переписывают Seq
		cp := *ev
		tr.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Close() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// DumpRing writes the contents of the first ring tracer inside t, if any.
func DumpRing(t Tracer, w io.Writer, format Format) error {
	switch t := t.(type) {
	case *RingTracer:
		return t.Dump(w, format)
	case *MultiTracer:
		for _, inner := range t.tracers {
			if r, ok := inner.(*RingTracer); ok {
				return r.Dump(w, format)
			}
		}
	}
	return nil
}
