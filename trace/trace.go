// Package trace logs every primitive call a randaccess trait makes on a
// container.
//
// The traits themselves never log. Wrap a container before handing it to
// randaccess.New to see which primitives an operation decomposes into:
//
//	logger := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	a := randaccess.New[int](trace.Wrap[int](containers.NewSlice(1, 2, 3), logger))
//	a.Unshift(0) // logs one insertAt event
package trace

import (
	"github.com/rs/zerolog"

	"github.com/Pure-Company/randaccess"
)

// Wrap returns a binding of c that logs each primitive call on logger:
// at debug level when it succeeds and at warn level with the error when
// it fails. The capability set of c is preserved.
func Wrap[T any](c any, logger zerolog.Logger) randaccess.Funcs[T] {
	f := randaccess.FuncsOf[T](c)
	if read := f.ReadAtFunc; read != nil {
		f.ReadAtFunc = func(pos int) (T, error) {
			v, err := read(pos)
			event(logger, "readAt", err).Int("pos", pos).Interface("value", v).Msg("primitive call")
			return v, err
		}
	}
	if count := f.CountFunc; count != nil {
		f.CountFunc = func() int {
			n := count()
			logger.Debug().Str("primitive", "count").Int("count", n).Msg("primitive call")
			return n
		}
	}
	if write := f.WriteAtFunc; write != nil {
		f.WriteAtFunc = func(pos int, v T) error {
			err := write(pos, v)
			event(logger, "writeAt", err).Int("pos", pos).Interface("value", v).Msg("primitive call")
			return err
		}
	}
	if expand := f.ExpandFunc; expand != nil {
		f.ExpandFunc = func(n int) error {
			err := expand(n)
			event(logger, "expand", err).Int("n", n).Msg("primitive call")
			return err
		}
	}
	if shrink := f.ShrinkFunc; shrink != nil {
		f.ShrinkFunc = func(n int) error {
			err := shrink(n)
			event(logger, "shrink", err).Int("n", n).Msg("primitive call")
			return err
		}
	}
	if insert := f.InsertAtFunc; insert != nil {
		f.InsertAtFunc = func(pos int, v T) error {
			err := insert(pos, v)
			event(logger, "insertAt", err).Int("pos", pos).Interface("value", v).Msg("primitive call")
			return err
		}
	}
	if del := f.DeleteAtFunc; del != nil {
		f.DeleteAtFunc = func(pos int) (T, error) {
			v, err := del(pos)
			event(logger, "deleteAt", err).Int("pos", pos).Interface("value", v).Msg("primitive call")
			return v, err
		}
	}
	return f
}

func event(logger zerolog.Logger, primitive string, err error) *zerolog.Event {
	if err != nil {
		return logger.Warn().Err(err).Str("primitive", primitive)
	}
	return logger.Debug().Str("primitive", primitive)
}
