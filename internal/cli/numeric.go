package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/numrange/bound"
	"github.com/katalvlaran/numrange/sample"
)

// width runs the numeric subcommands for one concrete type.
type width interface {
	seq(out io.Writer, start, final, step string) error
	admit(out io.Writer, start, final, value string) error
	draw(out io.Writer, s *sample.Sampler, min, max string, count int) error
}

// kind implements width for T.
type kind[T bound.Number] struct{}

// widthNames lists the accepted --type values in display order.
var widthNames = []string{"int8", "int16", "int32", "int64", "float32", "float64"}

var widths = map[string]width{
	"int8":    kind[int8]{},
	"int16":   kind[int16]{},
	"int32":   kind[int32]{},
	"int64":   kind[int64]{},
	"float32": kind[float32]{},
	"float64": kind[float64]{},
}

func lookupWidth(name string) (width, error) {
	w, ok := widths[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (want %s)", name, strings.Join(widthNames, ", "))
	}

	return w, nil
}

func bitSize[T bound.Number]() int {
	var zero T
	switch any(zero).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32, float32:
		return 32
	}

	return 64
}

// parse reads s as a T, naming the argument in the error.
func parse[T bound.Number](name, s string) (T, error) {
	if bound.IsIntegral[T]() {
		v, err := strconv.ParseInt(s, 10, bitSize[T]())
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return T(v), nil
	}

	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return T(v), nil
}

func format[T bound.Number](v T) string {
	if bound.IsIntegral[T]() {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}

func (kind[T]) seq(out io.Writer, start, final, step string) error {
	b, err := parseBound[T](start, final)
	if err != nil {
		return err
	}
	st, err := parse[T]("step", step)
	if err != nil {
		return err
	}

	// Values are printed as they are produced; Last surfaces the bound and
	// step errors that ValuesStep would swallow.
	if _, _, err := b.Last(st); err != nil {
		return err
	}
	for v := range b.ValuesStep(st) {
		if _, err := fmt.Fprintln(out, format(v)); err != nil {
			return err
		}
	}

	return nil
}

func (kind[T]) admit(out io.Writer, start, final, value string) error {
	b, err := parseBound[T](start, final)
	if err != nil {
		return err
	}
	v, err := parse[T]("value", value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, b.Admit(v))

	return err
}

func (kind[T]) draw(out io.Writer, s *sample.Sampler, min, max string, count int) error {
	lo, err := parse[T]("min", min)
	if err != nil {
		return err
	}
	hi, err := parse[T]("max", max)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		v, err := sample.Between(s, lo, hi)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, format(v)); err != nil {
			return err
		}
	}

	return nil
}

func parseBound[T bound.Number](start, final string) (bound.Bound[T], error) {
	s, err := parse[T]("start", start)
	if err != nil {
		return bound.Bound[T]{}, err
	}
	f, err := parse[T]("final", final)
	if err != nil {
		return bound.Bound[T]{}, err
	}

	return bound.New(s, f), nil
}
