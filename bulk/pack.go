package bulk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrPack indicates a template that cannot be applied to the items.
var ErrPack = errors.New("bulk: pack")

// Pack encodes items into a binary string following template. Supported
// directives:
//
//	C c   8-bit unsigned / signed integer
//	n N   16 / 32-bit unsigned, big endian
//	v V   16 / 32-bit unsigned, little endian
//	a A   string, NUL / space padded to the count
//
// A directive may be followed by a count or '*' (all remaining items for
// integers, the whole string for a and A). Whitespace is ignored.
func Pack(items []any, template string) ([]byte, error) {
	var out []byte
	next := 0
	for i := 0; i < len(template); {
		d := template[i]
		i++
		if d == ' ' || d == '\t' || d == '\n' {
			continue
		}

		count, star, explicit := 1, false, false
		if i < len(template) && template[i] == '*' {
			star = true
			i++
		} else {
			j := i
			for j < len(template) && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			if j > i {
				count, _ = strconv.Atoi(template[i:j])
				explicit = true
				i = j
			}
		}

		switch d {
		case 'a', 'A':
			if next >= len(items) {
				return nil, fmt.Errorf("%w: too few arguments", ErrPack)
			}
			s, err := packString(items[next])
			if err != nil {
				return nil, err
			}
			next++
			width := count
			if star {
				width = len(s)
			} else if !explicit {
				width = 1
			}
			pad := byte(0)
			if d == 'A' {
				pad = ' '
			}
			for k := 0; k < width; k++ {
				if k < len(s) {
					out = append(out, s[k])
				} else {
					out = append(out, pad)
				}
			}
		case 'C', 'c', 'n', 'N', 'v', 'V':
			if star {
				count = len(items) - next
			}
			for k := 0; k < count; k++ {
				if next >= len(items) {
					return nil, fmt.Errorf("%w: too few arguments", ErrPack)
				}
				v, err := packInt(items[next])
				if err != nil {
					return nil, err
				}
				next++
				switch d {
				case 'C', 'c':
					out = append(out, byte(v))
				case 'n':
					out = binary.BigEndian.AppendUint16(out, uint16(v))
				case 'N':
					out = binary.BigEndian.AppendUint32(out, uint32(v))
				case 'v':
					out = binary.LittleEndian.AppendUint16(out, uint16(v))
				case 'V':
					out = binary.LittleEndian.AppendUint32(out, uint32(v))
				}
			}
		default:
			return nil, fmt.Errorf("%w: unknown directive %q", ErrPack, d)
		}
	}
	return out, nil
}

func packString(v any) ([]byte, error) {
	switch s := v.(type) {
	case string:
		return []byte(s), nil
	case []byte:
		return s, nil
	}
	return nil, fmt.Errorf("%w: no implicit conversion of %T into String", ErrPack, v)
}

func packInt(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	}
	return 0, fmt.Errorf("%w: no implicit conversion of %T into Integer", ErrPack, v)
}
