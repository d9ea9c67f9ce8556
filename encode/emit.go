package encode

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// emitter writes JSON tokens into buf, tracking separators and, when
// indent > 0, line breaks.
type emitter struct {
	buf      bytes.Buffer
	indent   int
	filled   []bool
	afterKey bool
	color    func(ColorAttr, string) string
}

func (e *emitter) raw(a ColorAttr, s string) {
	if e.color != nil {
		s = e.color(a, s)
	}
	e.buf.WriteString(s)
}

func (e *emitter) newline() {
	if e.indent <= 0 {
		return
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(strings.Repeat(" ", e.indent*len(e.filled)))
}

// value positions the writer for a new value: after a key nothing is
// needed, inside a container a comma and line break may be.
func (e *emitter) value() {
	if e.afterKey {
		e.afterKey = false
		return
	}
	n := len(e.filled)
	if n == 0 {
		return
	}
	if e.filled[n-1] {
		e.raw(SepColor, ",")
	}
	e.filled[n-1] = true
	e.newline()
}

func (e *emitter) open(c string) {
	e.value()
	e.raw(SepColor, c)
	e.filled = append(e.filled, false)
}

func (e *emitter) close(c string) {
	n := len(e.filled)
	filled := e.filled[n-1]
	e.filled = e.filled[:n-1]
	if filled {
		e.newline()
	}
	e.raw(SepColor, c)
}

func (e *emitter) beginObject() { e.open("{") }
func (e *emitter) endObject()   { e.close("}") }
func (e *emitter) beginArray()  { e.open("[") }
func (e *emitter) endArray()    { e.close("]") }

func (e *emitter) key(k string) {
	e.value()
	e.raw(FieldColor, quote(k))
	if e.indent > 0 {
		e.raw(SepColor, ": ")
	} else {
		e.raw(SepColor, ":")
	}
	e.afterKey = true
}

func (e *emitter) tag(t string) {
	e.value()
	e.raw(TagColor, quote(t))
}

func (e *emitter) str(s string) {
	e.value()
	e.raw(StringColor, quote(s))
}

func (e *emitter) int(v int) {
	e.value()
	e.raw(NumberColor, strconv.Itoa(v))
}

func (e *emitter) double(f float64) {
	e.value()
	s := formatDouble(f)
	if s == "null" {
		e.raw(NullColor, s)
		return
	}
	e.raw(NumberColor, s)
}

func (e *emitter) bool(v bool) {
	e.value()
	e.raw(BoolColor, strconv.FormatBool(v))
}

func (e *emitter) null() {
	e.value()
	e.raw(NullColor, "null")
}

const hexDigits = "0123456789abcdef"

// quote renders s as a JSON string the way pandoc does: only quote,
// backslash and control characters are escaped; everything else is
// written as UTF-8.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"':
				b.WriteString(`\"`)
			case c == '\\':
				b.WriteString(`\\`)
			case c == '\n':
				b.WriteString(`\n`)
			case c == '\r':
				b.WriteString(`\r`)
			case c == '\t':
				b.WriteString(`\t`)
			case c < 0x20:
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			default:
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

// formatDouble renders f like Haskell's show, which is what pandoc's
// encoder produces: fixed notation with at least one fractional digit for
// 0.1 <= |f| < 10^7, otherwise d.ddd followed by an exponent. Non finite
// values have no JSON form and become null.
func formatDouble(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}
	if f == 0 {
		return sign + "0.0"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expStr, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expStr)
	digits := strings.Replace(mant, ".", "", 1)
	if f >= 0.1 && f < 1e7 {
		point := exp + 1
		switch {
		case point <= 0:
			return sign + "0." + strings.Repeat("0", -point) + digits
		case point >= len(digits):
			return sign + digits + strings.Repeat("0", point-len(digits)) + ".0"
		default:
			return sign + digits[:point] + "." + digits[point:]
		}
	}
	frac := digits[1:]
	if frac == "" {
		frac = "0"
	}
	return sign + digits[:1] + "." + frac + "e" + strconv.Itoa(exp)
}
