// Package pathdata rewrites SVG path data into a verbose, broadly
// interoperable command set: absolute coordinates, no H/V/S/T shorthands,
// no implicit command repetition, arc flags separated by spaces. Optimizers
// compress paths into exactly the shorthands that older renderers get
// wrong; re-expanding them trades a few bytes for correctness.
package pathdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type point struct{ x, y float64 }

// Rewrite expands d into explicit absolute commands. Unknown commands or
// truncated argument lists are errors.
func Rewrite(d string) (string, error) {
	sc := scanner{s: d}
	var out strings.Builder
	var cur, start, ctrl point
	var prevCmd byte

	cmd := byte(0)
	for {
		sc.skipSep()
		if sc.done() {
			break
		}
		if c, ok := sc.command(); ok {
			cmd = c
		} else {
			if cmd == 0 {
				return "", fmt.Errorf("path data %q: number before any command", d)
			}
			// implicit repetition; a repeated moveto continues as lineto
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 'Z', 'z':
				return "", fmt.Errorf("path data %q: arguments after closepath", d)
			}
		}

		rel := cmd >= 'a' && cmd <= 'z'
		abs := cmd &^ 0x20 // upper-case letter

		switch abs {
		case 'M':
			p, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			writeCmd(&out, 'M', p.x, p.y)
			cur, start = p, p
		case 'L':
			p, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			writeCmd(&out, 'L', p.x, p.y)
			cur = p
		case 'H':
			x, err := sc.number()
			if err != nil {
				return "", err
			}
			if rel {
				x += cur.x
			}
			writeCmd(&out, 'L', x, cur.y)
			cur.x = x
		case 'V':
			y, err := sc.number()
			if err != nil {
				return "", err
			}
			if rel {
				y += cur.y
			}
			writeCmd(&out, 'L', cur.x, y)
			cur.y = y
		case 'C':
			p1, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			p2, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			p, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			writeCmd(&out, 'C', p1.x, p1.y, p2.x, p2.y, p.x, p.y)
			ctrl, cur = p2, p
		case 'S':
			p1 := reflect(cur, ctrl, prevCmd, 'C')
			p2, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			p, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			writeCmd(&out, 'C', p1.x, p1.y, p2.x, p2.y, p.x, p.y)
			ctrl, cur = p2, p
			abs = 'C'
		case 'Q':
			p1, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			p, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			writeCmd(&out, 'Q', p1.x, p1.y, p.x, p.y)
			ctrl, cur = p1, p
		case 'T':
			p1 := reflect(cur, ctrl, prevCmd, 'Q')
			p, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			writeCmd(&out, 'Q', p1.x, p1.y, p.x, p.y)
			ctrl, cur = p1, p
			abs = 'Q'
		case 'A':
			rx, err := sc.number()
			if err != nil {
				return "", err
			}
			ry, err := sc.number()
			if err != nil {
				return "", err
			}
			rot, err := sc.number()
			if err != nil {
				return "", err
			}
			laf, err := sc.flag()
			if err != nil {
				return "", err
			}
			sf, err := sc.flag()
			if err != nil {
				return "", err
			}
			p, err := sc.point(rel, cur)
			if err != nil {
				return "", err
			}
			writeCmd(&out, 'A', rx, ry, rot, laf, sf, p.x, p.y)
			cur = p
		case 'Z':
			out.WriteByte('Z')
			cur = start
		default:
			return "", fmt.Errorf("path data %q: unknown command %q", d, cmd)
		}
		prevCmd = abs
	}
	return out.String(), nil
}

// reflect mirrors the previous control point around cur when the previous
// command was of the matching kind; otherwise the control point collapses
// onto the current point, per the SVG shorthand rules.
func reflect(cur, ctrl point, prevCmd, kind byte) point {
	if prevCmd != kind {
		return cur
	}
	return point{2*cur.x - ctrl.x, 2*cur.y - ctrl.y}
}

func writeCmd(out *strings.Builder, letter byte, args ...float64) {
	out.WriteByte(letter)
	for i, v := range args {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(fmtNum(v))
	}
}

// fmtNum renders with at most three decimals, trailing zeros trimmed.
func fmtNum(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ---------- token scanner ----------

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) skipSep() {
	for !sc.done() {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', ',':
			sc.pos++
		default:
			return
		}
	}
}

// command consumes the next byte if it is a command letter.
func (sc *scanner) command() (byte, bool) {
	c := sc.s[sc.pos]
	if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
		sc.pos++
		return c, true
	}
	return 0, false
}

func (sc *scanner) number() (float64, error) {
	sc.skipSep()
	begin := sc.pos
	if !sc.done() && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
		sc.pos++
	}
	digits := func() {
		for !sc.done() && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
			sc.pos++
		}
	}
	digits()
	if !sc.done() && sc.s[sc.pos] == '.' {
		sc.pos++
		digits()
	}
	if !sc.done() && (sc.s[sc.pos] == 'e' || sc.s[sc.pos] == 'E') {
		sc.pos++
		if !sc.done() && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
			sc.pos++
		}
		digits()
	}
	v, err := strconv.ParseFloat(sc.s[begin:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("path data: bad number at offset %d", begin)
	}
	return v, nil
}

// flag consumes a single 0 or 1. Arc flags are single characters and may be
// written without separators, so they cannot go through number.
func (sc *scanner) flag() (float64, error) {
	sc.skipSep()
	if sc.done() || (sc.s[sc.pos] != '0' && sc.s[sc.pos] != '1') {
		return 0, fmt.Errorf("path data: bad arc flag at offset %d", sc.pos)
	}
	v := float64(sc.s[sc.pos] - '0')
	sc.pos++
	return v, nil
}

func (sc *scanner) point(rel bool, cur point) (point, error) {
	x, err := sc.number()
	if err != nil {
		return point{}, err
	}
	y, err := sc.number()
	if err != nil {
		return point{}, err
	}
	if rel {
		x += cur.x
		y += cur.y
	}
	return point{x, y}, nil
}
