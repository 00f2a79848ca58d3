// Package lpformat writes a model.Model in CPLEX LP text format so that a
// built formulation can be handed to any external LP solver (HiGHS, CBC,
// GLPK, Gurobi, CPLEX) or simply inspected.
package lpformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/teflow/model"
)

// ErrNilModel indicates Write was called with a nil model.
var ErrNilModel = errors.New("lpformat: model is nil")

// termsPerLine keeps lines well under the 510-character limit of the format.
const termsPerLine = 8

// maxNameLen is the longest identifier the format accepts.
const maxNameLen = 255

// Write renders m to w:
//
//	\ Problem: <name>
//	Maximize | Minimize
//	 obj: ...
//	Subject To
//	 <row>: ... <= | >= | = rhs
//	Bounds
//	 ...
//	End
//
// Bounds equal to the format default (0 ≤ x < +inf) are omitted.
func Write(w io.Writer, m *model.Model) error {
	if m == nil {
		return ErrNilModel
	}
	bw := bufio.NewWriter(w)
	vars := m.Vars()
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = Sanitize(v.Name)
	}

	fmt.Fprintf(bw, "\\ Problem: %s\n", m.Name())
	obj := m.Objective()
	if obj.Sense == model.Maximize {
		bw.WriteString("Maximize\n")
	} else {
		bw.WriteString("Minimize\n")
	}
	bw.WriteString(" obj:")
	writeTerms(bw, obj.Terms, names)
	if obj.Const != 0 || len(obj.Terms) == 0 {
		fmt.Fprintf(bw, " %s %s", signOf(obj.Const), num(math.Abs(obj.Const)))
	}
	bw.WriteByte('\n')

	bw.WriteString("Subject To\n")
	for _, c := range m.Constraints() {
		fmt.Fprintf(bw, " %s:", Sanitize(c.Name))
		if len(c.Terms) == 0 && len(names) > 0 {
			fmt.Fprintf(bw, " 0 %s", names[0])
		}
		writeTerms(bw, c.Terms, names)
		fmt.Fprintf(bw, " %s %s\n", c.Sense, num(c.RHS))
	}

	bounds := make([]string, 0)
	for i, v := range vars {
		if line := boundLine(names[i], v); line != "" {
			bounds = append(bounds, line)
		}
	}
	if len(bounds) > 0 {
		bw.WriteString("Bounds\n")
		for _, line := range bounds {
			fmt.Fprintf(bw, " %s\n", line)
		}
	}
	bw.WriteString("End\n")

	return bw.Flush()
}

// writeTerms emits " + 2 x - y ..." wrapping every termsPerLine terms.
func writeTerms(bw *bufio.Writer, terms []model.Term, names []string) {
	for i, t := range terms {
		if i > 0 && i%termsPerLine == 0 {
			bw.WriteString("\n  ")
		}
		sign := signOf(t.Coef)
		if i == 0 && sign == "+" {
			bw.WriteString(" ")
		} else {
			fmt.Fprintf(bw, " %s ", sign)
		}
		if a := math.Abs(t.Coef); a != 1 {
			bw.WriteString(num(a))
			bw.WriteByte(' ')
		}
		bw.WriteString(names[t.Var.Index()])
	}
}

func boundLine(name string, v model.VarInfo) string {
	upInf := math.IsInf(v.Upper, 1)
	switch {
	case v.Lower == 0 && upInf:
		return ""
	case upInf:
		return fmt.Sprintf("%s >= %s", name, num(v.Lower))
	case v.Lower == v.Upper:
		return fmt.Sprintf("%s = %s", name, num(v.Lower))
	default:
		return fmt.Sprintf("%s <= %s <= %s", num(v.Lower), name, num(v.Upper))
	}
}

func signOf(f float64) string {
	if f < 0 {
		return "-"
	}

	return "+"
}

func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Sanitize maps name onto the identifier alphabet of the LP format:
// letters, digits and !"#$%&()/,.;?@_`'{}|~. Other runes become '_', a
// leading digit, period or e/E gets a '_' prefix, and the result is cut
// to 255 bytes.
func Sanitize(name string) string {
	if name == "" {
		return "_"
	}
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case strings.ContainsRune("!\"#$%&()/,.;?@_`'{}|~", r):
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	out := sb.String()
	if c := out[0]; (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' {
		out = "_" + out
	}
	if len(out) > maxNameLen {
		out = out[:maxNameLen]
	}

	return out
}
