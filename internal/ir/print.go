package ir

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable listing of root. Labelled instructions are
// prefixed with "L<i>:", the rest are padded to the same column.
func Dump(w io.Writer, r *Root) error {
	if w == nil || r == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	width := labelWidth(r.LabelCount)
	for i := range r.Instrs {
		in := &r.Instrs[i]
		prefix := ""
		if in.Label != nil {
			prefix = in.Label.String() + ":"
		}
		fmt.Fprintf(bw, "%-*s %s\n", width, prefix, FormatInstr(r.Pool, in))
	}
	return bw.Flush()
}

// String renders root as Dump does.
func (r *Root) String() string {
	var sb strings.Builder
	_ = Dump(&sb, r) //nolint:errcheck
	return sb.String()
}

func labelWidth(count uint32) int {
	w := len(Label{Index: count}.String()) + 1
	return max(w, 3)
}

// FormatInstr renders one instruction without its label.
func FormatInstr(pool *Pool[Literal], in *Instr) string {
	switch in.Kind {
	case InstrBinary:
		return fmt.Sprintf("%s = %s %s %s", dest(in.Dst), operand(pool, in.Lhs), in.Op, operand(pool, in.Rhs))
	case InstrUnary:
		return fmt.Sprintf("%s = %s%s", dest(in.Dst), in.Op, operand(pool, in.Src))
	case InstrCopy:
		return fmt.Sprintf("%s = %s", dest(in.Dst), operand(pool, in.Src))
	case InstrParam:
		return "param " + operand(pool, in.Src)
	case InstrCall:
		return fmt.Sprintf("%s = call %s, %d", dest(in.Dst), in.Callee, in.Argc)
	case InstrReturn:
		return "ret " + operand(pool, in.Src)
	case InstrNop:
		return "nop"
	}
	return fmt.Sprintf("<invalid instr %d>", in.Kind)
}

func dest(a Addr) string {
	if !a.IsDestination() {
		return "<error: const destination>"
	}
	return a.String()
}

func operand(pool *Pool[Literal], a Addr) string {
	if a.Kind != AddrConst {
		return a.String()
	}
	if pool != nil {
		if v, ok := pool.ValueOf(a.Index); ok {
			return v.String()
		}
	}
	return fmt.Sprintf("<missing const %d>", a.Index)
}
