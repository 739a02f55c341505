package ir

import (
	"scooter/internal/diag"
)

// InstrKind enumerates instruction kinds.
type InstrKind uint8

const (
	// InstrBinary: Dst = Lhs Op Rhs
	InstrBinary InstrKind = iota
	// InstrUnary: Dst = Op Src
	InstrUnary
	// InstrCopy: Dst = Src
	InstrCopy
	// InstrParam pushes Src as the next call argument.
	InstrParam
	// InstrCall: Dst = call Callee, Argc
	InstrCall
	// InstrReturn returns Src.
	InstrReturn
	// InstrNop only hosts a label.
	InstrNop
)

func (k InstrKind) String() string {
	switch k {
	case InstrBinary:
		return "binary"
	case InstrUnary:
		return "unary"
	case InstrCopy:
		return "copy"
	case InstrParam:
		return "param"
	case InstrCall:
		return "call"
	case InstrReturn:
		return "return"
	case InstrNop:
		return "nop"
	}
	return "invalid"
}

// Op is an arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpNeg
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpNeg:
		return "-"
	}
	return "?"
}

// Instr is a single three-address instruction. Which fields are meaningful
// depends on Kind.
type Instr struct {
	Kind   InstrKind `msgpack:"k"`
	Label  *Label    `msgpack:"l,omitempty"`
	Dst    Addr      `msgpack:"d"`
	Lhs    Addr      `msgpack:"a"`
	Rhs    Addr      `msgpack:"b"`
	Src    Addr      `msgpack:"s"`
	Op     Op        `msgpack:"o"`
	Callee Label     `msgpack:"c"`
	Argc   uint32    `msgpack:"n"`
}

func invalidDestination(kind InstrKind, dst Addr) error {
	return diag.Errorf(diag.IRInvalidDestination,
		"%s instruction cannot write to constant address %s", kind, dst)
}

// NewBinary builds Dst = Lhs op Rhs.
func NewBinary(dst, lhs Addr, op Op, rhs Addr) (Instr, error) {
	if !dst.IsDestination() {
		return Instr{}, invalidDestination(InstrBinary, dst)
	}
	return Instr{Kind: InstrBinary, Dst: dst, Lhs: lhs, Op: op, Rhs: rhs}, nil
}

// NewUnary builds Dst = op Src.
func NewUnary(dst Addr, op Op, operand Addr) (Instr, error) {
	if !dst.IsDestination() {
		return Instr{}, invalidDestination(InstrUnary, dst)
	}
	return Instr{Kind: InstrUnary, Dst: dst, Op: op, Src: operand}, nil
}

// NewCopy builds Dst = Src.
func NewCopy(dst, src Addr) (Instr, error) {
	if !dst.IsDestination() {
		return Instr{}, invalidDestination(InstrCopy, dst)
	}
	return Instr{Kind: InstrCopy, Dst: dst, Src: src}, nil
}

// NewCall builds Dst = call callee, argc.
func NewCall(dst Addr, callee Label, argc uint32) (Instr, error) {
	if !dst.IsDestination() {
		return Instr{}, invalidDestination(InstrCall, dst)
	}
	return Instr{Kind: InstrCall, Dst: dst, Callee: callee, Argc: argc}, nil
}

func NewParam(a Addr) Instr  { return Instr{Kind: InstrParam, Src: a} }
func NewReturn(a Addr) Instr { return Instr{Kind: InstrReturn, Src: a} }
func NewNop() Instr          { return Instr{Kind: InstrNop} }

// Dest returns the destination address; Param, Return and Nop have none.
func (in Instr) Dest() (Addr, bool) {
	switch in.Kind {
	case InstrBinary, InstrUnary, InstrCopy, InstrCall:
		return in.Dst, true
	}
	return Addr{}, false
}

// Operands returns the source addresses read by the instruction.
func (in Instr) Operands() []Addr {
	switch in.Kind {
	case InstrBinary:
		return []Addr{in.Lhs, in.Rhs}
	case InstrUnary, InstrCopy, InstrParam, InstrReturn:
		return []Addr{in.Src}
	}
	return nil
}

func (in *Instr) SetLabel(l Label) {
	in.Label = &l
}
