package ir

// FuncInfo records where a function body starts.
type FuncInfo struct {
	Name   string `msgpack:"name"`
	Label  Label  `msgpack:"label"`
	Entry  int    `msgpack:"entry"`
	Params int    `msgpack:"params"`
}

// Root is the lowered compilation unit handed to a backend.
type Root struct {
	LabelCount uint32
	Pool       *Pool[Literal]
	Instrs     []Instr
	Funcs      []FuncInfo
}

func NewRoot() *Root {
	return &Root{Pool: NewPool[Literal]()}
}

// Count returns how many instructions of kind k the root holds.
func (r *Root) Count(k InstrKind) int {
	n := 0
	for i := range r.Instrs {
		if r.Instrs[i].Kind == k {
			n++
		}
	}
	return n
}

// Func finds function metadata by qualified name.
func (r *Root) Func(name string) (FuncInfo, bool) {
	for _, f := range r.Funcs {
		if f.Name == name {
			return f, true
		}
	}
	return FuncInfo{}, false
}
