package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit

	KwFn     // fn
	KwLet    // let
	KwReturn // return
	KwStruct // struct
	KwImpl   // impl
	KwSelf   // self
	KwTrue   // true
	KwFalse  // false

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Assign     // =
	Colon      // :
	ColonColon // ::
	Semicolon  // ;
	Comma      // ,
	Arrow      // ->
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
)

var kindNames = [...]string{
	Invalid:    "invalid",
	EOF:        "end of file",
	Ident:      "identifier",
	IntLit:     "integer literal",
	KwFn:       "'fn'",
	KwLet:      "'let'",
	KwReturn:   "'return'",
	KwStruct:   "'struct'",
	KwImpl:     "'impl'",
	KwSelf:     "'self'",
	KwTrue:     "'true'",
	KwFalse:    "'false'",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Assign:     "'='",
	Colon:      "':'",
	ColonColon: "'::'",
	Semicolon:  "';'",
	Comma:      "','",
	Arrow:      "'->'",
	LParen:     "'('",
	RParen:     "')'",
	LBrace:     "'{'",
	RBrace:     "'}'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}
