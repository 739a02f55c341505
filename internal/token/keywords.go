package token

var keywords = map[string]Kind{
	"fn":     KwFn,
	"let":    KwLet,
	"return": KwReturn,
	"struct": KwStruct,
	"impl":   KwImpl,
	"self":   KwSelf,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
