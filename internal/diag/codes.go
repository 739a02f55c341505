package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1004

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2006
	SynUnclosedBrace      Code = 2007
	SynExpectSemicolon    Code = 2012
	SynUnexpectedTopLevel Code = 2101
	SynExpectIdentifier   Code = 2102
	SynExpectType         Code = 2202
	SynExpectExpression   Code = 2203
	SynExpectColon        Code = 2204
	SynExpectArrow        Code = 2208

	// Семантические
	SemaInfo                Code = 3000
	SemaError               Code = 3001
	SemaUnresolvedName      Code = 3005
	SemaDuplicateDefinition Code = 3006
	SemaUndefinedFunction   Code = 3010
	SemaUndefinedName       Code = 3011
	SemaUnknownType         Code = 3012
	SemaLocalTypeMismatch   Code = 3013
	SemaReturnTypeMismatch  Code = 3014
	SemaBinaryTypeMismatch  Code = 3015
	SemaUnaryTypeMismatch   Code = 3016
	SemaMissingMain         Code = 3020
	SemaMainParams          Code = 3021

	// I/O
	IOLoadFileError Code = 4001

	// IR
	IRInvalidDestination Code = 9001
	IRMalformed          Code = 9002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:             "Unknown error",
		LexInfo:                 "Lexical information",
		LexUnknownChar:          "Unknown character",
		LexBadNumber:            "Bad number literal",
		SynInfo:                 "Syntax information",
		SynUnexpectedToken:      "Unexpected token",
		SynUnclosedParen:        "Unclosed parenthesis",
		SynUnclosedBrace:        "Unclosed brace",
		SynExpectSemicolon:      "Expected semicolon",
		SynUnexpectedTopLevel:   "Unexpected top-level construct",
		SynExpectIdentifier:     "Expected identifier",
		SynExpectType:           "Expected type",
		SynExpectExpression:     "Expected expression",
		SynExpectColon:          "Expected colon",
		SynExpectArrow:          "Expected '->'",
		SemaInfo:                "Semantic information",
		SemaError:               "Semantic error",
		SemaUnresolvedName:      "Unresolved name",
		SemaDuplicateDefinition: "Duplicate definition",
		SemaUndefinedFunction:   "Undefined function",
		SemaUndefinedName:       "Undefined name",
		SemaUnknownType:         "Unknown type",
		SemaLocalTypeMismatch:   "Local type mismatch",
		SemaReturnTypeMismatch:  "Return type mismatch",
		SemaBinaryTypeMismatch:  "Binary operand type mismatch",
		SemaUnaryTypeMismatch:   "Unary operand type mismatch",
		SemaMissingMain:         "Missing main function",
		SemaMainParams:          "Main function takes parameters",
		IOLoadFileError:         "I/O load file error",
		IRInvalidDestination:    "Invalid destination address",
		IRMalformed:             "Malformed IR",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("IR%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
