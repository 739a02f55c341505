// Package fuzztests houses Go fuzz harnesses for the scooter front-end
// (source -> lexer -> parser -> sema -> lower). They guard against panics,
// hangs and broken invariants on arbitrary input.
//
// Seeds come from the golden cases in internal/testkit/testdata.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
