// Package sema runs semantic analyses over a parsed file: the type checker
// and structural checks such as CheckMain. Analyses are registered on an
// Engine, which runs all of them and collects every failure.
package sema
