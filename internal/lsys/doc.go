// Package lsys implements deterministic L-system string rewriting.
//
// An L-system is defined by an axiom and a table of single-symbol
// substitution rules:
//
//   - [Rules]: symbol -> replacement mapping, parsed from "LHS=RHS" text
//   - [Expand]: applies the table for a number of generations
//   - [Lengths]: per-generation expanded lengths without building the strings
//
// # Example
//
//	rules, _ := lsys.ParseRules("F=F[+F]F[-F]F")
//	s, _ := lsys.Expand("F", rules, 3)
//
// Rewriting is context-free and deterministic: every symbol is replaced
// independently of its neighbours, and a symbol with no rule expands to
// itself. Stochastic and context-sensitive grammars are out of scope.
package lsys
