// Package calculus offers a propositional formula engine used to prepare
// feature-diagram constraints for a SAT solver.
//
// SAT solvers usually expect CNF formulas as an input: a conjunction of clauses,
// each clause being a disjunction of potentially negated atoms.
// Constraints coming from feature diagrams, however, are written with the whole
// set of connectives: negation, conjunction, disjunction, exclusive disjunction,
// implication and equivalence.
//
// This package represents such constraints as immutable trees and rewrites them
// step by step into CNF:
//
//	f := Implies(Or(Atom("File"), Atom("NewFile")), Atom("FileMenu"))
//	cnf, err := ToCNF(f) // (FileMenu | ~File) & (FileMenu | ~NewFile)
//
// Each step is also available on its own: Simplify folds the True and False
// constants, Decompose rewrites Xor, Implies and Iff with And, Or and Not,
// DeMorgan pushes negations down to the atoms and DistributeOr pushes
// disjunctions below conjunctions.
//
// The conjuncts of a CNF formula can then be named with CNFMap, which associates
// a fresh name "x*" to each unit conjunct x, so that the constraint can later be
// enabled or disabled by the solver through its name.
//
// Formulas are printed with String, or with Format for another set of symbols,
// and read back with Parse. Operands of binary connectives are always
// bracketed, so the CNF above is printed as:
//
//	(((FileMenu) | (~File))) & (((FileMenu) | (~NewFile)))
//
// The package is purely functional: no formula is ever modified in place, and
// every function can be called on shared subtrees.
package calculus
