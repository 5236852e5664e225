package calculus

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is returned when a formula does not hold the expected connective.
	ErrKindMismatch = errors.New("formula kind mismatch")
	// ErrUnsupportedConnective is returned by DistributeOr when it meets a connective it cannot distribute over.
	ErrUnsupportedConnective = errors.New("unsupported connective for CNF distribution")
	// ErrNotCNF is returned when a formula was expected to be in CNF but is not.
	ErrNotCNF = errors.New("formula is not in CNF")
)

// A KindError is returned when extracting a given variant from a formula holding another one.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("expected %v formula, got %v", e.Want, e.Got)
}

func (e *KindError) Is(target error) bool { return target == ErrKindMismatch }

// An UnsupportedError is returned by DistributeOr when a connective appears
// where distribution cannot see through it, e.g an Xor below an Or.
// Such formulas must be decomposed and normalized first.
type UnsupportedError struct {
	Kind  Kind
	Under Kind // Connective of the enclosing node
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %v below %v", ErrUnsupportedConnective, e.Kind, e.Under)
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupportedConnective }

// An UnboundError is returned by Eval when the model lacks a binding for an atom.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("model lacks binding for atom %q", e.Name)
}
