package geom

import "github.com/pkg/errors"

var (
	// ErrDegenerate is returned for zero-length vectors, zero quaternions and
	// other inputs with no defined direction.
	ErrDegenerate = errors.New("geom: degenerate input")

	// ErrSingular is returned when a matrix or linear system has no unique solution.
	ErrSingular = errors.New("geom: singular matrix")

	// ErrNoIntersection is returned when parallel inputs never meet.
	ErrNoIntersection = errors.New("geom: no intersection")

	ErrStackUnderflow = errors.New("geom: matrix stack underflow")
)
