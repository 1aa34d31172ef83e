package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

type Element = float32

const (
	// Epsilon is the tolerance used by every near-zero and near-equality test in this package.
	Epsilon Element = 1e-4

	Pi Element = math32.Pi
)

func Sqr[T constraints.Float](s T) T {
	return s * s
}

func Abs[T constraints.Float](s T) T {
	if s < 0 {
		return -s
	}
	return s
}

func Min[T constraints.Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp returns a + t*(b-a).
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}

func AlmostEqual(a, b Element) bool {
	return Abs(a-b) <= Epsilon
}

func DegToRad(deg Element) Element {
	return deg * Pi / 180
}

func RadToDeg(rad Element) Element {
	return rad * 180 / Pi
}

func sqrt(x Element) Element {
	return math32.Sqrt(x)
}
