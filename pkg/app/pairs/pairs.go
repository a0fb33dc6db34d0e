package pairs

import (
	"iter"
)

type Mode string

const (
	ModeCombinations Mode = "combinations"
	ModePermutations Mode = "permutations"
)

func (m Mode) Valid() bool {
	return m == ModeCombinations || m == ModePermutations
}

type Pair[T any] struct {
	A T
	B T
}

// Sequence is a lazy, sized collection of pairs over a fixed slice of items.
// Len is computed in closed form; pairs are only produced while ranging.
type Sequence[T any] struct {
	items []T
	mode  Mode
}

// Combinations yields every unordered pair (items[i], items[j]) with i < j once.
func Combinations[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: items, mode: ModeCombinations}
}

// Permutations yields every ordered pair of distinct positions.
func Permutations[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: items, mode: ModePermutations}
}

func New[T any](items []T, mode Mode) *Sequence[T] {
	if mode == ModePermutations {
		return Permutations(items)
	}
	return Combinations(items)
}

func (s *Sequence[T]) Mode() Mode {
	return s.mode
}

func (s *Sequence[T]) Len() int {
	n := len(s.items)
	if n < 2 {
		return 0
	}
	if s.mode == ModePermutations {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}

func (s *Sequence[T]) All() iter.Seq[Pair[T]] {
	if s.mode == ModePermutations {
		return s.permutations
	}
	return s.combinations
}

func (s *Sequence[T]) combinations(yield func(Pair[T]) bool) {
	for i := 0; i < len(s.items); i++ {
		for j := i + 1; j < len(s.items); j++ {
			if !yield(Pair[T]{A: s.items[i], B: s.items[j]}) {
				return
			}
		}
	}
}

func (s *Sequence[T]) permutations(yield func(Pair[T]) bool) {
	for i := 0; i < len(s.items); i++ {
		for j := 0; j < len(s.items); j++ {
			if i == j {
				continue
			}
			if !yield(Pair[T]{A: s.items[i], B: s.items[j]}) {
				return
			}
		}
	}
}

// CountCombinations returns the number of r-length combinations of n items.
func CountCombinations(n, r int) int {
	if r < 0 || n < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	result := 1
	for i := 1; i <= r; i++ {
		result = result * (n - r + i) / i
	}
	return result
}
