// internal/oracle/oracle.go
//
// Number oracle for a single guessing game.
// Responsibilities:
//   - Draw a uniformly distributed integer from a closed range [min, max].
//   - Classify a guess against a secret (low/high/correct).
//
// Notes:
//   - Randomness is always passed in as a Source; the package never reads
//     ambient global state inside RandomInRange.
//   - Default() exists for the outermost construction point only.

package oracle

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// ErrInvalidRange is returned when min > max.
var ErrInvalidRange = errors.New("invalid range: min is greater than max")

// Source is the capability RandomInRange draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uint64() uint64
	Uint64N(n uint64) uint64
}

// RandomInRange returns n with min <= n <= max, inclusive on both ends.
// A nil src falls back to Default().
func RandomInRange(min, max int, src Source) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w (min=%d, max=%d)", ErrInvalidRange, min, max)
	}
	if src == nil {
		src = Default()
	}

	// Width of the range minus one, computed in uint64 so that
	// [math.MinInt, math.MaxInt] does not overflow.
	span := uint64(max) - uint64(min)
	if span == ^uint64(0) {
		return int(src.Uint64()), nil
	}
	return int(uint64(min) + src.Uint64N(span+1)), nil
}

// Classify compares guess with secret.
func Classify(secret, guess int) Outcome {
	switch {
	case guess < secret:
		return OutcomeLow
	case guess > secret:
		return OutcomeHigh
	default:
		return OutcomeCorrect
	}
}

// NewSource returns a PCG generator seeded from crypto/rand.
func NewSource() (Source, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	)), nil
}

var (
	defaultOnce sync.Once
	defaultSrc  Source
)

// Default returns the process-level source, built once.
// If crypto/rand is unavailable it seeds from the runtime-seeded
// math/rand/v2 global functions instead.
func Default() Source {
	defaultOnce.Do(func() {
		src, err := NewSource()
		if err != nil {
			src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		defaultSrc = src
	})
	return defaultSrc
}
