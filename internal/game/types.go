// internal/game/types.go
//
// Core type definitions for the guessing game session.
// Defines:
//   - State: lifecycle of a session (awaiting input → won/lost/quit).
//   - Attempts: optional cap on counted guesses.
//   - Config: immutable range + cap a session is built from.

package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// State represents where a session is in its lifecycle.
// StateAwaitingInput is the only non-terminal state.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateWon           State = "won"
	StateLost          State = "lost"
	StateQuit          State = "quit"
)

// Terminal reports whether no further input will be read.
func (s State) Terminal() bool { return s != StateAwaitingInput }

// Attempts is an optional cap on counted guesses.
// The zero value is Unlimited.
type Attempts struct {
	n       int
	limited bool
}

// Unlimited disables the attempt limit.
var Unlimited = Attempts{}

// Limit returns a cap of n counted guesses. Limit(0) loses before the
// first read.
func Limit(n int) Attempts { return Attempts{n: n, limited: true} }

// Limited reports whether a finite cap is configured.
func (a Attempts) Limited() bool { return a.limited }

// Max returns the cap. It is meaningful only when Limited is true.
func (a Attempts) Max() int { return a.n }

func (a Attempts) String() string {
	if !a.limited {
		return "unlimited"
	}
	return strconv.Itoa(a.n)
}

// UnmarshalText accepts "unlimited" (or an empty value) and non-negative integers.
func (a *Attempts) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || strings.EqualFold(s, "unlimited") {
		*a = Unlimited
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("attempts %q: want a non-negative integer or \"unlimited\"", s)
	}
	if n < 0 {
		return fmt.Errorf("attempts %d: %w", n, ErrInvalidAttempts)
	}
	*a = Limit(n)
	return nil
}

// Set implements flag.Value.
func (a *Attempts) Set(s string) error { return a.UnmarshalText([]byte(s)) }

// ErrInvalidAttempts is returned for a negative attempt cap.
var ErrInvalidAttempts = errors.New("attempt limit must be non-negative or unlimited")

// Config is fixed for the lifetime of a session.
type Config struct {
	MinValue    int      // Lowest guessable value (inclusive).
	MaxValue    int      // Highest guessable value (inclusive).
	MaxAttempts Attempts // Counted guesses before a forced loss.
}

// DefaultConfig returns 1..100 with unlimited attempts.
func DefaultConfig() Config {
	return Config{MinValue: 1, MaxValue: 100, MaxAttempts: Unlimited}
}

// Contains reports whether v lies within [MinValue, MaxValue].
func (c Config) Contains(v int) bool {
	return c.MinValue <= v && v <= c.MaxValue
}
