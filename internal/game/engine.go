// internal/game/engine.go
//
// Game engine for a single guess-the-number session.
// Responsibilities:
//   - Validate configuration and draw the secret once (via the oracle).
//   - Drive the read → validate → respond loop over line streams.
//   - Track state transitions: awaiting_input → won/lost/quit.
//
// Notes:
//   - Only valid, in-range guesses count as attempts.
//   - End of input is treated as an implicit quit.
//   - The secret is never logged.

package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/guessnumber/internal/console"
	"github.com/robalobadob/guessnumber/internal/oracle"
)

var (
	// ErrFinished is returned by Run on a session that already ended.
	ErrFinished = errors.New("game finished")

	// Guess validation failures. Recovered inside Run.
	ErrEmptyInput     = errors.New("empty input")
	ErrMalformedGuess = errors.New("not a number")
	ErrOutOfRange     = errors.New("guess out of range")
)

// quitCommands are matched case-insensitively.
var quitCommands = []string{"exit", "quit", "q"}

// Session holds the state of one game.
type Session struct {
	id           string
	cfg          Config
	secret       int
	attemptsUsed int
	state        State

	in  console.LineReader
	out console.LineWriter
	log zerolog.Logger
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New validates cfg and draws the secret from src.
// A nil src falls back to the oracle's process-level source.
// On error no session is created.
func New(cfg Config, src oracle.Source, in console.LineReader, out console.LineWriter, opts ...Option) (*Session, error) {
	if cfg.MaxAttempts.Limited() && cfg.MaxAttempts.Max() < 0 {
		return nil, fmt.Errorf("new session: attempts %d: %w", cfg.MaxAttempts.Max(), ErrInvalidAttempts)
	}
	if in == nil || out == nil {
		return nil, errors.New("new session: input and output are required")
	}
	secret, err := oracle.RandomInRange(cfg.MinValue, cfg.MaxValue, src)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		id:     uuid.NewString(),
		cfg:    cfg,
		secret: secret,
		state:  StateAwaitingInput,
		in:     in,
		out:    out,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session", s.id).Logger()
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// State returns the current state.
func (s *Session) State() State { return s.state }

// AttemptsUsed returns the number of counted guesses so far.
func (s *Session) AttemptsUsed() int { return s.attemptsUsed }

// Run plays the session to a terminal state and returns it.
// A non-nil error means the streams failed; the returned state is the
// state the session was in at that point.
func (s *Session) Run() (State, error) {
	if s.state.Terminal() {
		return s.state, ErrFinished
	}

	s.log.Info().
		Int("min", s.cfg.MinValue).
		Int("max", s.cfg.MaxValue).
		Stringer("maxAttempts", s.cfg.MaxAttempts).
		Msg("session started")
	defer func() {
		s.log.Info().
			Str("state", string(s.state)).
			Int("attempts", s.attemptsUsed).
			Msg("session finished")
	}()

	if err := s.welcome(); err != nil {
		return s.state, err
	}

	for !s.state.Terminal() {
		if s.cfg.MaxAttempts.Limited() && s.attemptsUsed >= s.cfg.MaxAttempts.Max() {
			s.state = StateLost
			return s.state, s.say(fmt.Sprintf(msgLost, s.secret))
		}

		if err := s.say(msgPrompt); err != nil {
			return s.state, err
		}
		line, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			s.state = StateQuit
			return s.state, s.say(msgFarewell)
		}
		if err != nil {
			return s.state, fmt.Errorf("read guess: %w", err)
		}

		if err := s.say(s.apply(line)); err != nil {
			return s.state, err
		}
	}
	return s.state, nil
}

// apply evaluates one input line, mutating the session, and returns the
// reply for the player.
func (s *Session) apply(line string) string {
	line = strings.TrimSpace(line)
	if isQuit(line) {
		s.state = StateQuit
		return msgFarewell
	}

	guess, err := s.parseGuess(line)
	switch {
	case errors.Is(err, ErrEmptyInput):
		return msgEmpty
	case errors.Is(err, ErrMalformedGuess):
		return msgNotANumber
	case errors.Is(err, ErrOutOfRange):
		return fmt.Sprintf(msgOutOfRange, s.cfg.MinValue, s.cfg.MaxValue)
	}

	s.attemptsUsed++
	return s.respond(oracle.Classify(s.secret, guess))
}

// respond turns a counted guess's outcome into the reply.
func (s *Session) respond(o oracle.Outcome) string {
	switch o {
	case oracle.OutcomeLow:
		return msgSecretLarger
	case oracle.OutcomeHigh:
		return msgSecretSmaller
	case oracle.OutcomeCorrect:
		s.state = StateWon
		return fmt.Sprintf(msgWon, s.secret, s.attemptsUsed)
	default:
		panic(fmt.Sprintf("game: unknown outcome %q", o))
	}
}

// parseGuess validates a trimmed line as an in-range base-10 integer.
func (s *Session) parseGuess(line string) (int, error) {
	if line == "" {
		return 0, ErrEmptyInput
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrMalformedGuess)
	}
	if !s.cfg.Contains(n) {
		return n, fmt.Errorf("%d: %w", n, ErrOutOfRange)
	}
	return n, nil
}

func (s *Session) welcome() error {
	if err := s.say(fmt.Sprintf(msgWelcome, s.cfg.MinValue, s.cfg.MaxValue)); err != nil {
		return err
	}
	if !s.cfg.MaxAttempts.Limited() {
		return s.say(msgUnlimited)
	}
	return s.say(fmt.Sprintf(msgLimited, s.cfg.MaxAttempts.Max()))
}

func (s *Session) say(msg string) error {
	if err := s.out.WriteLine(msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// isQuit reports whether line is one of the quit commands.
func isQuit(line string) bool {
	for _, cmd := range quitCommands {
		if strings.EqualFold(line, cmd) {
			return true
		}
	}
	return false
}
