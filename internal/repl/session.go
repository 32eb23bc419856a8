// Package repl runs the interactive dice rolling console.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/diceroller/internal/command"
	"github.com/cory-johannsen/diceroller/internal/dice"
	"github.com/cory-johannsen/diceroller/internal/report"
)

// Options controls console behaviour.
type Options struct {
	// Banner prints the ASCII-art banner when Run starts.
	Banner bool
	// Strict lists the terms the parser ignored after each report.
	Strict bool
	// Report is passed through to the presenter.
	Report report.Options
}

// Session reads lines from in and writes prompts and reports to out.
// A Session is not safe for concurrent use.
type Session struct {
	id       string
	in       *bufio.Reader
	out      io.Writer
	registry *command.Registry
	parser   dice.Parser
	roller   *dice.Roller
	opts     Options
	logger   *zap.Logger
}

// NewSession creates a console session.
//
// Precondition: in, out, registry, roller, and logger must be non-nil.
func NewSession(in io.Reader, out io.Writer, registry *command.Registry, parser dice.Parser, roller *dice.Roller, opts Options, logger *zap.Logger) *Session {
	id := uuid.New().String()
	return &Session{
		id:       id,
		in:       bufio.NewReader(in),
		out:      out,
		registry: registry,
		parser:   parser,
		roller:   roller,
		opts:     opts,
		logger:   logger.With(zap.String("session", id)),
	}
}

// ID returns the session identifier attached to every log entry.
func (s *Session) ID() string {
	return s.id
}

// Run prints the banner and then prompts for lines until the stop command or
// end of input.
//
// Postcondition: Returns nil on stop or EOF, or the first read/write error.
func (s *Session) Run() error {
	s.logger.Info("session started")
	if s.opts.Banner {
		if err := s.write(Banner); err != nil {
			return err
		}
	}

	for {
		if err := s.write(Prompt); err != nil {
			return err
		}
		line, ok, err := s.readLine()
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Info("session ended", zap.String("reason", "eof"))
			return s.write("\n")
		}
		if err := s.write("\n"); err != nil {
			return err
		}

		stop, err := s.Handle(line)
		if err != nil {
			return err
		}
		if stop {
			s.logger.Info("session ended", zap.String("reason", "stop"))
			return nil
		}
	}
}

// Handle dispatches one line of input: a command, or otherwise a dice expression.
//
// Postcondition: stop is true only for the stop command.
func (s *Session) Handle(line string) (stop bool, err error) {
	input := command.Normalize(line)
	if input == "" {
		return false, nil
	}

	if cmd, ok := s.registry.Resolve(input); ok {
		s.logger.Debug("command", zap.String("name", cmd.Name))
		switch cmd.Handler {
		case command.HandlerStop:
			return true, nil
		case command.HandlerHelp:
			return false, s.write(command.HelpText(s.registry))
		}
	}

	return false, s.RollLine(input)
}

// RollLine parses, rolls, and reports a dice expression. Unusable terms are
// ignored, and listed only in strict mode.
func (s *Session) RollLine(line string) error {
	req := s.parser.Parse(line)
	s.logger.Debug("parsed expression",
		zap.String("expression", req.Raw),
		zap.Stringer("status", req.Status()),
		zap.Int("groups", len(req.Groups)),
		zap.Int("dropped", len(req.Dropped)),
	)

	out := s.roller.Roll(req)
	if err := report.Write(s.out, out, s.opts.Report); err != nil {
		return err
	}
	if s.opts.Strict {
		return report.WriteDropped(s.out, req.Dropped, s.opts.Report)
	}
	return nil
}

// readLine reads one line of any length. A final line without a trailing
// newline is still returned; ok is false only once input is exhausted.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	switch {
	case err == nil:
		return line, true, nil
	case errors.Is(err, io.EOF):
		return line, line != "", nil
	default:
		return "", false, fmt.Errorf("reading input: %w", err)
	}
}

func (s *Session) write(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
