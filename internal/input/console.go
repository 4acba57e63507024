package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// InvalidInputMessage is shown after a line that does not parse as a number.
const InvalidInputMessage = "Invalid input. Please enter a numeric value."

var (
	// ErrNotNumeric is returned by ParseNumber for text that is not a finite real number.
	ErrNotNumeric = errors.New("not a numeric value")
	// ErrInputClosed is returned when the input stream ends before a number was read.
	ErrInputClosed = errors.New("input closed")
)

// Source supplies numbers requested by prompt.
type Source interface {
	Number(ctx context.Context, prompt string) (float64, error)
}

// Console reads numbers line by line, writing prompts and retry messages to out.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	log    *slog.Logger
}

// NewConsole creates a Console over the given reader and writer.
func NewConsole(in io.Reader, out io.Writer, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		log:    log,
	}
}

// Number prompts until the user enters a number. Malformed lines are retried
// without limit; only end of input, a read error or ctx cancellation stop the loop.
func (c *Console) Number(ctx context.Context, prompt string) (float64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintln(c.out, prompt)

		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		v, err := ParseNumber(line)
		if err == nil {
			return v, nil
		}
		c.log.Debug("rejected input", "prompt", prompt, "length", len(line))
		fmt.Fprintln(c.out, InvalidInputMessage)
	}
}

// readLine returns the next line without its terminator. Lines have no length cap;
// a final line without a newline is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseNumber parses s as a finite real number, ignoring surrounding whitespace.
// Commas are accepted as group separators in the integer part ("1,000").
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNotNumeric
	}
	plain, ok := stripGroupSeparators(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	v, err := strconv.ParseFloat(plain, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return v, nil
}

// stripGroupSeparators removes commas from the integer part of s. Commas after
// the decimal point or exponent, or before the first digit, are rejected.
func stripGroupSeparators(s string) (string, bool) {
	if !strings.Contains(s, ",") {
		return s, true
	}
	end := strings.IndexAny(s, ".eE")
	if end < 0 {
		end = len(s)
	}
	if strings.Contains(s[end:], ",") {
		return "", false
	}
	digits := strings.TrimLeft(s[:end], "+-")
	if digits == "" || digits[0] == ',' {
		return "", false
	}
	return strings.ReplaceAll(s[:end], ",", "") + s[end:], true
}
