// Package input reads BigInt values from text, one number per line.
//
// A line holds either a single unsigned 64-bit number, or a list of digits
// separated by commas and/or whitespace, least significant digit first:
//
//	42
//	0, 1
//	7 0 9
//
// Blank lines and lines starting with '#' are ignored. ReadFloats reads one
// floating-point number per line instead.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rbrabson/bigmin/pkg/bigint"
	log "github.com/sirupsen/logrus"
)

// Read returns a BigInt for each valid line in r. Lines that can't be parsed
// are logged and skipped.
func Read(r io.Reader) ([]*bigint.BigInt, error) {
	log.Trace("--> input.Read")
	defer log.Trace("<-- input.Read")

	return readLines(r, ParseLine)
}

// ReadFloats returns a float for each valid line in r. Lines that can't be
// parsed are logged and skipped.
func ReadFloats(r io.Reader) ([]float64, error) {
	log.Trace("--> input.ReadFloats")
	defer log.Trace("<-- input.ReadFloats")

	return readLines(r, ParseFloatLine)
}

// readLines parses each line of r that isn't blank or a comment. Lines have no
// length limit, since a single BigInt may have any number of digits.
func readLines[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0)
	reader := bufio.NewReader(r)
	lineNum := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return values, fmt.Errorf("reading numbers: %w", err)
		}
		if text != "" {
			lineNum++
			line := strings.TrimSpace(text)
			if line != "" && !strings.HasPrefix(line, "#") {
				v, perr := parse(line)
				if perr != nil {
					log.WithFields(log.Fields{
						"line":  lineNum,
						"input": truncate(line),
					}).Warn("What did I say about numbers? ", perr)
				} else {
					values = append(values, v)
				}
			}
		}
		if err == io.EOF {
			break
		}
	}

	log.WithField("count", len(values)).Debug("read numbers")
	return values, nil
}

// truncate shortens long lines before they are logged.
func truncate(line string) string {
	const maxLogged = 80
	if len(line) <= maxLogged {
		return line
	}
	return line[:maxLogged] + "..."
}

// ParseLine parses a single line into a BigInt.
func ParseLine(line string) (*bigint.BigInt, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, ErrEmptyLine
	}

	digits := make([]uint64, 0, len(fields))
	for _, field := range fields {
		d, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, field)
		}
		digits = append(digits, d)
	}
	if len(digits) == 1 {
		return bigint.New(digits[0]), nil
	}
	return bigint.FromDigits(digits), nil
}

// ParseFloatLine parses a single line into a float.
func ParseFloatLine(line string) (float64, error) {
	field := strings.TrimSpace(line)
	if field == "" {
		return 0, ErrEmptyLine
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, field)
	}
	return f, nil
}
