package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tmarchal/chamber/pkg/chamber"
)

// LoadVisitorList reads and parses a visitor list file.
func LoadVisitorList(filename string, defaultDelay time.Duration) ([]Visitor, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read visitor list: %w", err)
	}
	defer f.Close()

	visitors, err := ParseVisitorList(f, defaultDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to parse visitor list %s: %w", filename, err)
	}
	return visitors, nil
}

// ParseVisitorList parses a line-oriented visitor list. Each line is
//
//	NAME KIND [DELAY]
//
// separated by spaces or tabs. KIND is a case-insensitive S, A or O.
// DELAY, when present, is a Go duration (e.g. 50ms) overriding the default
// inter-arrival delay. Blank lines and lines starting with # are ignored.
func ParseVisitorList(r io.Reader, defaultDelay time.Duration) ([]Visitor, error) {
	var visitors []Visitor

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected NAME KIND [DELAY], got %q", lineNo, line)
		}

		kind, err := chamber.ParseKind(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		delay := defaultDelay
		if len(fields) >= 3 {
			d, err := time.ParseDuration(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid delay %q: %w", lineNo, fields[2], err)
			}
			if d < 0 {
				return nil, fmt.Errorf("line %d: delay must not be negative", lineNo)
			}
			delay = d
		}

		visitors = append(visitors, Visitor{Name: fields[0], Kind: kind, Delay: delay})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read visitor list: %w", err)
	}

	return visitors, nil
}
