package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/shlex"

	"github.com/moffa90/go-rcx/protocol"
)

// DefaultStepCapacity is the default initial capacity for the steps slice
const DefaultStepCapacity = 32

// Parse parses a command script from the given file path.
// Returns the complete script or an error if parsing fails.
//
// Example:
//
//	sc, err := script.Parse("square.rcx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Steps: %d\n", len(sc.Steps))
func Parse(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a command script from any io.Reader.
//
// Script format, one step per line:
//
//	# comment
//	beep
//	motor-on 0
//	wait 500ms
//	motor-off 0
//
// Blank lines and '#' comments are ignored.
func ParseReader(r io.Reader) (*Script, error) {
	scanner := bufio.NewScanner(r)
	sc := &Script{Steps: make([]*Step, 0, DefaultStepCapacity)}

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		step, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if step == nil {
			continue
		}

		step.Line = lineNum
		sc.Steps = append(sc.Steps, step)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("no steps found in script")
	}

	return sc, nil
}

// ParseLine parses a single script line.
// Returns nil without error for blank and comment-only lines.
func ParseLine(line string) (*Step, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("invalid line: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return NewStep(fields[0], fields[1:])
}

// NewStep builds a step from an action name and its textual arguments.
// Integer arguments accept Go literal syntax ("1", "0x1").
func NewStep(action string, rest []string) (*Step, error) {
	if action == WaitAction {
		return parseWait(rest)
	}

	args := make([]int, len(rest))
	for i, s := range rest {
		v, err := strconv.ParseInt(s, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid argument %q: %w", action, s, err)
		}
		args[i] = int(v)
	}

	// Resolve now so a bad script fails before anything is sent
	if _, err := protocol.Lookup(action, args...); err != nil {
		return nil, err
	}

	return &Step{Action: action, Args: args}, nil
}

// parseWait parses the arguments of a wait step.
//
// Format: wait <duration>, where duration uses Go syntax ("250ms", "1.5s").
func parseWait(args []string) (*Step, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: expected 1 duration argument, got %d", WaitAction, len(args))
	}

	d, err := time.ParseDuration(args[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", WaitAction, err)
	}
	if d < 0 {
		return nil, fmt.Errorf("%s: negative duration %s", WaitAction, d)
	}

	return &Step{Action: WaitAction, Wait: d}, nil
}
