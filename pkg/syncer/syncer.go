// Package syncer runs the external file-sync executor for locally
// mounted datasets. The executor is a collaborator, not a dependency:
// labjo shells out, watches the percentage progress it prints, and
// reports completion or failure. Sync trouble never affects the
// manifest.
package syncer

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"sync"
)

// ErrInFlight reports that a sync is already running. A second request
// is a no-op notice, never a queued retry.
var ErrInFlight = errors.New("syncer: a sync is already in flight")

// Event is one progress report from a running sync.
type Event struct {
	// Percent is the last parsed completion percentage, 0-100.
	Percent int
	// Line is the raw executor output the percentage came from.
	Line string
}

// Result is the terminal report of one sync run.
type Result struct {
	// Err is nil on success, context.Canceled when the run was
	// cancelled, and the executor failure otherwise.
	Err error
}

// Syncer invokes the sync executor. The zero value is not usable; use
// New. Only one run may be in flight at a time.
type Syncer struct {
	command string
	args    []string

	mu       sync.Mutex
	inFlight bool
}

// New builds a syncer around an rsync-style command. Extra args are
// passed before the source and destination.
func New(command string, args ...string) *Syncer {
	if command == "" {
		command = "rsync"
	}
	if args == nil {
		args = []string{"-a", "--info=progress2"}
	}
	return &Syncer{command: command, args: args}
}

// InFlight reports whether a run is active.
func (s *Syncer) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Run starts the executor and streams progress events until it exits.
// Returns ErrInFlight without starting anything when a run is already
// active. The events channel closes when the run ends; the result
// channel then delivers exactly one Result. Cancelling ctx kills the
// subprocess.
func (s *Syncer) Run(ctx context.Context, src, dst string) (<-chan Event, <-chan Result, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, nil, ErrInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	args := append(append([]string{}, s.args...), src, dst)
	cmd := exec.CommandContext(ctx, s.command, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.clear()
		return nil, nil, fmt.Errorf("syncer: pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		s.clear()
		return nil, nil, fmt.Errorf("syncer: start %s: %w", s.command, err)
	}

	events := make(chan Event, 16)
	done := make(chan Result, 1)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(stdout)
		scanner.Split(scanCarriageLines)
		for scanner.Scan() {
			line := scanner.Text()
			if pct, ok := parsePercent(line); ok {
				select {
				case events <- Event{Percent: pct, Line: line}:
				default:
					// UI fell behind; newer progress supersedes older.
				}
			}
		}

		err := cmd.Wait()
		s.clear()
		switch {
		case ctx.Err() != nil:
			done <- Result{Err: context.Canceled}
		case err != nil:
			msg := bytes.TrimSpace(stderr.Bytes())
			if len(msg) > 0 {
				err = fmt.Errorf("syncer: %s: %w (%s)", s.command, err, msg)
			} else {
				err = fmt.Errorf("syncer: %s: %w", s.command, err)
			}
			done <- Result{Err: err}
		default:
			done <- Result{}
		}
	}()

	return events, done, nil
}

func (s *Syncer) clear() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

var percentPattern = regexp.MustCompile(`(\d{1,3})%`)

// parsePercent pulls the completion percentage out of one progress
// line, tolerating whatever else the executor prints around it.
func parsePercent(line string) (int, bool) {
	m := percentPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	pct, err := strconv.Atoi(m[1])
	if err != nil || pct > 100 {
		return 0, false
	}
	return pct, true
}

// scanCarriageLines splits on \r as well as \n; progress-style output
// rewrites one terminal line with carriage returns.
func scanCarriageLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
