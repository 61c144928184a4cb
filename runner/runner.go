package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"sort"
	"strings"
)

var paramRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractParams returns all {{param}} names from a command string
func ExtractParams(cmd string) []string {
	matches := paramRegex.FindAllStringSubmatch(cmd, -1)
	seen := make(map[string]bool)
	var params []string
	for _, m := range matches {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			params = append(params, name)
		}
	}
	return params
}

// SubstituteParams replaces {{param}} with provided values
func SubstituteParams(cmd string, values map[string]string) string {
	result := cmd
	for name, value := range values {
		result = strings.ReplaceAll(result, "{{"+name+"}}", value)
	}
	return result
}

// MissingParams lists placeholders in cmd that have no value, sorted.
func MissingParams(cmd string, values map[string]string) []string {
	var missing []string
	for _, name := range ExtractParams(cmd) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// ParseParams turns "name=value" pairs into a map. The value may be empty
// and may itself contain '='.
func ParseParams(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid param %q, expected name=value", p)
		}
		values[name] = value
	}
	return values, nil
}

// Argv turns stored command text into a program and its arguments. Without
// shell the text is split on whitespace with no quoting rules.
func Argv(cmd string, shell bool) []string {
	if shell {
		if strings.TrimSpace(cmd) == "" {
			return nil
		}
		return []string{"sh", "-c", cmd}
	}
	return strings.Fields(cmd)
}

// Exec spawns processes wired to the given streams.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts argv and waits for it. A process that ran returns its exit code
// and a nil error; the error is set only when it could not be started.
func (e Exec) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return -1, errors.New("empty command")
	}

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// OutputMsg is sent through the channel for each line of output
type OutputMsg struct {
	Line     string
	IsErr    bool
	Done     bool
	ExitCode int
	ErrMsg   string
}

// Stream executes argv and streams output through a channel
func Stream(argv []string, output chan<- OutputMsg) {
	defer close(output)

	if len(argv) == 0 {
		output <- OutputMsg{Done: true, ExitCode: -1, ErrMsg: "empty command"}
		return
	}

	c := exec.Command(argv[0], argv[1:]...)

	stdout, err := c.StdoutPipe()
	if err != nil {
		output <- OutputMsg{Done: true, ExitCode: -1, ErrMsg: err.Error()}
		return
	}

	stderr, err := c.StderrPipe()
	if err != nil {
		output <- OutputMsg{Done: true, ExitCode: -1, ErrMsg: err.Error()}
		return
	}

	if err := c.Start(); err != nil {
		output <- OutputMsg{Done: true, ExitCode: -1, ErrMsg: err.Error()}
		return
	}

	// Stream stdout and stderr concurrently
	done := make(chan struct{}, 2)

	streamReader := func(r io.Reader, isErr bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			output <- OutputMsg{Line: scanner.Text(), IsErr: isErr}
		}
		done <- struct{}{}
	}

	go streamReader(stdout, false)
	go streamReader(stderr, true)

	<-done
	<-done

	err = c.Wait()
	if err != nil {
		output <- OutputMsg{Done: true, ExitCode: c.ProcessState.ExitCode(), ErrMsg: err.Error()}
	} else {
		output <- OutputMsg{Done: true}
	}
}
