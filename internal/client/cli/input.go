package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"catalog/internal/errors"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// terminalPassword reads without echo when stdin is a terminal and falls
// back to a plain line otherwise.
func terminalPassword(in *bufio.Reader, w io.Writer) func() (string, error) {
	return func() (string, error) {
		fd := int(os.Stdin.Fd())
		if !isTerminal(fd) {
			return readLine(in)
		}

		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}

		return string(pw), nil
	}
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints label and reads one trimmed line.
func (d *Deps) prompt(label string) (string, error) {
	fmt.Fprintf(d.Out, "%s: ", label)
	line, err := readLine(d.In)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// promptDefault is prompt with a value kept when the input is empty.
func (d *Deps) promptDefault(label, current string) (string, error) {
	if current == "" {
		return d.prompt(label)
	}

	value, err := d.prompt(fmt.Sprintf("%s [%s]", label, current))
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}

	return value, nil
}

// promptMultiline reads lines until an empty one. With a current value an
// immediately empty input keeps it.
func (d *Deps) promptMultiline(label, current string) (string, error) {
	fmt.Fprintf(d.Out, "%s (empty line to finish)\n", label)
	if current != "" {
		fmt.Fprintln(d.Out, indent(current))
	}

	var lines []string
	for {
		line, err := readLine(d.In)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return current, nil
	}

	return strings.Join(lines, "\n"), nil
}

func (d *Deps) promptSecret(label string) (string, error) {
	fmt.Fprintf(d.Out, "%s: ", label)

	return d.ReadPassword()
}

func indent(text string) string {
	return "  " + strings.ReplaceAll(text, "\n", "\n  ")
}
