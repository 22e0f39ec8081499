package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var ErrEmptyInput = errors.New("input is empty")

// ReadPassword prints prompt to out and reads one line from in. Echo is turned
// off when in is a terminal; piped input is read as a plain line.
func ReadPassword(prompt string, in *os.File, out io.Writer) (string, error) {
	if in == nil {
		return "", errors.New("stdin unavailable")
	}
	fmt.Fprint(out, prompt)

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return nonEmpty(string(password))
	}
	return ReadLine(in)
}

// ReadLine reads a single line from in without the trailing newline.
func ReadLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return nonEmpty(strings.TrimRight(line, "\r\n"))
}

func nonEmpty(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrEmptyInput
	}
	return value, nil
}
