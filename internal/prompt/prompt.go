// Package prompt asks the operator simple questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	questionMark = color.New(color.FgYellow, color.Bold).SprintFunc()
	label        = color.New(color.Bold).SprintFunc()
	hint         = color.New(color.Faint).SprintFunc()
	success      = color.New(color.FgGreen).SprintFunc()
	failure      = color.New(color.FgRed).SprintFunc()
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	tty bool
}

func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok {
		p.tty = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// Input asks until validate accepts the answer. A nil validate accepts anything.
func (p *Prompter) Input(question string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s %s: ", questionMark("?"), label(question))

		line, err := p.readLine()
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return "", err
		}

		if validate != nil {
			if verr := validate(line); verr != nil {
				fmt.Fprintf(p.out, "%s %v\n", failure("✘"), verr)
				if err != nil {
					return "", verr
				}
				continue
			}
		}

		fmt.Fprintf(p.out, "%s %s: %s\n", success("✔"), label(question), line)
		return line, nil
	}
}

// Confirm asks a yes/no question. An empty answer or end of input picks def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	choices := "y/N"
	if def {
		choices = "Y/n"
	}

	for {
		fmt.Fprintf(p.out, "%s %s %s ", questionMark("?"), label(question), hint("("+choices+")"))

		line, err := p.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		answer := def
		switch strings.ToLower(line) {
		case "":
		case "y", "yes":
			answer = true
		case "n", "no":
			answer = false
		default:
			if err != nil {
				return def, nil
			}
			fmt.Fprintf(p.out, "%s answer y or n\n", failure("✘"))
			continue
		}

		yn := "no"
		if answer {
			yn = "yes"
		}
		fmt.Fprintf(p.out, "%s %s %s\n", success("✔"), label(question), yn)
		return answer, nil
	}
}

// WaitEnter prints msg and, on a terminal, blocks until one byte is read.
func (p *Prompter) WaitEnter(msg string) error {
	fmt.Fprintln(p.out, msg)
	if !p.tty {
		return nil
	}
	_, err := p.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	return strings.TrimSpace(line), err
}
