package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/mdashfaqhussain/atm-asignment/internal/app/atm"
)

// Service defines the cash operations available at the prompt.
type Service interface {
	Withdraw(amount int) (atm.Withdrawal, error)
	Balance() int
}

const (
	choiceWithdraw = "1"
	choiceExit     = "2"
)

// Prompt drives the interactive withdraw/exit menu over a reader and writer.
type Prompt struct {
	service Service
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompt creates a prompt reading whitespace separated tokens from in.
func NewPrompt(in io.Reader, out io.Writer, service Service) *Prompt {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Prompt{
		service: service,
		scanner: scanner,
		out:     out,
	}
}

// Run serves menu choices until exit is chosen, input ends or ctx is cancelled.
func (p *Prompt) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		p.printf("1. Withdraw\n2. Exit\n")

		choice, ok := p.next()
		if !ok {
			return p.scanner.Err()
		}

		switch choice {
		case choiceWithdraw:
			amount, ok := p.readPositiveInt()
			if !ok {
				return p.scanner.Err()
			}
			p.withdraw(amount)
		case choiceExit:
			slog.Debug("Exit requested")
			return nil
		default:
			p.printf("Invalid choice\n")
		}
	}
}

func (p *Prompt) withdraw(amount int) {
	w, err := p.service.Withdraw(amount)
	if err != nil {
		p.printf("Error: %s\n", err)
		return
	}

	p.printf("Dispensed %s\nRemaining balance: %d\n", w, p.service.Balance())
}

// readPositiveInt re-prompts until a strictly positive integer is read.
func (p *Prompt) readPositiveInt() (int, bool) {
	p.printf("Enter amount:\n")

	for {
		token, ok := p.next()
		if !ok {
			return 0, false
		}

		amount, err := strconv.Atoi(token)
		if err == nil && amount > 0 {
			return amount, true
		}

		p.printf("Please enter a valid positive integer:\n")
	}
}

func (p *Prompt) next() (string, bool) {
	if !p.scanner.Scan() {
		return "", false
	}

	return p.scanner.Text(), true
}

func (p *Prompt) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		slog.Error("Failed to write prompt output", "error", err)
	}
}
