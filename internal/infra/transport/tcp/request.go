package tcp

import (
	"strconv"
	"strings"

	"github.com/mdashfaqhussain/atm-asignment/internal/app/atm"
)

type command int

const (
	withdrawCommand command = iota + 1
	balanceCommand
)

// request represents a parsed client command. amount is only set for withdrawals.
type request struct {
	command command
	amount  int
}

// parseRequest parses either "WITHDRAW|<amount>" or "BALANCE".
func parseRequest(s string) (request, error) {
	parts := strings.Split(s, "|")

	switch {
	case len(parts) == 1 && parts[0] == "BALANCE":
		return request{command: balanceCommand}, nil
	case len(parts) == 2 && parts[0] == "WITHDRAW":
		amount, err := strconv.Atoi(parts[1])
		if err != nil {
			return request{}, atm.ErrInvalidAmount
		}

		return request{command: withdrawCommand, amount: amount}, nil
	default:
		return request{}, atm.ErrInvalidRequest
	}
}
