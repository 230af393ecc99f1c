package atm

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// Withdrawal describes notes dispensed for one successful request.
type Withdrawal struct {
	ID          uuid.UUID
	Amount      int
	Notes       map[Denomination]int
	DispensedAt time.Time
}

// String renders the breakdown as value x count pairs, largest note first.
func (w Withdrawal) String() string {
	denominations := slices.SortedFunc(maps.Keys(w.Notes), func(a, b Denomination) int {
		return b.Value - a.Value
	})

	parts := make([]string, 0, len(denominations))
	for _, d := range denominations {
		parts = append(parts, fmt.Sprintf("%dx%d", d.Value, w.Notes[d]))
	}

	return strings.Join(parts, ",")
}

// Engine holds the cash inventory and serves withdrawals one at a time.
type Engine struct {
	mu        sync.Mutex
	registry  Registry
	inventory map[Denomination]int
	clock     clock.Clock
}

// NewEngine creates an engine seeded with note counts keyed by face value.
// The denomination set is fixed to the seed keys.
func NewEngine(seed map[int]int, clock clock.Clock) (*Engine, error) {
	registry, err := NewRegistry(slices.Collect(maps.Keys(seed))...)
	if err != nil {
		return nil, err
	}

	inventory := make(map[Denomination]int, len(seed))
	for _, d := range registry.Values() {
		count := seed[d.Value]
		if count < 0 {
			return nil, fmt.Errorf("%w: %d notes of %d", ErrInvalidInventory, count, d.Value)
		}
		inventory[d] = count
	}

	return &Engine{
		registry:  registry,
		inventory: inventory,
		clock:     clock,
	}, nil
}

// Withdraw dispenses exactly amount using the largest notes first.
// Either the whole amount is dispensed and inventory decremented, or an error is returned and inventory is untouched.
func (e *Engine) Withdraw(amount int) (Withdrawal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	slog.Info("Executing withdrawal", "amount", amount)

	if amount <= 0 {
		return Withdrawal{}, fmt.Errorf("%w: %d is not positive", ErrInvalidAmount, amount)
	}

	balance := e.balance()
	if amount > balance {
		return Withdrawal{}, fmt.Errorf("%w: requested %d, balance %d", ErrInsufficientFunds, amount, balance)
	}

	notes, remaining := e.selectNotes(amount)
	if remaining > 0 {
		return Withdrawal{}, fmt.Errorf("%w: %d cannot be composed, %d left over", ErrDenominationUnavailable, amount, remaining)
	}

	for d, n := range notes {
		e.inventory[d] -= n
	}

	w := Withdrawal{
		ID:          uuid.New(),
		Amount:      amount,
		Notes:       notes,
		DispensedAt: e.clock.Now(),
	}

	for _, d := range e.registry.denominations {
		if n, ok := notes[d]; ok {
			slog.Info("Dispensing", "denomination", d.Value, "count", n)
		}
	}
	slog.Info("Withdrawal successful", "id", w.ID, "amount", amount, "balance", balance-amount)

	return w, nil
}

// selectNotes computes a greedy breakdown without touching inventory.
func (e *Engine) selectNotes(amount int) (map[Denomination]int, int) {
	notes := make(map[Denomination]int)
	remaining := amount

	for _, d := range e.registry.denominations {
		count := e.inventory[d]
		if count <= 0 || d.Value > remaining {
			continue
		}

		n := min(remaining/d.Value, count)
		if n > 0 {
			notes[d] = n
			remaining -= n * d.Value
		}

		if remaining == 0 {
			break
		}
	}

	return notes, remaining
}

// Balance returns the total value of notes held. The result is advisory and may be stale once returned.
func (e *Engine) Balance() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.balance()
}

func (e *Engine) balance() int {
	total := 0
	for d, count := range e.inventory {
		total += d.Value * count
	}

	return total
}

// Inventory returns a copy of the current note counts.
func (e *Engine) Inventory() map[Denomination]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return maps.Clone(e.inventory)
}
