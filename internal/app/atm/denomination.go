package atm

import (
	"fmt"
	"slices"
	"strconv"
)

// Denomination is a currency note with a fixed face value.
type Denomination struct {
	Name  string
	Value int
}

var (
	Hundred     = Denomination{Name: "HUNDRED", Value: 100}
	TwoHundred  = Denomination{Name: "TWO_HUNDRED", Value: 200}
	FiveHundred = Denomination{Name: "FIVE_HUNDRED", Value: 500}
)

var knownDenominations = map[int]Denomination{
	Hundred.Value:     Hundred,
	TwoHundred.Value:  TwoHundred,
	FiveHundred.Value: FiveHundred,
}

func (d Denomination) String() string {
	return strconv.Itoa(d.Value)
}

// Registry is the fixed set of denominations an engine dispenses, ordered by descending face value.
type Registry struct {
	denominations []Denomination
}

// NewRegistry builds a registry from distinct positive face values.
func NewRegistry(values ...int) (Registry, error) {
	if len(values) == 0 {
		return Registry{}, fmt.Errorf("%w: no denominations", ErrInvalidDenomination)
	}

	seen := make(map[int]struct{}, len(values))
	denominations := make([]Denomination, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			return Registry{}, fmt.Errorf("%w: %d is not positive", ErrInvalidDenomination, v)
		}
		if _, ok := seen[v]; ok {
			return Registry{}, fmt.Errorf("%w: %d is duplicated", ErrInvalidDenomination, v)
		}
		seen[v] = struct{}{}

		d, ok := knownDenominations[v]
		if !ok {
			d = Denomination{Name: "NOTE_" + strconv.Itoa(v), Value: v}
		}
		denominations = append(denominations, d)
	}

	slices.SortFunc(denominations, func(a, b Denomination) int {
		return b.Value - a.Value
	})

	return Registry{denominations: denominations}, nil
}

// Values returns denominations sorted strictly descending by face value.
func (r Registry) Values() []Denomination {
	return slices.Clone(r.denominations)
}

func (r Registry) Lookup(value int) (Denomination, bool) {
	for _, d := range r.denominations {
		if d.Value == value {
			return d, true
		}
	}

	return Denomination{}, false
}
