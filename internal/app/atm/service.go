package atm

// Service defines a contract for dispensing cash.
type Service interface {
	Withdraw(amount int) (Withdrawal, error)
	Balance() int
}
