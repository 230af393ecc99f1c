package atm

import "fmt"

type ValidationService struct {
	service Service
}

func NewValidationService(service Service) *ValidationService {
	return &ValidationService{service: service}
}

func (v *ValidationService) Withdraw(amount int) (Withdrawal, error) {
	if amount <= 0 {
		return Withdrawal{}, fmt.Errorf("%w: %d is not positive", ErrInvalidAmount, amount)
	}

	return v.service.Withdraw(amount)
}

func (v *ValidationService) Balance() int {
	return v.service.Balance()
}
