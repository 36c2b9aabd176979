package overtime

import (
	"math"

	"github.com/tempohr/tempo-backend-go/internal/domain/overtime"
)

// nextBalance applies a compensation transition to the overtime-hours
// balance. priorHours is nil on create; newHours is nil on delete. Editing
// reverses the prior amount before applying the new one.
//
// Unlike the upstream design this ledger guards against a negative result,
// mirroring the leave engine: consuming more hours than the balance holds
// fails with overtime.ErrInsufficientOvertimeBalance before any write.
func nextBalance(priorHours, newHours *float64, currentBalance float64) (float64, error) {
	balance := currentBalance
	if priorHours != nil {
		balance += *priorHours
	}
	if newHours != nil {
		balance -= *newHours
	}

	balance = math.Round(balance*100) / 100
	if balance < 0 {
		return 0, overtime.ErrInsufficientOvertimeBalance
	}
	return balance, nil
}
