package calc

import (
	"fmt"
	"math"
)

// RepaymentMethod selects how a loan is paid back.
type RepaymentMethod string

const (
	EqualPayment   RepaymentMethod = "equal_payment"   // 원리금균등
	EqualPrincipal RepaymentMethod = "equal_principal" // 원금균등
	Bullet         RepaymentMethod = "bullet"          // 만기일시
)

const (
	maxLoanMonths    = 600
	maxLoanPrincipal = 1_000_000_000_000
)

// LoanInput describes a loan.
type LoanInput struct {
	Principal  int64           `json:"principal"`
	AnnualRate float64         `json:"annualRate"` // Percent
	Months     int             `json:"months"`
	Method     RepaymentMethod `json:"method"`
}

// Installment is one month of a repayment schedule.
type Installment struct {
	Month     int   `json:"month"`
	Payment   int64 `json:"payment"`
	Principal int64 `json:"principal"`
	Interest  int64 `json:"interest"`
	Balance   int64 `json:"balance"`
}

// LoanResult is a full repayment schedule with totals.
type LoanResult struct {
	Method         RepaymentMethod `json:"method"`
	Schedule       []Installment   `json:"schedule"`
	FirstPayment   int64           `json:"firstPayment"`
	TotalPayment   int64           `json:"totalPayment"`
	TotalInterest  int64           `json:"totalInterest"`
	TotalPrincipal int64           `json:"totalPrincipal"`
}

// Loan builds the monthly schedule. Interest is charged on the opening
// balance of each month and rounded to the won; the last installment settles
// any rounding remainder so the balance ends at zero.
func Loan(in LoanInput) (*LoanResult, error) {
	if in.Principal <= 0 || in.Principal > maxLoanPrincipal {
		return nil, fmt.Errorf("%w: principal must be between 1 and %d", ErrInvalidInput, int64(maxLoanPrincipal))
	}
	if in.AnnualRate < 0 || in.AnnualRate > 100 {
		return nil, fmt.Errorf("%w: annual rate must be between 0 and 100", ErrInvalidInput)
	}
	if in.Months <= 0 || in.Months > maxLoanMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", ErrInvalidInput, maxLoanMonths)
	}

	r := in.AnnualRate / 100 / 12
	n := in.Months
	p := float64(in.Principal)

	var principalFor func(interest int64) int64
	switch in.Method {
	case EqualPayment:
		payment := p / float64(n)
		if r > 0 {
			f := math.Pow(1+r, float64(n))
			payment = p * r * f / (f - 1)
		}
		fixed := roundWon(payment)
		principalFor = func(interest int64) int64 { return fixed - interest }
	case EqualPrincipal:
		part := roundWon(p / float64(n))
		principalFor = func(int64) int64 { return part }
	case Bullet:
		principalFor = func(int64) int64 { return 0 }
	default:
		return nil, fmt.Errorf("%w: unknown repayment method %q", ErrInvalidInput, in.Method)
	}

	res := &LoanResult{Method: in.Method, Schedule: make([]Installment, 0, n)}
	balance := in.Principal
	for month := 1; month <= n; month++ {
		interest := roundWon(float64(balance) * r)
		principal := principalFor(interest)
		if month == n || principal > balance {
			principal = balance
		}
		principal = max(principal, 0)
		balance -= principal

		inst := Installment{
			Month:     month,
			Payment:   principal + interest,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		}
		res.Schedule = append(res.Schedule, inst)
		res.TotalPayment += inst.Payment
		res.TotalInterest += interest
		res.TotalPrincipal += principal
	}
	res.FirstPayment = res.Schedule[0].Payment

	return res, nil
}
