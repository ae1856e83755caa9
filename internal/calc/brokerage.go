package calc

import "fmt"

// TransactionType is the kind of housing deal.
type TransactionType string

const (
	Sale    TransactionType = "sale"    // 매매
	Jeonse  TransactionType = "jeonse"  // 전세
	Monthly TransactionType = "monthly" // 월세
)

// BrokerageInput describes a housing transaction.
type BrokerageInput struct {
	Type        TransactionType `json:"type"`
	Price       int64           `json:"price"`       // Sale price
	Deposit     int64           `json:"deposit"`     // Jeonse or monthly deposit
	MonthlyRent int64           `json:"monthlyRent"` // Monthly only
	IncludeVAT  bool            `json:"includeVat"`
}

// BrokerageResult is the maximum legal brokerage fee.
type BrokerageResult struct {
	Amount int64   `json:"amount"` // Transaction amount the rate applies to
	Rate   float64 `json:"rate"`   // Percent
	Cap    int64   `json:"cap,omitempty"`
	Fee    int64   `json:"fee"`
	VAT    int64   `json:"vat"`
	Total  int64   `json:"total"`
}

// maxBrokerageAmount bounds the transaction amount a fee is computed for.
const maxBrokerageAmount = 10_000_000_000_000

type feeBracket struct {
	below    int64 // Exclusive upper bound; 0 means unbounded
	permille int64
	cap      int64 // 0 means uncapped
}

// Housing brokerage schedule effective October 2021.
var (
	saleBrackets = []feeBracket{
		{below: 50_000_000, permille: 6, cap: 250_000},
		{below: 200_000_000, permille: 5, cap: 800_000},
		{below: 900_000_000, permille: 4},
		{below: 1_200_000_000, permille: 5},
		{below: 1_500_000_000, permille: 6},
		{permille: 7},
	}
	leaseBrackets = []feeBracket{
		{below: 50_000_000, permille: 5, cap: 200_000},
		{below: 100_000_000, permille: 4, cap: 300_000},
		{below: 600_000_000, permille: 3},
		{below: 1_200_000_000, permille: 4},
		{below: 1_500_000_000, permille: 5},
		{permille: 6},
	}
)

// Brokerage computes the maximum brokerage fee. Monthly rentals are converted
// to deposit + rent*100, or deposit + rent*70 when that total is under 50M.
func Brokerage(in BrokerageInput) (*BrokerageResult, error) {
	var amount int64
	var brackets []feeBracket

	switch in.Type {
	case Sale:
		if in.Price <= 0 || in.Price > maxBrokerageAmount {
			return nil, fmt.Errorf("%w: price must be between 1 and %d", ErrInvalidInput, int64(maxBrokerageAmount))
		}
		amount, brackets = in.Price, saleBrackets
	case Jeonse:
		if in.Deposit <= 0 || in.Deposit > maxBrokerageAmount {
			return nil, fmt.Errorf("%w: deposit must be between 1 and %d", ErrInvalidInput, int64(maxBrokerageAmount))
		}
		amount, brackets = in.Deposit, leaseBrackets
	case Monthly:
		if in.Deposit < 0 || in.MonthlyRent <= 0 {
			return nil, fmt.Errorf("%w: monthly rent must be positive and deposit non-negative", ErrInvalidInput)
		}
		if in.Deposit > maxBrokerageAmount || in.MonthlyRent > (maxBrokerageAmount-in.Deposit)/100 {
			return nil, fmt.Errorf("%w: converted amount exceeds %d", ErrInvalidInput, int64(maxBrokerageAmount))
		}
		amount = in.Deposit + in.MonthlyRent*100
		if amount < 50_000_000 {
			amount = in.Deposit + in.MonthlyRent*70
		}
		brackets = leaseBrackets
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, in.Type)
	}

	b := brackets[len(brackets)-1]
	for _, candidate := range brackets {
		if candidate.below == 0 || amount < candidate.below {
			b = candidate
			break
		}
	}

	fee := amount * b.permille / 1000
	if b.cap > 0 {
		fee = min(fee, b.cap)
	}

	res := &BrokerageResult{
		Amount: amount,
		Rate:   float64(b.permille) / 10,
		Cap:    b.cap,
		Fee:    fee,
	}
	if in.IncludeVAT {
		res.VAT = fee / 10
	}
	res.Total = res.Fee + res.VAT

	return res, nil
}
