package calc

import (
	"fmt"
	"math"
)

// Payroll rates (employee share).
const (
	pensionRate      = 0.045
	pensionBaseMin   = 400_000
	pensionBaseMax   = 6_370_000
	healthRate       = 0.03545
	longTermCareRate = 0.1295 // Of the health premium
	employmentRate   = 0.009
	basicDeduction   = 1_500_000 // Per dependent, annual

	// DefaultNonTaxable is the monthly meal allowance exempt from tax.
	DefaultNonTaxable = 200_000
)

// SalaryInput describes an annual salary contract.
type SalaryInput struct {
	AnnualSalary int64 `json:"annualSalary"`
	NonTaxable   int64 `json:"nonTaxable"` // Monthly; negative means none, zero means default
	Dependents   int   `json:"dependents"` // Including the employee; zero means 1
}

// SalaryResult is the monthly take-home breakdown.
type SalaryResult struct {
	MonthlyGross    int64 `json:"monthlyGross"`
	NonTaxable      int64 `json:"nonTaxable"`
	Pension         int64 `json:"pension"`
	Health          int64 `json:"health"`
	LongTermCare    int64 `json:"longTermCare"`
	Employment      int64 `json:"employment"`
	IncomeTax       int64 `json:"incomeTax"`
	LocalIncomeTax  int64 `json:"localIncomeTax"`
	TotalDeductions int64 `json:"totalDeductions"`
	NetMonthly      int64 `json:"netMonthly"`
	NetAnnual       int64 `json:"netAnnual"`
}

// Salary estimates monthly take-home pay from the four social insurances and
// a simplified annual income tax spread evenly over twelve months.
func Salary(in SalaryInput) (*SalaryResult, error) {
	if in.AnnualSalary <= 0 || in.AnnualSalary > 10_000_000_000 {
		return nil, fmt.Errorf("%w: annual salary must be positive", ErrInvalidInput)
	}
	if in.Dependents < 0 || in.Dependents > 20 {
		return nil, fmt.Errorf("%w: dependents must be between 1 and 20", ErrInvalidInput)
	}
	if in.Dependents == 0 {
		in.Dependents = 1
	}
	switch {
	case in.NonTaxable == 0:
		in.NonTaxable = DefaultNonTaxable
	case in.NonTaxable < 0:
		in.NonTaxable = 0
	}

	gross := in.AnnualSalary / 12
	nonTaxable := min(in.NonTaxable, gross)
	taxable := float64(gross - nonTaxable)

	pensionBase := math.Min(math.Max(taxable, pensionBaseMin), pensionBaseMax)
	res := &SalaryResult{
		MonthlyGross: gross,
		NonTaxable:   nonTaxable,
		Pension:      truncate10(pensionBase * pensionRate),
		Health:       truncate10(taxable * healthRate),
		Employment:   truncate10(taxable * employmentRate),
	}
	res.LongTermCare = truncate10(float64(res.Health) * longTermCareRate)

	annualTaxable := taxable * 12
	base := annualTaxable - earnedIncomeDeduction(annualTaxable) -
		float64(basicDeduction*in.Dependents) - float64(res.Pension*12)
	tax := progressiveTax(math.Max(base, 0))
	tax = math.Max(tax-earnedIncomeTaxCredit(tax, annualTaxable), 0)

	res.IncomeTax = truncate10(tax / 12)
	// Local income tax is 10% of income tax, in tens of won.
	res.LocalIncomeTax = res.IncomeTax / 100 * 10

	res.TotalDeductions = res.Pension + res.Health + res.LongTermCare + res.Employment +
		res.IncomeTax + res.LocalIncomeTax
	res.NetMonthly = gross - res.TotalDeductions
	res.NetAnnual = res.NetMonthly * 12

	return res, nil
}

// earnedIncomeDeduction is the 근로소득공제 on annual gross wages.
func earnedIncomeDeduction(gross float64) float64 {
	var d float64
	switch {
	case gross <= 5_000_000:
		d = gross * 0.7
	case gross <= 15_000_000:
		d = 3_500_000 + (gross-5_000_000)*0.4
	case gross <= 45_000_000:
		d = 7_500_000 + (gross-15_000_000)*0.15
	case gross <= 100_000_000:
		d = 12_000_000 + (gross-45_000_000)*0.05
	default:
		d = 14_750_000 + (gross-100_000_000)*0.02
	}
	return math.Min(d, 20_000_000)
}

type taxBracket struct {
	upTo      float64
	rate      float64
	deduction float64
}

var taxBrackets = []taxBracket{
	{upTo: 14_000_000, rate: 0.06, deduction: 0},
	{upTo: 50_000_000, rate: 0.15, deduction: 1_260_000},
	{upTo: 88_000_000, rate: 0.24, deduction: 5_760_000},
	{upTo: 150_000_000, rate: 0.35, deduction: 15_440_000},
	{upTo: 300_000_000, rate: 0.38, deduction: 19_940_000},
	{upTo: 500_000_000, rate: 0.40, deduction: 25_940_000},
	{upTo: 1_000_000_000, rate: 0.42, deduction: 35_940_000},
	{upTo: math.Inf(1), rate: 0.45, deduction: 65_940_000},
}

// progressiveTax applies the 6%-45% income tax brackets to a tax base.
func progressiveTax(base float64) float64 {
	for _, b := range taxBrackets {
		if base <= b.upTo {
			return base*b.rate - b.deduction
		}
	}
	return 0
}

// earnedIncomeTaxCredit is the 근로소득세액공제, capped by gross wages.
func earnedIncomeTaxCredit(tax, gross float64) float64 {
	credit := tax * 0.55
	if tax > 1_300_000 {
		credit = 715_000 + (tax-1_300_000)*0.3
	}

	var limit float64
	switch {
	case gross <= 33_000_000:
		limit = 740_000
	case gross <= 70_000_000:
		limit = math.Max(740_000-(gross-33_000_000)*0.008, 660_000)
	case gross <= 120_000_000:
		limit = math.Max(660_000-(gross-70_000_000)*0.5, 500_000)
	default:
		limit = math.Max(500_000-(gross-120_000_000)*0.5, 200_000)
	}
	return math.Min(credit, limit)
}
