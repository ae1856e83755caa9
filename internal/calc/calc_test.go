package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanScheduleInvariants(t *testing.T) {
	for _, method := range []RepaymentMethod{EqualPayment, EqualPrincipal, Bullet} {
		for _, rate := range []float64{0, 3.5, 12} {
			in := LoanInput{Principal: 123_456_789, AnnualRate: rate, Months: 37, Method: method}
			res, err := Loan(in)
			require.NoError(t, err)

			require.Len(t, res.Schedule, in.Months)
			last := res.Schedule[len(res.Schedule)-1]
			assert.Zero(t, last.Balance, "%s %.1f%%: final balance", method, rate)
			assert.Equal(t, in.Principal, res.TotalPrincipal)
			assert.Equal(t, res.TotalPrincipal+res.TotalInterest, res.TotalPayment)

			var sum int64
			for i, inst := range res.Schedule {
				assert.Equal(t, i+1, inst.Month)
				assert.Equal(t, inst.Principal+inst.Interest, inst.Payment)
				sum += inst.Payment
			}
			assert.Equal(t, res.TotalPayment, sum)
		}
	}
}

func TestLoanEqualPaymentZeroRate(t *testing.T) {
	res, err := Loan(LoanInput{Principal: 12_000_000, Months: 12, Method: EqualPayment})
	require.NoError(t, err)
	for _, inst := range res.Schedule {
		assert.Equal(t, int64(1_000_000), inst.Payment)
		assert.Zero(t, inst.Interest)
	}
}

func TestLoanEqualPaymentConstant(t *testing.T) {
	res, err := Loan(LoanInput{Principal: 10_000_000, AnnualRate: 5, Months: 24, Method: EqualPayment})
	require.NoError(t, err)

	first := res.Schedule[0].Payment
	for _, inst := range res.Schedule[:len(res.Schedule)-1] {
		assert.Equal(t, first, inst.Payment)
	}
	assert.InDelta(t, first, res.Schedule[len(res.Schedule)-1].Payment, 50)
	assert.Equal(t, int64(438_714), first)
}

func TestLoanEqualPrincipal(t *testing.T) {
	res, err := Loan(LoanInput{Principal: 12_000_000, AnnualRate: 6, Months: 12, Method: EqualPrincipal})
	require.NoError(t, err)

	assert.Equal(t, int64(1_060_000), res.Schedule[0].Payment)
	assert.Equal(t, int64(1_005_000), res.Schedule[11].Payment)
	assert.Equal(t, int64(390_000), res.TotalInterest)
}

func TestLoanBullet(t *testing.T) {
	res, err := Loan(LoanInput{Principal: 10_000_000, AnnualRate: 5, Months: 12, Method: Bullet})
	require.NoError(t, err)

	for _, inst := range res.Schedule[:11] {
		assert.Equal(t, int64(41_667), inst.Payment)
		assert.Equal(t, int64(10_000_000), inst.Balance)
	}
	assert.Equal(t, int64(10_041_667), res.Schedule[11].Payment)
	assert.Equal(t, int64(500_004), res.TotalInterest)
}

func TestLoanValidation(t *testing.T) {
	tests := []struct {
		name string
		in   LoanInput
	}{
		{name: "zero principal", in: LoanInput{Principal: 0, Months: 12, Method: Bullet}},
		{name: "negative rate", in: LoanInput{Principal: 1000, AnnualRate: -1, Months: 12, Method: Bullet}},
		{name: "zero months", in: LoanInput{Principal: 1000, Method: Bullet}},
		{name: "too many months", in: LoanInput{Principal: 1000, Months: 601, Method: Bullet}},
		{name: "unknown method", in: LoanInput{Principal: 1000, Months: 12, Method: "balloon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Loan(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSalary(t *testing.T) {
	res, err := Salary(SalaryInput{AnnualSalary: 40_000_000})
	require.NoError(t, err)

	assert.Equal(t, int64(3_333_333), res.MonthlyGross)
	assert.Equal(t, int64(DefaultNonTaxable), res.NonTaxable)
	assert.Equal(t, int64(140_990), res.Pension)
	assert.Equal(t, int64(111_070), res.Health)
	assert.Equal(t, int64(14_380), res.LongTermCare)
	assert.Equal(t, int64(28_190), res.Employment)
	assert.InDelta(t, 130_370, res.IncomeTax, 10)
	assert.Equal(t, res.IncomeTax/100*10, res.LocalIncomeTax)

	sum := res.Pension + res.Health + res.LongTermCare + res.Employment + res.IncomeTax + res.LocalIncomeTax
	assert.Equal(t, sum, res.TotalDeductions)
	assert.Equal(t, res.MonthlyGross-res.TotalDeductions, res.NetMonthly)
	assert.Equal(t, res.NetMonthly*12, res.NetAnnual)
}

func TestSalaryPensionBase(t *testing.T) {
	low, err := Salary(SalaryInput{AnnualSalary: 6_000_000})
	require.NoError(t, err)
	assert.Equal(t, int64(18_000), low.Pension, "base is raised to the minimum")
	assert.Zero(t, low.IncomeTax)

	high, err := Salary(SalaryInput{AnnualSalary: 100_000_000})
	require.NoError(t, err)
	assert.Equal(t, int64(286_650), high.Pension, "base is capped at the maximum")
}

func TestSalaryDependentsLowerTax(t *testing.T) {
	one, err := Salary(SalaryInput{AnnualSalary: 40_000_000, Dependents: 1})
	require.NoError(t, err)
	three, err := Salary(SalaryInput{AnnualSalary: 40_000_000, Dependents: 3})
	require.NoError(t, err)

	assert.Less(t, three.IncomeTax, one.IncomeTax)
	assert.Greater(t, three.NetMonthly, one.NetMonthly)
}

func TestSalaryNoNonTaxable(t *testing.T) {
	res, err := Salary(SalaryInput{AnnualSalary: 40_000_000, NonTaxable: -1})
	require.NoError(t, err)
	assert.Zero(t, res.NonTaxable)
	assert.Equal(t, int64(118_160), res.Health)
}

func TestSalaryValidation(t *testing.T) {
	_, err := Salary(SalaryInput{AnnualSalary: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Salary(SalaryInput{AnnualSalary: 1_000_000, Dependents: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProgressiveTax(t *testing.T) {
	tests := []struct {
		base float64
		want float64
	}{
		{0, 0},
		{14_000_000, 840_000},
		{50_000_000, 6_240_000},
		{88_000_000, 15_360_000},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, progressiveTax(tt.base), 0.01, "base %.0f", tt.base)
	}
}

func TestBrokerage(t *testing.T) {
	tests := []struct {
		name string
		in   BrokerageInput
		want BrokerageResult
	}{
		{
			name: "sale under 50M",
			in:   BrokerageInput{Type: Sale, Price: 40_000_000},
			want: BrokerageResult{Amount: 40_000_000, Rate: 0.6, Cap: 250_000, Fee: 240_000, Total: 240_000},
		},
		{
			name: "sale capped",
			in:   BrokerageInput{Type: Sale, Price: 45_000_000},
			want: BrokerageResult{Amount: 45_000_000, Rate: 0.6, Cap: 250_000, Fee: 250_000, Total: 250_000},
		},
		{
			name: "sale 100M",
			in:   BrokerageInput{Type: Sale, Price: 100_000_000},
			want: BrokerageResult{Amount: 100_000_000, Rate: 0.5, Cap: 800_000, Fee: 500_000, Total: 500_000},
		},
		{
			name: "sale 1B with VAT",
			in:   BrokerageInput{Type: Sale, Price: 1_000_000_000, IncludeVAT: true},
			want: BrokerageResult{Amount: 1_000_000_000, Rate: 0.5, Fee: 5_000_000, VAT: 500_000, Total: 5_500_000},
		},
		{
			name: "sale top bracket",
			in:   BrokerageInput{Type: Sale, Price: 2_000_000_000},
			want: BrokerageResult{Amount: 2_000_000_000, Rate: 0.7, Fee: 14_000_000, Total: 14_000_000},
		},
		{
			name: "jeonse 300M",
			in:   BrokerageInput{Type: Jeonse, Deposit: 300_000_000},
			want: BrokerageResult{Amount: 300_000_000, Rate: 0.3, Fee: 900_000, Total: 900_000},
		},
		{
			name: "monthly converted by 100",
			in:   BrokerageInput{Type: Monthly, Deposit: 10_000_000, MonthlyRent: 500_000},
			want: BrokerageResult{Amount: 60_000_000, Rate: 0.4, Cap: 300_000, Fee: 240_000, Total: 240_000},
		},
		{
			name: "monthly converted by 70",
			in:   BrokerageInput{Type: Monthly, Deposit: 5_000_000, MonthlyRent: 300_000},
			want: BrokerageResult{Amount: 26_000_000, Rate: 0.5, Cap: 200_000, Fee: 130_000, Total: 130_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Brokerage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestBrokerageLargestAmount(t *testing.T) {
	res, err := Brokerage(BrokerageInput{Type: Sale, Price: maxBrokerageAmount, IncludeVAT: true})
	require.NoError(t, err)
	assert.Equal(t, int64(70_000_000_000), res.Fee)
	assert.Equal(t, int64(77_000_000_000), res.Total)
}

func TestBrokerageValidation(t *testing.T) {
	tests := []BrokerageInput{
		{Type: Sale},
		{Type: Jeonse, Deposit: -1},
		{Type: Monthly, Deposit: 1_000_000},
		{Type: "auction", Price: 1},
		{Type: Sale, Price: 2_000_000_000_000_000_000},
		{Type: Jeonse, Deposit: maxBrokerageAmount + 1},
		{Type: Monthly, MonthlyRent: 100_000_000_000_000_000},
		{Type: Monthly, Deposit: maxBrokerageAmount, MonthlyRent: 1},
	}
	for _, in := range tests {
		_, err := Brokerage(in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}
}
