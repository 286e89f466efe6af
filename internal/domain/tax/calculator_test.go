package tax

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/tax-planner/backend/internal/domain/error"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func assertDecimal(t *testing.T, field string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}

func TestCalculate_OldRegime(t *testing.T) {
	t.Run("income exactly at first slab boundary pays nothing", func(t *testing.T) {
		b, err := Calculate(d("250000"), RegimeOld, decimal.Zero, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "BaseTax", b.BaseTax, decimal.Zero)
		assertDecimal(t, "TotalTax", b.TotalTax, decimal.Zero)
		assertDecimal(t, "TakeHomeAnnual", b.TakeHomeAnnual, d("250000"))
	})

	t.Run("income spanning three slabs", func(t *testing.T) {
		b, err := Calculate(d("700000"), RegimeOld, decimal.Zero, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 249999 @ 5% + 199999 @ 20%, per the shared-boundary convention
		// (slab bounds 250001/500000 and 500001/1000000).
		assertDecimal(t, "BaseTax", b.BaseTax, d("52499.75"))
		assertDecimal(t, "Surcharge", b.Surcharge, decimal.Zero)
		assertDecimal(t, "HealthEducationCess", b.HealthEducationCess, d("2099.99"))
		assertDecimal(t, "TotalTax", b.TotalTax, d("54599.74"))
		assertDecimal(t, "EffectiveTaxRate", b.EffectiveTaxRate, d("7.8"))
		assertDecimal(t, "TakeHomeAnnual", b.TakeHomeAnnual, d("645400.26"))
		assertDecimal(t, "TakeHomeMonthly", b.TakeHomeMonthly, d("53783.36"))
	})

	t.Run("deductions reduce taxable income", func(t *testing.T) {
		b, err := Calculate(d("700000"), RegimeOld, d("200000"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Taxable 500000: only the 5% slab applies.
		assertDecimal(t, "TaxableIncome", b.TaxableIncome, d("500000"))
		assertDecimal(t, "BaseTax", b.BaseTax, d("12499.95"))
	})

	t.Run("deductions exceeding income floor taxable at zero", func(t *testing.T) {
		b, err := Calculate(d("100000"), RegimeOld, d("500000"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "TaxableIncome", b.TaxableIncome, decimal.Zero)
		assertDecimal(t, "BaseTax", b.BaseTax, decimal.Zero)
		assertDecimal(t, "TakeHomeAnnual", b.TakeHomeAnnual, d("100000"))
	})
}

func TestCalculate_NewRegime(t *testing.T) {
	b, err := Calculate(d("700000"), RegimeNew, decimal.Zero, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 249999 @ 5% + 199999 @ 10%.
	assertDecimal(t, "BaseTax", b.BaseTax, d("32499.85"))
}

func TestCalculate_ZeroIncome(t *testing.T) {
	for _, regime := range []Regime{RegimeOld, RegimeNew} {
		t.Run(string(regime), func(t *testing.T) {
			b, err := Calculate(decimal.Zero, regime, decimal.Zero, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			assertDecimal(t, "BaseTax", b.BaseTax, decimal.Zero)
			assertDecimal(t, "Surcharge", b.Surcharge, decimal.Zero)
			assertDecimal(t, "HealthEducationCess", b.HealthEducationCess, decimal.Zero)
			assertDecimal(t, "EffectiveTaxRate", b.EffectiveTaxRate, decimal.Zero)
			assertDecimal(t, "TakeHomeAnnual", b.TakeHomeAnnual, decimal.Zero)
		})
	}
}

func TestCalculate_RebateClamp(t *testing.T) {
	t.Run("each rebate floors at zero individually", func(t *testing.T) {
		rebates := map[string]decimal.Decimal{
			"a": d("100000"),
			"b": d("100000"),
		}

		b, err := Calculate(d("300000"), RegimeOld, decimal.Zero, rebates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Base tax before rebates is 2499.95; the first rebate floors it at
		// zero and the second leaves it there. Tax is never refunded as
		// negative.
		assertDecimal(t, "BaseTax", b.BaseTax, decimal.Zero)
		assertDecimal(t, "TotalTax", b.TotalTax, decimal.Zero)
		assertDecimal(t, "TakeHomeAnnual", b.TakeHomeAnnual, d("300000"))
	})

	t.Run("partial rebate reduces base tax", func(t *testing.T) {
		rebates := map[string]decimal.Decimal{
			"standard": d("2000"),
		}

		b, err := Calculate(d("300000"), RegimeOld, decimal.Zero, rebates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 49999 @ 5% = 2499.95, minus 2000.
		assertDecimal(t, "BaseTax", b.BaseTax, d("499.95"))
	})
}

func TestCalculate_Surcharge(t *testing.T) {
	t.Run("25 percent bracket above 5M, no stacking", func(t *testing.T) {
		b, err := Calculate(d("6000000"), RegimeNew, decimal.Zero, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "BaseTax", b.BaseTax, d("1537498.95"))
		// Exactly 25% of base tax; a stacked 10%+15%+25% would be far larger.
		assertDecimal(t, "Surcharge", b.Surcharge, d("384374.74"))
	})

	t.Run("brackets are exclusive at thresholds", func(t *testing.T) {
		cases := []struct {
			income string
			rate   string
		}{
			{"1000000", "0"},
			{"1000001", "0.10"},
			{"2000000", "0.10"},
			{"2000001", "0.15"},
			{"5000000", "0.15"},
			{"5000001", "0.25"},
		}

		for _, tc := range cases {
			got := surchargeRate(d(tc.income))
			if !got.Equal(d(tc.rate)) {
				t.Errorf("surchargeRate(%s) = %s, want %s", tc.income, got, tc.rate)
			}
		}
	})

	t.Run("surcharge follows gross income even when deductions lower taxable", func(t *testing.T) {
		b, err := Calculate(d("2500000"), RegimeOld, d("1600000"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Taxable is 900000 but the 15% bracket still applies because the
		// gross income exceeds 2M.
		expectedBase := d("92499.75") // 249999@5% + 399999@20%
		assertDecimal(t, "BaseTax", b.BaseTax, expectedBase)
		assertDecimal(t, "Surcharge", b.Surcharge, expectedBase.Mul(d("0.15")).Round(2))
	})
}

func TestCalculate_InvalidRegime(t *testing.T) {
	_, err := Calculate(d("500000"), Regime("flat"), decimal.Zero, nil)
	if err == nil {
		t.Fatal("expected error for invalid regime")
	}

	if !errors.Is(err, domainerror.ErrInvalidRegime) {
		t.Errorf("expected ErrInvalidRegime, got %v", err)
	}

	var taxErr *domainerror.TaxError
	if !errors.As(err, &taxErr) {
		t.Fatalf("expected *TaxError, got %T", err)
	}
	if taxErr.Code != domainerror.ErrCodeInvalidRegime {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidRegime, taxErr.Code)
	}
}

func TestCalculate_BaseTaxMonotonicInIncome(t *testing.T) {
	incomes := []string{
		"0", "100000", "249999", "250000", "250001", "400000", "500000",
		"500001", "700000", "999999", "1000000", "1000001", "1250000",
		"1500000", "2000000", "5000000", "10000000",
	}

	for _, regime := range []Regime{RegimeOld, RegimeNew} {
		t.Run(string(regime), func(t *testing.T) {
			previous := decimal.Zero
			for _, income := range incomes {
				b, err := Calculate(d(income), regime, decimal.Zero, nil)
				if err != nil {
					t.Fatalf("unexpected error at income %s: %v", income, err)
				}
				if b.BaseTax.LessThan(previous) {
					t.Errorf("base tax decreased at income %s: %s < %s", income, b.BaseTax, previous)
				}
				previous = b.BaseTax
			}
		})
	}
}
