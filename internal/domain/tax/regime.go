// Package tax implements the progressive income-tax computation engine.
// All functions in this package are pure: no I/O, no mutable state, safe
// for concurrent use.
package tax

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/tax-planner/backend/internal/domain/error"
)

// Regime identifies one of the two fixed sets of tax brackets a taxpayer elects.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Slab is a contiguous income bracket taxed at a single marginal rate.
// Bounds are inclusive on both ends; adjacent slabs share a boundary by
// differing one unit (e.g. 250000 / 250001) so boundary values are never
// counted twice. The top slab of each regime is unbounded.
type Slab struct {
	Lower     decimal.Decimal
	Upper     decimal.Decimal
	Unbounded bool
	Rate      decimal.Decimal
}

// Slab tables are fixed constant data loaded once at package init.
// They must stay contiguous, non-overlapping, start at zero, end unbounded,
// and carry non-decreasing rates.
var (
	oldRegimeSlabs = []Slab{
		slab(0, 250000, "0"),
		slab(250001, 500000, "0.05"),
		slab(500001, 1000000, "0.20"),
		openSlab(1000001, "0.30"),
	}

	newRegimeSlabs = []Slab{
		slab(0, 250000, "0"),
		slab(250001, 500000, "0.05"),
		slab(500001, 750000, "0.10"),
		slab(750001, 1000000, "0.15"),
		slab(1000001, 1250000, "0.20"),
		slab(1250001, 1500000, "0.25"),
		openSlab(1500001, "0.30"),
	}
)

func slab(lower, upper int64, rate string) Slab {
	return Slab{
		Lower: decimal.NewFromInt(lower),
		Upper: decimal.NewFromInt(upper),
		Rate:  decimal.RequireFromString(rate),
	}
}

func openSlab(lower int64, rate string) Slab {
	return Slab{
		Lower:     decimal.NewFromInt(lower),
		Unbounded: true,
		Rate:      decimal.RequireFromString(rate),
	}
}

// SlabsFor returns the slab table for the given regime.
// An unrecognized regime tag is a programming-contract violation signaled
// as ErrInvalidRegime; it is the engine's only checked failure.
func SlabsFor(regime Regime) ([]Slab, error) {
	switch regime {
	case RegimeOld:
		return oldRegimeSlabs, nil
	case RegimeNew:
		return newRegimeSlabs, nil
	default:
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeInvalidRegime,
			"tax regime must be 'old' or 'new'",
			domainerror.ErrInvalidRegime,
		)
	}
}

// IsValidRegime reports whether the given regime tag is recognized.
func IsValidRegime(regime Regime) bool {
	return regime == RegimeOld || regime == RegimeNew
}
