// Package outlook annotates matches with salary-band labels. Lookups are
// deterministic given the catalog; the injected cache only saves
// recomputation and is always optional.
package outlook

import (
	"context"
	"time"

	"github.com/careercompass/guidance-engine/internal/cache"
	"github.com/careercompass/guidance-engine/internal/types"
)

// Salary band thresholds in USD/year.
const (
	moderateSalaryFloor    = 35000
	comfortableSalaryFloor = 60000
	highSalaryFloor        = 90000
)

// Lookup resolves salary bands, caching results under "salary_band:<id>".
type Lookup struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewLookup creates a Lookup. A nil cache disables caching; lookups still
// work.
func NewLookup(c cache.Cache, ttl time.Duration) *Lookup {
	return &Lookup{cache: c, ttl: ttl}
}

// SalaryBand returns the band label for a career. Cache failures degrade to
// recomputation, never to an error.
func (l *Lookup) SalaryBand(ctx context.Context, career *types.Career) string {
	key := "salary_band:" + career.ID

	if l.cache != nil {
		if value, found, err := l.cache.Get(ctx, key); err == nil && found {
			return value
		}
	}

	band := BandFor(career.AverageSalary)
	if l.cache != nil {
		_ = l.cache.Set(ctx, key, band, l.ttl)
	}
	return band
}

// BandFor maps an average salary onto its band label.
func BandFor(salary int) string {
	switch {
	case salary >= highSalaryFloor:
		return "high"
	case salary >= comfortableSalaryFloor:
		return "comfortable"
	case salary >= moderateSalaryFloor:
		return "moderate"
	default:
		return "entry"
	}
}
