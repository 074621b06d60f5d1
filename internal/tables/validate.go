package tables

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

var validate = validator.New()

// Validate checks struct constraints and the cross-field rules the tags
// cannot express
func (t *Tables) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf(ErrMsgInvalidTables, err)
	}

	for _, r := range domain.Resources {
		if _, ok := t.Resources[r]; !ok {
			return fmt.Errorf(ErrMsgInvalidTables, fmt.Errorf(ErrMsgMissingResourceFmt, r))
		}
	}
	for r := range t.Resources {
		if _, ok := domain.ParseResource(string(r)); !ok {
			return fmt.Errorf(ErrMsgInvalidTables, fmt.Errorf(ErrMsgUnknownResourceFmt, r))
		}
	}

	seen := make(map[int64]bool, len(t.Ladder.Stakes))
	for _, s := range t.Ladder.Stakes {
		if seen[s] {
			return fmt.Errorf(ErrMsgInvalidTables, fmt.Errorf(ErrMsgDuplicateStakeFmt, s))
		}
		seen[s] = true
	}

	if len(t.Cases) == 0 {
		return fmt.Errorf(ErrMsgInvalidTables, errors.New(ErrMsgNoCasesConfigured))
	}
	for kind, c := range t.Cases {
		if err := validateCase(kind, c); err != nil {
			return fmt.Errorf(ErrMsgInvalidTables, err)
		}
	}
	return nil
}

func validateCase(kind string, c CaseTable) error {
	var sum float64
	keys := make(map[string]bool, len(c.Prizes))
	for _, p := range c.Prizes {
		if keys[p.Key] {
			return fmt.Errorf(ErrMsgDuplicatePrizeFmt, kind, p.Key)
		}
		keys[p.Key] = true

		paysStars := p.Stars > 0
		if paysStars == p.IsCollectible() {
			return fmt.Errorf(ErrMsgPrizeKindFmt, kind, p.Key)
		}
		sum += p.Probability
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf(ErrMsgProbabilitySumFmt, kind, sum)
	}
	return nil
}
