package identifier

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/identifier"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/metrics"
)

type GeneratorImpl struct {
	identifier.CounterRepository
	orgCode string
}

func NewGenerator(counterRepo identifier.CounterRepository, orgCode string) identifier.Generator {
	return &GeneratorImpl{
		CounterRepository: counterRepo,
		orgCode:           orgCode,
	}
}

// Issue implements identifier.Generator. Names are checked before the
// serial is claimed, so a rejected name never burns one.
func (g *GeneratorImpl) Issue(ctx context.Context, firstName, lastName string, year int) (string, error) {
	if err := identifier.ValidateNames(firstName, lastName); err != nil {
		return "", err
	}

	serial, err := g.CounterRepository.NextSerial(ctx, year)
	if err != nil {
		return "", fmt.Errorf("failed to advance serial for year %d: %w", year, err)
	}

	loginID, err := identifier.BuildLoginID(g.orgCode, firstName, lastName, year, serial)
	if err != nil {
		return "", err
	}

	metrics.ObserveIdentifierIssued()
	return loginID, nil
}

// Preview implements identifier.Generator.
func (g *GeneratorImpl) Preview(ctx context.Context, firstName, lastName string, year int) (string, error) {
	if err := identifier.ValidateNames(firstName, lastName); err != nil {
		return "", err
	}

	current, err := g.CounterRepository.CurrentSerial(ctx, year)
	if err != nil {
		return "", fmt.Errorf("failed to read serial for year %d: %w", year, err)
	}

	return identifier.BuildLoginID(g.orgCode, firstName, lastName, year, current+1)
}
