package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"oilsaas/internal/model"
)

// PricingService lists pricing plans, lazily seeding the fixed defaults the
// first time the collection is found empty.
type PricingService interface {
	List(ctx context.Context) ([]map[string]interface{}, error)
	Seed(ctx context.Context) (int, error)
}

type pricingService struct {
	store DocumentStore
	log   zerolog.Logger
}

// NewPricingService creates a new pricing service.
func NewPricingService(store DocumentStore, log zerolog.Logger) PricingService {
	return &pricingService{store: store, log: log}
}

// List seeds the default plans when the collection is empty, then returns all
// plans with identifiers exposed as "id". The seed check-then-insert is not
// atomic: concurrent first calls may double-seed. Accepted for this system.
func (s *pricingService) List(ctx context.Context) ([]map[string]interface{}, error) {
	if s.store.Configured() {
		if _, err := s.Seed(ctx); err != nil {
			return nil, err
		}
	}

	plans, err := s.store.GetDocuments(ctx, model.CollectionPricingPlan, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return exposeID(plans), nil
}

// Seed inserts the three default plans when none exist and reports how many
// were inserted. It never inserts while any plan is present.
func (s *pricingService) Seed(ctx context.Context) (int, error) {
	count, err := s.store.CountDocuments(ctx, model.CollectionPricingPlan)
	if err != nil {
		return 0, fmt.Errorf("count plans: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, plan := range model.DefaultPlans() {
		if _, err := s.store.CreateDocument(ctx, model.CollectionPricingPlan, plan); err != nil {
			return inserted, fmt.Errorf("seed plan %s: %w", plan.Name, err)
		}
		inserted++
	}

	s.log.Info().Int("plans", inserted).Msg("pricing plans seeded")
	return inserted, nil
}
