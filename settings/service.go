package settings

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/models"
)

// Service is the read/write surface over the settings singletons. Reads
// never fail: storage errors degrade to the domain's defaults and raise a
// diagnostic, so a broken configuration cannot break page rendering.
type Service struct {
	repo   *database.SettingsRepo
	bus    *Bus
	logger zerolog.Logger
}

func NewService(repo *database.SettingsRepo, bus *Bus, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger.With().Str("service", "settings").Logger(),
	}
}

// Get returns the normalized value for a domain. Missing documents and
// storage failures both resolve to defaults.
func (s *Service) Get(domain Domain) any {
	doc, err := s.repo.Get(string(domain))
	if err != nil {
		s.logger.Error().Err(err).Str("domain", string(domain)).Msg("settings read failed, serving defaults")
		return Defaults(domain)
	}
	var raw []byte
	if doc != nil {
		raw = doc.Payload
	}
	return Normalize(domain, raw, s.logger)
}

// Put normalizes and persists a raw payload, then publishes the normalized
// value to live subscribers. The stored document is the normalized shape,
// which is how legacy fields get dropped on save.
func (s *Service) Put(domain Domain, raw []byte) (any, error) {
	normalized := Normalize(domain, raw, s.logger)
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Put(string(domain), payload); err != nil {
		return nil, err
	}
	s.bus.Publish(domain, normalized)
	return normalized, nil
}

// Watch subscribes to live updates for a domain.
func (s *Service) Watch(domain Domain) (chan any, func()) {
	return s.bus.Subscribe(domain)
}

// Taxonomies returns the active project types in display order.
func (s *Service) Taxonomies() []models.ProjectType {
	doc, _ := s.Get(DomainTaxonomies).(TaxonomySettings)
	active := make([]models.ProjectType, 0, len(doc.Types))
	for _, t := range doc.Types {
		if t.Active {
			active = append(active, t)
		}
	}
	return active
}

// Seed writes the default taxonomy document if none exists yet, so slug
// resolution works from the first boot.
func (s *Service) Seed() error {
	doc, err := s.repo.Get(string(DomainTaxonomies))
	if err != nil {
		return err
	}
	if doc != nil {
		return nil
	}
	payload, err := json.Marshal(TaxonomySettings{Types: DefaultTaxonomies()})
	if err != nil {
		return err
	}
	return s.repo.Put(string(DomainTaxonomies), payload)
}
