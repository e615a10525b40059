package dataset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cleanbite/config"
	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/domain/entity"
	"cleanbite/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Store is the in-memory establishment repository. It is filled exactly once;
// a failed load is remembered and reported on every read.
type Store struct {
	source Source
	logger *slog.Logger

	once    sync.Once
	mu      sync.RWMutex
	records []entity.Establishment
	byID    map[string]int
	types   []string
	loadErr error
}

// StoreParams holds dependencies for Store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore builds the repository and loads the fixture when the app starts.
func NewStore(params StoreParams) repository.EstablishmentRepository {
	store := NewStoreFromSource(NewSource(params.Config.Dataset.Source, params.Config.Dataset.Key), params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// A failed load is terminal for the data but not for the process.
			_ = store.Load(ctx)

			return nil
		},
	})

	return store
}

// NewStoreFromSource builds a store without lifecycle wiring.
func NewStoreFromSource(source Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		source: source,
		logger: logger,
	}
}

// Load fetches and normalises the fixture. Only the first call does work.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		start := time.Now()
		// The first caller's cancellation must not fail the load for everyone.
		records, err := s.fetch(context.WithoutCancel(ctx))

		s.mu.Lock()
		defer s.mu.Unlock()

		if err != nil {
			s.loadErr = err
			s.logger.Error("Failed to load restaurant data",
				slog.String("source", s.source.String()),
				slog.Any("error", err),
			)

			return
		}

		s.index(records)
		s.logger.Info("Restaurant data loaded",
			slog.String("source", s.source.String()),
			slog.Int("establishments", len(records)),
			slog.Int("business_types", len(s.types)),
			slog.Duration("elapsed", time.Since(start)),
		)
	})

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadErr
}

func (s *Store) fetch(ctx context.Context) ([]entity.Establishment, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDatasetUnavailable, err.Error())
	}

	records, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Store) index(records []entity.Establishment) {
	s.records = records
	s.byID = make(map[string]int, len(records))
	s.types = s.types[:0]

	seenTypes := make(map[string]struct{})
	for i, rec := range records {
		// First occurrence wins on duplicate ids, matching a linear find.
		if _, dup := s.byID[rec.ID]; !dup {
			s.byID[rec.ID] = i
		}
		if rec.BusinessType == "" {
			continue
		}
		if _, ok := seenTypes[rec.BusinessType]; !ok {
			seenTypes[rec.BusinessType] = struct{}{}
			s.types = append(s.types, rec.BusinessType)
		}
	}
}

func (s *Store) ready(ctx context.Context) error {
	return s.Load(ctx)
}

// All returns a copy of the establishment slice header; records are never mutated.
func (s *Store) All(ctx context.Context) ([]entity.Establishment, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[:len(s.records):len(s.records)], nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*entity.Establishment, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrEstablishmentNotFound
	}
	rec := s.records[idx]

	return &rec, nil
}

func (s *Store) BusinessTypes(ctx context.Context) ([]string, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]string, len(s.types))
	copy(types, s.types)

	return types, nil
}
