package services

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/willipe53/onebor-position-keeper/internal/common/cache"
	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

const refSnapshotCacheKey = "reference-data-snapshot"

// RefDataService holds the read-only reference snapshot: transaction types
// with their rule sets, entity display names. Loaded once per worker lifetime
// with documented staleness; Refresh re-reads the store for callers that want
// invalidation without a recycle.
type RefDataService interface {
	Load(ctx context.Context) (err error)
	Refresh(ctx context.Context) (err error)
	GetTransactionType(ctx context.Context, id int64) (models.TransactionType, bool)
	EntityName(ctx context.Context, id int64) string
	EntityNameByKey(ctx context.Context, key string) string
	ListTransactionTypes(ctx context.Context) ([]models.TransactionType, error)
	ListEntities(ctx context.Context) ([]models.Entity, error)
}

type refData service

var _ RefDataService = (*refData)(nil)

// Load populates the snapshot if it is not already cached.
func (s *refData) Load(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	_, err = s.snapshot(ctx)
	return
}

// Refresh discards the cached snapshot and reloads it from the store.
func (s *refData) Refresh(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = s.srv.refCache.Delete(ctx, refSnapshotCacheKey); err != nil {
		return
	}
	_, err = s.snapshot(ctx)
	return
}

func (s *refData) GetTransactionType(ctx context.Context, id int64) (models.TransactionType, bool) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return models.TransactionType{}, false
	}
	tt, ok := snap.TransactionTypes[id]
	return tt, ok
}

// EntityName resolves an entity display name, degrading to a synthesized
// placeholder label when the entity is missing from the snapshot.
func (s *refData) EntityName(ctx context.Context, id int64) string {
	return s.EntityNameByKey(ctx, strconv.FormatInt(id, 10))
}

func (s *refData) EntityNameByKey(ctx context.Context, key string) string {
	snap, err := s.snapshot(ctx)
	if err == nil {
		if name, ok := snap.EntityNames[key]; ok {
			return name
		}
	}

	id, convErr := strconv.ParseInt(key, 10, 64)
	if convErr != nil {
		return key
	}
	return models.PlaceholderEntityName(id)
}

func (s *refData) ListTransactionTypes(ctx context.Context) ([]models.TransactionType, error) {
	return s.srv.sqlRepo.GetTransactionTypeRepository().List(ctx)
}

func (s *refData) ListEntities(ctx context.Context) ([]models.Entity, error) {
	return s.srv.sqlRepo.GetEntityRepository().List(ctx)
}

func (s *refData) snapshot(ctx context.Context) (models.ReferenceSnapshot, error) {
	return s.srv.refCache.GetOrSet(ctx, cache.GetOrSetOpts[models.ReferenceSnapshot]{
		Key: refSnapshotCacheKey,
		// TTL zero: the snapshot lives until the worker recycles or Refresh
		// is called.
		Callback: func() (models.ReferenceSnapshot, error) {
			return s.load(ctx)
		},
	})
}

func (s *refData) load(ctx context.Context) (models.ReferenceSnapshot, error) {
	snap := models.ReferenceSnapshot{
		TransactionTypes: map[int64]models.TransactionType{},
		EntityNames:      map[string]string{},
	}

	var (
		types    []models.TransactionType
		entities []models.Entity
	)

	// the two reference tables are independent reads
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		types, err = s.srv.sqlRepo.GetTransactionTypeRepository().List(gctx)
		return
	})
	g.Go(func() (err error) {
		entities, err = s.srv.sqlRepo.GetEntityRepository().List(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		return snap, err
	}

	for _, tt := range types {
		snap.TransactionTypes[tt.ID] = tt
	}
	for _, e := range entities {
		snap.EntityNames[strconv.FormatInt(e.ID, 10)] = e.Name
	}

	log.Info(ctx, "[REFDATA] snapshot loaded",
		log.Int("transaction_types", len(snap.TransactionTypes)),
		log.Int("entities", len(snap.EntityNames)),
	)
	return snap, nil
}
