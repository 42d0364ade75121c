package admissions

import (
	"context"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/admisiones-iti/admisiones/internal/domain/ports"
	"github.com/admisiones-iti/admisiones/internal/infrastructure/cache"
	"github.com/admisiones-iti/admisiones/internal/logger"
)

// CachedCatalog serves ListPrograms from a disk cache while it is fresh and drops
// the entry after every catalog change. Cache failures are logged and never hide
// the backend.
type CachedCatalog struct {
	next  ports.ProgramStore
	cache *cache.Cache
	key   string
}

// NewCachedCatalog keys entries by baseURL so catalogs of different servers never mix.
func NewCachedCatalog(next ports.ProgramStore, c *cache.Cache, baseURL string) *CachedCatalog {
	return &CachedCatalog{
		next:  next,
		cache: c,
		key:   c.GenerateHash(baseURL + programsPath),
	}
}

func (c *CachedCatalog) ListPrograms(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	found, err := c.cache.Get(c.key, &programs)
	if err != nil {
		logger.Warn(ctx, "catalog cache unreadable", "error", err)
	}
	if found {
		logger.Debug(ctx, "catalog served from cache", "count", len(programs))
		return programs, nil
	}

	programs, err = c.next.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(c.key, programs); err != nil {
		logger.Warn(ctx, "catalog cache not written", "error", err)
	}
	return programs, nil
}

func (c *CachedCatalog) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	return c.next.GetProgram(ctx, id)
}

func (c *CachedCatalog) CreateProgram(ctx context.Context, program models.Program) (*models.Program, error) {
	created, err := c.next.CreateProgram(ctx, program)
	if err == nil {
		c.invalidate(ctx)
	}
	return created, err
}

func (c *CachedCatalog) CreateProgramWithStructure(ctx context.Context, program models.Program) (string, error) {
	message, err := c.next.CreateProgramWithStructure(ctx, program)
	if err == nil {
		c.invalidate(ctx)
	}
	return message, err
}

func (c *CachedCatalog) UpdateProgram(ctx context.Context, id int64, program models.Program) (*models.Program, error) {
	updated, err := c.next.UpdateProgram(ctx, id, program)
	if err == nil {
		c.invalidate(ctx)
	}
	return updated, err
}

func (c *CachedCatalog) DeleteProgram(ctx context.Context, id int64) error {
	err := c.next.DeleteProgram(ctx, id)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}

func (c *CachedCatalog) invalidate(ctx context.Context) {
	if err := c.cache.Delete(c.key); err != nil {
		logger.Warn(ctx, "catalog cache not invalidated", "error", err)
	}
}
