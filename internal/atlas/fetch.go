package atlas

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sells-group/atlas-cli/internal/aggregate"
	"github.com/sells-group/atlas-cli/internal/model"
)

// FetchByEnergyType retrieves plants of one energy type. Types with a
// dedicated feature service are fetched directly; the rest fall back to the
// full dataset with a client-side classifier filter.
func (c *Client) FetchByEnergyType(ctx context.Context, energyType model.EnergyType, limit int) ([]model.Plant, error) {
	if svc, ok := ServiceForEnergyType(energyType); ok {
		return c.FetchAll(ctx, svc, NewQueryParams(), limit)
	}

	all, err := c.FetchAll(ctx, ServiceAllPlants, NewQueryParams(), limit)
	if err != nil {
		return nil, err
	}
	var filtered []model.Plant
	for _, p := range all {
		if p.PrimaryEnergyType() == energyType {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// FetchByState retrieves plants in a state, optionally restricted to one
// energy type's dedicated service.
func (c *Client) FetchByState(ctx context.Context, state string, energyType *model.EnergyType, limit int) ([]model.Plant, error) {
	params := NewQueryParams()
	params.Where = fmt.Sprintf("StateName = '%s' OR StateName LIKE '%%%s%%'", state, state)

	service := ServiceAllPlants
	if energyType != nil {
		if svc, ok := ServiceForEnergyType(*energyType); ok {
			service = svc
		}
	}
	return c.FetchAll(ctx, service, params, limit)
}

// FetchRenewable unions the five renewable fuel endpoints and deduplicates by
// plant code. The per-type fetches run concurrently; each keeps its own page
// ordering and accumulator, and results are merged in the fixed renewable-type
// order so the union is deterministic.
func (c *Client) FetchRenewable(ctx context.Context, limit int) ([]model.Plant, error) {
	types := model.RenewableEnergyTypes()
	perType := make([][]model.Plant, len(types))

	g, gCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	for i, et := range types {
		g.Go(func() error {
			plants, err := c.FetchByEnergyType(gCtx, et, limit)
			if err != nil {
				return err
			}
			mu.Lock()
			perType[i] = plants
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var union []model.Plant
	for _, plants := range perType {
		union = append(union, plants...)
	}
	union = aggregate.Deduplicate(union)

	if limit > 0 && len(union) > limit {
		union = union[:limit]
	}
	return union, nil
}
