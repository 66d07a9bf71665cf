// Package store holds the per-entity resource stores: read-through
// cached List plus mutations that invalidate the collection on success.
// Invalidate-on-success is the one update style used everywhere; a
// failed mutation never touches the cache.
package store

import (
	"context"

	"github.com/maisonbelle/salon-admin/internal/audit"
	"github.com/maisonbelle/salon-admin/internal/cache"
	"github.com/maisonbelle/salon-admin/internal/observability/metrics"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/session"
)

// Deps is the shared wiring for every store.
type Deps struct {
	Remote  *remote.Client
	Cache   *cache.Cache
	Metrics *metrics.GatewayMetrics
	Audit   *audit.Dispatcher
}

// listCached is the read half of the resource pattern: serve the cached
// collection when fresh, otherwise fetch-all and fill.
func listCached[T any](
	ctx context.Context,
	sess *session.Session,
	d Deps,
	key string,
	path string,
) ([]T, error) {

	if v, ok := d.Cache.Get(key); ok {
		if items, ok := v.([]T); ok {
			d.Metrics.ObserveCache(key, true)
			return items, nil
		}
	}
	d.Metrics.ObserveCache(key, false)

	var items []T
	if err := d.Remote.Get(ctx, sess, path, &items); err != nil {
		return nil, err
	}

	d.Cache.Put(key, items)
	return items, nil
}

func (d Deps) dispatch(sess *session.Session, action, entity, entityID string, meta any) {
	actor := ""
	if sess != nil {
		actor = sess.Subject
	}
	d.Audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
