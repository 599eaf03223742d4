package bootstrap

import (
	"context"
	"time"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/scheduler"
)

// LoadCatalog reads the data directory and, when interval is positive,
// schedules a periodic reload so edited data files are picked up live.
func LoadCatalog(ctx context.Context, dir string, interval time.Duration, sched *scheduler.Scheduler) *catalog.Store {
	store := catalog.NewStore(ctx, catalog.NewLoader(), dir)
	sched.Schedule(LogMsgCatalogReloadJob, interval, &catalog.ReloadJob{Store: store})
	return store
}
