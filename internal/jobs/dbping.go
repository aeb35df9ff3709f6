package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/guardiao/gestao/internal/ctxutil"
	"github.com/guardiao/gestao/internal/metrics"
)

// DBPing probes the store and feeds the ping latency histogram.
func DBPing(database *sql.DB) Job {
	return func(ctx context.Context) error {
		ctx, cancel := ctxutil.WithTimeout(ctx, 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := database.PingContext(ctx); err != nil {
			return err
		}
		metrics.ObserveDBPing(time.Since(t0))
		return nil
	}
}
