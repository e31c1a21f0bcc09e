package metrics

import (
	"context"
	"time"

	coremetrics "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/metrics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/internal/progress"
)

// StartProgressCollector subscribes to the progress bus and forwards each
// generation sample to the sink. It stops when the context is canceled or
// the bus is closed. Samples the bus drops while the sink is busy are lost,
// which keeps slow sinks from stalling the search.
func StartProgressCollector(ctx context.Context, bus *progress.Bus, sink coremetrics.MetricsSink, instance string) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-sub:
				if !ok {
					return
				}
				_ = sink.RecordGeneration(coremetrics.GenerationEvent{
					RunID:      u.RunID,
					Instance:   instance,
					Generation: u.Generation,
					BestValue:  u.BestValue,
					MeanValue:  u.MeanValue,
					StdDev:     u.StdDev,
					Time:       time.Now(),
				})
			}
		}
	}()
}
