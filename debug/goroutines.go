package debug

// Debug runtime logger. Started only when config.Debug is true.
// Emits goroutine count, stack and heap usage together with image loader
// counters so slow or failing loads can be correlated with memory growth.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/soocke/swatch-go/domain/capture"
)

// StartRuntimeLogger launches a ticker that logs runtime and loader stats.
// stats may be nil.
func StartRuntimeLogger(interval time.Duration, logger *slog.Logger, stats func() capture.LoaderStats) {
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			attrs := []any{
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
			}
			if stats != nil {
				s := stats()
				attrs = append(attrs,
					slog.Uint64("load_requests", s.Requests),
					slog.Uint64("load_dropped", s.Dropped),
					slog.Uint64("load_failures", s.Failures),
					slog.Duration("load_avg", s.AvgLoad),
				)
			}
			logger.Info("runtime", attrs...)
		}
	}()
}
