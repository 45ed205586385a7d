package debug

import (
	"log/slog"
	"runtime"
	"time"
)

// StartMemLogger logs heap stats and, where supported, process RSS every
// interval. Large screenshots live both in the Go heap and as Tk photo
// images; comparing the two shows which side grows. A failing RSS query is
// logged once and then suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for range ticker.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, peak, err := processRSS()
			if err != nil && !rssErrLogged {
				logger.Warn("memstats: rss unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("memstats",
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("rss", rss),
				slog.Uint64("rss_peak", peak),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
