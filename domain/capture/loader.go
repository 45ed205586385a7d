package capture

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

// ErrBusy is reported in logs when a request arrives while another load is in flight.
var ErrBusy = errors.New("capture: load already in progress")

// Loader runs screen grabs and file decodes off the UI thread and delivers
// completed snapshots on Results. At most one load is in flight; requests
// made meanwhile are dropped.
type Loader interface {
	RequestScreen() bool
	RequestFile(path string) bool
	Results() <-chan Result
	Busy() bool
	Stats() LoaderStats
}

type loader struct {
	screen   Grabber
	files    Decoder
	describe string
	logger   *slog.Logger
	results  chan Result

	busy      atomic.Bool
	requests  atomic.Uint64
	dropped   atomic.Uint64
	failures  atomic.Uint64
	loadNanos atomic.Uint64
	loads     atomic.Uint64
	sequence  atomic.Uint64
	lastLoad  atomic.Int64
}

// NewLoader constructs a loader over the given screen grabber and file decoder.
func NewLoader(logger *slog.Logger, screen Grabber, files Decoder) Loader {
	l := &loader{screen: screen, files: files, logger: logger, results: make(chan Result, 1), describe: "screen"}
	if s, ok := screen.(ScreenSource); ok {
		l.describe = s.Describe()
	}
	return l
}

func (l *loader) Results() <-chan Result { return l.results }

func (l *loader) Busy() bool { return l.busy.Load() }

func (l *loader) RequestScreen() bool {
	return l.start(KindScreen, l.describe, func() (Snapshot, error) {
		if l.screen == nil {
			return Snapshot{}, errors.New("capture: no screen grabber")
		}
		img, err := l.screen.Grab()
		if err != nil {
			return Snapshot{}, err
		}
		if img == nil {
			return Snapshot{}, nil
		}
		return Snapshot{Image: img}, nil
	})
}

func (l *loader) RequestFile(path string) bool {
	return l.start(KindFile, path, func() (Snapshot, error) {
		if l.files == nil {
			return Snapshot{}, errors.New("capture: no file decoder")
		}
		img, err := l.files.Open(path)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{Image: img}, nil
	})
}

func (l *loader) start(kind Kind, origin string, fn func() (Snapshot, error)) bool {
	l.requests.Add(1)
	if !l.busy.CompareAndSwap(false, true) {
		l.dropped.Add(1)
		if l.logger != nil {
			l.logger.Debug("load request dropped", "kind", kind.String(), "origin", origin, "error", ErrBusy)
		}
		return false
	}
	go l.run(kind, origin, fn)
	return true
}

func (l *loader) run(kind Kind, origin string, fn func() (Snapshot, error)) {
	start := time.Now()
	snap, err := fn()
	elapsed := time.Since(start)
	l.loadNanos.Add(uint64(elapsed.Nanoseconds()))
	l.loads.Add(1)
	l.lastLoad.Store(time.Now().UnixNano())

	var res Result
	if err == nil && !snap.Ready() {
		err = errors.New("capture: decoded image is empty")
	}
	if err != nil {
		l.failures.Add(1)
		res.Err = err
	} else {
		snap.Kind = kind
		snap.Origin = origin
		snap.CapturedAt = time.Now()
		snap.Sequence = l.sequence.Add(1)
		res.Snapshot = snap
	}
	l.results <- res
	l.busy.Store(false)
	l.logStats(kind, elapsed)
}

func (l *loader) Stats() LoaderStats {
	loads := l.loads.Load()
	total := l.loadNanos.Load()
	var avg time.Duration
	if loads > 0 {
		avg = time.Duration(total / loads)
	}
	var last time.Time
	if ns := l.lastLoad.Load(); ns != 0 {
		last = time.Unix(0, ns)
	}
	return LoaderStats{
		Requests:     l.requests.Load(),
		Dropped:      l.dropped.Load(),
		Failures:     l.failures.Load(),
		AvgLoad:      avg,
		LastLoad:     last,
		LastSequence: l.sequence.Load(),
	}
}

func (l *loader) logStats(kind Kind, elapsed time.Duration) {
	if l.logger == nil {
		return
	}
	stats := l.Stats()
	l.logger.Debug("loader.stats",
		"kind", kind.String(),
		"elapsed", elapsed,
		"requests", stats.Requests,
		"dropped", stats.Dropped,
		"failures", stats.Failures,
		"avg_load", stats.AvgLoad,
	)
}
