package presenter

// Loop aggregates feature presenters and drives periodic updates.
//
// It applies finished loads, flushes the drag overlay and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Source   *SourcePresenter
	Preview  *PreviewPresenter
	Schedule func()
}

func NewLoop(source *SourcePresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{Source: source, Preview: preview, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Source != nil {
		l.Source.Tick()
	}
	// Redraw at most once per tick however many motion events arrived.
	if l.Preview != nil {
		l.Preview.Flush()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
