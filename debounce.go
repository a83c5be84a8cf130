package cursorctl

import "time"

// Debouncer filters a noisy boolean input: the reported state only changes
// once the raw input has held a new value for the full interval. Rose and
// Fell are edge queries, true for exactly one Update after the debounced
// state changes.
type Debouncer struct {
	sample   func() bool
	interval time.Duration

	state    bool
	unstable bool
	changed  time.Time
	rose     bool
	fell     bool

	// now is a hook for tests
	now func() time.Time
}

// NewDebouncer returns a Debouncer polling sample. interval is how long the
// input must hold steady before a change is believed.
func NewDebouncer(sample func() bool, interval time.Duration) *Debouncer {
	return &Debouncer{
		sample:   sample,
		interval: interval,
		now:      time.Now,
	}
}

// Update polls the input once. Call it every tick.
func (d *Debouncer) Update() {
	d.rose, d.fell = false, false
	raw := d.sample()
	if raw != d.unstable {
		d.unstable = raw
		d.changed = d.now()
		return
	}
	if raw == d.state || d.now().Sub(d.changed) < d.interval {
		return
	}
	d.state = raw
	d.rose = raw
	d.fell = !raw
}

// Value returns the debounced state.
func (d *Debouncer) Value() bool { return d.state }

// Rose reports whether the state went high during the previous Update.
func (d *Debouncer) Rose() bool { return d.rose }

// Fell reports whether the state went low during the previous Update.
func (d *Debouncer) Fell() bool { return d.fell }

// DebounceInterval is the default debounce window, matching typical
// mechanical switch bounce.
const DebounceInterval = 10 * time.Millisecond

// DebouncedManager is a Manager whose A, B, Select and Start buttons are
// debounced, with just-pressed, just-released and held queries per button.
// "Just" means "since the previous call to Update".
type DebouncedManager struct {
	*Manager
	debouncers map[Buttons]*Debouncer
}

// NewDebouncedManager is like NewManager with per-button debouncing.
// interval <= 0 selects DebounceInterval.
func NewDebouncedManager(cursor *Cursor, pad Pad, stick Stick, conf Config, interval time.Duration) (*DebouncedManager, error) {
	inner, err := NewManager(cursor, pad, stick, conf)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DebounceInterval
	}
	dm := &DebouncedManager{
		Manager:    inner,
		debouncers: make(map[Buttons]*Debouncer),
	}
	for _, b := range []Buttons{ButtonA, ButtonB, ButtonSelect, ButtonStart} {
		b := b
		dm.debouncers[b] = NewDebouncer(func() bool {
			return dm.state&b != 0
		}, interval)
	}
	return dm, nil
}

// Update polls the input device, updates every debouncer, moves the cursor,
// and renders it.
func (dm *DebouncedManager) Update() error {
	dm.state = dm.pad.Pressed()
	dm.moveCursor()
	for _, d := range dm.debouncers {
		d.Update()
	}
	return dm.cursor.Render()
}

// JustPressed reports whether b went down during the previous Update.
func (dm *DebouncedManager) JustPressed(b Buttons) bool {
	d, ok := dm.debouncers[b]
	return ok && d.Rose()
}

// JustReleased reports whether b came up during the previous Update.
func (dm *DebouncedManager) JustReleased(b Buttons) bool {
	d, ok := dm.debouncers[b]
	return ok && d.Fell()
}

// Held reports whether b is currently held, after debouncing.
func (dm *DebouncedManager) Held(b Buttons) bool {
	d, ok := dm.debouncers[b]
	return ok && d.Value()
}

// Clicked reports whether the A button went down during the previous Update.
func (dm *DebouncedManager) Clicked() bool { return dm.JustPressed(ButtonA) }

// AltClicked reports whether the B button went down during the previous
// Update.
func (dm *DebouncedManager) AltClicked() bool { return dm.JustPressed(ButtonB) }

// SelectClicked reports whether Select went down during the previous Update.
func (dm *DebouncedManager) SelectClicked() bool { return dm.JustPressed(ButtonSelect) }

// StartClicked reports whether Start went down during the previous Update.
func (dm *DebouncedManager) StartClicked() bool { return dm.JustPressed(ButtonStart) }
