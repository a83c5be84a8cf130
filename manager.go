package cursorctl

// Buttons is a bitmask of gamepad buttons, one bit per key in shift
// register order (PyBadge / PyGamer layout).
type Buttons uint8

const (
	ButtonB Buttons = 1 << iota
	ButtonA
	ButtonStart
	ButtonSelect
	ButtonRight
	ButtonDown
	ButtonUp
	ButtonLeft
)

// Pad is a polled button source, e.g. a shift register gamepad or a GPIO
// matrix. Pressed returns the mask of currently held buttons.
type Pad interface {
	Pressed() Buttons
}

// PadFunc adapts a plain function to the Pad interface.
type PadFunc func() Buttons

func (f PadFunc) Pressed() Buttons { return f() }

// Stick is a polled analog joystick reporting raw ADC counts per axis.
type Stick interface {
	Read() (x, y int)
}

// StickFunc adapts a plain function to the Stick interface.
type StickFunc func() (x, y int)

func (f StickFunc) Read() (x, y int) { return f() }

// Manager drives a Cursor from a polled input device. Call Update once per
// tick: it samples the pad (and stick, if any), moves the cursor by the
// configured speed, latches click states, and renders.
//
// Manager is not safe for concurrent use; it is meant to be owned by the
// single loop that polls the hardware.
type Manager struct {
	cursor *Cursor
	pad    Pad
	stick  Stick

	speed    int
	deadZone int
	samples  int

	// centerX, centerY is the stick rest position, sampled at construction.
	centerX, centerY int

	state Buttons

	clicked       bool
	altClicked    bool
	selectClicked bool
	startClicked  bool
}

// NewManager returns a Manager moving cursor from pad. stick may be nil for
// d-pad only devices; when present, its rest position is sampled now, so the
// stick should be untouched during construction. Speed, dead-zone and sample
// count come from conf, falling back to ConfigDefault for zero fields.
func NewManager(cursor *Cursor, pad Pad, stick Stick, conf Config) (*Manager, error) {
	if cursor == nil || pad == nil {
		return nil, ErrNoInput
	}
	m := &Manager{
		cursor:   cursor,
		pad:      pad,
		stick:    stick,
		speed:    conf.Speed,
		deadZone: conf.DeadZone,
		samples:  conf.Samples,
	}
	if m.speed <= 0 {
		m.speed = ConfigDefault.Speed
	}
	if m.deadZone <= 0 {
		m.deadZone = ConfigDefault.DeadZone
	}
	if m.samples <= 0 {
		m.samples = ConfigDefault.Samples
	}
	if stick != nil {
		m.centerX, m.centerY = m.readStick()
	}
	return m, nil
}

// Cursor returns the managed cursor.
func (m *Manager) Cursor() *Cursor {
	return m.cursor
}

// Update polls the input device, moves the cursor, and renders it.
func (m *Manager) Update() error {
	m.state = m.pad.Pressed()
	m.moveCursor()
	m.latchClicks()
	return m.cursor.Render()
}

// Clicked reports whether the A button was pressed during the previous call
// to Update.
func (m *Manager) Clicked() bool { return m.clicked }

// AltClicked reports whether the B button was pressed during the previous
// call to Update.
func (m *Manager) AltClicked() bool { return m.altClicked }

// SelectClicked reports whether Select was pressed during the previous call
// to Update.
func (m *Manager) SelectClicked() bool { return m.selectClicked }

// StartClicked reports whether Start was pressed during the previous call
// to Update.
func (m *Manager) StartClicked() bool { return m.startClicked }

// latchClicks raises each click state the first tick its button is seen held
// and lowers it the tick after, so a held button reads as repeated clicks
// rather than one long one.
func (m *Manager) latchClicks() {
	latch := func(cur bool, b Buttons) bool {
		return !cur && m.state&b != 0
	}
	m.clicked = latch(m.clicked, ButtonA)
	m.altClicked = latch(m.altClicked, ButtonB)
	m.selectClicked = latch(m.selectClicked, ButtonSelect)
	m.startClicked = latch(m.startClicked, ButtonStart)
}

func (m *Manager) moveCursor() {
	var dx, dy int

	switch {
	case m.state&ButtonRight != 0:
		dx = m.speed
	case m.state&ButtonLeft != 0:
		dx = -m.speed
	}
	switch {
	case m.state&ButtonDown != 0:
		dy = m.speed
	case m.state&ButtonUp != 0:
		dy = -m.speed
	}

	if m.stick != nil {
		x, y := m.readStick()
		switch {
		case x > m.centerX+m.deadZone:
			dx = m.speed
		case x < m.centerX-m.deadZone:
			dx = -m.speed
		}
		switch {
		case y > m.centerY+m.deadZone:
			dy = m.speed
		case y < m.centerY-m.deadZone:
			dy = -m.speed
		}
	}

	if dx != 0 || dy != 0 {
		m.cursor.MoveRel(dx, dy)
	}
}

// readStick averages a few reads to knock down ADC noise.
func (m *Manager) readStick() (x, y int) {
	for i := 0; i < m.samples; i++ {
		sx, sy := m.stick.Read()
		x += sx
		y += sy
	}
	return x / m.samples, y / m.samples
}
