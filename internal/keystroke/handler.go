package keystroke

// Sink stores one formatted description per call.
type Sink interface {
	Record(description string) error
}

// Handler turns editor key events into log entries.
type Handler struct {
	sink   Sink
	window int
}

// NewHandler returns a Handler writing to sink with the given context window.
func NewHandler(sink Sink, window int) *Handler {
	if window <= 0 {
		window = DefaultContextChars
	}
	return &Handler{sink: sink, window: window}
}

// Handle records a press against the editor content seen after the key was
// applied. It reports whether an entry was written. Releases are accepted and
// deliberately ignored.
func (h *Handler) Handle(ev Event, content string) (bool, error) {
	if ev.Kind == Release {
		return false, nil
	}
	if err := h.sink.Record(Describe(ev, content, h.window)); err != nil {
		return false, err
	}
	return true, nil
}

// Window returns the number of trailing characters captured per entry.
func (h *Handler) Window() int {
	return h.window
}
