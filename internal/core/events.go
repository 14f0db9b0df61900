package core

// Event describes the outcome of an applied action
type Event interface {
	isEvent()
}

// NavigatedEvent is emitted when a new directory listing was swapped in
type NavigatedEvent struct {
	Dir    string
	Parent string
}

func (NavigatedEvent) isEvent() {}

// LoadFailedEvent is emitted when a directory could not be loaded; the
// previous state is still in place
type LoadFailedEvent struct {
	Path string
	Err  error
}

func (LoadFailedEvent) isEvent() {}

// QuitEvent is emitted for the quit action
type QuitEvent struct{}

func (QuitEvent) isEvent() {}
