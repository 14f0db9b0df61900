package scanner

import "github.com/lumipallolabs/fx/internal/model"

// Lister defines the interface for reading one directory level
type Lister interface {
	// List returns the immediate children of dir in enumeration order
	List(dir string) ([]model.Entry, error)
}

// Reporter receives errors that are absorbed instead of returned
type Reporter interface {
	Report(err error)
}

type discardReporter struct{}

func (discardReporter) Report(error) {}
