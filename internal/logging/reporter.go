package logging

// Reporter is the diagnostic sink for absorbed errors. It logs each error
// and remembers the most recent one for display.
type Reporter struct {
	last error
}

// NewReporter creates a reporter writing to the debug log
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records err
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	r.last = err
	Debug.WithError(err).Warn("absorbed error")
}

// Last returns the most recent error
func (r *Reporter) Last() error {
	return r.last
}

// Clear forgets the most recent error
func (r *Reporter) Clear() {
	r.last = nil
}
