package city

import "sync"

var (
	instanceOnce sync.Once
	instance     *Facade
	instanceErr  error
)

// Instance returns the process-wide facade, building it from opts on the
// first call. Later calls return the same facade (or the same construction
// error) and ignore their options.
func Instance(opts Options) (*Facade, error) {
	instanceOnce.Do(func() {
		instance, instanceErr = New(opts)
	})
	return instance, instanceErr
}

// Default returns the process-wide facade built with default options.
func Default() (*Facade, error) {
	return Instance(Options{})
}
