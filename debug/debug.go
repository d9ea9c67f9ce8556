package debug

import "sync/atomic"

// Flags selects which subsystems emit debug logs.
type Flags struct {
	Parse  bool
	Encode bool
	Walk   bool
	Patch  bool
	Query  bool
}

var d atomic.Pointer[Flags]

func init() {
	d.Store(&Flags{})
}

// Set replaces the active flags.
func Set(f Flags) {
	d.Store(&f)
}

// Get returns the active flags.
func Get() Flags {
	return *d.Load()
}

func Parse() bool {
	return d.Load().Parse
}
func Encode() bool {
	return d.Load().Encode
}
func Walk() bool {
	return d.Load().Walk
}
func Patch() bool {
	return d.Load().Patch
}
func Query() bool {
	return d.Load().Query
}
