package ucal

// lastError is the process-wide side channel mirroring uCal's errno convention
// for the handful of functions (weekday.go, gps.go) whose C ancestors signal
// overflow only through errno rather than a return value. It is not
// synchronized, exactly like errno: callers sharing one ucal instance across
// goroutines must serialize calls the same way they would serialize access to
// a shared ConvCtx (see spec.md §5).
var lastError *Error

// LastError returns the error recorded by the most recent call to a function
// that signals failure via the process-wide indicator (currently the Wd*
// weekday shifts, GpsMapRaw1, GpsRemapRdn and GpsDateUnfold), or nil if that call
// succeeded. It is cleared at the start of every such call.
func LastError() *Error {
	return lastError
}

func clearLastError() {
	lastError = nil
}

func setLastError(e *Error) {
	lastError = e
}
