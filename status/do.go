package status

// This file implements the protected-call layer: the bridge between
// conventional Go functions, which report failure through error returns or
// panics, and the status contract, under which failure is always a returned
// Status. Do and DoVal run a single call inside a protected region; Adapt and
// AdaptVal are the higher-order forms that wrap a function once and return a
// contract-honoring function.

// Do invokes f inside a protected region and normalizes its outcome to a
// Status.
//
// A nil error yields OK. A non-nil error is translated through FromError,
// which passes a Status carried by the error chain through unchanged. A panic
// is recovered and translated through the panic mapping. Fatal check failures
// terminate the process before recovery can run and are never converted.
func Do(f func() error) (st Status) {
	defer func() {
		if r := recover(); r != nil {
			st = fromPanic(r)
		}
	}()
	return FromError(f())
}

// DoVal invokes f inside a protected region and normalizes its outcome to a
// StatusOr.
//
// A successful call yields the returned value unchanged. Errors and panics
// are translated exactly as in Do. If f reports success through an error that
// resolves to an OK status, the value arm is absent while the status claims
// success; that is a contract violation and terminates the process via the
// StatusOr construction invariant.
func DoVal[T any](f func() (T, error)) (res StatusOr[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = FromStatus[T](fromPanic(r))
		}
	}()
	val, err := f()
	if err == nil {
		return Of(val)
	}
	return FromStatus[T](FromError(err))
}

// Adapt wraps a void function so that every call honors the status contract.
// Equivalent to calling Do on each invocation.
func Adapt(f func() error) func() Status {
	return func() Status {
		return Do(f)
	}
}

// AdaptVal wraps a value-returning function so that every call honors the
// status contract. Equivalent to calling DoVal on each invocation.
func AdaptVal[T any](f func() (T, error)) func() StatusOr[T] {
	return func() StatusOr[T] {
		return DoVal(f)
	}
}
