// Package status provides exception-free error propagation.
//
// This package is the Go core of kern-comm-lib. It models the outcome of an
// operation as an explicit value instead of relying on panics or ad-hoc error
// chains: a Status carries a code and message, a StatusOr carries either a
// value or a failing Status, and the protected-call layer adapts conventional
// Go functions into ones that honor this contract.
//
// # Features
//
//   - Closed StatusCode catalogue: canonical codes plus Go runtime/os conditions
//   - Immutable Status values with structural equality
//   - Generic StatusOr[T] value-or-status container with safe accessors
//   - Protected calls (Do, DoVal) and adapters (Adapt, AdaptVal) that translate
//     errors and recovered panics into Status values
//   - Explicit, extensible error-to-code translation table
//   - Bridging to and from the standard error interface (Err, FromError)
//
// # Two severities of error
//
// Recoverable failures are modeled as non-OK Status values, returned along
// the call chain and branched on with Ok(). Programming errors, such as
// calling Value() on a failing StatusOr or constructing a failure arm from an
// OK status, are invariant violations: they log one fatal record and
// terminate the process. They are never converted into a Status and never
// recoverable.
//
// # Quick start
//
// Returning a status:
//
//	func divide(a, b int) status.StatusOr[float64] {
//	    if b == 0 {
//	        return status.FromStatus[float64](status.ZeroDivisionError("division by zero"))
//	    }
//	    return status.Of(float64(a) / float64(b))
//	}
//
// Branching on the result:
//
//	res := divide(6, 3)
//	if !res.Ok() {
//	    return res.Status()
//	}
//	use(res.Value())
//
// Adapting conventional code:
//
//	read := status.AdaptVal(func() ([]byte, error) {
//	    return os.ReadFile(path)
//	})
//	data := read() // StatusOr[[]byte]; a missing file yields CodeFileNotFound
//
// # Translation
//
// FromError consults an ordered rule table (context cancellation, io/fs
// sentinels, syscall errnos, strconv failures, ...) via errors.Is and falls
// back to CodeUnknown. RegisterRule extends the table at init time. Recovered
// panics map runtime faults to dedicated codes: integer division by zero to
// CodeZeroDivision, bounds faults to CodeOutOfRange, other runtime errors to
// CodeRuntimeError.
//
// Status, StatusCode, and StatusOr are immutable values and safe to share
// across goroutines without locking.
package status
