// Package klog provides the logging collaborator for kern-comm-lib.
//
// A Logger fans records out to registered handlers: a console handler backed
// by log/slog and a plain-text file handler. The package-level Default logger
// is set up with Init (or InitFromConfig with a YAML file) and doubles as the
// Sink the fatal-check machinery emits through: after Init, a failed check
// appears in the same log stream as everything else before the process exits.
//
// Logging operations return a Status rather than an error, so callers stay in
// the same vocabulary as the rest of the library:
//
//	if st := klog.Init("myprog", "/var/log/myprog"); !st.Ok() {
//	    return st
//	}
//	klog.Default().Info("started")
package klog
