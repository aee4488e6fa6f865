// Package kpath provides an exception-free path wrapper.
//
// Path keeps the shape of the familiar path APIs while reporting every
// fallible operation through the status vocabulary: queries return
// StatusOr[bool], reads return StatusOr[[]byte], and mutations return Status.
// No method panics or returns a raw error.
//
//	p := kpath.New("/tmp/report.txt")
//	if st := p.WriteText("done", kpath.ModeOwnerRWOthersR); !st.Ok() {
//	    return st
//	}
//
// The backend is a go-billy filesystem. New uses the local filesystem; NewOn
// accepts any backend, which is how tests run against memfs.
package kpath
