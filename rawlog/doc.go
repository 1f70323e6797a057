// Package rawlog decodes raw atop logs: a versioned header followed by a
// stream of samples, each a fixed record plus zlib-compressed struct segments.
//
// The engine is version agnostic. A Session resolves the header against the
// schema catalog once, then drives every subsequent read through the resolved
// descriptor's sizes and decode functions. Decoding is lazy and forward only;
// samples are yielded one at a time without buffering the file.
//
// Typical usage:
//
//	session, err := rawlog.NewSession(file)
//	if err != nil {
//		return err
//	}
//
//	for sample, err := range session.Samples() {
//		if err != nil {
//			return err
//		}
//		process(sample)
//	}
//
// Importing this package registers every supported schema revision.
package rawlog
