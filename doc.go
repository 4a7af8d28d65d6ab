// Package sd is the composition root of the sd note journal.
//
// It connects the interactive session (package session) with the
// filesystem and prompt adapters behind the core.Storage and core.Prompter
// ports.
//
// Notes are plain markdown files. Every entry is appended under a
// "#### <time>:" heading, and entries of the same day share one
// "### <date>" heading:
//
//	### Monday, Jan 1, 2024
//
//	#### 3:00:00 PM:
//	buy milk
//
// Usage:
//
//	rt, err := sd.New("./notes", sd.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer rt.Close()
//
//	// Pick a note (or create the first one) and start appending.
//	err = rt.Session.OpenNote(ctx, "")
package sd
