// Package repline keeps a live companion view next to a source view: on
// idle the full source text is fed to an interactive interpreter running
// under a simulated terminal, the transcript is scraped and one result line
// per executed statement is rendered beside the source.
//
// Repline is designed to be embedded in host editors. The host translates
// its own hooks into events and hands them to the high-level Service
// façade exposed by the root package:
//
//	srv := repline.New(hostAdapter)
//	_ = srv.Command(ctx, viewID, false, "python")
//	_ = srv.Dispatch(ctx, event.New(event.Idle, viewID))
//
// For more details see the README and individual sub-packages.
package repline
