// Package cure exposes cure passes as a service.
//
// The Service serialises passes inside the process and collapses concurrent
// requests for the same directory. Each finished pass is recorded in the
// optional HistoryStore and uploaded by the optional ReportPublisher.
//
// Routes:
//
//	POST /cure        run passes, or previews with dry_run
//	GET  /cure/plan   dry-run report for one directory
//	GET  /history     recorded runs
package cure
