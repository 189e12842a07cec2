// Package app is the composition root for thronedex.
//
// # Overview
//
// It wires configuration, logging, the thronesapi client, the locale-aware
// sorter and the pipeline controller, then hands the controller to one of
// three front ends:
//
//   - Run: the Bubble Tea card browser
//   - List: a one-shot table, JSON or YAML listing
//   - Export: a one-shot HTML page of cards and family options
//
// # Data Flow
//
//	┌──────────────┐
//	│ setup()      │ Shared by every command
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          TOML file + THRONEDEX_* env
//	       ├─────> logging.New()          zap logger to the log file
//	       ├─────> query.NewSorter()      Collator for the configured locale
//	       └─────> thronesapi.NewClient() HTTP client (unless a Fetcher is given)
//
//	Run:    pipeline.Controller ──> ui.Grid   (fetch issued by the TUI)
//	List:   pipeline.Controller ──> render.Table / render.Encoded
//	Export: pipeline.Controller ──> render.Markup ──> WritePage
//
// # Error Handling
//
// Configuration, logging and client setup failures are returned from every
// entry point. A failed character load differs by front end: the TUI shows
// its empty state and keeps running, while List and Export render the empty
// view and return the error so the process exits non-zero. Loads are never
// retried.
package app
