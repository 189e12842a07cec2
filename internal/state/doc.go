// Package state holds the data store behind the character view.
//
// # Overview
//
// A Store keeps three things together:
//
//   - the full character list as loaded from the API
//   - the inputs that shape the view: query text, selected category and sort
//     direction
//   - the view itself, the filtered and sorted subset last computed
//
// The store does not compute the view. The pipeline controller reads the
// inputs, runs the query engine and writes the result back with SetView.
//
// # Concurrency
//
// The store is owned by one event loop (the Bubble Tea update loop or a CLI
// command) and has no locking. Snapshot returns copies so renderers can hold
// on to a view without aliasing the store.
//
// # Load Failures
//
// Load(nil, err) records the error, clears the list and resets the category
// set to just "All". There is no retry; the view stays empty.
package state
