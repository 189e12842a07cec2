// Package ui is the Bubble Tea front end for thronedex.
//
// The model owns no character data of its own. It forwards every
// interaction to a pipeline.Controller, which filters and sorts the loaded
// list and renders the result into a Grid. View then draws whatever the
// grid last received.
//
// # Event Flow
//
//  1. Init issues the only fetch as a tea.Cmd
//  2. The loadedMsg it returns is applied inside Update
//  3. Query edits, family cycling, sort toggles and resets call the
//     controller directly, which re-renders the grid
//  4. View reads the grid, store and theme
//
// Every store mutation happens inside Update, so nothing here locks.
//
// # Key Bindings
//
//   - /: Search names (live), enter or esc to leave the input
//   - f/F: Next/previous family
//   - s: Toggle sort direction
//   - r: Reset the query
//   - j/k/l, arrows, g/G: Move the selection
//   - T: Cycle theme
//   - h or ?: Help
//   - e or Ctrl+C: Exit
package ui
