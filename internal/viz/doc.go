// Package viz renders drain traces in the terminal: asciigraph line
// plots for completed runs and a bubbletea live view that steps a
// drainage while drawing the tank cross-section. Everything here is a
// read-only consumer of traces; nothing feeds back into a run.
package viz
