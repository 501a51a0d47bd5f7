// Package stage holds the ordered registry of journey stages and the
// controller that tracks which one is current. Progress is always derived
// from the current stage, never stored separately.
package stage
