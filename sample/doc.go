// Package sample generates a synthetic day of UK rail services.
//
// The route table covers the main lines out of the London terminals plus
// the major cross-country, Scottish and Welsh corridors, with per-route
// service frequencies and average speeds tuned to look plausible on a
// map. Departure times follow weighted rush-hour windows, travel times
// derive from great-circle distances, and each leg gains intermediate
// waypoints with slight lateral offsets so markers curve between
// stations instead of tracking ruler lines.
//
// Generation is deterministic per seed, which makes the output usable as
// a stable fixture while real SCHEDULE extracts are unavailable.
package sample
