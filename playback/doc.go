// Package playback replays a dataset's service day in wall time: a Clock
// maps wall instants onto dataset seconds at an adjustable speed, and a
// Player drives the query engine from that clock, delivering position
// frames and summary statistics at fixed rates.
package playback
