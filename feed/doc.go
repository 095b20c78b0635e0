// Package feed renders playback instants as transit wire formats: GTFS-RT
// VehiclePositions (binary protobuf or JSON) and SIRI-VM service deliveries
// (JSON). Builders take the query engine's view of a single instant and a
// shared snapshot cache collapses repeated requests for the same second
// into one build.
//
// Dataset seconds are anchored to a wall-clock service date taken from the
// dataset's meta block, so feed timestamps come out as real epochs and
// ISO8601 strings even though the engine itself never deals in wall time.
package feed
