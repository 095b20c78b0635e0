// Package timetable imports Network Rail SCHEDULE extracts into datasets.
//
// # Inputs
//
// Three feeds from the Network Rail open data portal combine into one
// dataset:
//
//   - SCHEDULE: newline-delimited JSON, one CIF schedule record per line
//     (plain or gzip-compressed).
//   - CORPUS: reference JSON mapping TIPLOC location codes onto CRS
//     station codes.
//   - A station locations CSV giving coordinates per CRS code.
//
// # Overlay handling
//
// A train service (CIF UID) can appear several times: a permanent schedule
// plus short-term-plan variations. Indicators rank C (cancelled) over N
// (new) over O (overlay) over P (permanent); the import keeps the highest
// ranked version per UID and drops the service entirely when that version
// is a cancellation. Services are sampled on a representative weekday
// (Tuesday) and filtered to known passenger operators.
//
// # Path assembly
//
// Each calling point resolves TIPLOC → CRS → coordinates; points that do
// not resolve are skipped rather than failing the service. The waypoint
// time is the working-timetable departure, arrival or passing time,
// whichever is present first. Services with fewer than two resolvable
// points are dropped.
package timetable
