// Package query answers point-in-time questions against a loaded dataset:
// where is a train at second t, how far through its journey is it, and
// which trains are running at all.
//
// # Model
//
// Every train carries a time-sorted waypoint path. A train is active on the
// closed interval [StartTime, EndTime] spanned by its path; outside that
// interval it has no position, which the Engine reports as an absent result
// rather than an error. Inside the interval the Engine locates the adjacent
// waypoint pair enclosing the query instant by binary search and linearly
// interpolates between the two, so a lookup costs O(log n) in the path
// length no matter how dense the recording is.
//
// # Conventions
//
//   - Interval bounds are inclusive at both ends. A query exactly on a
//     waypoint timestamp returns that waypoint's coordinates without any
//     interpolation arithmetic.
//   - A segment whose two waypoints share a timestamp pins the position to
//     the segment's first waypoint.
//   - Progress is clamped to [0, 1]; a zero-duration journey reports 1 at
//     its single instant.
//   - Timestamps are seconds from the service-day origin and may run past
//     86400 for journeys that cross midnight. The Engine never wraps them;
//     clock-face presentation is the caller's concern.
//
// # Usage
//
//	ds, err := dataset.LoadFile("trains.json", dataset.LoadOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	eng := query.NewEngine(ds)
//	for _, ap := range eng.ActivePositions(8.5*3600, "") {
//		fmt.Printf("%s at (%.4f, %.4f), %.0f%% complete\n",
//			ap.Train.ID, ap.Position.Lon, ap.Position.Lat, ap.Progress*100)
//	}
//
// An Engine holds no mutable state, so one instance may serve any number of
// goroutines; the advancing playback clock belongs to the caller.
package query
