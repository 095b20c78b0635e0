/*
Package dataset owns the normalized train collection that every query runs
against.

A dataset is loaded once from the compact wire format, normalized, and then
treated as read-only for the rest of the session. Reloading replaces the
whole dataset; nothing is ever merged or mutated in place, so any number of
goroutines may query one concurrently without locking.

# Wire Format

	{
	  "meta":      { ...free-form provenance... },
	  "operators": { "GW": {"name": "Great Western Railway", "color": "#0a493e"}, ... },
	  "trains": [
	    {
	      "id":   "GW0001",
	      "op":   "GW",
	      "from": "London Paddington",
	      "to":   "Bristol Temple Meads",
	      "path": [[-0.1755, 51.5154, 27000], [-0.9717, 51.4589, 28620], ...]
	    }, ...
	  ]
	}

Each path element is a [lng, lat, timeSeconds] triple. timeSeconds counts
from the dataset's reference midnight and may exceed 86400 for services that
run past midnight; no component of this package applies a modulo.

# Normalization

Load derives what querying needs:

  - each path is stable-sorted by waypoint time (producers already sort, the
    loader enforces the invariant on foreign data)
  - StartTime/EndTime are taken from the first and last waypoint
  - trains are stable-sorted by ascending StartTime, so equal departures keep
    their input order
  - an id index and the dataset's overall time bounds are built

A train with an empty path is malformed. By default the whole load aborts
with a *MalformedEntityError; with LoadOptions.SkipMalformed the record is
dropped, logged, and reported through Dataset.Skipped.

# Basic Usage

	ds, err := dataset.LoadFile("data/trains.json", dataset.LoadOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	eng := query.NewEngine(ds)
*/
package dataset
