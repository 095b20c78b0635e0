package sample

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"

	"github.com/theoremus-urban-solutions/rail-pulse/dataset"
	"github.com/theoremus-urban-solutions/rail-pulse/utils"
)

// Defaults applied by Generate when Options fields are zero.
const (
	DefaultSeed = 42
	DefaultDate = "2026-02-10"
)

// Options configure dataset generation.
type Options struct {
	// Seed fixes the random source so runs are reproducible. Zero selects
	// DefaultSeed.
	Seed int64

	// Date is the service date stamped into dataset meta. Empty selects
	// DefaultDate.
	Date string
}

// Generate builds a synthetic day of services across the route table.
// The same options always produce the same dataset.
func Generate(opts Options) (*dataset.Dataset, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	date := opts.Date
	if date == "" {
		date = DefaultDate
	}

	g := &generator{rng: rand.New(rand.NewSource(seed))}
	trains := g.trains()

	// Services tied on departure time keep shuffle order rather than
	// route-table order, so simultaneous departures spread across the
	// network instead of clustering by corridor.
	g.rng.Shuffle(len(trains), func(i, j int) { trains[i], trains[j] = trains[j], trains[i] })

	ops := make(map[string]dataset.Operator, len(operators))
	for code, op := range operators {
		ops[code] = op
	}
	meta := dataset.Meta{
		"date":         date,
		"total_trains": len(trains),
		"source":       "sample",
		"note":         "Generated sample data for development. Replace with real Network Rail data.",
	}

	d, err := dataset.New(meta, ops, trains, dataset.LoadOptions{})
	if err != nil {
		return nil, err
	}
	log.Printf("[sample] generated %d trains across %d routes", d.TrainCount(), len(routes))
	return d, nil
}

type generator struct {
	rng *rand.Rand
}

func (g *generator) trains() []dataset.Train {
	var all []dataset.Train
	counters := map[string]int{}

	for _, r := range routes {
		directions := [][]string{r.stations}
		if r.bidirectional {
			directions = append(directions, reversed(r.stations))
		}
		for _, direction := range directions {
			services := r.servicesPerDay
			if r.bidirectional {
				services /= 2
			}
			if services < 1 {
				services = 1
			}
			for _, dep := range g.departures(services, r.operator) {
				counters[r.operator]++
				all = append(all, dataset.Train{
					ID:       fmt.Sprintf("%s%04d", r.operator, counters[r.operator]),
					Operator: r.operator,
					From:     stations[direction[0]].name,
					To:       stations[direction[len(direction)-1]].name,
					Path:     g.smooth(g.path(direction, r.avgSpeedMPH, dep)),
				})
			}
		}
	}
	return all
}

// Departure windows across the operating day with relative weights. The
// two rush-hour windows carry nearly half of all services.
var departureWindows = []struct {
	start, end int
	weight     float64
}{
	{4 * 3600, 5.5 * 3600, 0.02},
	{5.5 * 3600, 6.5 * 3600, 0.06},
	{6.5 * 3600, 9.5 * 3600, 0.25},
	{9.5 * 3600, 12 * 3600, 0.15},
	{12 * 3600, 14 * 3600, 0.12},
	{14 * 3600, 16.5 * 3600, 0.12},
	{16.5 * 3600, 19.5 * 3600, 0.20},
	{19.5 * 3600, 21 * 3600, 0.06},
	{21 * 3600, 23 * 3600, 0.02},
}

// departures draws n departure instants, sorted ascending. Ordinary
// services land on five-minute boundaries inside a weighted window;
// sleepers run once, leaving in the late evening.
func (g *generator) departures(n int, operator string) []int {
	if operator == "CS" {
		return []int{21*3600 + g.randint(0, 3600)}
	}

	times := make([]int, 0, n)
	for len(times) < n {
		r := g.rng.Float64()
		cumulative := 0.0
		picked := false
		for _, w := range departureWindows {
			cumulative += w.weight
			if r <= cumulative {
				t := g.randint(w.start, w.end)
				times = append(times, int(math.Round(float64(t)/300))*300)
				picked = true
				break
			}
		}
		if !picked {
			times = append(times, g.randint(6*3600, 22*3600))
		}
	}
	sort.Ints(times)
	return times
}

// path lays waypoints through the stations of one direction. Travel time
// per leg comes from the great-circle distance at a jittered line speed;
// intermediate calls add a short dwell before the next leg.
func (g *generator) path(direction []string, avgSpeedMPH float64, dep int) []dataset.Waypoint {
	path := make([]dataset.Waypoint, 0, len(direction))
	now := dep
	for i, code := range direction {
		stn := stations[code]
		if i > 0 {
			prev := stations[direction[i-1]]
			dist := utils.HaversineMiles(prev.lat, prev.lng, stn.lat, stn.lng)
			speed := avgSpeedMPH * (0.85 + g.rng.Float64()*0.25)
			now += int(dist / speed * 3600)
		}
		path = append(path, dataset.Waypoint{Lon: round5(stn.lng), Lat: round5(stn.lat), Time: float64(now)})
		if i > 0 && i < len(direction)-1 {
			now += g.randint(30, 120)
		}
	}
	return path
}

// smoothingPoints is the number of synthetic waypoints inserted into each
// leg so animated markers do not jump between distant stations.
const smoothingPoints = 2

func (g *generator) smooth(path []dataset.Waypoint) []dataset.Waypoint {
	if len(path) < 2 {
		return path
	}
	out := make([]dataset.Waypoint, 0, len(path)+(len(path)-1)*smoothingPoints)
	out = append(out, path[0])
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		for j := 1; j <= smoothingPoints; j++ {
			f := float64(j) / float64(smoothingPoints+1)
			// Slight lateral offset so legs read as curves, not rulers.
			offset := g.rng.NormFloat64() * 0.02 * math.Sin(f*math.Pi)
			out = append(out, dataset.Waypoint{
				Lon:  round5(a.Lon + (b.Lon-a.Lon)*f + offset),
				Lat:  round5(a.Lat + (b.Lat-a.Lat)*f + offset*0.5),
				Time: math.Round(a.Time + (b.Time-a.Time)*f),
			})
		}
		out = append(out, b)
	}
	return out
}

// randint returns a uniform value in [lo, hi], both bounds inclusive.
func (g *generator) randint(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
