package timetable

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/rail-pulse/dataset"
)

// stpPriority ranks CIF short-term-plan indicators: cancellations beat
// new schedules beat overlays beat the permanent timetable.
var stpPriority = map[string]int{"C": 4, "N": 3, "O": 2, "P": 1}

// Station is one entry of the station locations reference.
type Station struct {
	Name string
	Lat  float64
	Lng  float64
}

// Importer accumulates reference data (CORPUS, station locations) and
// turns SCHEDULE extracts into datasets.
type Importer struct {
	tiplocToCRS map[string]string
	stations    map[string]Station
}

// NewImporter returns an Importer with empty reference tables.
func NewImporter() *Importer {
	return &Importer{
		tiplocToCRS: map[string]string{},
		stations:    map[string]Station{},
	}
}

type corpusFile struct {
	Entries []corpusEntry `json:"TIPLOCDATA"`
}

type corpusEntry struct {
	Tiploc string `json:"TIPLOC"`
	CRS    string `json:"3ALPHA"`
}

// LoadCorpus reads CORPUS reference JSON and records the TIPLOC → CRS
// mapping. Entries without a CRS code are skipped.
func (im *Importer) LoadCorpus(r io.Reader) error {
	var cf corpusFile
	if err := json.NewDecoder(r).Decode(&cf); err != nil {
		return fmt.Errorf("decode corpus: %w", err)
	}
	for _, e := range cf.Entries {
		tiploc := strings.TrimSpace(e.Tiploc)
		crs := strings.TrimSpace(e.CRS)
		if tiploc != "" && crs != "" {
			im.tiplocToCRS[tiploc] = crs
		}
	}
	log.Printf("[timetable] loaded %d TIPLOC to CRS mappings", len(im.tiplocToCRS))
	return nil
}

// LoadCorpusFile opens path and loads it as CORPUS JSON.
func (im *Importer) LoadCorpusFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return im.LoadCorpus(f)
}

// LoadStations reads a station locations CSV. Header names vary between
// published extracts, so several spellings are accepted per column; rows
// without a parseable coordinate pair are skipped.
func (im *Importer) LoadStations(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("read stations csv: %w", err)
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	idx := func(cols ...string) int {
		for _, col := range cols {
			for i, h := range head {
				if strings.EqualFold(strings.TrimSpace(h), col) {
					return i
				}
			}
		}
		return -1
	}
	crsCol := idx("CRS", "StationCode", "3alpha")
	latCol := idx("Latitude", "lat")
	lngCol := idx("Longitude", "lng")
	nameCol := idx("StationName", "Name", "station_name")
	if crsCol < 0 || latCol < 0 || lngCol < 0 {
		return fmt.Errorf("stations csv is missing a CRS, latitude or longitude column")
	}
	for _, row := range rec[1:] {
		if crsCol >= len(row) || latCol >= len(row) || lngCol >= len(row) {
			continue
		}
		crs := strings.TrimSpace(row[crsCol])
		if crs == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(row[latCol]), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(row[lngCol]), 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		name := crs
		if nameCol >= 0 && nameCol < len(row) && strings.TrimSpace(row[nameCol]) != "" {
			name = strings.TrimSpace(row[nameCol])
		}
		im.stations[crs] = Station{Name: name, Lat: lat, Lng: lng}
	}
	log.Printf("[timetable] loaded %d station coordinates", len(im.stations))
	return nil
}

// LoadStationsFile opens path and loads it as a stations CSV.
func (im *Importer) LoadStationsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return im.LoadStations(f)
}

// CRSForTiploc resolves a TIPLOC location code to its CRS station code.
func (im *Importer) CRSForTiploc(tiploc string) (string, bool) {
	crs, ok := im.tiplocToCRS[strings.TrimSpace(tiploc)]
	return crs, ok
}

// StationByCRS returns the reference entry for a CRS code.
func (im *Importer) StationByCRS(crs string) (Station, bool) {
	stn, ok := im.stations[crs]
	return stn, ok
}

// TiplocCount returns how many TIPLOC mappings are loaded.
func (im *Importer) TiplocCount() int { return len(im.tiplocToCRS) }

// StationCount returns how many station coordinates are loaded.
func (im *Importer) StationCount() int { return len(im.stations) }

// ParseWTTTime parses a working-timetable time (HHMM or HHMMH, where the
// trailing H adds half a minute) into seconds since midnight.
func ParseWTTTime(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if len(t) < 4 {
		return 0, false
	}
	h, err := strconv.Atoi(t[:2])
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(t[2:4])
	if err != nil || m < 0 {
		return 0, false
	}
	sec := 0
	if len(t) > 4 && t[4] == 'H' {
		sec = 30
	}
	return float64(h*3600 + m*60 + sec), true
}

// runsOnTuesday checks the CIF days-run mask for the representative
// weekday the import samples. Missing or short masks count as running.
func runsOnTuesday(daysRun string) bool {
	if len(daysRun) < 7 {
		return true
	}
	return daysRun[1] == '1'
}

type scheduleRecord struct {
	JsonScheduleV1 *jsonSchedule `json:"JsonScheduleV1"`
}

type jsonSchedule struct {
	TrainUID     string          `json:"CIF_train_uid"`
	STPIndicator string          `json:"CIF_stp_indicator"`
	DaysRun      string          `json:"schedule_days_runs"`
	ATOCCode     string          `json:"atoc_code"`
	Segment      scheduleSegment `json:"schedule_segment"`
}

type scheduleSegment struct {
	Locations []scheduleLocation `json:"schedule_location"`
}

type scheduleLocation struct {
	Tiploc    string `json:"tiploc_code"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Pass      string `json:"pass"`
}

type scheduleVersion struct {
	stp       string
	toc       string
	locations []scheduleLocation
}

// ImportSchedule scans a SCHEDULE extract (one JSON record per line),
// applies the overlay rules and assembles a dataset. date stamps the
// dataset meta block; empty means today.
func (im *Importer) ImportSchedule(r io.Reader, date string) (*dataset.Dataset, error) {
	byUID := map[string][]scheduleVersion{}
	var order []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec scheduleRecord
		if err := json.Unmarshal(line, &rec); err != nil || rec.JsonScheduleV1 == nil {
			continue
		}
		sched := rec.JsonScheduleV1
		if sched.TrainUID == "" || len(sched.Segment.Locations) == 0 {
			continue
		}
		if !runsOnTuesday(sched.DaysRun) {
			continue
		}
		stp := sched.STPIndicator
		if stp == "" {
			stp = "P"
		}
		if _, seen := byUID[sched.TrainUID]; !seen {
			order = append(order, sched.TrainUID)
		}
		byUID[sched.TrainUID] = append(byUID[sched.TrainUID], scheduleVersion{
			stp:       stp,
			toc:       sched.ATOCCode,
			locations: sched.Segment.Locations,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	trains := make([]dataset.Train, 0, len(byUID))
	for _, uid := range order {
		versions := byUID[uid]
		sort.SliceStable(versions, func(i, j int) bool {
			return stpPriority[versions[i].stp] > stpPriority[versions[j].stp]
		})
		best := versions[0]
		if best.stp == "C" {
			continue
		}
		if _, known := KnownOperators[best.toc]; !known {
			continue
		}
		tr, ok := im.assembleTrain(uid, best.toc, best.locations)
		if !ok {
			continue
		}
		trains = append(trains, tr)
	}

	operators := map[string]dataset.Operator{}
	for _, tr := range trains {
		if _, ok := operators[tr.Operator]; !ok {
			operators[tr.Operator] = OperatorInfo(tr.Operator)
		}
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	meta := dataset.Meta{
		"date":         date,
		"total_trains": len(trains),
		"source":       "Network Rail SCHEDULE",
	}
	ds, err := dataset.New(meta, operators, trains, dataset.LoadOptions{})
	if err != nil {
		return nil, err
	}
	log.Printf("[timetable] imported %d passenger services", ds.TrainCount())
	return ds, nil
}

// ImportScheduleFile opens path (gzip-compressed when it ends in .gz) and
// imports it.
func (im *Importer) ImportScheduleFile(path, date string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip schedule: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return im.ImportSchedule(r, date)
}

// assembleTrain resolves a schedule's calling points into a waypoint path.
// Points that fail TIPLOC, station or time resolution are skipped; a train
// needs at least two resolved points to survive.
func (im *Importer) assembleTrain(uid, toc string, locations []scheduleLocation) (dataset.Train, bool) {
	path := make([]dataset.Waypoint, 0, len(locations))
	for _, loc := range locations {
		crs, ok := im.tiplocToCRS[strings.TrimSpace(loc.Tiploc)]
		if !ok {
			continue
		}
		stn, ok := im.stations[crs]
		if !ok {
			continue
		}
		at, ok := locationTime(loc)
		if !ok {
			continue
		}
		path = append(path, dataset.Waypoint{Lon: round4(stn.Lng), Lat: round4(stn.Lat), Time: at})
	}
	if len(path) < 2 {
		return dataset.Train{}, false
	}
	sort.SliceStable(path, func(i, j int) bool { return path[i].Time < path[j].Time })

	from, to := "?", "?"
	if stn, ok := im.stationForTiploc(locations[0].Tiploc); ok {
		from = stn.Name
	}
	if stn, ok := im.stationForTiploc(locations[len(locations)-1].Tiploc); ok {
		to = stn.Name
	}
	return dataset.Train{ID: uid, Operator: toc, From: from, To: to, Path: path}, true
}

// locationTime picks the working time of a calling point: departure, then
// arrival, then passing time. A parseable midnight ("0000") counts.
func locationTime(loc scheduleLocation) (float64, bool) {
	if t, ok := ParseWTTTime(loc.Departure); ok {
		return t, true
	}
	if t, ok := ParseWTTTime(loc.Arrival); ok {
		return t, true
	}
	return ParseWTTTime(loc.Pass)
}

func (im *Importer) stationForTiploc(tiploc string) (Station, bool) {
	crs, ok := im.tiplocToCRS[strings.TrimSpace(tiploc)]
	if !ok {
		return Station{}, false
	}
	stn, ok := im.stations[crs]
	return stn, ok
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
