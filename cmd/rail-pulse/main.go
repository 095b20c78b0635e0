package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/rail-pulse/config"
	"github.com/theoremus-urban-solutions/rail-pulse/dataset"
	"github.com/theoremus-urban-solutions/rail-pulse/feed"
	"github.com/theoremus-urban-solutions/rail-pulse/internal"
	"github.com/theoremus-urban-solutions/rail-pulse/internal/metrics"
	"github.com/theoremus-urban-solutions/rail-pulse/playback"
	"github.com/theoremus-urban-solutions/rail-pulse/query"
	"github.com/theoremus-urban-solutions/rail-pulse/sample"
	"github.com/theoremus-urban-solutions/rail-pulse/timetable"
	"github.com/theoremus-urban-solutions/rail-pulse/utils"
)

func main() {
	mode := flag.String("mode", "play", "play|snapshot|generate|import")
	data := flag.String("data", "", "dataset path (overrides config)")
	speed := flag.Float64("speed", 0, "playback speed multiplier (overrides config)")
	loop := flag.Bool("loop", false, "restart playback when the day ends")
	operator := flag.String("operator", "", "operator code filter (overrides config)")
	from := flag.String("from", "", "playback start, HH:MM[:SS] or seconds")
	duration := flag.Duration("duration", 0, "stop playback after this long; 0 runs until interrupted")
	at := flag.String("at", "", "snapshot instant, HH:MM[:SS] or seconds; empty samples the wall clock")
	call := flag.String("call", "vp", "snapshot delivery: vp|vm")
	format := flag.String("format", "json", "vp snapshot format: json|pb")
	out := flag.String("out", "", "output path; empty means stdout (snapshot) or the dataset path (generate/import)")
	pretty := flag.Bool("pretty", false, "indent written datasets")
	seed := flag.Int64("seed", 0, "generator seed; 0 selects the default")
	date := flag.String("date", "", "service date YYYY-MM-DD")
	schedule := flag.String("schedule", "", "SCHEDULE extract path (.json or .json.gz)")
	corpus := flag.String("corpus", "", "CORPUS reference JSON path")
	stations := flag.String("stations", "", "station coordinates CSV path")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	switch *mode {
	case "play":
		runPlay(*data, *speed, *loop, *operator, *from, *duration)
	case "snapshot":
		runSnapshot(*data, *at, *call, *format, *operator, *out)
	case "generate":
		runGenerate(*seed, *date, *out, *pretty)
	case "import":
		runImport(*schedule, *corpus, *stations, *date, *out, *pretty)
	default:
		panic("unknown mode")
	}
}

func loadDataset(override string) *dataset.Dataset {
	path := config.Config.Dataset.Path
	if override != "" {
		path = override
	}
	ds, err := dataset.LoadFile(path, dataset.LoadOptions{SkipMalformed: config.Config.Dataset.SkipMalformed})
	if err != nil {
		panic(err)
	}
	if skipped := ds.Skipped(); len(skipped) > 0 {
		log.Printf("skipped %d malformed trains", len(skipped))
	}
	return ds
}

func runPlay(dataFlag string, speedFlag float64, loopFlag bool, operatorFlag, fromFlag string, duration time.Duration) {
	cfg := config.Config
	ds := loadDataset(dataFlag)
	engine := query.NewEngine(ds)

	clock := playback.NewClock(ds.TimeBounds())
	spd := cfg.Playback.Speed
	if speedFlag != 0 {
		spd = speedFlag
	}
	clock.SetSpeed(spd)
	clock.SetLoop(loopFlag || cfg.Playback.Loop)
	if fromFlag != "" {
		t, err := utils.ParseClockTime(fromFlag)
		if err != nil {
			panic(err)
		}
		clock.Seek(t)
	}

	op := cfg.Playback.Operator
	if operatorFlag != "" {
		op = operatorFlag
	}

	collector := metrics.NewCollector()
	var srv *http.Server
	if cfg.Metrics.Enabled {
		srv = collector.Serve(cfg.Metrics.Addr)
	}

	player := playback.NewPlayer(engine, clock, playback.Options{
		FrameRate: cfg.Playback.FrameRateHz,
		StatsRate: cfg.Playback.StatsRateHz,
		Operator:  op,
		Metrics:   collector,
		OnStats: func(s playback.Stats) {
			fmt.Printf("\r%s  active %4d of %d  %gx  ", s.Clock, s.Active, s.Total, s.Speed)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}
	err := player.Run(ctx)
	fmt.Println()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		panic(err)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("metrics server shutdown error: %v", err)
		}
	}
}

func runSnapshot(dataFlag, atFlag, call, format, operatorFlag, outFlag string) {
	cfg := config.Config
	ds := loadDataset(dataFlag)
	engine := query.NewEngine(ds)
	cache := feed.NewCache(engine, feed.Options{
		Codespace: cfg.Snapshot.Codespace,
		ValidFor:  time.Duration(cfg.Snapshot.ValidForMS) * time.Millisecond,
	}, cfg.Snapshot.CacheQuantumSeconds, metrics.NewCollector())

	at := wallSecondsOfDay(time.Now())
	if atFlag != "" {
		v, err := utils.ParseClockTime(atFlag)
		if err != nil {
			panic(err)
		}
		at = v
	}

	var buf []byte
	var err error
	switch call {
	case "vp":
		buf, err = cache.GetVehiclePositions(format, at, operatorFlag)
	case "vm":
		buf, err = cache.GetVehicleMonitoring(at, operatorFlag)
	default:
		panic("unknown call; use vp or vm")
	}
	if err != nil {
		panic(err)
	}
	writeOutput(outFlag, buf, call == "vp" && format == "pb")
}

func runGenerate(seed int64, date, outFlag string, pretty bool) {
	d, err := sample.Generate(sample.Options{Seed: seed, Date: date})
	if err != nil {
		panic(err)
	}
	writeDataset(d, outFlag, pretty)
	printBreakdown(d)
}

func runImport(schedulePath, corpusPath, stationsPath, date, outFlag string, pretty bool) {
	if schedulePath == "" || corpusPath == "" || stationsPath == "" {
		panic("import mode requires -schedule, -corpus and -stations")
	}
	imp := timetable.NewImporter()
	if err := imp.LoadCorpusFile(corpusPath); err != nil {
		panic(err)
	}
	if err := imp.LoadStationsFile(stationsPath); err != nil {
		panic(err)
	}
	d, err := imp.ImportScheduleFile(schedulePath, date)
	if err != nil {
		panic(err)
	}
	writeDataset(d, outFlag, pretty)
	printBreakdown(d)
}

// wallSecondsOfDay projects a wall instant onto dataset seconds, so a
// snapshot with no -at renders where trains would be right now.
func wallSecondsOfDay(t time.Time) float64 {
	h, m, s := t.Clock()
	return float64(h*3600 + m*60 + s)
}

func writeOutput(path string, buf []byte, binary bool) {
	if path == "" {
		if binary {
			_, _ = os.Stdout.Write(buf)
			return
		}
		fmt.Println(string(buf))
		return
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		panic(err)
	}
	log.Printf("wrote %d bytes to %s", len(buf), path)
}

func writeDataset(d *dataset.Dataset, path string, pretty bool) {
	if path == "" {
		path = config.Config.Dataset.Path
	}
	if path == "-" {
		encodeDataset(os.Stdout, d, pretty)
		return
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	encodeDataset(f, d, pretty)
	if info, err := f.Stat(); err == nil {
		fmt.Printf("wrote %d trains to %s (%.0f KB)\n", d.TrainCount(), path, float64(info.Size())/1024)
	}
}

func encodeDataset(w io.Writer, d *dataset.Dataset, pretty bool) {
	var err error
	if pretty {
		err = dataset.EncodeIndent(w, d)
	} else {
		err = dataset.Encode(w, d)
	}
	if err != nil {
		panic(err)
	}
}

func printBreakdown(d *dataset.Dataset) {
	counts := map[string]int{}
	for _, tr := range d.Trains {
		counts[tr.Operator]++
	}
	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if counts[codes[i]] != counts[codes[j]] {
			return counts[codes[i]] > counts[codes[j]]
		}
		return codes[i] < codes[j]
	})
	fmt.Println("\nOperator breakdown:")
	for _, code := range codes {
		fmt.Printf("  %-4s %-30s %4d\n", code, d.OperatorName(code), counts[code])
	}
}
