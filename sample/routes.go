package sample

import "github.com/theoremus-urban-solutions/rail-pulse/dataset"

// operators is the sample palette. It deliberately carries its own colour
// set rather than sharing the SCHEDULE import table, so generated data is
// recognisable at a glance next to a real extract.
var operators = map[string]dataset.Operator{
	"GR": {Name: "LNER", Color: "#ce0e2d"},
	"VT": {Name: "Avanti West Coast", Color: "#ff4713"},
	"GW": {Name: "Great Western Railway", Color: "#0a493e"},
	"EM": {Name: "East Midlands Railway", Color: "#6b2c91"},
	"SW": {Name: "South Western Railway", Color: "#0079c1"},
	"LE": {Name: "Greater Anglia", Color: "#d70428"},
	"SE": {Name: "Southeastern", Color: "#00afe8"},
	"SN": {Name: "Southern", Color: "#8cc63e"},
	"XC": {Name: "CrossCountry", Color: "#660f21"},
	"TP": {Name: "TransPennine Express", Color: "#0b1560"},
	"SR": {Name: "ScotRail", Color: "#1a3f7d"},
	"NT": {Name: "Northern Trains", Color: "#521980"},
	"TL": {Name: "Thameslink", Color: "#e7457b"},
	"AW": {Name: "Transport for Wales", Color: "#ff4713"},
	"CH": {Name: "Chiltern Railways", Color: "#00bfff"},
	"CC": {Name: "c2c", Color: "#b7007c"},
	"LO": {Name: "London Overground", Color: "#ee7c0e"},
	"EL": {Name: "Elizabeth Line", Color: "#6950a1"},
	"GN": {Name: "Great Northern", Color: "#481481"},
	"HT": {Name: "Hull Trains", Color: "#de005c"},
	"GC": {Name: "Grand Central", Color: "#1d1d1b"},
	"CS": {Name: "Caledonian Sleeper", Color: "#1d3557"},
}

type route struct {
	stations       []string
	operator       string
	avgSpeedMPH    float64
	servicesPerDay int
	bidirectional  bool
}

// routes lists the corridors the generator fills with services. Speeds
// are rough line averages in mph; service counts are totals across both
// directions.
var routes = []route{
	// East Coast Main Line
	{[]string{"KGX", "PBO", "DON", "YRK", "DLM", "NCL", "EDB"}, "GR", 100, 34, true},
	{[]string{"KGX", "PBO", "DON", "YRK"}, "GR", 100, 20, true},
	{[]string{"KGX", "PBO", "DON", "YRK", "DLM", "NCL", "EDB", "ABD"}, "GR", 90, 10, true},

	// West Coast Main Line
	{[]string{"EUS", "MKC", "COV", "BHM"}, "VT", 100, 48, true},
	{[]string{"EUS", "MKC", "CRE", "MAN"}, "VT", 100, 36, true},
	{[]string{"EUS", "MKC", "CRE", "PRE", "LAN", "CAR", "GLC"}, "VT", 95, 18, true},
	{[]string{"EUS", "MKC", "CRE", "LIV"}, "VT", 95, 18, true},

	// Great Western
	{[]string{"PAD", "RDG", "SWI", "BTH", "BRI"}, "GW", 90, 36, true},
	{[]string{"PAD", "RDG", "SWI", "BTH", "BRI", "NWP", "CDF"}, "GW", 85, 24, true},
	{[]string{"PAD", "RDG", "SWI", "BTH", "BRI", "NWP", "CDF", "SVG"}, "GW", 80, 12, true},
	{[]string{"PAD", "RDG", "EXD", "PLY", "PNZ"}, "GW", 75, 12, true},
	{[]string{"PAD", "RDG", "EXD", "PLY"}, "GW", 80, 16, true},
	{[]string{"PAD", "RDG", "OXF"}, "GW", 80, 36, true},
	{[]string{"PAD", "RDG"}, "GW", 85, 40, true},

	// East Midlands
	{[]string{"STP", "LEI", "NOT"}, "EM", 85, 30, true},
	{[]string{"STP", "LEI", "DBY", "SHF"}, "EM", 80, 20, true},

	// South Western
	{[]string{"WAT", "WOK", "BSK", "SOU"}, "SW", 70, 48, true},
	{[]string{"WAT", "WOK", "BSK", "SOU", "BMH"}, "SW", 65, 24, true},
	{[]string{"WAT", "WOK", "BSK", "SOU", "BMH", "WEY"}, "SW", 60, 10, true},
	{[]string{"WAT", "WOK", "GFD"}, "SW", 55, 36, true},
	{[]string{"WAT", "WOK"}, "SW", 50, 40, true},

	// Greater Anglia
	{[]string{"LST", "CHM", "IPW", "NRW"}, "LE", 75, 24, true},
	{[]string{"LST", "CHM", "IPW"}, "LE", 70, 24, true},
	{[]string{"LST", "CBG"}, "LE", 65, 36, true},

	// Southeastern
	{[]string{"VIC", "ASI", "DVP"}, "SE", 60, 24, true},
	{[]string{"STP", "ASI"}, "SE", 100, 18, true},
	{[]string{"CHX", "LER", "HAS"}, "SE", 50, 18, true},
	{[]string{"VIC", "CTB", "DVP"}, "SE", 55, 16, true},

	// Southern
	{[]string{"VIC", "GTW", "BTN"}, "SN", 55, 42, true},
	{[]string{"LBG", "GTW", "BTN"}, "SN", 55, 24, true},
	{[]string{"LBG", "GTW"}, "SN", 50, 30, true},

	// CrossCountry
	{[]string{"BRI", "BHM", "DBY", "SHF", "LDS", "YRK", "NCL", "EDB"}, "XC", 80, 14, true},
	{[]string{"BRI", "BHM", "DBY", "SHF", "LDS"}, "XC", 75, 12, true},
	{[]string{"BHM", "DBY", "SHF", "LDS", "YRK"}, "XC", 80, 12, true},
	{[]string{"CDF", "BRI", "BHM", "MAN"}, "XC", 70, 10, true},

	// TransPennine
	{[]string{"MAN", "LDS", "YRK", "NCL"}, "TP", 70, 20, true},
	{[]string{"MAN", "LDS", "HUL"}, "TP", 60, 12, true},
	{[]string{"MAN", "LDS", "YRK", "SCR"}, "TP", 55, 8, true},

	// ScotRail
	{[]string{"EDB", "STG", "PKS", "DDE", "ABD"}, "SR", 70, 20, true},
	{[]string{"EDB", "STG", "PKS", "DDE", "ABD", "INV"}, "SR", 60, 6, true},
	{[]string{"GLC", "STG", "PKS", "DDE"}, "SR", 65, 16, true},
	{[]string{"EDB", "GLC"}, "SR", 70, 42, true},
	{[]string{"GLC", "STG"}, "SR", 55, 30, true},

	// Northern
	{[]string{"MAN", "LDS"}, "NT", 55, 40, true},
	{[]string{"MAN", "SHF"}, "NT", 50, 30, true},
	{[]string{"LDS", "YRK"}, "NT", 50, 30, true},
	{[]string{"LDS", "HRG", "SKI"}, "NT", 40, 18, true},
	{[]string{"MAN", "WGN", "PRE"}, "NT", 45, 24, true},
	{[]string{"LIV", "WBQ", "MAN"}, "NT", 50, 26, true},
	{[]string{"LDS", "HUL"}, "NT", 45, 20, true},
	{[]string{"SHF", "DON", "HUL"}, "NT", 40, 12, true},
	{[]string{"MAN", "WGN", "LIV"}, "NT", 50, 20, true},
	{[]string{"LDS", "DON", "LCN"}, "NT", 40, 10, true},

	// Thameslink
	{[]string{"LBG", "GTW", "BTN"}, "TL", 50, 30, true},
	{[]string{"STP", "LBG", "GTW"}, "TL", 45, 24, true},
	{[]string{"STP", "CBG"}, "TL", 55, 28, true},

	// Transport for Wales
	{[]string{"CDF", "NWP", "BRI"}, "AW", 50, 20, true},
	{[]string{"CDF", "SVG"}, "AW", 50, 22, true},
	{[]string{"CDF", "NWP", "AHD", "HFD", "SHR"}, "AW", 45, 12, true},
	{[]string{"SHR", "WRX", "CHE"}, "AW", 40, 12, true},
	{[]string{"CHE", "BNG", "HOL"}, "AW", 40, 10, true},

	// Chiltern
	{[]string{"MOG", "BHM"}, "CH", 65, 28, true},

	// c2c
	{[]string{"FST", "RMF"}, "CC", 40, 36, true},

	// Great Northern
	{[]string{"KGX", "PBO", "CBG"}, "GN", 65, 30, true},
	{[]string{"KGX", "PBO"}, "GN", 70, 36, true},

	// Elizabeth Line
	{[]string{"PAD", "STF", "LST"}, "EL", 35, 72, true},

	// London Overground
	{[]string{"LST", "STF"}, "LO", 30, 60, true},

	// Hull Trains
	{[]string{"KGX", "DON", "HUL"}, "HT", 85, 8, true},

	// Grand Central
	{[]string{"KGX", "DON", "YRK"}, "GC", 85, 8, true},

	// Caledonian Sleeper
	{[]string{"EUS", "CRE", "PRE", "CAR", "GLC"}, "CS", 60, 1, true},
	{[]string{"EUS", "CRE", "PRE", "CAR", "EDB", "STG", "PKS", "INV"}, "CS", 55, 1, true},
}
