package timetable

import "github.com/theoremus-urban-solutions/rail-pulse/dataset"

// FallbackColor marks operators absent from the known table.
const FallbackColor = "#ffb830"

// KnownOperators maps ATOC codes of UK passenger operators to display
// names and brand colours. Imports keep only services run under these
// codes; freight, charter and infrastructure workings are dropped.
var KnownOperators = map[string]dataset.Operator{
	"NT": {Name: "Northern Trains", Color: "#262262"},
	"SE": {Name: "Southeastern", Color: "#009ddc"},
	"SR": {Name: "ScotRail", Color: "#1a5ba5"},
	"SW": {Name: "South Western Railway", Color: "#e11837"},
	"GW": {Name: "Great Western Railway", Color: "#0a493e"},
	"SN": {Name: "Southern", Color: "#8cc63e"},
	"LO": {Name: "London Overground", Color: "#ef7b10"},
	"AW": {Name: "Transport for Wales", Color: "#e4131b"},
	"LE": {Name: "Greater Anglia", Color: "#d70428"},
	"LM": {Name: "West Midlands Trains", Color: "#ff8300"},
	"TL": {Name: "Thameslink", Color: "#e83673"},
	"ME": {Name: "Merseyrail", Color: "#ffd500"},
	"XR": {Name: "Elizabeth Line", Color: "#9364cc"},
	"TP": {Name: "TransPennine Express", Color: "#00a4e4"},
	"EM": {Name: "East Midlands Railway", Color: "#6b2c91"},
	"VT": {Name: "Avanti West Coast", Color: "#e4131b"},
	"CC": {Name: "c2c", Color: "#b71c8e"},
	"GN": {Name: "Great Northern", Color: "#e83673"},
	"CH": {Name: "Chiltern Railways", Color: "#00bfff"},
	"XC": {Name: "CrossCountry", Color: "#660f21"},
	"GR": {Name: "LNER", Color: "#ce0e2d"},
	"HX": {Name: "Heathrow Express", Color: "#532e63"},
	"GX": {Name: "Gatwick Express", Color: "#e11837"},
	"CS": {Name: "Caledonian Sleeper", Color: "#1e3264"},
	"GC": {Name: "Grand Central", Color: "#2d2926"},
	"IL": {Name: "Island Line", Color: "#1fa14a"},
	"TW": {Name: "Tyne & Wear Metro", Color: "#ffd500"},
	"LT": {Name: "London Tramlink", Color: "#6cc24a"},
}

// OperatorInfo returns the display entry for an ATOC code, falling back to
// the bare code with the fallback colour.
func OperatorInfo(code string) dataset.Operator {
	if op, ok := KnownOperators[code]; ok {
		return op
	}
	return dataset.Operator{Name: code, Color: FallbackColor}
}
