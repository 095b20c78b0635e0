package feed

import (
	"encoding/json"

	transitTypes "github.com/theoremus-urban-solutions/transit-types/siri"

	"github.com/theoremus-urban-solutions/rail-pulse/query"
	"github.com/theoremus-urban-solutions/rail-pulse/utils"
)

// SiriResponse is the top-level SIRI envelope.
type SiriResponse struct {
	Siri SiriServiceDelivery `json:"Siri"`
}

// SiriServiceDelivery wraps the ServiceDelivery element.
type SiriServiceDelivery struct {
	ServiceDelivery ServiceDelivery `json:"ServiceDelivery"`
}

// ServiceDelivery carries the vehicle monitoring deliveries of one response.
type ServiceDelivery struct {
	ResponseTimestamp         string                      `json:"ResponseTimestamp"`
	ProducerRef               string                      `json:"ProducerRef,omitempty"`
	VehicleMonitoringDelivery []VehicleMonitoringDelivery `json:"VehicleMonitoringDelivery"`
}

// VehicleMonitoringDelivery groups the vehicle activity of one instant.
type VehicleMonitoringDelivery struct {
	ResponseTimestamp string            `json:"ResponseTimestamp"`
	ValidUntil        string            `json:"ValidUntil,omitempty"`
	VehicleActivity   []VehicleActivity `json:"VehicleActivity"`
}

// VehicleActivity is a single vehicle's entry in the delivery.
type VehicleActivity struct {
	RecordedAtTime          string                  `json:"RecordedAtTime"`
	MonitoredVehicleJourney MonitoredVehicleJourney `json:"MonitoredVehicleJourney"`
}

// MonitoredVehicleJourney describes one train's journey at the instant.
type MonitoredVehicleJourney struct {
	LineRef                 string                                `json:"LineRef"`
	FramedVehicleJourneyRef *transitTypes.FramedVehicleJourneyRef `json:"FramedVehicleJourneyRef,omitempty"`
	OperatorRef             string                                `json:"OperatorRef,omitempty"`
	PublishedLineName       string                                `json:"PublishedLineName,omitempty"`
	OriginName              string                                `json:"OriginName,omitempty"`
	DestinationName         string                                `json:"DestinationName,omitempty"`
	Monitored               bool                                  `json:"Monitored"`
	DataSource              string                                `json:"DataSource"`
	VehicleLocation         VehicleLocation                       `json:"VehicleLocation"`
	VehicleStatus           string                                `json:"VehicleStatus,omitempty"`
	ProgressRate            string                                `json:"ProgressRate,omitempty"`
	VehicleRef              string                                `json:"VehicleRef"`
	IsCompleteStopSequence  bool                                  `json:"IsCompleteStopSequence"`
}

// VehicleLocation is the geographical location of a vehicle.
type VehicleLocation struct {
	Longitude *float64 `json:"Longitude"`
	Latitude  *float64 `json:"Latitude"`
}

// SIRIVM renders playback instants as SIRI-VM service deliveries.
type SIRIVM struct {
	engine *query.Engine
	opts   Options
}

// NewSIRIVM builds a SIRI-VM renderer over the engine.
func NewSIRIVM(engine *query.Engine, opts Options) *SIRIVM {
	opts.fill(engine.Dataset())
	return &SIRIVM{engine: engine, opts: opts}
}

// Snapshot assembles a service delivery for the instant.
func (s *SIRIVM) Snapshot(at float64, operator string) *SiriResponse {
	wall := s.opts.wallTime(at)
	ts := utils.Iso8601FromTime(wall)
	vm := VehicleMonitoringDelivery{
		ResponseTimestamp: ts,
		ValidUntil:        utils.Iso8601FromTime(wall.Add(s.opts.ValidFor)),
		VehicleActivity:   []VehicleActivity{},
	}
	for _, ap := range s.engine.ActivePositions(at, operator) {
		vm.VehicleActivity = append(vm.VehicleActivity, VehicleActivity{
			RecordedAtTime:          ts,
			MonitoredVehicleJourney: s.buildMVJ(ap, at),
		})
	}
	return &SiriResponse{Siri: SiriServiceDelivery{ServiceDelivery: ServiceDelivery{
		ResponseTimestamp:         ts,
		ProducerRef:               s.opts.Codespace,
		VehicleMonitoringDelivery: []VehicleMonitoringDelivery{vm},
	}}}
}

// buildMVJ maps one active train onto a MonitoredVehicleJourney.
func (s *SIRIVM) buildMVJ(ap query.ActivePosition, at float64) MonitoredVehicleJourney {
	tr := ap.Train
	cs := s.opts.Codespace
	lon, lat := ap.Position.Lon, ap.Position.Lat

	status := "inProgress"
	rate := "normalProgress"
	switch {
	case ap.Progress <= 0:
		status = "atOrigin"
	case ap.Progress >= 1:
		status = "completed"
	case s.engine.StationaryAt(tr, at):
		status = "atStop"
		rate = "noProgress"
	}

	return MonitoredVehicleJourney{
		LineRef: cs + ":Line:" + tr.Operator,
		FramedVehicleJourneyRef: &transitTypes.FramedVehicleJourneyRef{
			DataFrameRef:           s.opts.DataFrame,
			DatedVehicleJourneyRef: cs + ":ServiceJourney:" + tr.ID,
		},
		OperatorRef:       cs + ":Operator:" + tr.Operator,
		PublishedLineName: s.engine.Dataset().OperatorName(tr.Operator),
		OriginName:        tr.From,
		DestinationName:   tr.To,
		Monitored:         true,
		DataSource:        cs,
		VehicleLocation:   VehicleLocation{Longitude: &lon, Latitude: &lat},
		VehicleStatus:     status,
		ProgressRate:      rate,
		VehicleRef:        cs + ":VehicleRef:" + tr.ID,
	}
}

// Marshal renders the snapshot as JSON.
func (s *SIRIVM) Marshal(at float64, operator string) ([]byte, error) {
	return json.Marshal(s.Snapshot(at, operator))
}
