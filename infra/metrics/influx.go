package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/plantops/maintcore/core/metrics"
	"github.com/plantops/maintcore/infra/logger"
)

// InfluxSink writes planning events to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.PlanningSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordProgram writes a program build or lifecycle event.
func (s *InfluxSink) RecordProgram(ev coremetrics.ProgramEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("program_event").
		AddTag("program_id", ev.ProgramID).
		AddTag("plant_id", ev.PlantID).
		AddTag("status", ev.Status).
		AddTag("week", strconv.Itoa(ev.Week)).
		AddTag("year", strconv.Itoa(ev.Year)).
		AddTag("component", "scheduler").
		AddField("packages", ev.Packages).
		AddField("total_hours", round3(ev.TotalHours)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordConflicts writes the outcome of a conflict-detection pass.
func (s *InfluxSink) RecordConflicts(ev coremetrics.ConflictsEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("conflict_scan").
		AddTag("program_id", ev.ProgramID).
		AddTag("component", "scheduler").
		AddField("area_interference", ev.AreaInterference).
		AddField("overallocation", ev.Overallocation).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordLeveling writes the outcome of a resource-leveling pass.
func (s *InfluxSink) RecordLeveling(ev coremetrics.LevelingEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("leveling_pass").
		AddTag("program_id", ev.ProgramID).
		AddTag("bottleneck", ev.Bottleneck).
		AddTag("component", "scheduler").
		AddField("slots", ev.Slots).
		AddField("mean_pct", round3(ev.MeanPct)).
		AddField("peak_pct", round3(ev.PeakPct)).
		AddField("multi_day_splits", ev.MultiDaySplits).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
