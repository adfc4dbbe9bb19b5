package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadload/compare"
	"github.com/katalvlaran/roadload/network"
)

// number is a float64 whose JSON form survives ±Inf and NaN.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}

	return json.Marshal(f)
}

type scenarioReport struct {
	Name         string       `json:"name" yaml:"name"`
	RunID        string       `json:"run_id" yaml:"run_id"`
	Vehicles     int          `json:"vehicles" yaml:"vehicles"`
	Final        number       `json:"final" yaml:"final"`
	Mean         number       `json:"mean" yaml:"mean"`
	Max          number       `json:"max" yaml:"max"`
	StdDev       number       `json:"std_dev" yaml:"std_dev"`
	FreeFlowTime number       `json:"free_flow_time" yaml:"free_flow_time"`
	Elapsed      string       `json:"elapsed" yaml:"elapsed"`
	Paths        []pathCount  `json:"paths" yaml:"paths"`
	Flows        []flowReport `json:"flows" yaml:"flows"`
	Series       []number     `json:"series,omitempty" yaml:"series,omitempty"`
}

type pathCount struct {
	Path     string `json:"path" yaml:"path"`
	Vehicles int    `json:"vehicles" yaml:"vehicles"`
}

type flowReport struct {
	From     network.Node `json:"from" yaml:"from"`
	To       network.Node `json:"to" yaml:"to"`
	Vehicles int          `json:"vehicles" yaml:"vehicles"`
	Time     number       `json:"time" yaml:"time"`
}

func newScenarioReport(o compare.Outcome, withSeries bool) scenarioReport {
	res := o.Result
	r := scenarioReport{
		Name:         o.Name,
		RunID:        res.RunID,
		Vehicles:     o.Stats.Vehicles,
		Final:        number(o.Stats.Final),
		Mean:         number(o.Stats.Mean),
		Max:          number(o.Stats.Max),
		StdDev:       number(o.Stats.StdDev),
		FreeFlowTime: number(res.FreeFlowTime),
		Elapsed:      res.Elapsed.Round(time.Microsecond).String(),
		Paths:        make([]pathCount, len(res.Paths)),
		Flows:        make([]flowReport, len(res.Flows)),
	}
	for i, p := range res.Paths {
		r.Paths[i] = pathCount{Path: p.String(), Vehicles: res.PathCounts[i]}
	}
	for i, f := range res.Flows {
		r.Flows[i] = flowReport{From: f.From, To: f.To, Vehicles: f.Vehicles, Time: number(f.Time)}
	}
	if withSeries {
		r.Series = make([]number, len(res.Series))
		for i, v := range res.Series {
			r.Series[i] = number(v)
		}
	}

	return r
}

// encode writes v to w as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
