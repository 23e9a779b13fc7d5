// Package dashboard aggregates the dispatch lists into the counters and bar
// charts shown on the home screen.
package dashboard

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/datefmt"
)

// NoDate labels trips whose start time cannot be parsed.
const NoDate = "sem data"

// Bar is one bucket of a chart.
type Bar struct {
	Label string
	Value int
}

// Summary is everything the dashboard renders.
type Summary struct {
	Clients    int
	Conductors int
	Vehicles   int
	Trips      int
	Open       int
	Closed     int
	Kilometres float64
	ByVehicle  []Bar
	ByMonth    []Bar
}

// Summarize counts the lists. Kilometres adds up the distance of closed
// trips only. ByVehicle is ordered by count, busiest first; ByMonth is
// chronological with undated trips last.
func Summarize(clients []apitypes.Client, conductors []apitypes.Conductor, vehicles []apitypes.Vehicle, trips []apitypes.Displacement) Summary {
	s := Summary{
		Clients:    len(clients),
		Conductors: len(conductors),
		Vehicles:   len(vehicles),
		Trips:      len(trips),
	}

	labels := make(map[int64]string, len(vehicles))
	for _, v := range vehicles {
		labels[v.ID] = vehicleLabel(v)
	}

	perVehicle := map[int64]int{}
	perMonth := map[time.Time]int{}
	undated := 0
	for _, t := range trips {
		if t.IsOpen() {
			s.Open++
		} else {
			s.Closed++
			s.Kilometres += *t.EndOdometer - t.StartOdometer
		}
		perVehicle[t.VehicleID]++
		start, err := datefmt.Parse(t.StartTime)
		if err != nil {
			undated++
			continue
		}
		perMonth[time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)]++
	}

	for id, n := range perVehicle {
		label, ok := labels[id]
		if !ok {
			label = fmt.Sprintf("#%d (sem cadastro)", id)
		}
		s.ByVehicle = append(s.ByVehicle, Bar{Label: label, Value: n})
	}
	slices.SortFunc(s.ByVehicle, func(a, b Bar) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Label, b.Label)
	})

	months := make([]time.Time, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	slices.SortFunc(months, func(a, b time.Time) int { return a.Compare(b) })
	for _, m := range months {
		s.ByMonth = append(s.ByMonth, Bar{Label: datefmt.Format(m, "MM/YYYY"), Value: perMonth[m]})
	}
	if undated > 0 {
		s.ByMonth = append(s.ByMonth, Bar{Label: NoDate, Value: undated})
	}
	return s
}

func vehicleLabel(v apitypes.Vehicle) string {
	if v.MakeModel == "" {
		return v.Plate
	}
	return v.Plate + " " + v.MakeModel
}

// Render writes the summary as aligned counters followed by the two charts.
// width is the length of the longest bar.
func Render(w io.Writer, s Summary, width int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	counters := []struct {
		label string
		value string
	}{
		{"Clientes", strconv.Itoa(s.Clients)},
		{"Condutores", strconv.Itoa(s.Conductors)},
		{"Veículos", strconv.Itoa(s.Vehicles)},
		{"Deslocamentos", strconv.Itoa(s.Trips)},
		{"  em aberto", strconv.Itoa(s.Open)},
		{"  encerrados", strconv.Itoa(s.Closed)},
		{"KM percorridos", strconv.FormatFloat(s.Kilometres, 'f', -1, 64)},
	}
	for _, c := range counters {
		fmt.Fprintf(tw, "%s\t%s\n", c.label, c.value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if err := chart(w, "Deslocamentos por veículo", s.ByVehicle, width); err != nil {
		return err
	}
	return chart(w, "Deslocamentos por mês", s.ByMonth, width)
}

func chart(w io.Writer, title string, bars []Bar, width int) error {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(bars) == 0 {
		_, err := fmt.Fprintln(w, "  (vazio)")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	peak := 0
	for _, b := range bars {
		peak = max(peak, b.Value)
	}
	for _, b := range bars {
		fmt.Fprintf(tw, "  %s\t%s %d\n", b.Label, strings.Repeat("█", barLength(b.Value, peak, width)), b.Value)
	}
	return tw.Flush()
}

// barLength scales value against peak. Non-zero values get at least one
// cell.
func barLength(value, peak, width int) int {
	if value <= 0 || peak <= 0 || width <= 0 {
		return 0
	}
	return max(1, value*width/peak)
}
