package main

import (
	"fmt"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Spending trend chart
// ---------------------------------------------------------------------------

const trendChartHeight = 8

// dailySpending buckets expense magnitudes per day across [start, end], one
// value per day including zero-spend days, so the chart has a continuous
// time axis.
func dailySpending(rows []transaction, start, end time.Time) ([]float64, []time.Time) {
	if end.Before(start) {
		return nil, nil
	}
	start = normalizeDate(start)
	end = normalizeDate(end)
	days := int(end.Sub(start).Hours()/24) + 1
	if days <= 0 {
		return nil, nil
	}

	byDay := make(map[string]float64)
	for _, r := range rows {
		if r.amount >= 0 || r.date.IsZero() {
			continue
		}
		d := normalizeDate(r.date)
		if d.Before(start) || d.After(end) {
			continue
		}
		byDay[d.Format(dateISOFormat)] += -r.amount
	}

	values := make([]float64, 0, days)
	dates := make([]time.Time, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		values = append(values, byDay[d.Format(dateISOFormat)])
		dates = append(dates, d)
	}
	return values, dates
}

// trendWindow picks the date window the trend draws over: the committed
// criteria window when one is set, otherwise the span of the rows themselves.
func trendWindow(rows []transaction, c filterCriteria) (time.Time, time.Time, bool) {
	start, end := c.startDate, c.endDate
	if start.IsZero() || end.IsZero() {
		for _, r := range rows {
			if r.date.IsZero() {
				continue
			}
			if start.IsZero() || r.date.Before(start) {
				start = r.date
			}
			if end.IsZero() || r.date.After(end) {
				end = r.date
			}
		}
	}
	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return normalizeDate(start), normalizeDate(end), true
}

func renderSpendingTrend(rows []transaction, c filterCriteria, width int) string {
	start, end, ok := trendWindow(rows, c)
	if !ok {
		return statusStyle.Render("No data for spending trend.")
	}
	values, dates := dailySpending(rows, start, end)
	if len(dates) == 0 {
		return statusStyle.Render("No data for spending trend.")
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	chart := tslc.New(width, trendChartHeight)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorPeach))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	chart.SetTimeRange(dates[0], dates[len(dates)-1])
	chart.SetViewTimeRange(dates[0], dates[len(dates)-1])
	chart.SetYRange(0, maxVal)
	chart.SetViewYRange(0, maxVal)
	chart.Model.XLabelFormatter = trendXLabelFormatter(dates[0], dates[len(dates)-1])
	chart.Model.YLabelFormatter = trendYLabelFormatter()

	for i, d := range dates {
		chart.Push(tslc.TimePoint{Time: d, Value: values[i]})
	}
	chart.DrawBraille()
	return chart.View()
}

func trendXLabelFormatter(start, end time.Time) func(int, float64) string {
	layout := "2 Jan"
	if start.Year() != end.Year() {
		layout = "2 Jan 06"
	}
	return func(_ int, v float64) string {
		return time.Unix(int64(v), 0).In(time.Local).Format(layout)
	}
}

func trendYLabelFormatter() func(int, float64) string {
	return func(_ int, v float64) string {
		if v <= 0 {
			return ""
		}
		return fmt.Sprintf("%.0f", v)
	}
}
