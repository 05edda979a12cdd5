package main

import "time"

// ---------------------------------------------------------------------------
// Range calendar
// ---------------------------------------------------------------------------

// The calendar picks a two-endpoint date range. Clicking alternates between
// picking the start and the end, with a swap rule that keeps the pending
// range ordered no matter which order the user clicks in.

// Selection phase: which endpoint the next click sets.
const (
	selectingStart = iota
	selectingEnd
)

// Quick-range presets shown under the calendar grid.
const (
	quickRangeToday = iota
	quickRangeWeek
	quickRangeMonth
	quickRangeAllTime
	quickRangeCount
)

var quickRangeLabels = []string{"Today", "Last 7 days", "Last 30 days", "All time"}

const calendarGridCells = 42 // 6 full weeks

// calendarState is the uncommitted selection inside the date-range picker.
// Pending bounds are distinct from the committed criteria until the user
// applies them; closing without applying discards this state wholesale.
type calendarState struct {
	visibleYear  int
	visibleMonth time.Month
	pendingStart time.Time // zero = not picked
	pendingEnd   time.Time // zero = not picked
	phase        int
	cursor       int // index into the month grid for keyboard navigation
}

// calendarCell is one slot in the 6x7 month grid. Filler cells pad the grid
// with previous/next-month day numbers and are not selectable.
type calendarCell struct {
	day      int
	date     time.Time
	filler   bool
	isToday  bool
	selected bool
	inRange  bool
}

// openCalendar seeds a picker session from the committed range. The visible
// month follows the committed start date when one exists, otherwise today.
func openCalendar(committedStart, committedEnd, now time.Time) calendarState {
	anchor := normalizeDate(now)
	if !committedStart.IsZero() {
		anchor = committedStart
	}
	c := calendarState{
		visibleYear:  anchor.Year(),
		visibleMonth: anchor.Month(),
		pendingStart: committedStart,
		pendingEnd:   committedEnd,
		phase:        selectingStart,
	}
	c.cursor = c.cursorForDate(anchor)
	return c
}

// selectDay applies one day click to the pending selection.
//
// While selecting the start: the click becomes the new start, an end that now
// precedes the start is cleared, and the next click picks the end. While
// selecting the end: a click earlier than the start swaps the two endpoints;
// with no start picked yet the click falls back to picking the start. Either
// way the next click begins a new cycle at the start.
func (c *calendarState) selectDay(date time.Time) {
	date = normalizeDate(date)
	if c.phase == selectingStart {
		c.pendingStart = date
		if !c.pendingEnd.IsZero() && c.pendingEnd.Before(c.pendingStart) {
			c.pendingEnd = time.Time{}
		}
		c.phase = selectingEnd
		return
	}

	switch {
	case c.pendingStart.IsZero():
		c.pendingStart = date
	case date.Before(c.pendingStart):
		c.pendingEnd = c.pendingStart
		c.pendingStart = date
	default:
		c.pendingEnd = date
	}
	c.phase = selectingStart
}

// applyQuickRange overwrites the pending bounds directly. The selection phase
// is deliberately left alone; shortcuts do not participate in the click cycle.
func (c *calendarState) applyQuickRange(preset int, now time.Time) {
	today := normalizeDate(now)
	switch preset {
	case quickRangeToday:
		c.pendingStart = today
		c.pendingEnd = today
	case quickRangeWeek:
		c.pendingStart = daysAgo(7, now)
		c.pendingEnd = today
	case quickRangeMonth:
		c.pendingStart = daysAgo(30, now)
		c.pendingEnd = today
	case quickRangeAllTime:
		c.pendingStart = time.Time{}
		c.pendingEnd = time.Time{}
	}
}

// prevMonth and nextMonth change only the visible month. Pending selection
// survives navigation untouched.
func (c *calendarState) prevMonth() {
	c.visibleYear, c.visibleMonth = shiftMonth(c.visibleYear, c.visibleMonth, -1)
	c.clampCursor()
}

func (c *calendarState) nextMonth() {
	c.visibleYear, c.visibleMonth = shiftMonth(c.visibleYear, c.visibleMonth, 1)
	c.clampCursor()
}

func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// monthGrid lays out the visible month as a fixed 42-cell grid: leading
// filler from the previous month (one per weekday before the 1st, Sunday
// first), the month's days, then trailing filler from the next month.
func (c calendarState) monthGrid(now time.Time) []calendarCell {
	first := time.Date(c.visibleYear, c.visibleMonth, 1, 0, 0, 0, 0, time.Local)
	lastDate := first.AddDate(0, 1, -1).Day()
	prevLastDate := first.AddDate(0, 0, -1).Day()
	leading := int(first.Weekday())
	today := normalizeDate(now)

	cells := make([]calendarCell, 0, calendarGridCells)
	for i := leading; i > 0; i-- {
		cells = append(cells, calendarCell{day: prevLastDate - i + 1, filler: true})
	}
	for day := 1; day <= lastDate; day++ {
		date := time.Date(c.visibleYear, c.visibleMonth, day, 0, 0, 0, 0, time.Local)
		cell := calendarCell{
			day:     day,
			date:    date,
			isToday: sameDay(date, today),
		}
		if (!c.pendingStart.IsZero() && date.Equal(c.pendingStart)) ||
			(!c.pendingEnd.IsZero() && date.Equal(c.pendingEnd)) {
			cell.selected = true
		}
		if !c.pendingStart.IsZero() && !c.pendingEnd.IsZero() &&
			date.After(c.pendingStart) && date.Before(c.pendingEnd) {
			cell.inRange = true
		}
		cells = append(cells, cell)
	}
	for day := 1; len(cells) < calendarGridCells; day++ {
		cells = append(cells, calendarCell{day: day, filler: true})
	}
	return cells
}

// ---------------------------------------------------------------------------
// Keyboard navigation over the grid
// ---------------------------------------------------------------------------

// moveCursor shifts the cursor by delta cells, skipping nothing: filler cells
// are landable for navigation but selectCursor ignores them, so they can
// never corrupt the pending selection.
func (c *calendarState) moveCursor(delta int) {
	c.cursor += delta
	c.clampCursor()
}

func (c *calendarState) clampCursor() {
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= calendarGridCells {
		c.cursor = calendarGridCells - 1
	}
}

// selectCursor clicks the day under the cursor. Filler cells are inert.
func (c *calendarState) selectCursor(now time.Time) {
	grid := c.monthGrid(now)
	if c.cursor < 0 || c.cursor >= len(grid) {
		return
	}
	cell := grid[c.cursor]
	if cell.filler {
		return
	}
	c.selectDay(cell.date)
}

// cursorForDate positions the cursor on date if it falls in the visible
// month, otherwise on the 1st.
func (c calendarState) cursorForDate(date time.Time) int {
	first := time.Date(c.visibleYear, c.visibleMonth, 1, 0, 0, 0, 0, time.Local)
	leading := int(first.Weekday())
	if date.Year() == c.visibleYear && date.Month() == c.visibleMonth {
		return leading + date.Day() - 1
	}
	return leading
}
