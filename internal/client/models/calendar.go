package models

// CellKind tells the renderer what a CalendarCell occupies.
type CellKind int

const (
	CellHeader CellKind = iota
	CellPadding
	CellDay
)

// CalendarCell is one derived grid position of the month view. Day cells
// carry their own Date so the UI can offer "pick this day".
type CalendarCell struct {
	Kind     CellKind
	Label    string
	Day      int
	Date     Date
	HasEntry bool
	IsToday  bool
}
