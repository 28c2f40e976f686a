package model

import "github.com/pablasso/tempo/internal/task"

// Row is one derived training example.
type Row struct {
	Day        string
	Type       string
	Minutes    float64
	Productive bool
	DayCode    int
	TypeCode   int
}

// Dataset is the output of a single derivation pass. Codes on Rows are only
// meaningful relative to Days and Types from the same Dataset.
type Dataset struct {
	Rows    []Row
	Dropped int // tasks skipped because their date did not parse
	Days    *Encoder
	Types   *Encoder
}

// Derive turns the task log into encoded training rows. Tasks whose date
// cannot be parsed are dropped entirely.
func Derive(tasks []task.Task) Dataset {
	ds := Dataset{}

	for _, t := range tasks {
		day, err := DayName(t.Date)
		if err != nil {
			ds.Dropped++
			continue
		}
		minutes := DurationMinutes(t.Duration)
		ds.Rows = append(ds.Rows, Row{
			Day:        day,
			Type:       t.Type,
			Minutes:    minutes,
			Productive: IsProductive(minutes),
		})
	}

	days := make([]string, len(ds.Rows))
	types := make([]string, len(ds.Rows))
	for i, r := range ds.Rows {
		days[i] = r.Day
		types[i] = r.Type
	}
	ds.Days = NewEncoder(days)
	ds.Types = NewEncoder(types)

	for i := range ds.Rows {
		ds.Rows[i].DayCode, _ = ds.Days.Encode(ds.Rows[i].Day)
		ds.Rows[i].TypeCode, _ = ds.Types.Encode(ds.Rows[i].Type)
	}
	return ds
}

// Features returns the (day code, type code) matrix and labels for fitting.
func (ds Dataset) Features() ([][]int, []bool) {
	x := make([][]int, len(ds.Rows))
	y := make([]bool, len(ds.Rows))
	for i, r := range ds.Rows {
		x[i] = []int{r.DayCode, r.TypeCode}
		y[i] = r.Productive
	}
	return x, y
}
