package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/labjo/pkg/worklog"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Activity renders a month grid where days with work-log check-ins are
// highlighted.
func (pp *PrettyPrint) Activity(log *worklog.Log, then time.Time) {
	days := DaysIn(then)
	count := make([]int, days)

	if log != nil {
		for _, task := range log.Tasks {
			in := task.CheckIn.Time.Local()
			if in.Year() == then.Year() && in.Month() == then.Month() {
				count[in.Day()-1]++
			}
		}
	}

	pp.printMonthCount(then, count)
}

// ActivityYear renders twelve month grids for then's year.
func (pp *PrettyPrint) ActivityYear(log *worklog.Log, then time.Time) {
	month := time.Date(then.Year(), 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 12; i++ {
		pp.Activity(log, month)
		month = NextMonth(month)
	}
}

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)
	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(color.Output, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Fprint(color.Output, "   ")
	}

	idle := color.New(color.Faint, color.FgWhite)
	worked := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		printer := idle
		if i < len(count) && count[i] > 0 {
			printer = worked
		}
		_, _ = printer.Fprintf(color.Output, "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Fprint(color.Output, "\n")
		}
	}
	fmt.Fprint(color.Output, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, then.Local().Day(), 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
