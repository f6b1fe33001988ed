// Package report renders scheduling results as text: a title banner, a
// Gantt line and tablewriter tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"

	"github.com/vinhtrinh326/schedsim/internal/scheduler"
)

// Write renders the full report of one result.
func Write(w io.Writer, processes []scheduler.Process, r *scheduler.Result) {
	outputTitle(w, r.Policy.Title())
	outputGantt(w, r.Timeline)
	outputSchedule(w, scheduleRows(processes, r), averages{
		wait:       r.AverageWaitingTime,
		turnaround: r.AverageTurnaroundTime,
		response:   r.AverageResponseTime,
		throughput: r.Throughput(),
	})
}

// WriteComparison renders one summary row per policy.
func WriteComparison(w io.Writer, comparisons []scheduler.Comparison) {
	outputTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg wait", "Avg turnaround", "Avg response", "Makespan", "Utilization", "Throughput"})
	for _, c := range comparisons {
		r := c.Result
		table.Append([]string{
			c.Policy.Title(),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.Makespan()),
			fmt.Sprintf("%.0f%%", r.Utilization()*100),
			fmt.Sprintf("%.2f/t", r.Throughput()),
		})
	}
	table.Render()
}

func scheduleRows(processes []scheduler.Process, r *scheduler.Result) [][]string {
	ordered := append([]scheduler.Process(nil), processes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ProcessID < ordered[j].ProcessID
	})
	rows := make([][]string, len(ordered))
	for i, p := range ordered {
		rows[i] = []string{
			fmt.Sprint(p.ProcessID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstDuration),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(r.WaitingTime[p.ProcessID]),
			fmt.Sprint(r.TurnaroundTime[p.ProcessID]),
			fmt.Sprint(r.ResponseTime[p.ProcessID]),
			fmt.Sprint(r.CompletionTime[p.ProcessID]),
		}
	}
	return rows
}

// outputTitle centres title between two rules twice its width.
func outputTitle(w io.Writer, title string) {
	width := utf8.RuneCountInString(title)
	rule := strings.Repeat("-", width*2)
	_, _ = fmt.Fprintf(w, "%s\n%*s\n%s\n", rule, width+width/2, title, rule)
}

func outputGantt(w io.Writer, gantt []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		if gantt[i].Idle() {
			pid = "-"
		}
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

type averages struct {
	wait, turnaround, response, throughput float64
}

func outputSchedule(w io.Writer, rows [][]string, avg averages) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	footer := make([]string, 0, 8)
	footer = append(footer, "", "", "", "")
	for _, v := range []float64{avg.wait, avg.turnaround, avg.response} {
		footer = append(footer, fmt.Sprintf("Average\n%.2f", v))
	}
	footer = append(footer, fmt.Sprintf("Throughput\n%.2f/t", avg.throughput))
	table.SetFooter(footer)
	table.Render()
}
