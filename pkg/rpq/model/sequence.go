package model

import (
	"sort"
	"strings"
)

// Sequence is a list of jobs in the order they run on the machine, without
// preemptions. Each job starts as soon as the previous one completes, or at
// its own delivery time if the machine would otherwise stay idle.
type Sequence []Job

// Cmax is the makespan of the sequence: the time at which the last cooldown
// finishes when the jobs run in this exact order.
func (s Sequence) Cmax() int {
	var makespan, t int

	for _, job := range s {
		if job.Delivery > t {
			t = job.Delivery + job.Processing
		} else {
			t += job.Processing
		}

		if end := t + job.Cooldown; end > makespan {
			makespan = end
		}
	}

	return makespan
}

// Schedule expands the sequence into a schedule without preemptions: every
// job holds the machine from its start to its completion.
func (s Sequence) Schedule() Schedule {
	timetable := make([]Slot, 0, len(s))

	var t int

	for i, job := range s {
		if job.Delivery > t {
			t = job.Delivery
		}

		timetable = append(timetable, Slot{Start: t, Job: i})
		t += job.Processing
	}

	return Schedule{Jobs: s, Timetable: timetable}
}

// ByDelivery returns a copy of the sequence sorted by ascending delivery time.
func (s Sequence) ByDelivery() Sequence {
	return s.sorted(func(a, b Job) bool { return a.Delivery < b.Delivery })
}

// ByProcessing returns a copy of the sequence sorted by ascending processing time.
func (s Sequence) ByProcessing() Sequence {
	return s.sorted(func(a, b Job) bool { return a.Processing < b.Processing })
}

// ByCooldown returns a copy of the sequence sorted by ascending cooldown time.
func (s Sequence) ByCooldown() Sequence {
	return s.sorted(func(a, b Job) bool { return a.Cooldown < b.Cooldown })
}

func (s Sequence) sorted(less func(a, b Job) bool) Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

func (s Sequence) String() string {
	var sb strings.Builder
	for _, job := range s {
		sb.WriteString(job.String())
		sb.WriteString("\n")
	}

	return sb.String()
}
