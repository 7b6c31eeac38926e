package model

// Slot records that the job at index Job in the schedule's job list starts
// or resumes at time Start.
type Slot struct {
	Start int
	Job   int
}

// Schedule is a job execution plan for a single machine with possible
// preemptions. A job appearing in several slots was preempted by another job
// in between.
type Schedule struct {
	Jobs      []Job
	Timetable []Slot
}

// Cmax is the makespan of the schedule: the time at which every job,
// including its cooldown, is finished.
func (s Schedule) Cmax() int {
	if len(s.Timetable) == 0 {
		return 0
	}

	remaining := make([]int, len(s.Jobs))
	for i, job := range s.Jobs {
		remaining[i] = job.Processing
	}

	var makespan int

	prev := s.Timetable[0]
	for _, slot := range s.Timetable[1:] {
		if end := prev.Start + remaining[prev.Job] + s.Jobs[prev.Job].Cooldown; end > makespan {
			makespan = end
		}

		remaining[prev.Job] -= slot.Start - prev.Start
		if remaining[prev.Job] < 0 {
			remaining[prev.Job] = 0
		}

		prev = slot
	}

	if end := prev.Start + remaining[prev.Job] + s.Jobs[prev.Job].Cooldown; end > makespan {
		makespan = end
	}

	return makespan
}
