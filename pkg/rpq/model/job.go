package model

import "fmt"

// Job is a single task to schedule on the machine.
//
// Delivery is the earliest time the job can start (r), Processing is the
// time it occupies the machine (p) and Cooldown is the time the job keeps
// running on its own after leaving the machine (q).
type Job struct {
	Delivery   int
	Processing int
	Cooldown   int
}

// New creates a new Job from its delivery, processing and cooldown times.
func New(delivery, processing, cooldown int) Job {
	return Job{
		Delivery:   delivery,
		Processing: processing,
		Cooldown:   cooldown,
	}
}

// TotalTime is the time the job spans if it runs alone and starts as early
// as possible.
func (j Job) TotalTime() int {
	return j.Delivery + j.Processing + j.Cooldown
}

func (j Job) String() string {
	return fmt.Sprintf("(%d, %d, %d)", j.Delivery, j.Processing, j.Cooldown)
}
