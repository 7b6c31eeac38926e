package drawer

import (
	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// Drawer is an interface that defines the methods for drawing a schedule.
type Drawer interface {
	// Draw creates a file with a rendering of the schedule.
	Draw(schedule model.Schedule) error
}

// segment is one uninterrupted run of a job on the machine.
type segment struct {
	Job   int
	Start int
	End   int
}

// timeline expands the schedule's timetable into machine segments, cutting
// every slot at the next slot's start or at the job's remaining processing
// time, whichever comes first.
func timeline(schedule model.Schedule) []segment {
	remaining := make([]int, len(schedule.Jobs))
	for i, job := range schedule.Jobs {
		remaining[i] = job.Processing
	}

	segments := make([]segment, 0, len(schedule.Timetable))

	for i, slot := range schedule.Timetable {
		end := slot.Start + remaining[slot.Job]
		if i+1 < len(schedule.Timetable) {
			if next := schedule.Timetable[i+1].Start; next < end {
				end = next
			}
		}

		remaining[slot.Job] -= end - slot.Start
		segments = append(segments, segment{Job: slot.Job, Start: slot.Start, End: end})
	}

	return segments
}
