package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu *sync.Mutex

	scheduled   int
	preemptions int
	idleSpans   int
	idleTime    int

	expanded  int
	bestLower int
	bestUpper int

	cmax          int
	totalDuration time.Duration
}

func (mt *DefaultMetric) AddScheduled() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.scheduled++
}

func (mt *DefaultMetric) AddPreempted() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.preemptions++
}

func (mt *DefaultMetric) AddIdle(span int) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.idleSpans++
	mt.idleTime += span
}

func (mt *DefaultMetric) AddExpanded(lower, upper int) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.expanded++

	if mt.expanded == 1 || lower > mt.bestLower {
		mt.bestLower = lower
	}

	if mt.expanded == 1 || upper < mt.bestUpper {
		mt.bestUpper = upper
	}
}

func (mt *DefaultMetric) SetCmax(cmax int) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.cmax = cmax
}

func (mt *DefaultMetric) SetTotalDuration(total time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.totalDuration = total
}

func (mt *DefaultMetric) Scheduled() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.scheduled
}

func (mt *DefaultMetric) Preemptions() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.preemptions
}

func (mt *DefaultMetric) IdleSpans() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.idleSpans
}

func (mt *DefaultMetric) IdleTime() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.idleTime
}

func (mt *DefaultMetric) Expanded() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.expanded
}

func (mt *DefaultMetric) BestLower() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.bestLower
}

func (mt *DefaultMetric) BestUpper() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.bestUpper
}

func (mt *DefaultMetric) Cmax() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.cmax
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return round(mt.totalDuration)
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
