// Package model provides the data structures shared by the rpq solvers,
// drawers and measures. It defines jobs, job sequences, preemptive schedules
// and the options hooks the solvers report their progress through.
package model
