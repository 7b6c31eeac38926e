// Package rpq provides solvers for scheduling jobs on a single machine.
//
// Every job j carries a delivery time r_j (earliest start), a processing
// time p_j and a cooldown time q_j that keeps running after the job leaves
// the machine. In Graham's notation the problem is:
//
//	1|r_j, q_j|C_max
//
// Schrage builds a schedule with a greedy rule: always run a job as early as
// possible, and when several jobs are available prefer the one with the
// highest cooldown time, breaking ties by the highest processing time. The
// non-preemptive variant is a heuristic; the preemptive variant is optimal
// for the preemptive relaxation and its makespan is a lower bound for the
// non-preemptive optimum.
//
// Carlier closes the gap: a branch and bound search over delivery and
// cooldown adjustments of a single interference job, bounded by Schrage above
// and by its preemptive variant below. It returns an order with the minimal
// makespan.
package rpq
