// Package generator produces random scheduling instances from a seed, so a
// comparison run can be replayed.
package generator

import (
	"math/rand"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

type Generator struct {
	rng *rand.Rand

	MaxDelivery   int
	MaxProcessing int
	MaxCooldown   int
}

func New(seed int64) *Generator {
	return &Generator{
		rng:           rand.New(rand.NewSource(seed)),
		MaxDelivery:   200,
		MaxProcessing: 50,
		MaxCooldown:   200,
	}
}

// Instance returns a fresh instance with the given number of jobs. Processing
// times are at least one so every job occupies the machine.
func (g *Generator) Instance(jobCount int) []model.Job {
	jobs := make([]model.Job, 0, jobCount)
	for i := 0; i < jobCount; i++ {
		jobs = append(jobs, model.New(
			g.rng.Intn(g.MaxDelivery+1),
			1+g.rng.Intn(g.MaxProcessing),
			g.rng.Intn(g.MaxCooldown+1),
		))
	}

	return jobs
}
