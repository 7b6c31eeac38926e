// Package instance loads and saves scheduling instances as TOML files. An
// instance file is a list of [[job]] tables with delivery, processing and
// cooldown times.
package instance

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

var ErrEmptyInstance = errors.New("instance must contain at least one job")

type fileJob struct {
	Delivery   int `toml:"delivery"`
	Processing int `toml:"processing"`
	Cooldown   int `toml:"cooldown"`
}

type fileInstance struct {
	Name string    `toml:"name,omitempty"`
	Job  []fileJob `toml:"job"`
}

// Load reads an instance file and validates it.
func Load(path string) ([]model.Job, error) {
	var raw fileInstance

	_, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode instance %s", path)
	}

	if len(raw.Job) == 0 {
		return nil, errors.Wrapf(ErrEmptyInstance, "instance %s", path)
	}

	jobs := make([]model.Job, 0, len(raw.Job))

	for i, job := range raw.Job {
		if job.Delivery < 0 || job.Processing < 0 || job.Cooldown < 0 {
			return nil, errors.Errorf("job %d in instance %s has negative times", i, path)
		}

		jobs = append(jobs, model.New(job.Delivery, job.Processing, job.Cooldown))
	}

	return jobs, nil
}

// Save writes the jobs as an instance file.
func Save(path, name string, jobs []model.Job) error {
	raw := fileInstance{Name: name, Job: make([]fileJob, 0, len(jobs))}
	for _, job := range jobs {
		raw.Job = append(raw.Job, fileJob{
			Delivery:   job.Delivery,
			Processing: job.Processing,
			Cooldown:   job.Cooldown,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create instance %s", path)
	}
	defer file.Close()

	err = toml.NewEncoder(file).Encode(raw)
	if err != nil {
		return errors.Wrapf(err, "unable to encode instance %s", path)
	}

	return nil
}
