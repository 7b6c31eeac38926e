package rpq

import (
	"github.com/pkg/errors"
)

var (
	ErrNoJobs = errors.New("jobs must not be empty")
)
