package drawer

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// DOTDrawer is a drawer that creates a DOT file with the execution order of
// the schedule. Every job is a vertex; edges follow the machine from one run
// to the next, labelled with the waiting gap in between and coloured from
// blue (no gap) to red (largest gap).
type DOTDrawer struct {
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{dotFileName: dotFileName}
}

// Draw creates a DOT file with the execution order graph of the schedule.
func (d *DOTDrawer) Draw(schedule model.Schedule) error {
	gra := graph.New(graph.StringHash, graph.Directed())

	for index, job := range schedule.Jobs {
		err := gra.AddVertex(vertexName(index, job), graph.VertexAttribute("shape", "box"))
		if err != nil {
			return errors.Wrapf(err, "unable to add vertex for job %d", index)
		}
	}

	segments := timeline(schedule)

	var maxGap int

	for i := 1; i < len(segments); i++ {
		if gap := segments[i].Start - segments[i-1].End; gap > maxGap {
			maxGap = gap
		}
	}

	for i := 1; i < len(segments); i++ {
		prev, curr := segments[i-1], segments[i]
		source := vertexName(prev.Job, schedule.Jobs[prev.Job])
		target := vertexName(curr.Job, schedule.Jobs[curr.Job])

		if source == target {
			continue
		}

		gap := curr.Start - prev.End

		fraction := 0.0
		if maxGap > 0 {
			fraction = float64(gap) / float64(maxGap)
		}

		colour, err := heatColour(fraction)
		if err != nil {
			return err
		}

		err = gra.AddEdge(source, target,
			graph.EdgeAttribute("label", strconv.Itoa(gap)),
			graph.EdgeAttribute("fontcolor", "blue"),
			graph.EdgeAttribute("color", colour),
		)
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return errors.Wrapf(err, "unable to add edge from %s to %s", source, target)
		}
	}

	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = draw.DOT(gra, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return nil
}

func vertexName(index int, job model.Job) string {
	return fmt.Sprintf("%d %s", index, job)
}

var _ Drawer = (*DOTDrawer)(nil)
