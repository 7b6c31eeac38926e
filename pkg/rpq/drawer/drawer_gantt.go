package drawer

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/pkg/errors"

	"github.com/askiada/go-rpq/pkg/rpq/model"
)

// GanttDrawer is a drawer that creates a SVG file with a Gantt chart of the
// schedule. Every job gets a row with its delivery marker, its runs on the
// machine and its cooldown tail; runs are coloured from blue (low cooldown)
// to red (high cooldown).
type GanttDrawer struct {
	svgFileName string
}

// NewGanttDrawer creates a new Gantt drawer.
func NewGanttDrawer(svgFileName string) *GanttDrawer {
	return &GanttDrawer{svgFileName: svgFileName}
}

const (
	leftMargin = 150
	topMargin  = 30
	rowHeight  = 22
	rowGap     = 10
	chartWidth = 900
)

type ganttRow struct {
	Label string
	Y     int
}

type ganttBar struct {
	X, Y, W, H int
	Fill       string
	Opacity    string
}

type ganttChart struct {
	Width  int
	Height int
	Rows   []ganttRow
	Bars   []ganttBar
	CmaxX  int
	Cmax   int
}

//nolint:lll //this is a template
const ganttTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" font-family="monospace" font-size="12">
	<rect width="100%" height="100%" fill="white" />
	{{range .Rows}}<text x="8" y="{{.Y}}" dominant-baseline="middle">{{.Label}}</text>
	{{end}}{{range .Bars}}<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{.Fill}}" fill-opacity="{{.Opacity}}" />
	{{end}}<line x1="{{.CmaxX}}" y1="{{.Height}}" x2="{{.CmaxX}}" y2="18" stroke="black" stroke-dasharray="4" />
	<text x="{{.CmaxX}}" y="14" text-anchor="middle">Cmax = {{.Cmax}}</text>
</svg>
`

// Draw creates a SVG file with the Gantt chart of the schedule.
func (d *GanttDrawer) Draw(schedule model.Schedule) error {
	file, err := os.Create(d.svgFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.svgFileName)
	}
	defer file.Close()

	err = renderGantt(schedule, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render gantt chart %s", d.svgFileName)
	}

	return nil
}

func renderGantt(schedule model.Schedule, wrt io.Writer) error {
	cmax := schedule.Cmax()
	scale := 1.0
	if cmax > 0 {
		scale = float64(chartWidth) / float64(cmax)
	}

	x := func(t int) int {
		return leftMargin + int(float64(t)*scale)
	}

	minQ, maxQ := cooldownRange(schedule.Jobs)

	chart := ganttChart{
		Width:  leftMargin + chartWidth + rowGap,
		Height: topMargin + len(schedule.Jobs)*(rowHeight+rowGap),
		CmaxX:  x(cmax),
		Cmax:   cmax,
	}

	rowY := func(index int) int {
		return topMargin + index*(rowHeight+rowGap)
	}

	ends := make([]int, len(schedule.Jobs))

	for index, job := range schedule.Jobs {
		chart.Rows = append(chart.Rows, ganttRow{
			Label: fmt.Sprintf("%d %s", index, job),
			Y:     rowY(index) + rowHeight/2,
		})

		// Delivery marker.
		chart.Bars = append(chart.Bars, ganttBar{
			X: x(job.Delivery), Y: rowY(index), W: 2, H: rowHeight,
			Fill: "black", Opacity: "1",
		})

		ends[index] = job.Delivery
	}

	for _, seg := range timeline(schedule) {
		job := schedule.Jobs[seg.Job]

		fraction := 0.0
		if maxQ > minQ {
			fraction = float64(job.Cooldown-minQ) / float64(maxQ-minQ)
		}

		fill, err := heatColour(fraction)
		if err != nil {
			return err
		}

		chart.Bars = append(chart.Bars, ganttBar{
			X: x(seg.Start), Y: rowY(seg.Job), W: x(seg.End) - x(seg.Start), H: rowHeight,
			Fill: fill, Opacity: "1",
		})

		if seg.End > ends[seg.Job] {
			ends[seg.Job] = seg.End
		}
	}

	// Cooldown tails start when the job leaves the machine for good.
	for index, job := range schedule.Jobs {
		if job.Cooldown == 0 {
			continue
		}

		fraction := 0.0
		if maxQ > minQ {
			fraction = float64(job.Cooldown-minQ) / float64(maxQ-minQ)
		}

		fill, err := heatColour(fraction)
		if err != nil {
			return err
		}

		chart.Bars = append(chart.Bars, ganttBar{
			X: x(ends[index]), Y: rowY(index) + rowHeight/4, W: x(ends[index]+job.Cooldown) - x(ends[index]), H: rowHeight / 2,
			Fill: fill, Opacity: "0.35",
		})
	}

	tpl, err := template.New("ganttTemplate").Parse(ganttTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, chart)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

func cooldownRange(jobs []model.Job) (minQ, maxQ int) {
	for i, job := range jobs {
		if i == 0 || job.Cooldown < minQ {
			minQ = job.Cooldown
		}

		if i == 0 || job.Cooldown > maxQ {
			maxQ = job.Cooldown
		}
	}

	return minQ, maxQ
}

var _ Drawer = (*GanttDrawer)(nil)
