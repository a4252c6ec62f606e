package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-fsort/pkg/fsort/measure"
)

const maxRGB = 240

// DOTDrawer writes the stage graph of a run as a Graphviz DOT file.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
	}
}

// AddStage adds a stage to the graph. Adding the same stage twice is not an error.
func (d *DOTDrawer) AddStage(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds a link between parent and child stages.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// SetTotalTime sets the total time of the stage.
func (d *DOTDrawer) SetTotalTime(stageName string, total time.Duration) error {
	_, properties, err := d.graph.VertexWithProperties(stageName)
	if err != nil {
		return errors.Wrapf(err, "unable to get %s vertex properties", stageName)
	}

	properties.Attributes["xlabel"] = "total: " + total.String()

	return nil
}

// AddMeasure labels every measured stage with its average duration and every link with the number of lines it
// carried. Links are coloured from blue, for the cheapest stage, to red, for the most expensive one.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	colours, err := heatColours(metrics)
	if err != nil {
		return err
	}

	for name, mt := range metrics {
		_, properties, err := d.graph.VertexWithProperties(name)
		if errors.Is(err, graph.ErrVertexNotFound) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		if mt.Count() > 0 {
			properties.Attributes["xlabel"] = fmt.Sprintf("avg: %s", mt.AVGDuration())
		}

		for parentName, count := range mt.Handovers() {
			err := d.graph.UpdateEdge(parentName, name,
				graph.EdgeAttribute("label", fmt.Sprintf("%d lines", count)),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", colours[mt.AVGDuration()]),
			)
			if err != nil {
				return errors.Wrapf(err, "unable to update edge from %s to %s", parentName, name)
			}
		}
	}

	return nil
}

// heatColours maps every distinct average duration to a colour.
func heatColours(metrics map[string]measure.Metric) (map[time.Duration]string, error) {
	seen := make(map[time.Duration]struct{})
	sorted := []time.Duration{}
	for _, mt := range metrics {
		if mt.Count() == 0 {
			continue
		}
		avg := mt.AVGDuration()
		if _, ok := seen[avg]; ok {
			continue
		}
		seen[avg] = struct{}{}
		sorted = append(sorted, avg)
	}

	colours := make(map[time.Duration]string, len(sorted))
	if len(sorted) == 0 {
		return colours, nil
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})
	maxValue := sorted[0]
	minValue := sorted[len(sorted)-1]

	for _, curr := range sorted {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(curr-minValue) / float64(maxValue-minValue)
		}

		red := maxRGB * fraction
		blue := maxRGB - red

		colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return nil, errors.Wrap(err, "unable to get colour")
		}

		colours[curr] = colour.ToHEX().String()
	}

	return colours, nil
}

// Draw creates the DOT file.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}

	err = d.Render(file)
	if err != nil {
		_ = file.Close()

		return err
	}

	return errors.Wrapf(file.Close(), "unable to close file %s", d.dotFileName)
}

// Render writes the DOT description of the graph to wrt.
func (d *DOTDrawer) Render(wrt io.Writer) error {
	err := draw.DOT(d.graph, wrt, draw.GraphAttribute("rankdir", "LR"))
	if err != nil {
		return errors.Wrap(err, "unable to render dot graph")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
