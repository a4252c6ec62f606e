package drawer

import (
	"time"

	"github.com/askiada/go-fsort/pkg/fsort/measure"
)

// Drawer is an interface that defines the methods for drawing the stages of a run.
type Drawer interface {
	// AddStage adds a stage to the drawer.
	AddStage(stageName string) error
	// AddLink adds a link between a parent stage and its child.
	AddLink(parentStageName, childStageName string) error
	// SetTotalTime sets the total time of the stage.
	SetTotalTime(stageName string, total time.Duration) error
	// AddMeasure labels the stages and links with the measured durations.
	AddMeasure(measure measure.Measure) error
	// Draw writes the graph.
	Draw() error
}
