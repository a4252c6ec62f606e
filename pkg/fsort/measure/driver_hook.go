package measure

import (
	"time"

	"github.com/askiada/go-fsort/pkg/fsort/model"
)

type driverMeasure struct {
	Measure
}

func (dm *driverMeasure) New() error {
	dm.AddMetric(model.StartStage.Name)
	dm.AddMetric(model.EndStage.Name)

	return nil
}

func (dm *driverMeasure) PrepareStage(_, stage *model.StageInfo) error {
	dm.AddMetric(stage.Name)

	return nil
}

func (dm *driverMeasure) OnStageOutput(parentStage, stage *model.StageInfo, elapsed time.Duration) error {
	mt := dm.AddMetric(stage.Name)
	mt.AddDuration(elapsed)
	mt.AddHandover(parentStage.Name)

	return nil
}

func (dm *driverMeasure) Finish(total time.Duration) error {
	dm.AddMetric(model.EndStage.Name).SetTotalDuration(total)

	return nil
}

// DriverMeasure records the duration of every stage of a run into m.
func DriverMeasure(m Measure) model.DriverHook {
	return &driverMeasure{m}
}
