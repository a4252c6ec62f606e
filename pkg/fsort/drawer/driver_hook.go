package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-fsort/pkg/fsort/measure"
	"github.com/askiada/go-fsort/pkg/fsort/model"
)

type driverDrawer struct {
	Drawer
	m measure.Measure
}

func (dd *driverDrawer) New() error {
	err := dd.AddStage(model.StartStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start stage to drawer")
	}
	err = dd.AddStage(model.EndStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end stage to drawer")
	}

	return nil
}

func (dd *driverDrawer) PrepareStage(parentStage, stage *model.StageInfo) error {
	err := dd.AddStage(stage.Name)
	if err != nil {
		return err
	}

	return dd.AddLink(parentStage.Name, stage.Name)
}

func (dd *driverDrawer) OnStageOutput(_, _ *model.StageInfo, _ time.Duration) error {
	return nil
}

func (dd *driverDrawer) Finish(total time.Duration) error {
	if dd.m != nil {
		err := dd.AddMeasure(dd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
		err = dd.SetTotalTime(model.EndStage.Name, total)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
	}

	err := dd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw stages")
	}

	return nil
}

// DriverDrawer draws the stages of a run once it is finished. The measure is optional.
func DriverDrawer(drawer Drawer, measure measure.Measure) model.DriverHook {
	return &driverDrawer{drawer, measure}
}
