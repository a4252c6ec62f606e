package model

import "time"

// DriverHook observes a run. Hooks are called from the goroutine running the driver.
type DriverHook interface {
	// New initialises the hook before the stages are prepared.
	New() error
	// PrepareStage runs once for each stage the run uses, parents first.
	PrepareStage(parentStage, stage *StageInfo) error
	// OnStageOutput runs every time a stage is done with a line.
	OnStageOutput(parentStage, stage *StageInfo, elapsed time.Duration) error
	// Finish runs once after the run, whether it succeeded or not.
	Finish(total time.Duration) error
}
