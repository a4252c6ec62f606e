package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-fsort/pkg/fsort/measure"
	"github.com/askiada/go-fsort/pkg/fsort/model"
)

func TestDefaultMeasureAddMetric(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	first := msr.AddMetric("read")
	second := msr.AddMetric("read")
	assert.Same(t, first, second)
	assert.Same(t, first, msr.GetMetric("read"))
	assert.Nil(t, msr.GetMetric("write"))
	assert.Len(t, msr.AllMetrics(), 1)
}

func TestDefaultMetric(t *testing.T) {
	t.Parallel()

	mt := measure.NewDefaultMeasure().AddMetric("sort")
	assert.Zero(t, mt.AVGDuration())
	assert.Zero(t, mt.Count())

	mt.AddDuration(2 * time.Microsecond)
	mt.AddDuration(4 * time.Microsecond)
	mt.AddHandover("read")
	mt.AddHandover("read")
	mt.SetTotalDuration(time.Second)

	assert.Equal(t, 3*time.Microsecond, mt.AVGDuration())
	assert.Equal(t, int64(2), mt.Count())
	assert.Equal(t, map[string]int64{"read": 2}, mt.Handovers())
	assert.Equal(t, time.Second, mt.GetTotalDuration())
}

func TestDefaultMetricRoundsAverage(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		elapsed time.Duration
		want    time.Duration
	}{
		"nanoseconds kept":       {elapsed: 999 * time.Nanosecond, want: 999 * time.Nanosecond},
		"microseconds kept":      {elapsed: 1234 * time.Nanosecond, want: 1234 * time.Nanosecond},
		"milliseconds to micros": {elapsed: 2*time.Millisecond + 1234*time.Nanosecond, want: 2*time.Millisecond + time.Microsecond},
		"seconds to millis":      {elapsed: 3*time.Second + 1500*time.Microsecond, want: 3*time.Second + 2*time.Millisecond},
		"hours to minutes":       {elapsed: 2*time.Hour + 10*time.Second, want: 2 * time.Hour},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mt := measure.NewDefaultMeasure().AddMetric("stage")
			mt.AddDuration(tc.elapsed)
			assert.Equal(t, tc.want, mt.AVGDuration())
		})
	}
}

func TestDriverMeasure(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	hook := measure.DriverMeasure(msr)
	read := &model.StageInfo{Name: model.ReadStageName}

	require.NoError(t, hook.New())
	require.NoError(t, hook.PrepareStage(model.StartStage, read))
	require.NoError(t, hook.OnStageOutput(model.StartStage, read, time.Millisecond))
	require.NoError(t, hook.OnStageOutput(model.StartStage, read, 3*time.Millisecond))
	require.NoError(t, hook.Finish(time.Second))

	assert.Len(t, msr.AllMetrics(), 3)
	assert.Equal(t, int64(2), msr.GetMetric(model.ReadStageName).Count())
	assert.Equal(t, 2*time.Millisecond, msr.GetMetric(model.ReadStageName).AVGDuration())
	assert.Equal(t, map[string]int64{model.StartStageName: 2}, msr.GetMetric(model.ReadStageName).Handovers())
	assert.Equal(t, time.Second, msr.GetMetric(model.EndStageName).GetTotalDuration())
}
