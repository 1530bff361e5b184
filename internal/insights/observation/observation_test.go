package observation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		metric Metric
		value  string
		want   Severity
	}{
		{MetricAppetite, "normal", SeverityBaseline},
		{MetricAppetite, "less", SeverityMild},
		{MetricAppetite, "barely", SeveritySignificant},
		{MetricAppetite, "refusing", SeveritySignificant},
		{MetricAppetite, "more", SeverityFlag},
		{MetricWaterIntake, "more", SeverityMild},
		{MetricWaterIntake, "excessive", SeveritySignificant},
		{MetricEnergyLevel, "hyperactive", SeverityFlag},
		{MetricEnergyLevel, "barely_moving", SeveritySignificant},
		{MetricStoolQuality, "constipated", SeverityBaseline},
		{MetricStoolQuality, "not_noticed", SeverityBaseline},
		{MetricStoolQuality, "soft", SeverityMild},
		{MetricStoolQuality, "blood", SeveritySignificant},
		{MetricVomiting, "once", SeverityMild},
		{MetricVomiting, "dry_heaving", SeveritySignificant},
		{MetricMobility, "difficulty_rising", SeveritySignificant},
		{MetricMood, "clingy", SeverityMild},
		{MetricMood, "aggressive", SeveritySignificant},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.metric, tc.value), "%s=%s", tc.metric, tc.value)
	}
}

func TestCountFields_FlagIsAbnormalButNotSignificant(t *testing.T) {
	o := Baseline("2025-01-01")
	o.Appetite = AppetiteMore
	o.EnergyLevel = EnergyHyperactive
	o.Vomiting = VomitingMultiple

	assert.Equal(t, 3, CountAbnormalFields(o))
	assert.Equal(t, 1, CountSignificantFields(o))
}

func TestCountFields_Baseline(t *testing.T) {
	o := Baseline("2025-01-01")
	assert.Equal(t, 0, CountAbnormalFields(o))
	assert.Equal(t, 0, CountSignificantFields(o))
}

func TestValidate(t *testing.T) {
	o := Baseline("2025-01-01")
	require.NoError(t, o.Validate())

	o.Mood = Mood("grumpy")
	err := o.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestCheckDescending(t *testing.T) {
	ok := []DailyObservation{Baseline("2025-01-03"), Baseline("2025-01-02"), Baseline("2025-01-01")}
	require.NoError(t, CheckDescending(ok))
	require.NoError(t, CheckDescending(nil))

	bad := []DailyObservation{Baseline("2025-01-01"), Baseline("2025-01-02")}
	assert.ErrorIs(t, CheckDescending(bad), ErrUnsortedWindow)

	dup := []DailyObservation{Baseline("2025-01-02"), Baseline("2025-01-02")}
	assert.ErrorIs(t, CheckDescending(dup), ErrUnsortedWindow)
}
