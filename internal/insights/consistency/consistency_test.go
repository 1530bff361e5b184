package consistency

import (
	"fmt"
	"testing"

	"pet-health-journal/internal/insights/observation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineWindow(n int) []observation.DailyObservation {
	out := make([]observation.DailyObservation, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, observation.Baseline(fmt.Sprintf("2025-04-%02d", 20-i)))
	}
	return out
}

func TestScore_InsufficientHistory(t *testing.T) {
	assert.Nil(t, Score(nil))
	assert.Nil(t, Score([]observation.DailyObservation{}))
	assert.Nil(t, Score(baselineWindow(4)))
}

func TestScore_MinimumWindowSizes(t *testing.T) {
	for n := 5; n <= 7; n++ {
		assert.NotNil(t, Score(baselineWindow(n)), "window=%d", n)
	}
}

func TestScore_AllBaseline(t *testing.T) {
	res := Score(baselineWindow(7))
	require.NotNil(t, res)
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, 7, res.MatchCount)
	assert.Equal(t, 7, res.TotalFields)
}

func TestMode_TieBreaksTowardMostRecent(t *testing.T) {
	w := baselineWindow(6)
	// hoy = B, luego A, B, A, B, A: 3 y 3
	values := []observation.Mood{
		observation.MoodQuiet, observation.MoodNormal,
		observation.MoodQuiet, observation.MoodNormal,
		observation.MoodQuiet, observation.MoodNormal,
	}
	for i := range w {
		w[i].Mood = values[i]
	}

	assert.Equal(t, string(observation.MoodQuiet), Mode(w, observation.MetricMood))

	res := Score(w)
	require.NotNil(t, res)
	assert.Equal(t, 7, res.MatchCount)
}

func TestMode_StrictMajorityWins(t *testing.T) {
	w := baselineWindow(5)
	w[0].Appetite = observation.AppetiteLess
	w[1].Appetite = observation.AppetiteLess

	assert.Equal(t, string(observation.AppetiteNormal), Mode(w, observation.MetricAppetite))
}

func TestScore_Mapping(t *testing.T) {
	cases := []struct {
		deviating int
		wantMatch int
		wantScore int
	}{
		{0, 7, 5},
		{1, 6, 4},
		{2, 5, 4},
		{3, 4, 3},
		{4, 3, 2},
		{5, 2, 2},
		{6, 1, 1},
		{7, 0, 1},
	}

	for _, tc := range cases {
		w := baselineWindow(7)
		deviateToday(&w[0], tc.deviating)

		res := Score(w)
		require.NotNil(t, res)
		assert.Equal(t, tc.wantMatch, res.MatchCount, "deviating=%d", tc.deviating)
		assert.Equal(t, tc.wantScore, res.Score, "deviating=%d", tc.deviating)
	}
}

// deviateToday cambia los primeros n campos a un valor no-modal.
func deviateToday(o *observation.DailyObservation, n int) {
	setters := []func(){
		func() { o.Appetite = observation.AppetiteLess },
		func() { o.WaterIntake = observation.WaterMore },
		func() { o.EnergyLevel = observation.EnergyLow },
		func() { o.StoolQuality = observation.StoolSoft },
		func() { o.Vomiting = observation.VomitingOnce },
		func() { o.Mobility = observation.MobilityStiff },
		func() { o.Mood = observation.MoodQuiet },
	}
	for i := 0; i < n; i++ {
		setters[i]()
	}
}
