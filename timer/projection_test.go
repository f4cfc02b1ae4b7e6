package timer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franciscoj/podium/config"
	"github.com/franciscoj/podium/internal/models"
	"github.com/franciscoj/podium/timer"
)

func testDisplayConfig() config.DisplayConfig {
	return config.DisplayConfig{
		DisplayID:          "operator",
		ShowCurrentTime:    true,
		ShowMeetingEndTime: true,
		ShowTimeVariance:   true,
		ShowSectionList:    true,
		AlertThresholds: config.Thresholds{
			Warning:  60,
			Critical: 30,
		},
		Colors: config.AlertColors{
			Normal:   "#228be6",
			Warning:  "#fd7e14",
			Critical: "#fa5252",
			Overtime: "#e03131",
		},
	}
}

func testState() timer.State {
	return timer.State{
		IsRunning: true,
		CurrentSection: models.Section{
			ID:       "s2",
			Name:     "Main Talk",
			Duration: 3,
			Order:    2,
			Type:     models.SectionTalk,
		},
		CurrentSectionIndex: 1,
		CurrentSectionTime:  90,
		CurrentTime:         "07:30 PM",
		EstimatedEndTime:    "08:45 PM",
		TimeVariance:        45,
		AlertLevel:          timer.AlertNormal,
	}
}

func TestProjectProgress(t *testing.T) {
	cases := []struct {
		name     string
		duration int // minutes
		elapsed  int // seconds
		want     float64
	}{
		{"fresh", 3, 0, 0},
		{"halfway", 3, 90, 50},
		{"complete", 3, 180, 100},
		{"overtime clamps", 3, 400, 100},
		{"zero duration", 0, 50, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testState()
			s.CurrentSection.Duration = tc.duration
			s.CurrentSectionTime = tc.elapsed

			dm := timer.Project(s, testTemplate(), testDisplayConfig())

			assert.InDelta(t, tc.want, dm.ProgressPercent, 0.001)
		})
	}
}

func TestProjectTimeFields(t *testing.T) {
	dm := timer.Project(testState(), testTemplate(), testDisplayConfig())

	assert.Equal(t, "01:30", dm.TimeElapsed)
	assert.Equal(t, "01:30", dm.TimeRemaining)
	assert.Empty(t, dm.OverBy)

	over := testState()
	over.CurrentSectionTime = 200

	dm = timer.Project(over, testTemplate(), testDisplayConfig())

	assert.Equal(t, "00:00", dm.TimeRemaining)
	assert.Equal(t, "00:20", dm.OverBy)
}

func TestProjectAlertUsesSurfaceThresholds(t *testing.T) {
	s := testState()
	s.CurrentSectionTime = 100 // 80s remaining in a 180s plan

	cfg := testDisplayConfig()

	dm := timer.Project(s, testTemplate(), cfg)
	assert.Equal(t, timer.AlertNormal, dm.AlertLevel)
	assert.False(t, dm.ShowAlert)
	assert.Equal(t, cfg.Colors.Normal, dm.AlertColor)

	// a surface with a looser warning threshold escalates earlier
	cfg.AlertThresholds.Warning = 90

	dm = timer.Project(s, testTemplate(), cfg)
	assert.Equal(t, timer.AlertWarning, dm.AlertLevel)
	assert.True(t, dm.ShowAlert)
	assert.Equal(t, cfg.Colors.Warning, dm.AlertColor)
}

func TestProjectConfigToggles(t *testing.T) {
	cfg := testDisplayConfig()
	cfg.ShowCurrentTime = false
	cfg.ShowMeetingEndTime = false
	cfg.ShowTimeVariance = false
	cfg.ShowSectionList = false

	dm := timer.Project(testState(), testTemplate(), cfg)

	assert.Empty(t, dm.CurrentTime)
	assert.Empty(t, dm.EndTime)
	assert.Empty(t, dm.VarianceText)
	assert.Empty(t, dm.Sections)
}

func TestProjectVariance(t *testing.T) {
	cfg := testDisplayConfig()

	behind := testState()
	behind.TimeVariance = 75

	dm := timer.Project(behind, testTemplate(), cfg)
	assert.Equal(t, "+01:15", dm.VarianceText)
	assert.True(t, dm.VarianceLate)
	assert.Equal(t, cfg.Colors.Overtime, dm.VarianceColor)

	ahead := testState()
	ahead.TimeVariance = -90

	dm = timer.Project(ahead, testTemplate(), cfg)
	assert.Equal(t, "-01:30", dm.VarianceText)
	assert.False(t, dm.VarianceLate)

	onTime := testState()
	onTime.TimeVariance = 0

	dm = timer.Project(onTime, testTemplate(), cfg)
	assert.Equal(t, "00:00", dm.VarianceText)
}

func TestProjectSectionList(t *testing.T) {
	dm := timer.Project(testState(), testTemplate(), testDisplayConfig())

	if assert.Len(t, dm.Sections, 3) {
		assert.Equal(t, timer.SectionDone, dm.Sections[0].Progress)
		assert.Equal(t, timer.SectionCurrent, dm.Sections[1].Progress)
		assert.Equal(t, timer.SectionPending, dm.Sections[2].Progress)
		assert.Equal(t, "Opening Song", dm.Sections[0].Name)
		assert.Equal(t, 2, dm.Sections[0].Planned)
	}
}

func TestProjectWithoutTemplate(t *testing.T) {
	dm := timer.Project(testState(), nil, testDisplayConfig())

	assert.Empty(t, dm.TemplateName)
	assert.Zero(t, dm.SectionCount)
	assert.Empty(t, dm.Sections)
}
