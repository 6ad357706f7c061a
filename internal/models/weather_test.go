package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*testing.T, Visibility)
	}{
		{
			name:  "unavailable sentinel",
			input: `"unavailable"`,
			check: func(t *testing.T, v Visibility) {
				assert.Equal(t, VisibilityUnavailable, v.Status)
			},
		},
		{
			name:  "measured with minimum",
			input: `{"prevailing": 21120.0, "minimum": 1400.0, "maximum": 21120.0, "units": "FT"}`,
			check: func(t *testing.T, v Visibility) {
				assert.Equal(t, VisibilityMeasured, v.Status)
				assert.Equal(t, 21120.0, v.Prevailing)
				require.NotNil(t, v.Minimum)
				assert.Equal(t, 1400.0, *v.Minimum)
				assert.Equal(t, "FT", v.Units)
			},
		},
		{
			name:  "measured without minimum",
			input: `{"prevailing": 10.0, "units": "SM"}`,
			check: func(t *testing.T, v Visibility) {
				assert.Equal(t, VisibilityMeasured, v.Status)
				assert.Nil(t, v.Minimum)
				assert.Equal(t, 10.0, v.Prevailing)
			},
		},
		{
			name:  "null minimum is treated as absent",
			input: `{"prevailing": 10.0, "minimum": null, "units": "SM"}`,
			check: func(t *testing.T, v Visibility) {
				assert.Equal(t, VisibilityMeasured, v.Status)
				assert.Nil(t, v.Minimum)
			},
		},
		{
			name:  "unrecognized sentinel",
			input: `"foggy"`,
			check: func(t *testing.T, v Visibility) {
				assert.Equal(t, VisibilityUnknown, v.Status)
			},
		},
		{
			name:  "unrecognized shape",
			input: `42`,
			check: func(t *testing.T, v Visibility) {
				assert.Equal(t, VisibilityUnknown, v.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Visibility
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			tt.check(t, v)
		})
	}
}

func TestWindUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*testing.T, Wind)
	}{
		{
			name:  "calm sentinel",
			input: `"calm"`,
			check: func(t *testing.T, w Wind) {
				assert.Equal(t, WindCalm, w.Status)
			},
		},
		{
			name:  "unavailable sentinel",
			input: `"unavailable"`,
			check: func(t *testing.T, w Wind) {
				assert.Equal(t, WindUnavailable, w.Status)
			},
		},
		{
			name:  "full reading",
			input: `{"speed": 12.0, "crosswind": 10.0, "gusts": 18.0, "units": "KT"}`,
			check: func(t *testing.T, w Wind) {
				assert.Equal(t, WindMeasured, w.Status)
				assert.Equal(t, 12.0, w.Speed)
				assert.Equal(t, 18.0, w.Gusts)
				assert.Equal(t, 10.0, w.Crosswind)
				assert.Equal(t, "KT", w.Units)
			},
		},
		{
			name:  "gusts default to the steady speed",
			input: `{"speed": 13.0, "crosswind": 2.0, "units": "KT"}`,
			check: func(t *testing.T, w Wind) {
				assert.Equal(t, 13.0, w.Gusts)
			},
		},
		{
			name:  "crosswind and units default",
			input: `{"speed": 8.0}`,
			check: func(t *testing.T, w Wind) {
				assert.Equal(t, 0.0, w.Crosswind)
				assert.Equal(t, "KT", w.Units)
			},
		},
		{
			name:  "unrecognized shape",
			input: `[1, 2]`,
			check: func(t *testing.T, w Wind) {
				assert.Equal(t, WindUnknown, w.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Wind
			require.NoError(t, json.Unmarshal([]byte(tt.input), &w))
			tt.check(t, w)
		})
	}
}

func TestSkyUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*testing.T, Sky)
	}{
		{
			name:  "clear sentinel",
			input: `"clear"`,
			check: func(t *testing.T, s Sky) {
				assert.Equal(t, SkyClear, s.Status)
			},
		},
		{
			name:  "unavailable sentinel",
			input: `"unavailable"`,
			check: func(t *testing.T, s Sky) {
				assert.Equal(t, SkyUnavailable, s.Status)
			},
		},
		{
			name: "cloud layers",
			input: `[
				{"cover": "clouds", "type": "scattered", "height": 700.0, "units": "FT"},
				{"type": "overcast", "height": 1200.0, "units": "FT"}
			]`,
			check: func(t *testing.T, s Sky) {
				assert.Equal(t, SkyLayers, s.Status)
				require.Len(t, s.Layers, 2)
				assert.False(t, s.Layers[0].Obscuring())
				assert.True(t, s.Layers[1].Obscuring())
				assert.Equal(t, 1200.0, s.Layers[1].Height)
			},
		},
		{
			name:  "unrecognized shape",
			input: `{"type": "overcast"}`,
			check: func(t *testing.T, s Sky) {
				assert.Equal(t, SkyUnknown, s.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Sky
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			tt.check(t, s)
		})
	}
}

func TestWeatherReportUnmarshal(t *testing.T) {
	input := `{
		"visibility": {"prevailing": 10.0, "units": "SM"},
		"wind": {"speed": 13.0, "crosswind": 2.0, "units": "KT"},
		"sky": [{"cover": "clouds", "type": "broken", "height": 700.0, "units": "FT"}],
		"temperature": {"value": 13.9, "units": "C"},
		"code": "201704211056Z"
	}`

	var report WeatherReport
	require.NoError(t, json.Unmarshal([]byte(input), &report))
	require.NotNil(t, report.Visibility)
	require.NotNil(t, report.Wind)
	require.NotNil(t, report.Sky)
	assert.Equal(t, VisibilityMeasured, report.Visibility.Status)
	assert.Equal(t, WindMeasured, report.Wind.Status)
	assert.Equal(t, SkyLayers, report.Sky.Status)
	assert.Equal(t, "201704211056Z", report.Code)

	// A report with no wind entry leaves the pointer nil.
	var sparse WeatherReport
	require.NoError(t, json.Unmarshal([]byte(`{"visibility": "unavailable"}`), &sparse))
	assert.Nil(t, sparse.Wind)
	assert.Nil(t, sparse.Sky)
}

func TestCloudLayerObscuring(t *testing.T) {
	assert.True(t, (&CloudLayer{Type: "broken"}).Obscuring())
	assert.True(t, (&CloudLayer{Type: "overcast"}).Obscuring())
	assert.True(t, (&CloudLayer{Type: "indefinite ceiling"}).Obscuring())
	assert.False(t, (&CloudLayer{Type: "scattered"}).Obscuring())
	assert.False(t, (&CloudLayer{Type: "a few"}).Obscuring())
}
