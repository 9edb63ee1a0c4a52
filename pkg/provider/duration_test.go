package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "PT1H2M3S", want: 3723},
		{in: "PT45S", want: 45},
		{in: "PT4M13S", want: 253},
		{in: "PT0S", want: 0},
		{in: "P1DT30M", want: 88200},
		{in: "P1W", want: 604800},
		{in: "PT1.6S", want: 2},
		{in: "pt10m", want: 600},
		{in: "", wantErr: true},
		{in: "P", wantErr: true},
		{in: "PT", wantErr: true},
		{in: "1H", wantErr: true},
		{in: "PT1X", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseISODuration(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClockDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1:02:03", want: 3723},
		{in: "02:03", want: 123},
		{in: "3600", want: 3600},
		{in: " 90 ", want: 90},
		{in: "12.6", want: 13},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
		{in: "-5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseClockDuration(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationPtr(t *testing.T) {
	assert.Nil(t, durationPtr("", parseClockDuration))
	assert.Nil(t, durationPtr("garbage", parseISODuration))
	v := durationPtr("PT2M", parseISODuration)
	require.NotNil(t, v)
	assert.Equal(t, int64(120), *v)
}
