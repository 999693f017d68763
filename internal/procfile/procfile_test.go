package procfile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/korhansevinc/process-scheduler/internal/sched"
)

func TestParseValid(t *testing.T) {
	input := "# pid arrival total interval io priority\n" +
		"\n" +
		"1 0 100 25 50 3\n" +
		"  2   10   60 15 0 0  \n" +
		"3 5 40 40 10 10\n"

	specs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, sched.ProcessSpec{PID: 1, Arrival: 0, TotalCPU: 100, Interval: 25, IOTime: 50, Priority: 3}, specs[0])
	assert.Equal(t, sched.ProcessSpec{PID: 2, Arrival: 10, TotalCPU: 60, Interval: 15, IOTime: 0, Priority: 0}, specs[1])
	assert.Equal(t, sched.ProcessSpec{PID: 3, Arrival: 5, TotalCPU: 40, Interval: 40, IOTime: 10, Priority: 10}, specs[2])
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"field count", "1 0 40 20 0\n", "want 6 fields"},
		{"not an integer", "1 0 forty 20 0 2\n", "not an integer"},
		{"negative pid", "-1 0 40 20 0 2\n", "must not be negative"},
		{"negative arrival", "1 -5 40 20 0 2\n", "arrival"},
		{"zero total cpu", "1 0 0 20 0 2\n", "total cpu time"},
		{"zero interval", "1 0 40 0 0 2\n", "burst interval"},
		{"negative io", "1 0 40 20 -1 2\n", "io time"},
		{"priority too high", "1 0 40 20 0 11\n", "priority"},
		{"duplicate pid", "1 0 40 20 0 2\n1 0 30 15 0 1\n", "duplicate pid"},
		{"names the offending line", "1 0 40 20 0 2\n\n9 9\n", "line 3"},
		{"nothing but comments", "\n# only a comment\n", "no process records"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadMemURL(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/procfile/batch.txt"
	err := fs.Upload(ctx, URL, 0644, strings.NewReader("1 0 40 20 0 2\n2 5 30 15 5 1\n"))
	require.NoError(t, err)

	specs, err := Load(ctx, URL)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, 1, specs[0].PID)
	assert.Equal(t, 2, specs[1].PID)
}

func TestLoadMissingURL(t *testing.T) {
	_, err := Load(context.Background(), "mem://localhost/procfile/absent.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read process file")
}
