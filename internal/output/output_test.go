package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/tally/internal/model"
	"github.com/mfields/tally/internal/tally"
)

func newTestFormatter(format Format) (*Formatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.Format = format
	f.ColorMode = ColorNever
	return f, &buf
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "██░░", ProgressBar(50, 4))
	assert.Equal(t, "████", ProgressBar(100, 4))
	assert.Equal(t, "████", ProgressBar(150, 4))
	assert.Equal(t, "░░░░", ProgressBar(0, 4))
	assert.Equal(t, "░░░░", ProgressBar(-10, 4))
}

func TestIsColorEnabled(t *testing.T) {
	f, _ := newTestFormatter(FormatCLI)

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Auto with a non-file writer means no color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestCLIPrintStatusNoTarget(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)
	cli := NewCLIFormatter(f)

	cli.PrintStatus(tally.State{Count: 3})

	out := buf.String()
	assert.Contains(t, out, "Count: 3")
	assert.Contains(t, out, "No target set")
}

func TestCLIPrintStatusWithTarget(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)
	cli := NewCLIFormatter(f)

	cli.PrintStatus(tally.State{Count: 5, Target: 10})

	out := buf.String()
	assert.Contains(t, out, "Count: 5")
	assert.Contains(t, out, "Target: 10")
	assert.Contains(t, out, "5 to go")
}

func TestCLIPrintStatusReached(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)
	cli := NewCLIFormatter(f)

	cli.PrintStatus(tally.State{Count: 12, Target: 10, Reached: true})

	assert.Contains(t, buf.String(), "Target reached!")
}

func TestJSONPrintStatus(t *testing.T) {
	f, buf := newTestFormatter(FormatJSON)
	jf := NewJSONFormatter(f)

	require.NoError(t, jf.PrintStatus(tally.State{Count: 5, Target: 10}))

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)
	require.NotNil(t, resp.Target)
	assert.Equal(t, 10, *resp.Target)
	require.NotNil(t, resp.Progress)
	assert.InDelta(t, 50.0, *resp.Progress, 0.001)
	assert.False(t, resp.Reached)
}

func TestJSONPrintStatusNoTarget(t *testing.T) {
	f, buf := newTestFormatter(FormatJSON)
	jf := NewJSONFormatter(f)

	require.NoError(t, jf.PrintStatus(tally.State{Count: 5}))

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Nil(t, resp.Target)
	assert.Nil(t, resp.Progress)
}

func TestJSONPrintMilestones(t *testing.T) {
	f, buf := newTestFormatter(FormatJSON)
	jf := NewJSONFormatter(f)

	milestones := []*model.Milestone{
		model.NewMilestone("id1", 10, 11, time.Now()),
	}
	require.NoError(t, jf.PrintMilestones(milestones))

	var resp MilestonesResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Milestones, 1)
	assert.Equal(t, "id1", resp.Milestones[0].ID)
	assert.Equal(t, 10, resp.Milestones[0].Target)
}

func TestCLIPrintMilestonesEmpty(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)
	cli := NewCLIFormatter(f)

	cli.PrintMilestones(nil)
	assert.Contains(t, buf.String(), "No milestones yet")
}
