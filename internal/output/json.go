package output

import (
	"time"

	"github.com/mfields/tally/internal/model"
	"github.com/mfields/tally/internal/tally"
)

// JSONFormatter provides JSON output formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// StatusResponse is the JSON shape of the counter state.
type StatusResponse struct {
	Count    int      `json:"count"`
	Target   *int     `json:"target"`
	Reached  bool     `json:"reached"`
	Progress *float64 `json:"progress,omitempty"`
}

// NewStatusResponse builds a StatusResponse from machine state.
func NewStatusResponse(st tally.State) StatusResponse {
	resp := StatusResponse{
		Count:   st.Count,
		Reached: st.Reached,
	}
	if st.HasTarget() {
		target := st.Target
		progress := st.Progress()
		resp.Target = &target
		resp.Progress = &progress
	}
	return resp
}

// PrintStatus writes the counter state as JSON.
func (j *JSONFormatter) PrintStatus(st tally.State) error {
	return j.JSON(NewStatusResponse(st))
}

// MilestoneOutput is the JSON shape of one milestone.
type MilestoneOutput struct {
	ID        string    `json:"id"`
	Target    int       `json:"target"`
	Count     int       `json:"count"`
	ReachedAt time.Time `json:"reached_at"`
}

// MilestonesResponse wraps a milestone list.
type MilestonesResponse struct {
	Milestones []MilestoneOutput `json:"milestones"`
}

// PrintMilestones writes the milestone history as JSON.
func (j *JSONFormatter) PrintMilestones(milestones []*model.Milestone) error {
	out := make([]MilestoneOutput, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, MilestoneOutput{
			ID:        m.ID,
			Target:    m.Target,
			Count:     m.Count,
			ReachedAt: m.ReachedAt,
		})
	}
	return j.JSON(MilestonesResponse{Milestones: out})
}

// ErrorResponse is the JSON shape of an error.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError writes an error as JSON.
func (j *JSONFormatter) PrintError(kind, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Error:      kind,
		Message:    message,
		Suggestion: suggestion,
	})
}
