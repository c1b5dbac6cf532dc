package v1

import (
	"time"

	"github.com/kubev2v/jobqueue/internal/models"
	"github.com/kubev2v/jobqueue/pkg/scheduler"
)

func (s *QueueStatus) FromModel(m models.QueueStatus) {
	s.Qid = m.QID
	s.Workers = m.Workers
	s.WorkersFree = m.WorkersFree
	s.Waiting = m.Waiting
	s.Working = m.Working
	s.Completed = m.Completed
	s.Submitted = m.Submitted
	s.Processed = m.Processed
	s.Remaining = m.Remaining
	s.Running = m.Running
	s.MaxSize = m.MaxSize
}

// ToModel converts the request body to a service request.
func (r JobRequest) ToModel() models.JobRequest {
	m := models.JobRequest{
		Function: r.Function,
		Priority: r.Priority,
		Args:     r.Args,
		Kwargs:   r.Kwargs,
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Lane != nil {
		m.Lane = *r.Lane
	}
	if r.TimeoutSeconds != nil {
		m.TimeoutSeconds = *r.TimeoutSeconds
	}
	if r.StopOnLaneError != nil {
		m.StopOnLaneError = *r.StopOnLaneError
	}
	if r.SuppressErrors != nil {
		m.SuppressErrors = *r.SuppressErrors
	}
	return m
}

// NewJobFromRecord converts a completed job record to an API Job.
func NewJobFromRecord(rec *scheduler.JobRecord) Job {
	job := Job{
		Id:             rec.ID,
		Qid:            rec.QID,
		Name:           rec.Name,
		Priority:       rec.Priority,
		Lane:           optString(rec.Lane),
		Function:       optString(rec.Function),
		State:          JobState(rec.State),
		ExitCode:       rec.ExitCode,
		Cancelled:      rec.Cancelled,
		SubmittedAt:    rec.SubmittedAt,
		StartedAt:      optTime(rec.StartedAt),
		EndedAt:        optTime(rec.EndedAt),
		ProcessedAt:    optTime(rec.ProcessedAt),
		RuntimeSeconds: rec.Runtime().Seconds(),
		Output:         rec.Output,
		Exception:      optString(rec.Exception),
		CallbackResult: rec.CallbackResult,
	}
	if rec.Timeout > 0 {
		seconds := rec.Timeout.Seconds()
		job.TimeoutSeconds = &seconds
	}
	return job
}

// NewJobLogEntryFromModel converts a persisted job log row to an API entry.
func NewJobLogEntryFromModel(m models.JobLog) JobLogEntry {
	entry := JobLogEntry{
		Qid:            m.QID,
		Id:             m.ID,
		Name:           m.Name,
		Priority:       m.Priority,
		Lane:           optString(m.Lane),
		Function:       optString(m.Function),
		State:          JobState(m.State),
		ExitCode:       m.ExitCode,
		Cancelled:      m.Cancelled,
		SubmittedAt:    m.SubmittedAt,
		StartedAt:      m.StartedAt,
		EndedAt:        m.EndedAt,
		ProcessedAt:    m.ProcessedAt,
		RuntimeSeconds: m.RuntimeSeconds,
		Output:         optString(m.Output),
		Exception:      optString(m.Exception),
		CallbackResult: optString(m.CallbackResult),
	}
	if m.TimeoutSeconds > 0 {
		seconds := m.TimeoutSeconds
		entry.TimeoutSeconds = &seconds
	}
	return entry
}

// ToFilter converts the query parameters to a job log filter. Paging is
// resolved by the caller.
func (p GetJobLogParams) ToFilter() models.JobLogFilter {
	var f models.JobLogFilter
	if p.Qid != nil {
		f.QIDs = *p.Qid
	}
	if p.Lane != nil {
		f.Lanes = *p.Lane
	}
	if p.State != nil {
		for _, s := range *p.State {
			f.States = append(f.States, string(s))
		}
	}
	return f
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
