package v1

import "time"

// JobState is the lifecycle state of a job.
type JobState string

const (
	JobStateQueued    JobState = "queued"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
	JobStateCancelled JobState = "cancelled"
)

// Error is the body of every non-2xx response.
type Error struct {
	Error string `json:"error"`
}

// QueueStatus defines model for QueueStatus.
type QueueStatus struct {
	Qid         string `json:"qid"`
	Workers     int    `json:"workers"`
	WorkersFree int    `json:"workers_free"`
	Waiting     int    `json:"waiting"`
	Working     int    `json:"working"`
	Completed   int    `json:"completed"`
	Submitted   int    `json:"submitted"`
	Processed   int    `json:"processed"`
	Remaining   int    `json:"remaining"`
	Running     bool   `json:"running"`
	MaxSize     int    `json:"max_size"`
}

// JobRequest defines model for JobRequest.
type JobRequest struct {
	Function        string         `json:"function" binding:"required"`
	Name            *string        `json:"name,omitempty"`
	Priority        *int           `json:"priority,omitempty"`
	Lane            *string        `json:"lane,omitempty"`
	TimeoutSeconds  *float64       `json:"timeout_seconds,omitempty" binding:"omitempty,gte=0"`
	Args            []any          `json:"args,omitempty"`
	Kwargs          map[string]any `json:"kwargs,omitempty"`
	StopOnLaneError *bool          `json:"stop_on_lane_error,omitempty"`
	SuppressErrors  *bool          `json:"suppress_errors,omitempty"`
}

// JobCreated defines model for JobCreated.
type JobCreated struct {
	Id  int    `json:"id"`
	Qid string `json:"qid"`
}

// Job defines model for Job.
type Job struct {
	Id             int        `json:"id"`
	Qid            string     `json:"qid"`
	Name           string     `json:"name"`
	Priority       int        `json:"priority"`
	Lane           *string    `json:"lane,omitempty"`
	Function       *string    `json:"function,omitempty"`
	TimeoutSeconds *float64   `json:"timeout_seconds,omitempty"`
	State          JobState   `json:"state"`
	ExitCode       int        `json:"exit_code"`
	Cancelled      bool       `json:"cancelled"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	RuntimeSeconds float64    `json:"runtime_seconds"`
	Output         any        `json:"output,omitempty"`
	Exception      *string    `json:"exception,omitempty"`
	CallbackResult any        `json:"callback_result,omitempty"`
}

// JobList defines model for JobList.
type JobList struct {
	Jobs []Job `json:"jobs"`
}

// JobLogEntry defines model for JobLogEntry. Output and CallbackResult hold
// the JSON text persisted in the log.
type JobLogEntry struct {
	Qid            string     `json:"qid"`
	Id             int        `json:"id"`
	Name           string     `json:"name"`
	Priority       int        `json:"priority"`
	Lane           *string    `json:"lane,omitempty"`
	Function       *string    `json:"function,omitempty"`
	TimeoutSeconds *float64   `json:"timeout_seconds,omitempty"`
	State          JobState   `json:"state"`
	ExitCode       int        `json:"exit_code"`
	Cancelled      bool       `json:"cancelled"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	RuntimeSeconds float64    `json:"runtime_seconds"`
	Output         *string    `json:"output,omitempty"`
	Exception      *string    `json:"exception,omitempty"`
	CallbackResult *string    `json:"callback_result,omitempty"`
}

// JobLogPage defines model for JobLogPage.
type JobLogPage struct {
	Jobs      []JobLogEntry `json:"jobs"`
	Page      int           `json:"page"`
	PageCount int           `json:"page_count"`
	Total     int           `json:"total"`
}

// ClearedJobs defines model for ClearedJobs.
type ClearedJobs struct {
	Cleared int `json:"cleared"`
}

// ListCompletedJobsParams defines parameters for ListCompletedJobs.
type ListCompletedJobsParams struct {
	// N is the maximum number of jobs to collect. All completed jobs are
	// collected when omitted.
	N *int `form:"n,omitempty" json:"n,omitempty"`
}

// GetJobLogParams defines parameters for GetJobLog.
type GetJobLogParams struct {
	Qid      *[]string   `form:"qid,omitempty" json:"qid,omitempty"`
	Lane     *[]string   `form:"lane,omitempty" json:"lane,omitempty"`
	State    *[]JobState `form:"state,omitempty" json:"state,omitempty"`
	Page     *int        `form:"page,omitempty" json:"page,omitempty"`
	PageSize *int        `form:"page_size,omitempty" json:"page_size,omitempty"`
}

// QueueUpdate defines model for QueueUpdate.
type QueueUpdate struct {
	Workers *int `json:"workers,omitempty" binding:"omitempty,gte=1"`
}
