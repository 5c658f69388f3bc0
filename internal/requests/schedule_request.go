package requests

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"os-scheduler/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
}
type ScheduleRequests struct {
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	Jobs        []Job `json:"jobs" yaml:"jobs"`
}

// FieldError describes a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for requests that must not reach the scheduler.
type ValidationError struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

// Validate reports every invalid field at once.
func (r *ScheduleRequests) Validate() error {
	var details []FieldError
	if r.TimeQuantum < 0 {
		details = append(details, FieldError{Field: "time_quantum", Message: "must not be negative"})
	}

	seen := make(map[string]bool, len(r.Jobs))
	for i, job := range r.Jobs {
		field := fmt.Sprintf("jobs[%d]", i)
		if job.BurstTime <= 0 {
			details = append(details, FieldError{Field: field + ".burst_time", Message: "must be positive"})
		}
		if job.ArrivalTime < 0 {
			details = append(details, FieldError{Field: field + ".arrival_time", Message: "must not be negative"})
		}
		if job.ProcessId != "" {
			if seen[job.ProcessId] {
				details = append(details, FieldError{Field: field + ".process_id", Message: fmt.Sprintf("duplicate id %q", job.ProcessId)})
			}
			seen[job.ProcessId] = true
		}
	}

	if len(details) > 0 {
		return &ValidationError{Message: "invalid schedule request", Details: details}
	}
	return nil
}

// Processes converts the jobs into scheduler input, keeping their order.
// Jobs without an id get a random one; jobs without a name are called P1, P2, ...
// after their position.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if id == "" {
			id = uuid.NewString()
		}
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		processes = append(processes, core.Process{
			ID:          id,
			Name:        name,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return processes
}
