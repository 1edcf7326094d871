// Package domain defines the Cycleops resource types and error kinds shared
// across the CLI.
package domain

import (
	"encoding/json"
	"fmt"
)

// RegisterStatus is the numeric host registration code used by the API.
type RegisterStatus int

// Registration codes as reported by the stack-manager API.
const (
	StatusUnregistered RegisterStatus = 5
	StatusRegistered   RegisterStatus = 6
	StatusRegistering  RegisterStatus = 11
)

func (s RegisterStatus) String() string {
	switch s {
	case StatusRegistering:
		return "Registering"
	case StatusRegistered:
		return "Registered"
	case StatusUnregistered:
		return "Unregistered"
	default:
		return fmt.Sprintf("Unknown (%d)", int(s))
	}
}

// Host is a managed machine in an environment.
type Host struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	IP             string         `json:"IP"`
	Environment    int            `json:"environment"`
	JumpHost       bool           `json:"jump_host"`
	Hostgroups     []int          `json:"hostgroups"`
	RegisterStatus RegisterStatus `json:"register_status"`
}

// Hostgroup is a named collection of hosts.
type Hostgroup struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Environment int    `json:"environment"`
	Hosts       []int  `json:"hosts"`
}

// Service is a deployable unit instance carrying a nested variables document.
type Service struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Unit        int            `json:"unit"`
	Variables   map[string]any `json:"variables"`
}

// Stack is an ordered grouping of units.
type Stack struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       []int  `json:"units"`
}

// Setup is a deployable grouping of hosts, hostgroups, services and a stack.
type Setup struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Stack       int    `json:"stack"`
	Environment int    `json:"environment"`
	Hosts       []int  `json:"hosts"`
	Hostgroups  []int  `json:"hostgroups"`
	Services    []int  `json:"services"`
}

// Unit is a catalog entry referenced when creating a service.
type Unit struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	TypeSlug           string   `json:"type_slug"`
	ServiceGroupsSlugs []string `json:"service_groups_slugs"`
}

// Environment is a deployment target namespace owning hosts and hostgroups.
type Environment struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     int    `json:"account"`
	Hosts       []int  `json:"hosts"`
	Hostgroups  []int  `json:"hostgroups"`
}

// JobStatus is the remote-reported state of a deployment job.
type JobStatus string

// Job states as reported by the API. The client never mutates these.
const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Terminal reports whether the status ends a deployment.
func (s JobStatus) Terminal() bool {
	return s == JobSucceeded || s == JobFailed
}

// Job is the client's read-only view of a deployment job.
type Job struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Setup       int       `json:"setup"`
	Status      JobStatus `json:"status"`
	Error       string    `json:"error"`
}

// ValidationError reports malformed user input, raised before any request is
// sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// NotFoundError reports a name that resolved to zero or multiple resources,
// or an empty response where one was required.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s: %s", e.Resource, e.Message)
	}
	return e.Message
}

// AuthError reports a missing API key or a 401/403 from the API.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// APIError is any other non-2xx response, with the message passed through
// from the API body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		switch {
		case e.StatusCode >= 500:
			msg = "Service unavailable, please try again later"
		case e.StatusCode == 400:
			msg = "Please check your inputs and try again"
		}
	}
	return fmt.Sprintf("status code %d. Error message: %s", e.StatusCode, msg)
}

// DeployError carries the remote failure reason of a deployment job.
type DeployError struct {
	Job *Job
}

func (e *DeployError) Error() string {
	if e.Job.Error != "" {
		return fmt.Sprintf("deployment failed: %s", e.Job.Error)
	}
	return fmt.Sprintf("deployment of setup %d failed", e.Job.Setup)
}

// TimeoutError reports a deployment wait that exceeded its bound.
type TimeoutError struct {
	Job *Job
}

func (e *TimeoutError) Error() string {
	if e.Job != nil {
		return fmt.Sprintf("timed out waiting for job %d (last status: %s)", e.Job.ID, e.Job.Status)
	}
	return "timed out waiting for deployment"
}

// PrettyJSON renders v as indented JSON for raw output mode.
func PrettyJSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
