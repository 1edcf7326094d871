package domain

import (
	"strings"
	"testing"
)

func TestRegisterStatusString(t *testing.T) {
	tests := []struct {
		status RegisterStatus
		want   string
	}{
		{StatusRegistering, "Registering"},
		{StatusRegistered, "Registered"},
		{StatusUnregistered, "Unregistered"},
		{RegisterStatus(42), "Unknown (42)"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("RegisterStatus(%d).String() = %q, want %q", int(tc.status), got, tc.want)
		}
	}
}

func TestJobStatusTerminal(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   bool
	}{
		{JobPending, false},
		{JobRunning, false},
		{JobSucceeded, true},
		{JobFailed, true},
	}
	for _, tc := range tests {
		if got := tc.status.Terminal(); got != tc.want {
			t.Errorf("%s.Terminal() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Message: "variable must be KEY=VALUE"}
	if got := err.Error(); got != "invalid input: variable must be KEY=VALUE" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Resource: "host", Message: `no match for "web-9"`}
	if got := err.Error(); got != `host: no match for "web-9"` {
		t.Errorf("unexpected message: %q", got)
	}

	bare := &NotFoundError{Message: "no hosts available"}
	if got := bare.Error(); got != "no hosts available" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestAuthErrorDefaultMessage(t *testing.T) {
	if got := (&AuthError{}).Error(); got != "authentication failed" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestAPIErrorFallbackMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"passthrough", &APIError{StatusCode: 409, Message: "name taken"}, "name taken"},
		{"bad request fallback", &APIError{StatusCode: 400}, "Please check your inputs and try again"},
		{"server error fallback", &APIError{StatusCode: 502}, "Service unavailable, please try again later"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); !strings.Contains(got, tc.want) {
				t.Errorf("error %q should contain %q", got, tc.want)
			}
		})
	}
}

func TestDeployErrorPrefersRemoteReason(t *testing.T) {
	withReason := &DeployError{Job: &Job{Setup: 9, Error: "host unreachable"}}
	if got := withReason.Error(); got != "deployment failed: host unreachable" {
		t.Errorf("unexpected message: %q", got)
	}

	withoutReason := &DeployError{Job: &Job{Setup: 9}}
	if got := withoutReason.Error(); !strings.Contains(got, "setup 9") {
		t.Errorf("message %q should reference the setup", got)
	}
}

func TestTimeoutErrorIncludesLastStatus(t *testing.T) {
	err := &TimeoutError{Job: &Job{ID: 101, Status: JobRunning}}
	got := err.Error()
	if !strings.Contains(got, "101") || !strings.Contains(got, "running") {
		t.Errorf("message %q should include job id and last status", got)
	}

	if got := (&TimeoutError{}).Error(); got != "timed out waiting for deployment" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestPrettyJSON(t *testing.T) {
	out, err := PrettyJSON(Host{ID: 1, Name: "web-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"name": "web-1"`) {
		t.Errorf("output %q should be indented JSON", out)
	}
}
