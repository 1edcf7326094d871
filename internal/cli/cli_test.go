package cli

import (
	"bytes"
	"strings"
	"testing"

	"cycleops/internal/config"
	"cycleops/internal/domain"
	"cycleops/internal/ui"
)

func testApp(format string, out *bytes.Buffer) *AppContainer {
	cfg := config.DefaultConfig()
	cfg.Output.Format = format
	return &AppContainer{
		Config:   cfg,
		Terminal: ui.NewTerminalWithWriter(out, out, false),
	}
}

func TestRenderJSONMode(t *testing.T) {
	var buf bytes.Buffer
	app := testApp("json", &buf)

	hosts := []domain.Host{{ID: 7, Name: "web-1", IP: "10.0.0.1"}}
	headers, rows := hostRows(hosts)
	if err := app.render(hosts, headers, rows); err != nil {
		t.Fatalf("render: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, `"name": "web-1"`) {
		t.Errorf("json output %q should contain the host name field", got)
	}
	if strings.Contains(got, "ID  ") {
		t.Errorf("json output %q should not contain table headers", got)
	}
}

func TestRenderTableMode(t *testing.T) {
	var buf bytes.Buffer
	app := testApp("table", &buf)

	hosts := []domain.Host{{ID: 7, Name: "web-1", IP: "10.0.0.1", RegisterStatus: domain.StatusRegistered}}
	headers, rows := hostRows(hosts)
	if err := app.render(hosts, headers, rows); err != nil {
		t.Fatalf("render: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"NAME", "web-1", "10.0.0.1", "Registered"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output %q should contain %q", got, want)
		}
	}
}

func TestJoinIDs(t *testing.T) {
	if got := joinIDs([]int{1, 2, 3}); got != "1,2,3" {
		t.Errorf("joinIDs = %q, want 1,2,3", got)
	}
	if got := joinIDs(nil); got != "" {
		t.Errorf("joinIDs(nil) = %q, want empty", got)
	}
}

func TestHostRows(t *testing.T) {
	_, rows := hostRows([]domain.Host{{
		ID:             7,
		Name:           "web-1",
		IP:             "10.0.0.1",
		Environment:    3,
		JumpHost:       true,
		RegisterStatus: domain.StatusRegistering,
	}})
	want := []string{"7", "web-1", "10.0.0.1", "3", "true", "Registering"}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("cell %d = %q, want %q", i, rows[0][i], cell)
		}
	}
}

func TestSetupRows(t *testing.T) {
	headers, rows := setupRows([]domain.Setup{{
		ID:          9,
		Name:        "production",
		Stack:       2,
		Environment: 3,
		Hosts:       []int{7, 8},
		Services:    []int{5},
	}})
	if len(headers) != 7 {
		t.Fatalf("expected 7 headers, got %d", len(headers))
	}
	if rows[0][4] != "7,8" {
		t.Errorf("hosts cell = %q, want 7,8", rows[0][4])
	}
	if rows[0][6] != "5" {
		t.Errorf("services cell = %q, want 5", rows[0][6])
	}
}

func TestUnitRows(t *testing.T) {
	_, rows := unitRows([]domain.Unit{{
		ID:                 1,
		Name:               "nginx",
		TypeSlug:           "docker",
		ServiceGroupsSlugs: []string{"web", "proxy"},
	}})
	if rows[0][3] != "web,proxy" {
		t.Errorf("service groups cell = %q, want web,proxy", rows[0][3])
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"hosts", "hostgroups", "services", "stacks", "setups", "units", "environments"}
	have := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestSetupsSubcommands(t *testing.T) {
	have := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() != "setups" {
			continue
		}
		for _, sub := range cmd.Commands() {
			have[sub.Name()] = true
		}
	}
	if len(have) == 0 {
		t.Fatal("setups command not registered")
	}
	for _, name := range []string{"list", "retrieve", "create", "update", "delete", "deploy"} {
		if !have[name] {
			t.Errorf("setups is missing subcommand %q", name)
		}
	}
}
