package cli

import (
	"strconv"
	"strings"

	"cycleops/internal/domain"
)

// render writes v as indented JSON or the prepared rows as a table,
// depending on the configured output format.
func (a *AppContainer) render(v any, headers []string, rows [][]string) error {
	if a.Config.Output.Format == "json" {
		out, err := domain.PrettyJSON(v)
		if err != nil {
			return err
		}
		a.Terminal.Println(out)
		return nil
	}
	a.Terminal.Table(headers, rows)
	return nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func hostRows(hosts []domain.Host) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "IP", "ENVIRONMENT", "JUMP HOST", "STATUS"}
	rows := make([][]string, len(hosts))
	for i, h := range hosts {
		rows[i] = []string{
			strconv.Itoa(h.ID),
			h.Name,
			h.IP,
			strconv.Itoa(h.Environment),
			strconv.FormatBool(h.JumpHost),
			h.RegisterStatus.String(),
		}
	}
	return headers, rows
}

func hostgroupRows(groups []domain.Hostgroup) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "ENVIRONMENT", "HOSTS"}
	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = []string{
			strconv.Itoa(g.ID),
			g.Name,
			strconv.Itoa(g.Environment),
			joinIDs(g.Hosts),
		}
	}
	return headers, rows
}

func serviceRows(services []domain.Service) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "UNIT", "DESCRIPTION"}
	rows := make([][]string, len(services))
	for i, s := range services {
		rows[i] = []string{
			strconv.Itoa(s.ID),
			s.Name,
			strconv.Itoa(s.Unit),
			s.Description,
		}
	}
	return headers, rows
}

func stackRows(stacks []domain.Stack) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "UNITS", "DESCRIPTION"}
	rows := make([][]string, len(stacks))
	for i, s := range stacks {
		rows[i] = []string{
			strconv.Itoa(s.ID),
			s.Name,
			joinIDs(s.Units),
			s.Description,
		}
	}
	return headers, rows
}

func setupRows(setups []domain.Setup) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "STACK", "ENVIRONMENT", "HOSTS", "HOSTGROUPS", "SERVICES"}
	rows := make([][]string, len(setups))
	for i, s := range setups {
		rows[i] = []string{
			strconv.Itoa(s.ID),
			s.Name,
			strconv.Itoa(s.Stack),
			strconv.Itoa(s.Environment),
			joinIDs(s.Hosts),
			joinIDs(s.Hostgroups),
			joinIDs(s.Services),
		}
	}
	return headers, rows
}

func unitRows(units []domain.Unit) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "TYPE", "SERVICE GROUPS"}
	rows := make([][]string, len(units))
	for i, u := range units {
		rows[i] = []string{
			strconv.Itoa(u.ID),
			u.Name,
			u.TypeSlug,
			strings.Join(u.ServiceGroupsSlugs, ","),
		}
	}
	return headers, rows
}

func environmentRows(environments []domain.Environment) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "ACCOUNT", "HOSTS", "HOSTGROUPS", "DESCRIPTION"}
	rows := make([][]string, len(environments))
	for i, e := range environments {
		rows[i] = []string{
			strconv.Itoa(e.ID),
			e.Name,
			strconv.Itoa(e.Account),
			joinIDs(e.Hosts),
			joinIDs(e.Hostgroups),
			e.Description,
		}
	}
	return headers, rows
}
