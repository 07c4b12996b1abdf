package handlers

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/machinegen/internal/manifest"
	"github.com/imamik/machinegen/internal/pipeline"
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// summaryStyles are the lipgloss styles of the generate summary. Without a
// terminal every style renders text unchanged.
type summaryStyles struct {
	title lipgloss.Style
	dim   lipgloss.Style
	name  lipgloss.Style
	value lipgloss.Style
	role  lipgloss.Style
}

func newSummaryStyles(styled bool) summaryStyles {
	if !styled {
		plain := lipgloss.NewStyle()
		return summaryStyles{title: plain, dim: plain, name: plain, value: plain, role: plain}
	}
	return summaryStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb")),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		name:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		role:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6")),
	}
}

func printGenerateSummary(user string, res *pipeline.Result, styled bool) {
	s := newSummaryStyles(styled)

	fmt.Println()
	fmt.Println(s.title.Render(fmt.Sprintf("  machinegen: %s", user)))
	fmt.Println(s.dim.Render("  " + strings.Repeat("=", 30)))
	fmt.Printf("  %s  %s\n", s.name.Render(fmt.Sprintf("%-10s", "output")), s.value.Render(res.Target))
	fmt.Printf("  %s  %s\n", s.name.Render(fmt.Sprintf("%-10s", "variant")), s.value.Render(fmt.Sprintf("%s (%s)", res.Variant, res.Format)))
	fmt.Printf("  %s  %s\n", s.name.Render(fmt.Sprintf("%-10s", "objects")), s.value.Render(formatKinds(res.Summary.Kinds)))
	fmt.Println()

	printMachines(s, res.Summary.Machines)
}

func printMachines(s summaryStyles, machines []manifest.MachineInfo) {
	for _, m := range machines {
		fmt.Printf("  %s  %-28s %s\n",
			s.role.Render(fmt.Sprintf("%-6s", m.Role)),
			m.Name,
			s.dim.Render(fmt.Sprintf("public %s  private %s", m.Public, m.Private)))
	}
	if len(machines) == 0 {
		fmt.Println(s.dim.Render("  No machines."))
	}
	fmt.Println()
}

// formatKinds renders object counts sorted by kind, e.g. "3 ExistingInfraMachine, 3 Machine".
func formatKinds(kinds map[string]int) string {
	names := make([]string, 0, len(kinds))
	for kind := range kinds {
		names = append(names, kind)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, kind := range names {
		parts = append(parts, fmt.Sprintf("%d %s", kinds[kind], kind))
	}
	return strings.Join(parts, ", ")
}
