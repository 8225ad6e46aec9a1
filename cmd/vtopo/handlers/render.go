package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"sigs.k8s.io/yaml"

	"github.com/imamik/vtopo/internal/config"
	"github.com/imamik/vtopo/internal/topology"
)

var (
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderTopology encodes topo in the requested output format.
func renderTopology(source string, topo *topology.Topology, format string, styled bool) (string, error) {
	switch format {
	case OutputJSON:
		data, err := json.MarshalIndent(topo, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal topology: %w", err)
		}
		return string(data) + "\n", nil
	case OutputYAML:
		data, err := yaml.Marshal(topo)
		if err != nil {
			return "", fmt.Errorf("failed to marshal topology: %w", err)
		}
		return string(data), nil
	case OutputText:
		return renderTopologyTable(source, topo, styled), nil
	default:
		return "", fmt.Errorf("invalid output format %q", format)
	}
}

// renderTopologyTable produces a node table, styled with lipgloss for terminals.
func renderTopologyTable(source string, topo *topology.Topology, styled bool) string {
	var b strings.Builder

	title := fmt.Sprintf("vtopo: %s", source)
	rule := strings.Repeat("═", 30)
	if styled {
		title = titleStyle.Render(title)
		rule = dimStyle.Render(rule)
	}
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ROLE", "HOSTNAME", "CPUS", "MEMORY", "IP")

	if styled {
		t = t.BorderStyle(dimStyle).StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	}

	addRows(t, config.RoleManager, []topology.NodeDescriptor{topo.Manager})
	addRows(t, config.RoleReplica, topo.Replica)
	addRows(t, config.RoleClient, topo.Client)

	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d nodes (1 manager, %d replicas, %d clients)\n",
		topo.Len(), len(topo.Replica), len(topo.Client)))

	return b.String()
}

func addRows(t *table.Table, role config.Role, nodes []topology.NodeDescriptor) {
	for _, n := range nodes {
		t.Row(string(role), n.Hostname, formatNumber(n.CPUs), formatNumber(n.Memory), n.IP)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
