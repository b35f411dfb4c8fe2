package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#9bca3e"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#bd2426")).Bold(true)
	columnStyle    = lipgloss.NewStyle().Width(22).Padding(0, 1)
	highlightStyle = columnStyle.Border(lipgloss.NormalBorder(), false, false, true, false)
)

const uiDivider = "──────────────────────────────────────────────────────────────────"

// RenderText renders page as a terminal card. Markup of the explanation
// blocks is stripped.
func RenderText(page PageData) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  Error code %d", page.Title, page.ErrorCode)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s  %s", page.Domain, page.Time)))
	if !page.MoreInformation.Hidden {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("Visit %s for more information.", valueOrDash(page.MoreInformation.Text))))
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	columns := make([]string, 0, len(page.Columns))
	for _, c := range page.Columns {
		columns = append(columns, renderColumn(c))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("What happened?"))
	b.WriteString("\n")
	b.WriteString(stripMarkup(string(page.WhatHappened)))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("What can I do?"))
	b.WriteString("\n")
	b.WriteString(stripMarkup(string(page.WhatCanIDo)))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"Ray ID: %s  Your IP: %s  Performance & security by %s",
		valueOrDash(page.RayID), valueOrDash(page.ClientIP), valueOrDash(page.PerfSecBy.Text),
	)))

	return cardStyle.Render(b.String())
}

func renderColumn(c StatusColumn) string {
	mark, status := okStyle.Render("✔"), okStyle
	if !c.OK() {
		mark, status = errorStyle.Render("✖"), errorStyle
	}

	lines := []string{mark + " " + valueOrDash(c.Name)}
	if c.Location != "" {
		lines = append(lines, helpStyle.Render(c.Location))
	}
	lines = append(lines, status.Render(valueOrDash(c.StatusText)))

	style := columnStyle
	if c.Highlighted {
		style = highlightStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// stripMarkup drops everything between angle brackets and collapses the
// remaining whitespace.
func stripMarkup(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
