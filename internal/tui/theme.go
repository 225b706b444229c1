package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jekabolt/helpdesk/internal/entity"
)

// Theme is the color palette of the terminal dashboard, in ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color

	StatusOpen       lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusResolved   lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	NoticeSuccess lipgloss.Color
	NoticeError   lipgloss.Color
}

var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	PriorityHigh:   lipgloss.Color("196"), // red
	PriorityMedium: lipgloss.Color("220"), // amber
	PriorityLow:    lipgloss.Color("75"),  // blue

	StatusOpen:       lipgloss.Color("75"),
	StatusInProgress: lipgloss.Color("220"),
	StatusResolved:   lipgloss.Color("114"), // green

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	NoticeSuccess: lipgloss.Color("114"),
	NoticeError:   lipgloss.Color("196"),
}

// PriorityColor returns FaintText for unknown priorities.
func (theme Theme) PriorityColor(p entity.TicketPriority) lipgloss.Color {
	switch p {
	case entity.PriorityHigh:
		return theme.PriorityHigh
	case entity.PriorityMedium:
		return theme.PriorityMedium
	case entity.PriorityLow:
		return theme.PriorityLow
	}
	return theme.FaintText
}

// StatusColor returns FaintText for unknown statuses.
func (theme Theme) StatusColor(s entity.TicketStatus) lipgloss.Color {
	switch s {
	case entity.StatusOpen:
		return theme.StatusOpen
	case entity.StatusInProgress:
		return theme.StatusInProgress
	case entity.StatusResolved:
		return theme.StatusResolved
	}
	return theme.FaintText
}

func (theme Theme) priorityBadge(p entity.TicketPriority) string {
	return lipgloss.NewStyle().Foreground(theme.PriorityColor(p)).Bold(true).Render(string(p))
}

func (theme Theme) statusBadge(s entity.TicketStatus) string {
	return lipgloss.NewStyle().Foreground(theme.StatusColor(s)).Render(string(s))
}
