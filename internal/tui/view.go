package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/entity"
)

type statsMsg struct{ stats entity.Stats }

type ticketsMsg struct{ tickets []entity.Ticket }

type ticketsErrorMsg struct{ msg string }

type noticeMsg struct{ notice dashboard.Notice }

// noticeFadeMsg clears the notice it was scheduled for, unless a newer
// notice replaced it.
type noticeFadeMsg struct{ seq int }

type detailMsg struct{ ticket entity.Ticket }

type closeDetailMsg struct{}

// ProgramView implements dashboard.View by delivering every update to a
// bubbletea program as a message. Updates arriving before SetProgram are
// dropped.
type ProgramView struct {
	program atomic.Pointer[tea.Program]
}

var _ dashboard.View = (*ProgramView)(nil)

func NewProgramView() *ProgramView {
	return &ProgramView{}
}

func (v *ProgramView) SetProgram(p *tea.Program) {
	v.program.Store(p)
}

func (v *ProgramView) send(msg tea.Msg) {
	if p := v.program.Load(); p != nil {
		p.Send(msg)
	}
}

func (v *ProgramView) ShowStats(stats entity.Stats) { v.send(statsMsg{stats: stats}) }

func (v *ProgramView) ShowTickets(tickets []entity.Ticket) { v.send(ticketsMsg{tickets: tickets}) }

func (v *ProgramView) ShowTicketsError(msg string) { v.send(ticketsErrorMsg{msg: msg}) }

func (v *ProgramView) Notify(n dashboard.Notice) { v.send(noticeMsg{notice: n}) }

func (v *ProgramView) ShowDetail(t entity.Ticket) { v.send(detailMsg{ticket: t}) }

func (v *ProgramView) CloseDetail() { v.send(closeDetailMsg{}) }
