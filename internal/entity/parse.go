package entity

import (
	"fmt"
	"strings"
)

// ParseStatus accepts the canonical status names case-insensitively, plus
// the snake and kebab spellings of "In Progress".
func ParseStatus(s string) (TicketStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	for _, st := range TicketStatuses {
		if strings.ToLower(string(st)) == key {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown ticket status %q", s)
}

func ParsePriority(s string) (TicketPriority, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range TicketPriorities {
		if strings.ToLower(string(p)) == key {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown ticket priority %q", s)
}

// ParseStatusFilter is ParseStatus that also accepts "all" and "".
func ParseStatusFilter(s string) (string, error) {
	if isAll(s) {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return string(st), nil
}

func ParsePriorityFilter(s string) (string, error) {
	if isAll(s) {
		return FilterAll, nil
	}
	p, err := ParsePriority(s)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, FilterAll)
}

// NextStatusFilter cycles all -> Open -> In Progress -> Resolved -> all.
func NextStatusFilter(current string) string {
	options := []string{FilterAll}
	for _, st := range TicketStatuses {
		options = append(options, string(st))
	}
	return nextOption(options, current)
}

// NextPriorityFilter cycles all -> Low -> Medium -> High -> all.
func NextPriorityFilter(current string) string {
	options := []string{FilterAll}
	for _, p := range TicketPriorities {
		options = append(options, string(p))
	}
	return nextOption(options, current)
}

func nextOption(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
