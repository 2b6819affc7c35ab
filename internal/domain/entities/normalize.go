package entities

import (
	"strings"
	"time"
)

const (
	DefaultComplexity = "medium"
	DefaultTimeline   = "normal"
)

var complexityAliases = map[string]string{
	"simple":   "simple",
	"simples":  "simple",
	"low":      "simple",
	"baixa":    "simple",
	"medium":   "medium",
	"media":    "medium",
	"média":    "medium",
	"moderate": "medium",
	"moderada": "medium",
	"complex":  "complex",
	"complexa": "complex",
	"high":     "complex",
	"alta":     "complex",
}

var timelineAliases = map[string]string{
	"urgent":   "urgent",
	"urgente":  "urgent",
	"fast":     "fast",
	"rapido":   "fast",
	"rápido":   "fast",
	"normal":   "normal",
	"standard": "normal",
	"padrao":   "normal",
	"padrão":   "normal",
	"flexible": "flexible",
	"flexivel": "flexible",
	"flexível": "flexible",
}

var timelineDuration = map[string]time.Duration{
	"urgent":   15 * 24 * time.Hour,
	"fast":     30 * 24 * time.Hour,
	"normal":   60 * 24 * time.Hour,
	"flexible": 90 * 24 * time.Hour,
}

// NormalizeComplexity maps language variants to the canonical value, defaulting to medium.
func NormalizeComplexity(raw string) string {
	if v, ok := complexityAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return v
	}
	return DefaultComplexity
}

// NormalizeTimeline maps language variants to the canonical value, defaulting to normal.
func NormalizeTimeline(raw string) string {
	if v, ok := timelineAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return v
	}
	return DefaultTimeline
}

// DueDateFor estimates a project due date from its normalised timeline.
func DueDateFor(start time.Time, timeline string) time.Time {
	d, ok := timelineDuration[NormalizeTimeline(timeline)]
	if !ok {
		d = timelineDuration[DefaultTimeline]
	}
	return start.Add(d)
}
