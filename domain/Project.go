package domain

import (
	"github.com/fundwit/go-commons/types"
)

type Priority string

const (
	PriorityHigh   = Priority("high")
	PriorityMedium = Priority("medium")
	PriorityLow    = Priority("low")

	DefaultNoteAuthor = "Admin"
)

// Rank orders priorities for display, high first. Unknown values rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// OrDefault maps the empty priority of legacy records to medium.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

type Project struct {
	ID types.ID `json:"id"`

	Description string   `json:"description"`
	Group       string   `json:"group"`
	Subgroup    *string  `json:"subgroup"`
	NameID      types.ID `json:"nameId"`
	DueDate     Date     `json:"dueDate"`

	DateCreated   types.Timestamp `json:"dateCreated"`
	Completed     bool            `json:"completed"`
	CompletedDate types.Timestamp `json:"completedDate"`

	Priority        Priority `json:"priority"`
	ProgressPercent int      `json:"progressPercent"`
	EstimatedHours  *float64 `json:"estimatedHours"`
	ActualHours     *int     `json:"actualHours"`
	Budget          *float64 `json:"budget"`

	Notes            []Note   `json:"notes"`
	Tags             []string `json:"tags"`
	WeatherDependent bool     `json:"weatherDependent"`
	Season           *string  `json:"season"`
}

type Note struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	Author    string          `json:"author"`
	Timestamp types.Timestamp `json:"timestamp"`
}

type ProjectCreation struct {
	Description string   `json:"description" binding:"required,lte=1024"`
	Group       string   `json:"group" binding:"required,lte=255"`
	Subgroup    string   `json:"subgroup" binding:"lte=255"`
	NameID      types.ID `json:"nameId" binding:"required"`
	DueDate     *Date    `json:"dueDate" binding:"required"`

	Priority         Priority `json:"priority" binding:"omitempty,oneof=high medium low"`
	EstimatedHours   *float64 `json:"estimatedHours" binding:"omitempty,gte=0"`
	Budget           *float64 `json:"budget" binding:"omitempty,gte=0"`
	Tags             []string `json:"tags"`
	WeatherDependent bool     `json:"weatherDependent"`
	Season           string   `json:"season" binding:"lte=64"`
}

// ProjectUpdating merges into an existing project: nil fields keep the stored value.
type ProjectUpdating struct {
	Description *string   `json:"description" binding:"omitempty,lte=1024"`
	Group       *string   `json:"group" binding:"omitempty,lte=255"`
	Subgroup    *string   `json:"subgroup" binding:"omitempty,lte=255"`
	NameID      *types.ID `json:"nameId"`
	DueDate     *Date     `json:"dueDate"`

	Priority         *Priority `json:"priority" binding:"omitempty,oneof=high medium low"`
	ProgressPercent  *int      `json:"progressPercent"`
	EstimatedHours   *float64  `json:"estimatedHours" binding:"omitempty,gte=0"`
	Budget           *float64  `json:"budget" binding:"omitempty,gte=0"`
	Tags             []string  `json:"tags"`
	WeatherDependent *bool     `json:"weatherDependent"`
	Season           *string   `json:"season" binding:"omitempty,lte=64"`
}

type ProgressUpdating struct {
	ProgressPercent *int `json:"progressPercent" binding:"required"`
}

type NoteCreation struct {
	Text   string `json:"text" binding:"required,lte=4096"`
	Author string `json:"author" binding:"lte=255"`
}

// ClampProgress bounds a progress value to [0, 100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// GroupDisplay renders "group / subgroup", or just the group.
func (p *Project) GroupDisplay() string {
	if p.Subgroup != nil && *p.Subgroup != "" {
		return p.Group + " / " + *p.Subgroup
	}
	return p.Group
}
