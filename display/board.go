package display

import (
	"houseprojects/domain"
	"math"
	"sort"
	"time"

	"github.com/fundwit/go-commons/types"
)

type Urgency string

const (
	UrgencyOverdue = Urgency("overdue")
	UrgencyDueSoon = Urgency("due-soon")
	UrgencyOnTrack = Urgency("on-track")
)

type Timeliness string

const (
	TimelinessEarly  = Timeliness("early")
	TimelinessOnTime = Timeliness("on-time")
	TimelinessLate   = Timeliness("late")
)

type ActiveRow struct {
	ID              types.ID        `json:"id"`
	Description     string          `json:"description"`
	Group           string          `json:"group"`
	Assignee        string          `json:"assignee"`
	DueDate         domain.Date     `json:"dueDate"`
	DaysRemaining   int             `json:"daysRemaining"`
	Urgency         Urgency         `json:"urgency"`
	Priority        domain.Priority `json:"priority"`
	ProgressPercent int             `json:"progressPercent"`
}

type CompletedRow struct {
	ID             types.ID        `json:"id"`
	Description    string          `json:"description"`
	Group          string          `json:"group"`
	Assignee       string          `json:"assignee"`
	DueDate        domain.Date     `json:"dueDate"`
	CompletedDate  types.Timestamp `json:"completedDate"`
	DaysToComplete int             `json:"daysToComplete"`
	Timeliness     Timeliness      `json:"timeliness"`
}

type Board struct {
	Active    []ActiveRow    `json:"active"`
	Completed []CompletedRow `json:"completed"`
}

// BuildBoard derives the display rows. Active rows are ordered by days remaining, priority, group and
// description; completed rows by completion time, newest first.
func BuildBoard(projects []domain.Project, names []domain.Name, now time.Time) Board {
	today := domain.DateOfTime(now)
	board := Board{Active: []ActiveRow{}, Completed: []CompletedRow{}}

	for i := range projects {
		p := &projects[i]
		if p.Completed {
			board.Completed = append(board.Completed, completedRow(p, names, now.Location()))
			continue
		}
		days := p.DueDate.DaysSince(today)
		board.Active = append(board.Active, ActiveRow{
			ID:              p.ID,
			Description:     p.Description,
			Group:           p.GroupDisplay(),
			Assignee:        domain.LookupName(names, p.NameID),
			DueDate:         p.DueDate,
			DaysRemaining:   days,
			Urgency:         UrgencyOf(days),
			Priority:        p.Priority.OrDefault(),
			ProgressPercent: p.ProgressPercent,
		})
	}

	sort.SliceStable(board.Active, func(i, j int) bool {
		a, b := &board.Active[i], &board.Active[j]
		if a.DaysRemaining != b.DaysRemaining {
			return a.DaysRemaining < b.DaysRemaining
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Description < b.Description
	})
	sort.SliceStable(board.Completed, func(i, j int) bool {
		return board.Completed[i].CompletedDate.Time().After(board.Completed[j].CompletedDate.Time())
	})
	return board
}

// UrgencyOf classifies by calendar days remaining: negative is overdue, zero is due today.
func UrgencyOf(daysRemaining int) Urgency {
	switch {
	case daysRemaining < 0:
		return UrgencyOverdue
	case daysRemaining == 0:
		return UrgencyDueSoon
	default:
		return UrgencyOnTrack
	}
}

func completedRow(p *domain.Project, names []domain.Name, loc *time.Location) CompletedRow {
	row := CompletedRow{
		ID:            p.ID,
		Description:   p.Description,
		Group:         p.GroupDisplay(),
		Assignee:      domain.LookupName(names, p.NameID),
		DueDate:       p.DueDate,
		CompletedDate: p.CompletedDate,
		Timeliness:    TimelinessOnTime,
	}
	completedAt, createdAt := p.CompletedDate.Time(), p.DateCreated.Time()
	if !completedAt.IsZero() && !createdAt.IsZero() {
		row.DaysToComplete = int(math.Ceil(completedAt.Sub(createdAt).Hours() / 24))
	}
	if !completedAt.IsZero() && !p.DueDate.IsZero() {
		completedDay := domain.DateOfTime(completedAt.In(loc))
		switch {
		case completedDay.Before(p.DueDate):
			row.Timeliness = TimelinessEarly
		case completedDay.After(p.DueDate):
			row.Timeliness = TimelinessLate
		}
	}
	return row
}
