package project

import (
	"fmt"
	"houseprojects/bizerror"
	"houseprojects/common"
	"houseprojects/domain"
	"houseprojects/event"
	"houseprojects/idgen"
	"houseprojects/persistence"
	"math"
	"strings"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/google/uuid"
)

var (
	QueryProjectsFunc   = QueryProjects
	DetailProjectFunc   = DetailProject
	CreateProjectFunc   = CreateProject
	UpdateProjectFunc   = UpdateProject
	CompleteProjectFunc = CompleteProject
	ReopenProjectFunc   = ReopenProject
	UpdateProgressFunc  = UpdateProgress
	AddNoteFunc         = AddNote
	DeleteProjectFunc   = DeleteProject
)

func QueryProjects() ([]domain.Project, error) {
	projects := []domain.Project{}
	if err := persistence.ActiveFileStore.Load(persistence.CollectionProjects, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func DetailProject(id types.ID) (*domain.Project, error) {
	projects, err := QueryProjects()
	if err != nil {
		return nil, err
	}
	idx := indexOf(projects, id)
	if idx < 0 {
		return nil, bizerror.ErrNotFound
	}
	return &projects[idx], nil
}

func CreateProject(c domain.ProjectCreation) (*domain.Project, error) {
	c.Description = strings.TrimSpace(c.Description)
	c.Group = strings.TrimSpace(c.Group)
	if err := domain.Validate(&c); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	if c.DueDate == nil || c.DueDate.IsZero() {
		return nil, bizerror.BadParam("dueDate is required")
	}

	p := domain.Project{
		ID:          idgen.Next(),
		Description: c.Description,
		Group:       c.Group,
		Subgroup:    domain.OptionalString(c.Subgroup),
		NameID:      c.NameID,
		DueDate:     *c.DueDate,
		DateCreated: types.CurrentTimestamp(),

		Priority:         c.Priority.OrDefault(),
		EstimatedHours:   c.EstimatedHours,
		Budget:           c.Budget,
		Notes:            []domain.Note{},
		Tags:             cleanTags(c.Tags),
		WeatherDependent: c.WeatherDependent,
		Season:           domain.OptionalString(c.Season),
	}

	var projects []domain.Project
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionProjects, &projects, func() error {
		projects = append(projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	event.CreateEvent(event.SourceTypeProject, p.ID, p.Description, event.EventCategoryCreated, nil)
	return &p, nil
}

// UpdateProject merges the supplied fields into the stored project.
// Identity, creation date, completion state and notes are left untouched.
func UpdateProject(id types.ID, u domain.ProjectUpdating) (*domain.Project, error) {
	trimPtr(u.Description)
	trimPtr(u.Group)
	trimPtr(u.Subgroup)
	trimPtr(u.Season)
	if err := domain.Validate(&u); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	if u.Description != nil && *u.Description == "" {
		return nil, bizerror.BadParam("description must not be blank")
	}
	if u.Group != nil && *u.Group == "" {
		return nil, bizerror.BadParam("group must not be blank")
	}
	if u.NameID != nil && *u.NameID == 0 {
		return nil, bizerror.BadParam("nameId must not be blank")
	}
	if u.DueDate != nil && u.DueDate.IsZero() {
		return nil, bizerror.BadParam("dueDate must not be blank")
	}

	var changes event.UpdatedProperties
	updated, err := mutateProject(id, func(p *domain.Project) error {
		changes = mergeUpdating(p, &u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	event.CreateEvent(event.SourceTypeProject, updated.ID, updated.Description, event.EventCategoryPropertyUpdated, changes)
	return updated, nil
}

func CompleteProject(id types.ID) (*domain.Project, error) {
	updated, err := mutateProject(id, func(p *domain.Project) error {
		now := time.Now()
		hours := int(math.Round(now.Sub(p.DateCreated.Time()).Hours()))
		if p.DateCreated.Time().IsZero() {
			hours = 0
		}
		p.Completed = true
		p.CompletedDate = common.TimestampOf(now)
		p.ActualHours = &hours
		return nil
	})
	if err != nil {
		return nil, err
	}
	event.CreateEvent(event.SourceTypeProject, updated.ID, updated.Description, event.EventCategoryPropertyUpdated,
		[]event.UpdatedProperty{{PropertyName: "completed", OldValue: "false", NewValue: "true"}})
	return updated, nil
}

// ReopenProject clears the completion state. actualHours keeps its last value until the next completion.
func ReopenProject(id types.ID) (*domain.Project, error) {
	updated, err := mutateProject(id, func(p *domain.Project) error {
		p.Completed = false
		p.CompletedDate = types.Timestamp{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	event.CreateEvent(event.SourceTypeProject, updated.ID, updated.Description, event.EventCategoryPropertyUpdated,
		[]event.UpdatedProperty{{PropertyName: "completed", OldValue: "true", NewValue: "false"}})
	return updated, nil
}

func UpdateProgress(id types.ID, u domain.ProgressUpdating) (*domain.Project, error) {
	if err := domain.Validate(&u); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	var old int
	updated, err := mutateProject(id, func(p *domain.Project) error {
		old = p.ProgressPercent
		p.ProgressPercent = domain.ClampProgress(*u.ProgressPercent)
		return nil
	})
	if err != nil {
		return nil, err
	}
	event.CreateEvent(event.SourceTypeProject, updated.ID, updated.Description, event.EventCategoryPropertyUpdated,
		[]event.UpdatedProperty{{PropertyName: "progressPercent",
			OldValue: fmt.Sprint(old), NewValue: fmt.Sprint(updated.ProgressPercent)}})
	return updated, nil
}

// AddNote appends a note. Note timestamps strictly increase within one project.
func AddNote(id types.ID, n domain.NoteCreation) (*domain.Project, error) {
	n.Text = strings.TrimSpace(n.Text)
	n.Author = strings.TrimSpace(n.Author)
	if err := domain.Validate(&n); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	if n.Author == "" {
		n.Author = domain.DefaultNoteAuthor
	}

	updated, err := mutateProject(id, func(p *domain.Project) error {
		now := time.Now()
		if len(p.Notes) > 0 {
			last := p.Notes[len(p.Notes)-1].Timestamp.Time()
			if !now.After(last) {
				now = last.Add(time.Microsecond)
			}
		}
		p.Notes = append(p.Notes, domain.Note{
			ID:        uuid.New().String(),
			Text:      n.Text,
			Author:    n.Author,
			Timestamp: common.TimestampOf(now),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	event.CreateEvent(event.SourceTypeProject, updated.ID, updated.Description, event.EventCategoryPropertyUpdated,
		[]event.UpdatedProperty{{PropertyName: "notes", NewValue: n.Text}})
	return updated, nil
}

func DeleteProject(id types.ID) error {
	var projects []domain.Project
	var removed domain.Project
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionProjects, &projects, func() error {
		idx := indexOf(projects, id)
		if idx < 0 {
			return bizerror.ErrNotFound
		}
		removed = projects[idx]
		projects = append(projects[:idx], projects[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	event.CreateEvent(event.SourceTypeProject, removed.ID, removed.Description, event.EventCategoryDeleted, nil)
	return nil
}

func mutateProject(id types.ID, fn func(p *domain.Project) error) (*domain.Project, error) {
	var projects []domain.Project
	var updated domain.Project
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionProjects, &projects, func() error {
		idx := indexOf(projects, id)
		if idx < 0 {
			return bizerror.ErrNotFound
		}
		if err := fn(&projects[idx]); err != nil {
			return err
		}
		updated = projects[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func indexOf(projects []domain.Project, id types.ID) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}
