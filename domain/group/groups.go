package group

import (
	"houseprojects/bizerror"
	"houseprojects/domain"
	"houseprojects/event"
	"houseprojects/idgen"
	"houseprojects/persistence"
	"strings"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
)

var (
	QueryGroupsFunc    = QueryGroups
	CreateGroupFunc    = CreateGroup
	UpdateGroupFunc    = UpdateGroup
	DeleteGroupFunc    = DeleteGroup
	AddSubgroupFunc    = AddSubgroup
	DeleteSubgroupFunc = DeleteSubgroup
)

func QueryGroups() ([]domain.Group, error) {
	groups := []domain.Group{}
	if err := persistence.ActiveFileStore.Load(persistence.CollectionGroups, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func CreateGroup(c domain.GroupCreation) (*domain.Group, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := domain.Validate(&c); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}

	g := domain.Group{
		ID:          idgen.Next(),
		Name:        c.Name,
		Subgroups:   []domain.Subgroup{},
		Color:       domain.OptionalString(c.Color),
		Description: domain.OptionalString(c.Description),
		DateCreated: types.CurrentTimestamp(),
	}
	var groups []domain.Group
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionGroups, &groups, func() error {
		groups = append(groups, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGroup changes name, color or description. A new name is copied onto every project
// that carried the old one; the groups file is written before the projects file.
func UpdateGroup(id types.ID, u domain.GroupUpdating) (*domain.Group, error) {
	if u.Name != nil {
		*u.Name = strings.TrimSpace(*u.Name)
		if *u.Name == "" {
			return nil, bizerror.BadParam("name must not be blank")
		}
	}
	if err := domain.Validate(&u); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}

	var oldName string
	updated, err := mutateGroup(id, func(g *domain.Group) error {
		oldName = g.Name
		if u.Name != nil {
			g.Name = *u.Name
		}
		if u.Color != nil {
			g.Color = domain.OptionalString(*u.Color)
		}
		if u.Description != nil {
			g.Description = domain.OptionalString(*u.Description)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Name != oldName {
		count, err := renameProjectsGroup(oldName, updated.Name)
		if err != nil {
			logrus.WithField("groupId", id).Warnf("group renamed from '%s' to '%s' but projects were not updated: %v",
				oldName, updated.Name, err)
			return nil, err
		}
		logrus.WithField("groupId", id).Infof("group renamed from '%s' to '%s', %d projects updated", oldName, updated.Name, count)
		event.CreateEvent(event.SourceTypeGroup, updated.ID, updated.Name, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "name", OldValue: oldName, NewValue: updated.Name}})
	}
	return updated, nil
}

func renameProjectsGroup(oldName, newName string) (int, error) {
	var projects []domain.Project
	count := 0
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionProjects, &projects, func() error {
		for i := range projects {
			if projects[i].Group == oldName {
				projects[i].Group = newName
				count++
			}
		}
		return nil
	})
	return count, err
}

// DeleteGroup removes the group only; projects keep the group name they carry.
func DeleteGroup(id types.ID) error {
	var groups []domain.Group
	return persistence.ActiveFileStore.Mutate(persistence.CollectionGroups, &groups, func() error {
		idx := indexOf(groups, id)
		if idx < 0 {
			return bizerror.ErrNotFound
		}
		groups = append(groups[:idx], groups[idx+1:]...)
		return nil
	})
}

func AddSubgroup(groupId types.ID, c domain.SubgroupCreation) (*domain.Group, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := domain.Validate(&c); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	return mutateGroup(groupId, func(g *domain.Group) error {
		g.Subgroups = append(g.Subgroups, domain.Subgroup{
			ID:          idgen.Next(),
			Name:        c.Name,
			Description: domain.OptionalString(c.Description),
		})
		return nil
	})
}

func DeleteSubgroup(groupId, subgroupId types.ID) (*domain.Group, error) {
	return mutateGroup(groupId, func(g *domain.Group) error {
		for i := range g.Subgroups {
			if g.Subgroups[i].ID == subgroupId {
				g.Subgroups = append(g.Subgroups[:i], g.Subgroups[i+1:]...)
				return nil
			}
		}
		return bizerror.ErrNotFound
	})
}

func mutateGroup(id types.ID, fn func(g *domain.Group) error) (*domain.Group, error) {
	var groups []domain.Group
	var updated domain.Group
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionGroups, &groups, func() error {
		idx := indexOf(groups, id)
		if idx < 0 {
			return bizerror.ErrNotFound
		}
		if groups[idx].Subgroups == nil {
			groups[idx].Subgroups = []domain.Subgroup{}
		}
		if err := fn(&groups[idx]); err != nil {
			return err
		}
		updated = groups[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func indexOf(groups []domain.Group, id types.ID) int {
	for i := range groups {
		if groups[i].ID == id {
			return i
		}
	}
	return -1
}
