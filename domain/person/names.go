package person

import (
	"houseprojects/bizerror"
	"houseprojects/domain"
	"houseprojects/event"
	"houseprojects/idgen"
	"houseprojects/persistence"
	"strings"

	"github.com/fundwit/go-commons/types"
)

var (
	QueryNamesFunc = QueryNames
	CreateNameFunc = CreateName
	DeleteNameFunc = DeleteName
)

func QueryNames() ([]domain.Name, error) {
	names := []domain.Name{}
	if err := persistence.ActiveFileStore.Load(persistence.CollectionNames, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func CreateName(c domain.NameCreation) (*domain.Name, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := domain.Validate(&c); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}

	n := domain.Name{ID: idgen.Next(), Name: c.Name, DateCreated: types.CurrentTimestamp()}
	var names []domain.Name
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionNames, &names, func() error {
		names = append(names, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	event.CreateEvent(event.SourceTypeName, n.ID, n.Name, event.EventCategoryCreated, nil)
	return &n, nil
}

// DeleteName removes the person. Projects assigned to it keep the dangling id.
func DeleteName(id types.ID) error {
	var names []domain.Name
	var removed domain.Name
	err := persistence.ActiveFileStore.Mutate(persistence.CollectionNames, &names, func() error {
		for i := range names {
			if names[i].ID == id {
				removed = names[i]
				names = append(names[:i], names[i+1:]...)
				return nil
			}
		}
		return bizerror.ErrNotFound
	})
	if err != nil {
		return err
	}
	event.CreateEvent(event.SourceTypeName, removed.ID, removed.Name, event.EventCategoryDeleted, nil)
	return nil
}
