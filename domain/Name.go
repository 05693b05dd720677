package domain

import (
	"github.com/fundwit/go-commons/types"
)

// Name is a person projects can be assigned to.
type Name struct {
	ID          types.ID        `json:"id"`
	Name        string          `json:"name"`
	DateCreated types.Timestamp `json:"dateCreated"`
}

type NameCreation struct {
	Name string `json:"name" binding:"required,lte=255"`
}

const UnknownName = "N/A"

// LookupName resolves id against names, falling back to UnknownName for dangling references.
func LookupName(names []Name, id types.ID) string {
	for _, n := range names {
		if n.ID == id {
			return n.Name
		}
	}
	return UnknownName
}
