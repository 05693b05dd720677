package domain

import (
	"github.com/fundwit/go-commons/types"
)

type Group struct {
	ID          types.ID        `json:"id"`
	Name        string          `json:"name"`
	Subgroups   []Subgroup      `json:"subgroups"`
	Color       *string         `json:"color"`
	Description *string         `json:"description"`
	DateCreated types.Timestamp `json:"dateCreated"`
}

type Subgroup struct {
	ID          types.ID `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
}

type GroupCreation struct {
	Name        string `json:"name" binding:"required,lte=255"`
	Color       string `json:"color" binding:"lte=32"`
	Description string `json:"description" binding:"lte=1024"`
}

type GroupUpdating struct {
	Name        *string `json:"name" binding:"omitempty,lte=255"`
	Color       *string `json:"color" binding:"omitempty,lte=32"`
	Description *string `json:"description" binding:"omitempty,lte=1024"`
}

type SubgroupCreation struct {
	Name        string `json:"name" binding:"required,lte=255"`
	Description string `json:"description" binding:"lte=1024"`
}
