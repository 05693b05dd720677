package event

import (
	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCreated         = EventCategory("CREATED")
	EventCategoryDeleted         = EventCategory("DELETED")
	EventCategoryPropertyUpdated = EventCategory("PROPERTY_UPDATED")

	SourceTypeProject = "PROJECT"
	SourceTypeGroup   = "GROUP"
	SourceTypeName    = "NAME"
)

type EventCategory string

type Event struct {
	SourceId   types.ID `json:"sourceId"`
	SourceType string   `json:"sourceType"`
	SourceDesc string   `json:"sourceDesc"`

	EventCategory     EventCategory     `json:"eventCategory"` // CREATED, DELETED, PROPERTY_UPDATED
	UpdatedProperties UpdatedProperties `json:"updatedProperties"`
}

type EventRecord struct {
	Event

	Timestamp types.Timestamp `json:"timestamp"`
}

type UpdatedProperty struct {
	PropertyName string `json:"propertyName"`
	OldValue     string `json:"oldValue"`
	NewValue     string `json:"newValue"`
}

type UpdatedProperties []UpdatedProperty

// Names lists the property names, in order.
func (p UpdatedProperties) Names() []string {
	names := make([]string, 0, len(p))
	for _, prop := range p {
		names = append(names, prop.PropertyName)
	}
	return names
}
