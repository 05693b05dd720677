package event

import (
	"github.com/fundwit/go-commons/types"
)

// CreateEvent stamps a change and hands it to the registered handlers.
func CreateEvent(sourceType string, sourceId types.ID, sourceDesc string, category EventCategory,
	updatedProperties []UpdatedProperty) *EventRecord {

	record := EventRecord{
		Event: Event{
			SourceType: sourceType,
			SourceId:   sourceId,
			SourceDesc: sourceDesc,

			EventCategory:     category,
			UpdatedProperties: updatedProperties,
		},
		Timestamp: types.CurrentTimestamp(),
	}
	InvokeHandlersFunc(&record)
	return &record
}
