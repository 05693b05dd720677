package event

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

/*
return nil if not support
*/
type EventHandler func(e *EventRecord) *EventHandleResult

type EventHandleResult struct {
	Success           bool
	Message           string
	HandlerIdentifier string
}

var EventHandlers []EventHandler

var InvokeHandlersFunc = invokeHandlers

func invokeHandlers(record *EventRecord) []EventHandleResult {
	results := []EventHandleResult{}
	for _, handler := range EventHandlers {
		logrus.Debug("pre handle event ", record.Event)
		r := safeHandle(handler, record)

		if r == nil {
			continue
		}

		results = append(results, *r)

		if r.Success {
			logrus.Info("post handle event. ", r)
		} else {
			logrus.Error("post handler error. ", r)
		}
	}
	return results
}

// a panicking handler must not break the mutation that raised the event
func safeHandle(handler EventHandler, record *EventRecord) (r *EventHandleResult) {
	defer func() {
		if p := recover(); p != nil {
			r = &EventHandleResult{Success: false, Message: fmt.Sprint(p), HandlerIdentifier: "unknown"}
		}
	}()
	return handler(record)
}
