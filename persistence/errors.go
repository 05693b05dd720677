package persistence

import (
	"houseprojects/common"
	"net/http"
)

const (
	OpInit  = "init"
	OpRead  = "read"
	OpWrite = "write"
)

// IOError reports a failed read or write of a collection file.
type IOError struct {
	Op         string
	Collection string
	Err        error
}

func (e *IOError) Error() string {
	return "failed to " + e.Op + " collection '" + e.Collection + "': " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Respond() *common.BizErrorDetail {
	message := "could not load " + e.Collection
	if e.Op != OpRead {
		message = "could not save " + e.Collection
	}
	return &common.BizErrorDetail{Status: http.StatusInternalServerError, Code: "common.io_failure", Message: message, Cause: e.Err}
}
