package bizerror

import (
	"errors"
	"houseprojects/common"
	"net/http"
)

var ErrNotFound = errors.New("not found")

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *common.BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &common.BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// BadParam wraps a plain message as ErrBadParam.
func BadParam(message string) *ErrBadParam {
	return &ErrBadParam{Cause: errors.New(message)}
}
