package domain

import (
	"houseprojects/bizerror"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// MustParamID reads an id path parameter, panicking with ErrBadParam on malformed input.
func MustParamID(c *gin.Context, param string) types.ID {
	id, err := types.ParseID(c.Param(param))
	if err != nil {
		panic(bizerror.BadParam("invalid id '" + c.Param(param) + "'"))
	}
	return id
}

// DeletedMessage is the body answered on successful deletion.
type DeletedMessage struct {
	Message string `json:"message"`
}

func Deleted(kind string) *DeletedMessage {
	return &DeletedMessage{Message: kind + " deleted successfully."}
}
