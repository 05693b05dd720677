package person

import (
	"houseprojects/bizerror"
	"houseprojects/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathNames = "/names"
)

func RegisterNamesRestAPI(r gin.IRouter, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathNames, middleWares...)
	g.GET("", handleQueryNames)
	g.POST("", handleCreateName)
	g.DELETE("/:id", handleDeleteName)
}

func handleQueryNames(c *gin.Context) {
	names, err := QueryNamesFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, names)
}

func handleCreateName(c *gin.Context) {
	creation := domain.NameCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	n, err := CreateNameFunc(creation)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, n)
}

func handleDeleteName(c *gin.Context) {
	id := domain.MustParamID(c, "id")
	if err := DeleteNameFunc(id); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, domain.Deleted("Name"))
}
