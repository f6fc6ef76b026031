package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefassist/kitchen-backend/utils"
)

// Every handler group exposes one endpoint and routes on the "action"
// query parameter plus the HTTP method. The mapping lives in an explicit
// table per controller rather than an if/else chain.
type route struct {
	Method string
	Action string
}

// Fixed messages for client errors. Capitalization matches what the
// frontend string-compares against.
var (
	ErrInvalidAction     = errors.New("Invalid action")
	ErrUnknownAction     = errors.New("Unknown action")
	ErrMissingFields     = errors.New("Missing required fields")
	ErrMissingRestaurant = errors.New("Missing restaurantId")
)

func dispatch(table map[route]gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		h, ok := table[route{Method: c.Request.Method, Action: c.Query("action")}]
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, ErrInvalidAction)
			return
		}
		h(c)
	}
}
