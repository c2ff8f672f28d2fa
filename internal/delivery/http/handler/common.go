package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseIDVar reads a numeric path variable set by the router.
func parseIDVar(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseIDQuery reads a numeric query parameter.
func parseIDQuery(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
