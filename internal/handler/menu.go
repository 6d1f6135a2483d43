package handler

import (
	"net/http"

	"heladeria/internal/service"
)

func MenuHandler(menuSvc *service.MenuService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, menuSvc.Items())
	}
}
