// ABOUTME: Embedded single-page chat form served at the root route
package server

import (
	"embed"
	"net/http"
)

//go:embed web/index.html
var pageFS embed.FS

func handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := pageFS.ReadFile("web/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
