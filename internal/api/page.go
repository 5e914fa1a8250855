package api

import (
	_ "embed"
	"net/http"
)

//go:embed form.html
var formPage []byte

// FormPage serves the dossier form with its two display regions.
func FormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(formPage)
	}
}
