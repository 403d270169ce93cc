package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeValidationError(w http.ResponseWriter, issues []ValidationIssue) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string][]ValidationIssue{"detail": issues})
}

// ServerError logs err with a stack trace and answers with a bare 500.
func ServerError(w http.ResponseWriter, errorLog *log.Logger, err error) {
	if errorLog != nil {
		trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
		_ = errorLog.Output(2, trace)
	}
	writeDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
