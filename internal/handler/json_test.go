// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// assertJSONResponse validates common JSON response properties.
func assertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantSuccess bool) map[string]any {
	t.Helper()

	if w.Code != wantStatus {
		t.Errorf("status code = %d, want %d", w.Code, wantStatus)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if success, ok := resp["success"].(bool); !ok || success != wantSuccess {
		t.Errorf("success = %v, want %v", resp["success"], wantSuccess)
	}

	return resp
}

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"bad request", http.StatusBadRequest, "Invalid input"},
		{"not found", http.StatusNotFound, "Page not found"},
		{"internal error", http.StatusInternalServerError, "Something went wrong"},
		{"empty message", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSONError(w, tt.statusCode, tt.message)

			resp := assertJSONResponse(t, w, tt.statusCode, false)
			if errMsg, ok := resp["error"].(string); !ok || errMsg != tt.message {
				t.Errorf("error = %q, want %q", resp["error"], tt.message)
			}
		})
	}
}

func TestWriteJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONSuccess(w, map[string]any{"count": 2})

	resp := assertJSONResponse(t, w, http.StatusOK, true)
	if resp["count"] != float64(2) {
		t.Errorf("count = %v, want 2", resp["count"])
	}

	w = httptest.NewRecorder()
	writeJSONSuccess(w, nil)
	assertJSONResponse(t, w, http.StatusOK, true)
}

func TestWriteJSONData(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONData(w, []string{"a", "b"})

	resp := assertJSONResponse(t, w, http.StatusOK, true)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Errorf("data = %v, want two items", resp["data"])
	}
}
