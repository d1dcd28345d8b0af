// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import "net/http"

// responseWriter records what a handler answered so that the logging and
// metrics middleware can report it once the handler returns. The first
// WriteHeader wins, as with any [http.ResponseWriter].
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool

	// size counts body bytes across every Write.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write sends an implicit 200 first when no status was written.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap exposes the wrapped writer to [http.ResponseController].
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusOrOK returns the recorded status, or 200 when the handler returned
// without writing anything.
func (w *responseWriter) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// rejected reports a 4xx answer: the client asked for something the API
// refuses, such as a missing token or a court that does not exist.
func (w *responseWriter) rejected() bool {
	status := w.statusOrOK()
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

func (w *responseWriter) failed() bool {
	return w.statusOrOK() >= http.StatusInternalServerError
}
