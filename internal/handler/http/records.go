// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wpleonesz/kick-off-v2/internal/service"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
	"github.com/wpleonesz/kick-off-v2/internal/validators"
	"github.com/wpleonesz/kick-off-v2/models"
)

// recordRoutes serves the CRUD endpoints of one entity. newPayload returns
// a pointer the request body is decoded into.
type recordRoutes struct {
	name       string
	service    service.RecordService
	newPayload func() models.Payload
}

func newRecordRoutes(name string, svc service.RecordService, newPayload func() models.Payload) *recordRoutes {
	return &recordRoutes{name: name, service: svc, newPayload: newPayload}
}

// mount registers the collection and item routes under base.
func (rr *recordRoutes) mount(r chi.Router, base string) {
	r.Get(base, rr.list)
	r.Post(base, rr.create)
	r.Get(base+"/{id}", rr.get)
	r.Put(base+"/{id}", rr.update)
	r.Delete(base+"/{id}", rr.deactivate)
}

func (rr *recordRoutes) list(w http.ResponseWriter, r *http.Request) {
	params, err := validators.ParseListParams(r.URL.Query())
	if err != nil {
		writeError(w, r, rr.fn("list"), err)
		return
	}

	result, err := rr.service.List(r.Context(), params)
	if err != nil {
		writeError(w, r, rr.fn("list"), err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (rr *recordRoutes) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, rr.fn("get"), err)
		return
	}

	rec, err := rr.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, rr.fn("get"), err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (rr *recordRoutes) create(w http.ResponseWriter, r *http.Request) {
	payload := rr.newPayload()
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeError(w, r, rr.fn("create"), fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	rec, err := rr.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, r, rr.fn("create"), err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusCreated)
}

func (rr *recordRoutes) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, rr.fn("update"), err)
		return
	}

	payload := rr.newPayload()
	if err = json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeError(w, r, rr.fn("update"), fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	rec, err := rr.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, r, rr.fn("update"), err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

// deactivate answers DELETE. Rows are never removed, only flagged inactive.
func (rr *recordRoutes) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, rr.fn("deactivate"), err)
		return
	}

	rec, err := rr.service.Deactivate(r.Context(), id)
	if err != nil {
		writeError(w, r, rr.fn("deactivate"), err)
		return
	}
	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (rr *recordRoutes) fn(op string) string {
	return rr.name + "." + op
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}
	return id, nil
}
