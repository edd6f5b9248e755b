// Package handler implements the REST endpoints of the clinic API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/model"
)

const maxBodySize = 1 << 20

// decodeStrict decodes a JSON body and rejects unknown fields.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		if errors.Is(err, io.EOF) {
			return response.BadRequest("request body is empty")
		}
		return response.BadRequest("malformed JSON body: " + err.Error())
	}
	if dec.More() {
		return response.BadRequest("request body must contain a single JSON object")
	}
	return nil
}

// pathID parses the positive integer {id} path parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.BadRequest("id must be a positive integer")
	}
	return id, nil
}

// pageFromQuery reads limit and offset. Missing values take the defaults;
// bounds are checked by the services.
func pageFromQuery(r *http.Request) (model.Page, error) {
	page := model.Page{Limit: model.DefaultPageLimit}

	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return model.Page{}, response.BadRequest("limit must be an integer")
		}
		page.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return model.Page{}, response.BadRequest("offset must be an integer")
		}
		page.Offset = offset
	}
	return page, nil
}

// int64Query reads an optional integer query parameter.
func int64Query(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, response.BadRequest(name + " must be an integer")
	}
	return &v, nil
}
