// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package name

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/qiminglab/mingyuan/internal/platform/request"
	"github.com/qiminglab/mingyuan/internal/platform/respond"
	"github.com/qiminglab/mingyuan/pkg/pagination"
)

// Handler exposes the name search and detail endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs the name HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /names route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/search", handler.search)
	router.Get("/detail", handler.detail)
	return router
}

// searchEnvelope is the response shape for /names/search.
//
// Page and PageSize are always echoed; Seed only in seeded mode.
type searchEnvelope struct {
	Success  bool      `json:"success"`
	Data     []*Result `json:"data"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Seed     string    `json:"seed,omitempty"`
}

// search handles GET /names/search.
//
// Query parameters: lastName (display-only), gender, containChar, page,
// pageSize, seed, mode. A non-empty seed — or mode=seeded — selects the
// deterministic pagination mode; the default is a uniform random sample.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, pagination.DefaultNamePageSize)

	searchRequest := SearchRequest{
		Surname: requestutil.Query(request, "lastName"),
		Filter: Filter{
			Gender:      requestutil.Query(request, "gender"),
			ContainChar: requestutil.Query(request, "containChar"),
		},
		Seed:     requestutil.Query(request, "seed"),
		Seeded:   requestutil.Query(request, "mode") == "seeded",
		Page:     params.Page,
		PageSize: params.PageSize,
	}

	result, err := handler.service.Search(request.Context(), searchRequest)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, searchEnvelope{
		Success:  true,
		Data:     result.Items,
		Page:     params.Page,
		PageSize: params.PageSize,
		Seed:     result.Seed,
	})
}

// detail handles GET /names/detail.
//
// The surname parameter is accepted for context but never used in the
// lookup; matching is purely on the given-name field.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	rawName := requestutil.Query(request, "name")

	detail, err := handler.service.Detail(request.Context(), rawName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}
