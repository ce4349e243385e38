// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package zi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qiminglab/mingyuan/internal/platform/apperr"
	requestutil "github.com/qiminglab/mingyuan/internal/platform/request"
	"github.com/qiminglab/mingyuan/internal/platform/respond"
	"github.com/qiminglab/mingyuan/pkg/pagination"
	"github.com/qiminglab/mingyuan/pkg/query"
)

// Handler exposes the character info and list endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs the character HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /zi route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/info", handler.info)
	router.Get("/list", handler.list)
	return router
}

// info handles GET /zi/info.
//
// Accepts either a single ?character= glyph (single record, 404 on miss) or
// a comma-separated ?characters= batch (glyph-keyed mapping, misses absent).
func (handler *Handler) info(writer http.ResponseWriter, request *http.Request) {
	batch := requestutil.Query(request, "characters")
	single := requestutil.Query(request, "character")

	switch {
	case batch != "":
		infos, err := handler.service.GetInfo(request.Context(), query.StringSlice(batch))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, infos)

	case single != "":
		info, err := handler.service.GetOne(request.Context(), single)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, info)

	default:
		respond.Error(writer, request, apperr.ValidationError(
			"A character or characters parameter is required",
			apperr.FieldError{Field: "characters", Message: "This field is required"},
		))
	}
}

// list handles GET /zi/list.
//
// Query parameters: page, pageSize (default 100), gender (all/male/female,
// default all).
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, pagination.DefaultZiPageSize)
	gender := requestutil.QueryDefault(request, "gender", GenderAll)

	page, err := handler.service.List(request.Context(), gender, params.Page, params.PageSize)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}
