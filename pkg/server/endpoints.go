package server

import (
	stderrors "errors"
	"net/http"

	"github.com/funcx-faas/fx-deploy/pkg/errors"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/deployer"
	"github.com/funcx-faas/fx-deploy/pkg/serializer"
)

// handleEndpoints handles GET /v1/endpoints
func (s *Server) handleEndpoints(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.statuses.StatusAll(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"failed to list endpoints", true, nil)
		return
	}
	if statuses == nil {
		statuses = []*deployer.Status{}
	}

	serializer.RespondJSON(w, http.StatusOK, statuses)
}

// handleEndpoint handles GET /v1/endpoints/{release}
func (s *Server) handleEndpoint(w http.ResponseWriter, r *http.Request) {
	release := r.PathValue("release")
	if release == "" {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"release name is required", false, nil)
		return
	}

	status, err := s.statuses.Status(r.Context(), release)
	if err != nil {
		var serr *errors.StructuredError
		if stderrors.As(err, &serr) && serr.Code == errors.ErrCodeNotFound {
			WriteError(w, r, http.StatusNotFound, ErrCodeNotFound,
				"endpoint not found", false, map[string]any{"release": release})
			return
		}
		WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"failed to get endpoint status", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, status)
}
