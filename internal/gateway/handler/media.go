package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"omniportal/internal/gateway/repository/media"
)

// maxMediaBytes caps a single upload at 8 MiB.
const maxMediaBytes = 8 << 20

// mediaPath splits "/api/media/{projectID}/{name...}" into its parts.
func mediaPath(p string) (projectID, name string) {
	rest := strings.Trim(strings.TrimPrefix(p, "/api/media/"), "/")
	projectID, name, _ = strings.Cut(rest, "/")
	return projectID, name
}

type mediaListResponse struct {
	Names []string `json:"names"`
}

func (s *Service) HandleMedia(w http.ResponseWriter, r *http.Request) {
	projectID, name := mediaPath(r.URL.Path)
	if projectID == "" {
		writeError(w, http.StatusBadRequest, "project id is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		if name == "" {
			names, err := s.media.List(r.Context(), projectID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "media list failed")
				return
			}
			writeJSON(w, http.StatusOK, mediaListResponse{Names: names})
			return
		}
		content, err := s.media.Get(r.Context(), projectID, name)
		if errors.Is(err, media.ErrNotFound) {
			writeNotFound(w, "media")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "media fetch failed")
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	case http.MethodPut:
		if name == "" {
			writeError(w, http.StatusBadRequest, "media name is required")
			return
		}
		content, err := io.ReadAll(io.LimitReader(r.Body, maxMediaBytes+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "read body failed")
			return
		}
		if len(content) > maxMediaBytes {
			writeError(w, http.StatusRequestEntityTooLarge, "media too large")
			return
		}
		if err := s.media.Put(r.Context(), projectID, name, content); err != nil {
			writeError(w, http.StatusInternalServerError, "media store failed")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"projectId": projectID, "name": name})
	default:
		methodNotAllowed(w)
	}
}
