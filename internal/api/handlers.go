package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dgallion1/docsift/internal/extract"
	"github.com/dgallion1/docsift/internal/pipeline"
	"github.com/dgallion1/docsift/internal/query"
)

// handleOutline infers the title and heading outline for one uploaded
// document.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !extract.IsSupportedExtension(header.Filename) {
		s.writeError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("unsupported file type: %s", header.Filename))
		return
	}

	tmpDir, err := os.MkdirTemp("", "docsift-outline-*")
	if err != nil {
		s.log.Error("temp dir failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer os.RemoveAll(tmpDir)

	path, err := saveUpload(file, header.Filename, tmpDir)
	if err != nil {
		s.log.Error("save upload failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	result, err := s.pipe.Outline(path)
	if err != nil {
		s.log.Error("outline failed", "document", header.Filename, "error", err)
		s.writeError(w, http.StatusUnprocessableEntity, "document could not be processed")
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleRank runs the persona-ranking pipeline over an uploaded corpus.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	uploads := r.MultipartForm.File["documents"]
	if len(uploads) == 0 {
		s.writeError(w, http.StatusBadRequest, "no documents uploaded")
		return
	}

	pc := query.PersonaConfig{
		Persona: r.FormValue("persona"),
		Job:     r.FormValue("job"),
	}
	if pc.Persona == "" {
		pc.Persona = query.DefaultPersona
	}
	if pc.Job == "" {
		pc.Job = query.DefaultJob
	}

	tmpDir, err := os.MkdirTemp("", "docsift-rank-*")
	if err != nil {
		s.log.Error("temp dir failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer os.RemoveAll(tmpDir)

	var files []string
	for _, h := range uploads {
		if !extract.IsSupportedExtension(h.Filename) {
			s.writeError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("unsupported file type: %s", h.Filename))
			return
		}
		f, err := h.Open()
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unreadable upload: %s", h.Filename))
			return
		}
		path, err := saveUpload(f, h.Filename, tmpDir)
		f.Close()
		if err != nil {
			s.log.Error("save upload failed", "error", err)
			s.writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		files = append(files, path)
	}

	result, err := s.pipe.Rank(r.Context(), pc, files)
	switch {
	case errors.Is(err, pipeline.ErrNoRelevantSections):
		s.writeError(w, http.StatusUnprocessableEntity, pipeline.ErrNoRelevantSections.Error())
		return
	case errors.Is(err, pipeline.ErrNoInput):
		s.writeError(w, http.StatusBadRequest, pipeline.ErrNoInput.Error())
		return
	case err != nil:
		s.log.Error("rank failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("X-Run-ID", result.RunID)
	s.writeJSON(w, http.StatusOK, result)
}

// saveUpload writes an uploaded file into dir keeping its base name, so
// filename-based heuristics see the original name.
func saveUpload(src io.Reader, filename, dir string) (string, error) {
	path := filepath.Join(dir, filepath.Base(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
