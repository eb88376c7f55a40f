package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/devisqa/internal/agent"
	"github.com/dgallion1/devisqa/internal/gemini"
)

// analysisParams are the per-request pipeline settings, defaulted from the
// server config.
type analysisParams struct {
	Question  string
	Section   string
	TopK      int
	ChunkSize int
	Overlap   int
	Model     string
}

func (s *Server) handleAnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	answers, _, err := s.runAnalysis(w, r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"answers": answers})
}

func (s *Server) handleAnalyzePage(w http.ResponseWriter, r *http.Request) {
	answers, params, err := s.runAnalysis(w, r)
	if err != nil {
		s.renderPage(w, pageData{Error: err.Error(), Form: params}, http.StatusInternalServerError)
		return
	}
	s.renderPage(w, pageData{Answers: answers, Form: params}, http.StatusOK)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, pageData{Form: s.defaultParams()}, http.StatusOK)
}

// runAnalysis parses the multipart form, saves the upload to a temp file
// and runs the agent over it.
func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request) ([]agent.Answer, analysisParams, error) {
	params := s.defaultParams()

	// Limit total request size, with headroom for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, params, fmt.Errorf("invalid multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	params = s.parseParams(r)
	if params.Question == "" {
		return nil, params, fmt.Errorf("question is required")
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		return nil, params, fmt.Errorf("pdf file is required: %w", err)
	}
	defer file.Close()

	pdfPath, err := s.saveUpload(file, header.Filename)
	if err != nil {
		return nil, params, err
	}
	defer os.Remove(pdfPath)

	gen, err := gemini.New(r.Context(), s.cfg.GeminiAPIKey, params.Model)
	if err != nil {
		return nil, params, err
	}
	if closer, ok := gen.(io.Closer); ok {
		defer closer.Close()
	}

	ag, err := agent.FromPDF(pdfPath, agent.Options{
		Section:   params.Section,
		ChunkSize: params.ChunkSize,
		Overlap:   params.Overlap,
		Generator: gen,
	})
	if err != nil {
		return nil, params, err
	}

	answers, err := ag.Answer(r.Context(), params.Question, params.TopK, "")
	if err != nil {
		return nil, params, err
	}
	return answers, params, nil
}

func (s *Server) defaultParams() analysisParams {
	return analysisParams{
		TopK:      s.cfg.DefaultTopK,
		ChunkSize: s.cfg.DefaultChunkSize,
		Overlap:   s.cfg.DefaultChunkOverlap,
		Model:     s.cfg.GeminiModel,
	}
}

func (s *Server) parseParams(r *http.Request) analysisParams {
	p := s.defaultParams()
	p.Question = strings.TrimSpace(r.FormValue("question"))
	p.Section = strings.TrimSpace(r.FormValue("section"))
	if v := r.FormValue("top_k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.TopK = n
		}
	}
	if v := r.FormValue("chunk_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.ChunkSize = n
		}
	}
	if v := r.FormValue("overlap"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Overlap = n
		}
	}
	if v := strings.TrimSpace(r.FormValue("model")); v != "" {
		p.Model = v
	}
	return p
}

// saveUpload writes the upload to a temp file; ledongthuc/pdf needs a
// seekable file with a known size.
func (s *Server) saveUpload(file multipart.File, filename string) (string, error) {
	suffix := filepath.Ext(filepath.Base(filename))
	if suffix == "" {
		suffix = ".pdf"
	}
	tmp, err := os.CreateTemp("", "devisqa-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, io.LimitReader(file, s.cfg.MaxUploadBytes+1)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if info, err := os.Stat(tmp.Name()); err == nil && info.Size() > s.cfg.MaxUploadBytes {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}
	return tmp.Name(), nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
