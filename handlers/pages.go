package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"cinescope/models"
	metadatapkg "cinescope/services/metadata"
)

//go:embed page_templates/*
var pageTemplates embed.FS

const releasedStatus = "Released"

// PagesHandler renders the browsing UI.
type PagesHandler struct {
	Service movieService

	homeTemplate     *template.Template
	genreTemplate    *template.Template
	movieTemplate    *template.Template
	notFoundTemplate *template.Template
}

// PageData is what every page template receives.
type PageData struct {
	Title       string
	CurrentPath string
	Genres      []models.GenreEntry
	FixtureMode bool

	Hero   *models.MovieBanner
	Feed   *metadatapkg.HomeFeed
	Genre  *models.GenreEntry
	Movies []models.MovieBase
	Detail *metadatapkg.MovieDetail
}

func NewPagesHandler(s movieService) (*PagesHandler, error) {
	funcMap := template.FuncMap{
		"backdrop":    func(path string) string { return metadatapkg.ImageURL(path, metadatapkg.BackdropSize) },
		"poster":      func(path string) string { return metadatapkg.ImageURL(path, metadatapkg.PosterSize) },
		"profile":     func(path string) string { return metadatapkg.ImageURL(path, metadatapkg.ProfileSize) },
		"year":        releaseYear,
		"formatDate":  formatReleaseDate,
		"statusColor": statusColor,
	}

	baseContent, err := pageTemplates.ReadFile("page_templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base template: %w", err)
	}

	createPageTemplate := func(pageName string) (*template.Template, error) {
		pageContent, err := pageTemplates.ReadFile("page_templates/" + pageName)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", pageName, err)
		}
		tmpl, err := template.New("page").Funcs(funcMap).Parse(string(baseContent))
		if err != nil {
			return nil, fmt.Errorf("parse base for %s: %w", pageName, err)
		}
		if tmpl, err = tmpl.Parse(string(pageContent)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", pageName, err)
		}
		return tmpl, nil
	}

	h := &PagesHandler{Service: s}
	for name, dst := range map[string]**template.Template{
		"home.html":      &h.homeTemplate,
		"genre.html":     &h.genreTemplate,
		"movie.html":     &h.movieTemplate,
		"not_found.html": &h.notFoundTemplate,
	} {
		tmpl, err := createPageTemplate(name)
		if err != nil {
			return nil, err
		}
		*dst = tmpl
	}
	return h, nil
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	feed := h.Service.HomeFeed(r.Context(), models.Genres())
	data := h.pageData("Home", r)
	data.Feed = feed
	if feed != nil && len(feed.Popular) > 0 {
		data.Hero = &feed.Popular[0]
	}
	h.render(w, h.homeTemplate, http.StatusOK, data)
}

func (h *PagesHandler) Genre(w http.ResponseWriter, r *http.Request) {
	genre, ok := models.ParseGenre(mux.Vars(r)["genre"])
	if !ok {
		h.NotFound(w, r)
		return
	}
	id, _ := models.GenreID(genre)
	data := h.pageData(genre.DisplayName(), r)
	data.Genre = &models.GenreEntry{Key: genre, ID: id, Name: genre.DisplayName()}
	data.Movies = h.Service.MoviesByGenre(r.Context(), genre)
	h.render(w, h.genreTemplate, http.StatusOK, data)
}

func (h *PagesHandler) Movie(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	detail := h.Service.MovieDetail(r.Context(), id)
	if detail == nil || detail.Movie == nil {
		h.NotFound(w, r)
		return
	}
	data := h.pageData(detail.Movie.Title, r)
	data.Detail = detail
	h.render(w, h.movieTemplate, http.StatusOK, data)
}

func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.notFoundTemplate, http.StatusNotFound, h.pageData("Not found", r))
}

func (h *PagesHandler) pageData(title string, r *http.Request) PageData {
	return PageData{
		Title:       title,
		CurrentPath: r.URL.Path,
		Genres:      models.GenreTable(),
		FixtureMode: h.Service.FixtureMode(),
	}
}

func (h *PagesHandler) render(w http.ResponseWriter, tmpl *template.Template, status int, data PageData) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		log.Printf("[http] template error on %s: %v", data.CurrentPath, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[http] write page %s: %v", data.CurrentPath, err)
	}
}

func releaseYear(date string) string {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("2006")
	}
	return ""
}

func formatReleaseDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

func statusColor(status string) string {
	if status == releasedStatus {
		return "green"
	}
	return "red"
}
