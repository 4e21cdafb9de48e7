package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"sync/atomic"

	"noteboard/app/models"
	"noteboard/app/notelist"
	"noteboard/app/repositories"
	"noteboard/app/services"

	"github.com/gorilla/mux"
)

// NoteController handles the browser-facing list and editor views. It holds
// the list-all result in a notelist.Cache and mutates it optimistically on
// save and delete: the render that follows such a mutation serves the
// cached collection instead of refetching. Any other render refetches, so
// changes made through the GraphQL API still show up.
type NoteController struct {
	noteService *services.NoteService
	cache       *notelist.Cache
	fresh       atomic.Bool
	templates   map[string]*template.Template
}

// NewNoteController creates a NoteController rendering templates from the
// given base path ("" for the working directory).
func NewNoteController(noteService *services.NoteService, basePath string) *NoteController {
	return &NoteController{
		noteService: noteService,
		cache:       notelist.NewCache(),
		templates:   loadTemplates(basePath),
	}
}

// SetService sets the note service for testing
func (nc *NoteController) SetService(service *services.NoteService) {
	nc.noteService = service
}

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/notes/index.html"),
	))
	templates["edit"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/notes/edit.html"),
	))
	templates["missing"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/notes/missing.html"),
	))
	return templates
}

// noteForm is the explicit typed form state for the editor. Fields map to
// named inputs; no scanning of form children by naming convention.
type noteForm struct {
	ID       string
	Title    string
	Body     string
	User     string
	Location string
}

func formFromRequest(r *http.Request) (noteForm, error) {
	if err := r.ParseForm(); err != nil {
		return noteForm{}, err
	}
	return noteForm{
		ID:       r.FormValue("id"),
		Title:    r.FormValue("title"),
		Body:     r.FormValue("body"),
		User:     r.FormValue("user"),
		Location: r.FormValue("location"),
	}, nil
}

func formFromNote(note *models.Note) noteForm {
	return noteForm{
		ID:       note.ID,
		Title:    note.Title,
		Body:     note.Body,
		User:     note.User,
		Location: note.Location,
	}
}

// indexData feeds the list view.
type indexData struct {
	Notes      []*models.Note
	Query      string
	SortKey    notelist.SortKey
	SortKeys   []notelist.SortKey
	Descending bool
}

// Index renders the note list with the active filter phrase and sort order
// applied. The render directly after an optimistic mutation serves the
// cached collection without a refetch.
func (nc *NoteController) Index(w http.ResponseWriter, r *http.Request) {
	if !nc.fresh.Swap(false) || !nc.cache.Warm() {
		notes, err := nc.noteService.ListNotes()
		if err != nil {
			nc.sendError(w, "Failed to fetch notes: "+err.Error(), http.StatusInternalServerError)
			return
		}
		nc.cache.Replace(notes)
	}

	query := r.URL.Query().Get("q")
	sortKey := notelist.SortKey(r.URL.Query().Get("sort"))
	descending := r.URL.Query().Get("desc") == "1"

	notes := notelist.Sort(notelist.Filter(nc.cache.All(), query), sortKey, descending)

	data := indexData{
		Notes:      notes,
		Query:      query,
		SortKey:    sortKey,
		SortKeys:   notelist.SortKeys,
		Descending: descending,
	}
	if err := nc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		nc.sendError(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Editor renders the create/edit form. Mode is resolved from the presence
// of the id route variable: absent means create, present means edit with
// the form pre-filled from a fetch. A missing note gets its own page.
func (nc *NoteController) Editor(w http.ResponseWriter, r *http.Request) {
	form := noteForm{}

	if id, editing := mux.Vars(r)["id"]; editing {
		note, err := nc.noteService.GetNote(id)
		if errors.Is(err, repositories.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			if err := nc.templates["missing"].ExecuteTemplate(w, "layout", nil); err != nil {
				nc.sendError(w, "Template error: "+err.Error(), http.StatusInternalServerError)
			}
			return
		}
		if err != nil {
			nc.sendError(w, "Failed to fetch note: "+err.Error(), http.StatusInternalServerError)
			return
		}
		form = formFromNote(note)
	}

	if err := nc.templates["edit"].ExecuteTemplate(w, "layout", form); err != nil {
		nc.sendError(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Save handles editor submission, choosing create or update by the hidden
// id field. On success it redirects to the list; on failure it reports a
// generic failure state.
func (nc *NoteController) Save(w http.ResponseWriter, r *http.Request) {
	form, err := formFromRequest(r)
	if err != nil {
		nc.sendError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	note := &models.Note{
		ID:       form.ID,
		Title:    form.Title,
		Body:     form.Body,
		User:     form.User,
		Location: form.Location,
	}

	if form.ID == "" {
		err = nc.noteService.CreateNote(note)
	} else {
		err = nc.noteService.UpdateNote(note)
	}
	if err != nil {
		nc.sendError(w, "Failed to save note: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Reconcile into the held list; a cold cache refetches on render anyway.
	if nc.cache.Warm() {
		nc.cache.Upsert(note)
		nc.fresh.Store(true)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete removes a single note, updating the cached list optimistically.
// The local removal is not rolled back if the store delete fails.
func (nc *NoteController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	nc.cache.Remove(id)
	nc.fresh.Store(true)

	if _, err := nc.noteService.DeleteNote(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			nc.sendError(w, "Note not found", http.StatusNotFound)
			return
		}
		nc.sendError(w, "Failed to delete note: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteAll removes every note and empties the cached list.
func (nc *NoteController) DeleteAll(w http.ResponseWriter, r *http.Request) {
	nc.cache.Clear()
	nc.fresh.Store(true)

	if _, err := nc.noteService.DeleteAllNotes(); err != nil {
		nc.sendError(w, "Failed to delete notes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (nc *NoteController) sendError(w http.ResponseWriter, message string, status int) {
	http.Error(w, message, status)
}
