package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"noteboard/app/models"
	"noteboard/app/repositories/mock"
	"noteboard/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepo wraps the mock repository to observe refetches.
type countingRepo struct {
	*mock.NoteRepository
	listCalls int
}

func (c *countingRepo) List() ([]*models.Note, error) {
	c.listCalls++
	return c.NoteRepository.List()
}

func setupTestNoteController(t *testing.T) (*NoteController, *services.NoteService, *countingRepo) {
	repo := &countingRepo{NoteRepository: mock.NewNoteRepository()}
	service := services.NewNoteService(repo)
	// Templates live two levels up from this package.
	controller := NewNoteController(service, "../..")
	return controller, service, repo
}

func setupRouter(controller *NoteController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", controller.Index).Methods("GET")
	router.HandleFunc("/notes/new", controller.Editor).Methods("GET")
	router.HandleFunc("/notes/save", controller.Save).Methods("POST")
	router.HandleFunc("/notes/delete-all", controller.DeleteAll).Methods("POST")
	router.HandleFunc("/notes/{id}/edit", controller.Editor).Methods("GET")
	router.HandleFunc("/notes/{id}/delete", controller.Delete).Methods("POST")

	return router
}

func postForm(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNoteControllerEditor(t *testing.T) {
	controller, service, _ := setupTestNoteController(t)
	router := setupRouter(controller)

	t.Run("create mode without id", func(t *testing.T) {
		w := get(router, "/notes/new")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "New note")
	})

	t.Run("edit mode pre-fills the form", func(t *testing.T) {
		note := &models.Note{Title: "Shopping", Body: "milk eggs"}
		require.NoError(t, service.CreateNote(note))

		w := get(router, "/notes/"+note.ID+"/edit")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Edit note")
		assert.Contains(t, w.Body.String(), "Shopping")
		assert.Contains(t, w.Body.String(), "milk eggs")
	})

	t.Run("missing note gets its own page", func(t *testing.T) {
		w := get(router, "/notes/does-not-exist/edit")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "does not exist")
	})
}

func TestNoteControllerSave(t *testing.T) {
	controller, service, _ := setupTestNoteController(t)
	router := setupRouter(controller)

	t.Run("create without id", func(t *testing.T) {
		w := postForm(router, "/notes/save", url.Values{
			"title":    {"Shopping"},
			"body":     {"milk eggs"},
			"user":     {"sam"},
			"location": {"52.5,13.4"},
		})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		notes, err := service.ListNotes()
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Shopping", notes[0].Title)
		assert.Equal(t, "sam", notes[0].User)
	})

	t.Run("update with id", func(t *testing.T) {
		notes, err := service.ListNotes()
		require.NoError(t, err)

		w := postForm(router, "/notes/save", url.Values{
			"id":    {notes[0].ID},
			"title": {"Groceries"},
			"body":  {"milk eggs bread"},
		})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		updated, err := service.GetNote(notes[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Groceries", updated.Title)
		assert.True(t, updated.UpdatedAt.After(updated.InsertedAt))
	})

	t.Run("validation failure is a generic error", func(t *testing.T) {
		w := postForm(router, "/notes/save", url.Values{
			"title": {""},
			"body":  {"body"},
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to save note")
	})
}

func TestNoteControllerIndex(t *testing.T) {
	controller, service, _ := setupTestNoteController(t)
	router := setupRouter(controller)

	require.NoError(t, service.CreateNote(&models.Note{Title: "Shopping", Body: "milk eggs"}))
	require.NoError(t, service.CreateNote(&models.Note{Title: "Work", Body: "milk report"}))

	t.Run("lists all notes", func(t *testing.T) {
		w := get(router, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Shopping")
		assert.Contains(t, w.Body.String(), "Work")
	})

	t.Run("phrase filter", func(t *testing.T) {
		w := get(router, "/?q=milk+eggs")
		assert.Contains(t, w.Body.String(), "Shopping")
		assert.NotContains(t, w.Body.String(), "Work")
	})

	t.Run("sorted descending by title", func(t *testing.T) {
		w := get(router, "/?sort=by+title&desc=1")
		body := w.Body.String()
		assert.Less(t, strings.Index(body, "Work"), strings.Index(body, "Shopping"))
	})
}

func TestNoteControllerOptimisticDelete(t *testing.T) {
	controller, service, repo := setupTestNoteController(t)
	router := setupRouter(controller)

	doomed := &models.Note{Title: "Doomed", Body: "gone soon"}
	require.NoError(t, service.CreateNote(doomed))
	require.NoError(t, service.CreateNote(&models.Note{Title: "Keeper", Body: "stays"}))

	// Warm the held list.
	get(router, "/")
	warmCalls := repo.listCalls

	t.Run("delete renders from the held list without refetch", func(t *testing.T) {
		w := postForm(router, "/notes/"+doomed.ID+"/delete", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		after := get(router, "/")
		assert.NotContains(t, after.Body.String(), "Doomed")
		assert.Contains(t, after.Body.String(), "Keeper")
		// DeleteNote hits GetByID/Delete, never List; the render after the
		// optimistic removal must not refetch either.
		assert.Equal(t, warmCalls, repo.listCalls)
	})

	t.Run("later renders refetch", func(t *testing.T) {
		get(router, "/")
		assert.Greater(t, repo.listCalls, warmCalls)
	})

	t.Run("delete of missing note reports not found", func(t *testing.T) {
		w := postForm(router, "/notes/does-not-exist/delete", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete all empties the list", func(t *testing.T) {
		w := postForm(router, "/notes/delete-all", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		calls := repo.listCalls
		after := get(router, "/")
		assert.Contains(t, after.Body.String(), "No notes yet")
		assert.Equal(t, calls, repo.listCalls)
	})
}
