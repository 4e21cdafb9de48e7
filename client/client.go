// Package client is a programmatic consumer of the GraphQL API. It keeps
// the list-all result in a local notelist.Cache and applies optimistic
// updates on delete, so callers see deletions without a refetch.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"noteboard/app/models"
	"noteboard/app/notelist"
)

// ErrNotFound reports that the requested note does not exist on the server.
var ErrNotFound = errors.New("note does not exist")

type Client struct {
	http.Client
	Addr string

	cache *notelist.Cache
}

// New creates a client for a noteboard server at addr (e.g.
// "http://localhost:8080").
func New(addr string) *Client {
	return &Client{
		Addr:  addr,
		cache: notelist.NewCache(),
	}
}

// NoteInput carries the writable note fields for create and update.
type NoteInput struct {
	Title    string
	Body     string
	User     string
	Location string
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do posts a query to /graphql and decodes the data envelope into out.
func (c *Client) do(query string, vars map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.Addr+"/graphql", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if len(envelope.Errors) > 0 {
		msg := envelope.Errors[0].Message
		if strings.Contains(msg, "not found") {
			return ErrNotFound
		}
		return fmt.Errorf("graphql: %s", msg)
	}
	if out != nil {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

// ListNotes fetches all notes and replaces the local cache with the result.
func (c *Client) ListNotes() ([]*models.Note, error) {
	var data struct {
		Notes []*models.Note `json:"notes"`
	}
	err := c.do(`{ notes { id title body user location insertedAt updatedAt } }`, nil, &data)
	if err != nil {
		return nil, err
	}
	c.cache.Replace(data.Notes)
	return data.Notes, nil
}

// CachedNotes returns the locally held copy of the last list-all result.
func (c *Client) CachedNotes() []*models.Note {
	return c.cache.All()
}

// SearchNotes filters and sorts the cached collection without a refetch.
func (c *Client) SearchNotes(phrase string, key notelist.SortKey, descending bool) []*models.Note {
	return notelist.Sort(notelist.Filter(c.cache.All(), phrase), key, descending)
}

// GetNote fetches a single note by ID. Returns ErrNotFound when the note
// does not exist.
func (c *Client) GetNote(id string) (*models.Note, error) {
	var data struct {
		Note *models.Note `json:"note"`
	}
	err := c.do(`query ($id: ID!) {
		note(id: $id) { id title body user location insertedAt updatedAt }
	}`, map[string]interface{}{"id": id}, &data)
	if err != nil {
		return nil, err
	}
	return data.Note, nil
}

// CreateNote creates a note and reconciles the response into the cache.
func (c *Client) CreateNote(input NoteInput) (*models.Note, error) {
	var data struct {
		Note *models.Note `json:"createNote"`
	}
	err := c.do(`mutation ($title: String!, $body: String!, $user: String, $location: String) {
		createNote(title: $title, body: $body, user: $user, location: $location) {
			id title body user location insertedAt updatedAt
		}
	}`, inputVars(input, ""), &data)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(data.Note)
	return data.Note, nil
}

// UpdateNote updates a note and reconciles the response into the cache.
func (c *Client) UpdateNote(id string, input NoteInput) (*models.Note, error) {
	var data struct {
		Note *models.Note `json:"updateNote"`
	}
	err := c.do(`mutation ($id: ID!, $title: String!, $body: String!, $user: String, $location: String) {
		updateNote(id: $id, title: $title, body: $body, user: $user, location: $location) {
			id title body user location insertedAt updatedAt
		}
	}`, inputVars(input, id), &data)
	if err != nil {
		return nil, err
	}
	c.cache.Upsert(data.Note)
	return data.Note, nil
}

// DeleteNote removes the note from the local cache as soon as the request
// is issued, then reports the server's answer. A server-side failure does
// not roll the local removal back.
func (c *Client) DeleteNote(id string) (*models.Note, error) {
	c.cache.Remove(id)

	var data struct {
		Note *models.Note `json:"deleteNote"`
	}
	err := c.do(`mutation ($id: ID!) {
		deleteNote(id: $id) { id title body user location insertedAt updatedAt }
	}`, map[string]interface{}{"id": id}, &data)
	if err != nil {
		return nil, err
	}
	return data.Note, nil
}

// DeleteAllNotes empties the local cache immediately and returns the notes
// the server reports as deleted.
func (c *Client) DeleteAllNotes() ([]*models.Note, error) {
	c.cache.Clear()

	var data struct {
		Notes []*models.Note `json:"deleteAllNotes"`
	}
	err := c.do(`mutation { deleteAllNotes { id title body user location insertedAt updatedAt } }`, nil, &data)
	if err != nil {
		return nil, err
	}
	return data.Notes, nil
}

func inputVars(input NoteInput, id string) map[string]interface{} {
	vars := map[string]interface{}{
		"title":    input.Title,
		"body":     input.Body,
		"user":     input.User,
		"location": input.Location,
	}
	if id != "" {
		vars["id"] = id
	}
	return vars
}
