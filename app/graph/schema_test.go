package graph

import (
	"testing"

	"noteboard/app/services"

	"noteboard/app/repositories/mock"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSchema(t *testing.T) graphql.Schema {
	repo := mock.NewNoteRepository()
	svc := services.NewNoteService(repo)
	schema, err := NewSchema(svc)
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema graphql.Schema, query string, vars map[string]interface{}) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
	})
}

func createNote(t *testing.T, schema graphql.Schema, title, body string) map[string]interface{} {
	t.Helper()
	result := exec(t, schema, `
		mutation ($title: String!, $body: String!) {
			createNote(title: $title, body: $body) {
				id
				title
				body
				insertedAt
				updatedAt
			}
		}`, map[string]interface{}{"title": title, "body": body})
	require.Empty(t, result.Errors)
	return result.Data.(map[string]interface{})["createNote"].(map[string]interface{})
}

func TestSchemaQueries(t *testing.T) {
	schema := setupSchema(t)

	t.Run("create returns id and equal timestamps", func(t *testing.T) {
		note := createNote(t, schema, "A", "B")
		assert.NotEmpty(t, note["id"])
		assert.Equal(t, note["insertedAt"], note["updatedAt"])
	})

	t.Run("notes lists all fields", func(t *testing.T) {
		result := exec(t, schema, `{ notes { id title body user location insertedAt updatedAt } }`, nil)
		require.Empty(t, result.Errors)
		notes := result.Data.(map[string]interface{})["notes"].([]interface{})
		assert.Len(t, notes, 1)
	})

	t.Run("note by id", func(t *testing.T) {
		created := createNote(t, schema, "Shopping", "milk eggs")

		result := exec(t, schema, `
			query ($id: ID!) {
				note(id: $id) { id title body }
			}`, map[string]interface{}{"id": created["id"]})
		require.Empty(t, result.Errors)
		note := result.Data.(map[string]interface{})["note"].(map[string]interface{})
		assert.Equal(t, "Shopping", note["title"])
	})

	t.Run("note by nonexistent id is a not-found error with no data", func(t *testing.T) {
		result := exec(t, schema, `
			query ($id: ID!) {
				note(id: $id) { id }
			}`, map[string]interface{}{"id": "does-not-exist"})
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "not found")
		assert.Nil(t, result.Data.(map[string]interface{})["note"])
	})
}

func TestSchemaMutations(t *testing.T) {
	schema := setupSchema(t)

	t.Run("create rejects empty title", func(t *testing.T) {
		result := exec(t, schema, `
			mutation {
				createNote(title: "", body: "B") { id }
			}`, nil)
		assert.NotEmpty(t, result.Errors)
	})

	t.Run("update refreshes updatedAt", func(t *testing.T) {
		created := createNote(t, schema, "Original", "body")

		result := exec(t, schema, `
			mutation ($id: ID!) {
				updateNote(id: $id, title: "Renamed", body: "body") {
					title
					insertedAt
					updatedAt
				}
			}`, map[string]interface{}{"id": created["id"]})
		require.Empty(t, result.Errors)

		updated := result.Data.(map[string]interface{})["updateNote"].(map[string]interface{})
		assert.Equal(t, "Renamed", updated["title"])
		assert.NotEqual(t, updated["insertedAt"], updated["updatedAt"])
	})

	t.Run("update of nonexistent id errors", func(t *testing.T) {
		result := exec(t, schema, `
			mutation {
				updateNote(id: "does-not-exist", title: "T", body: "B") { id }
			}`, nil)
		assert.NotEmpty(t, result.Errors)
	})

	t.Run("delete returns the deleted note", func(t *testing.T) {
		created := createNote(t, schema, "Doomed", "gone soon")

		result := exec(t, schema, `
			mutation ($id: ID!) {
				deleteNote(id: $id) { id title }
			}`, map[string]interface{}{"id": created["id"]})
		require.Empty(t, result.Errors)

		deleted := result.Data.(map[string]interface{})["deleteNote"].(map[string]interface{})
		assert.Equal(t, "Doomed", deleted["title"])

		check := exec(t, schema, `
			query ($id: ID!) { note(id: $id) { id } }`,
			map[string]interface{}{"id": created["id"]})
		assert.NotEmpty(t, check.Errors)
	})

	t.Run("delete all returns every deleted note", func(t *testing.T) {
		createNote(t, schema, "One", "body")
		createNote(t, schema, "Two", "body")

		result := exec(t, schema, `mutation { deleteAllNotes { id title } }`, nil)
		require.Empty(t, result.Errors)
		deleted := result.Data.(map[string]interface{})["deleteAllNotes"].([]interface{})
		assert.NotEmpty(t, deleted)

		list := exec(t, schema, `{ notes { id } }`, nil)
		require.Empty(t, list.Errors)
		assert.Empty(t, list.Data.(map[string]interface{})["notes"])
	})
}
