// Package graph exposes the note store as a GraphQL API.
package graph

import (
	"noteboard/app/models"
	"noteboard/app/services"

	"github.com/graphql-go/graphql"
)

// noteType mirrors models.Note. Timestamps serialize as RFC 3339 strings.
var noteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Note",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"body":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"user":       &graphql.Field{Type: graphql.String},
		"location":   &graphql.Field{Type: graphql.String},
		"insertedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":  &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

// NewSchema builds the query and mutation schema over the note service.
func NewSchema(svc *services.NoteService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"notes": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(noteType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListNotes()
				},
			},
			"note": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.GetNote(p.Args["id"].(string))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createNote": &graphql.Field{
				Type: noteType,
				Args: noteArgs(false),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					note := noteFromArgs(p)
					if err := svc.CreateNote(note); err != nil {
						return nil, err
					}
					return note, nil
				},
			},
			"updateNote": &graphql.Field{
				Type: noteType,
				Args: noteArgs(true),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					note := noteFromArgs(p)
					note.ID = p.Args["id"].(string)
					if err := svc.UpdateNote(note); err != nil {
						return nil, err
					}
					return note, nil
				},
			},
			"deleteNote": &graphql.Field{
				Type: noteType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.DeleteNote(p.Args["id"].(string))
				},
			},
			"deleteAllNotes": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(noteType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.DeleteAllNotes()
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// noteArgs builds the shared create/update argument set.
func noteArgs(withID bool) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"title":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"body":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"user":     &graphql.ArgumentConfig{Type: graphql.String},
		"location": &graphql.ArgumentConfig{Type: graphql.String},
	}
	if withID {
		args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	}
	return args
}

func noteFromArgs(p graphql.ResolveParams) *models.Note {
	note := &models.Note{
		Title: p.Args["title"].(string),
		Body:  p.Args["body"].(string),
	}
	if user, ok := p.Args["user"].(string); ok {
		note.User = user
	}
	if location, ok := p.Args["location"].(string); ok {
		note.Location = location
	}
	return note
}
