package routes

import (
	"net/http"

	"noteboard/app/controllers"
	"noteboard/app/graph"
	"noteboard/app/middleware"
	"noteboard/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// SetupRoutes wires the web views and the GraphQL API onto one router.
func SetupRoutes(svc *services.NoteService, sugar *zap.SugaredLogger, basePath string) (*mux.Router, error) {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(sugar))
	router.Use(middleware.Recoverer(sugar))

	// GraphQL API endpoint, browsable via GraphiQL
	schema, err := graph.NewSchema(svc)
	if err != nil {
		return nil, err
	}
	api := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(middleware.ContentTypeJSON(graph.NewHandler(schema)))
	router.Handle("/graphql", api)

	noteController := controllers.NewNoteController(svc, basePath)

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Web routes
	router.HandleFunc("/", noteController.Index).Methods("GET")

	notes := router.PathPrefix("/notes").Subrouter()
	notes.HandleFunc("/new", noteController.Editor).Methods("GET")
	notes.HandleFunc("/save", noteController.Save).Methods("POST")
	notes.HandleFunc("/delete-all", noteController.DeleteAll).Methods("POST")
	notes.HandleFunc("/{id}/edit", noteController.Editor).Methods("GET")
	notes.HandleFunc("/{id}/delete", noteController.Delete).Methods("POST")
	notes.HandleFunc("/{id}", noteController.Delete).Methods("DELETE")

	return router, nil
}
