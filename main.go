package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"unalon_server/routes"
	"unalon_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize the in-memory store
	log.Println("Initializing entity store...")
	store := services.NewMemoryStore()
	if os.Getenv("SEED_DEMO_DATA") != "false" {
		services.SeedDemoData(store)
	}
	log.Println("Entity store initialized.")

	// Initialize Services
	sessionService := services.NewSessionService()
	userService := &services.UserService{Store: store}
	activityService := &services.ActivityService{Store: store}
	chatService := &services.ChatService{Store: store}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Unalon")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, userService, sessionService)
	routes.RegisterActivityRoutes(r, activityService, sessionService)
	routes.RegisterChatRoutes(r, chatService, sessionService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
