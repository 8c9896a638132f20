package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"campusmatch_server/models"
	"campusmatch_server/routes"
	"campusmatch_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// newBlobStore picks the bundle backend from BLOB_BACKEND
func newBlobStore() services.BlobStore {
	bundleKey := os.Getenv("BUNDLE_KEY")
	if bundleKey == "" {
		bundleKey = "campusmatch_bundle"
	}

	switch backend := os.Getenv("BLOB_BACKEND"); backend {
	case "dynamo":
		log.Println("Initializing DynamoDB client...")
		table := os.Getenv("BUNDLE_TABLE")
		if table == "" {
			table = models.BundlesTable
		}
		dynamoService := &services.DynamoService{Client: services.InitializeDynamoDBClient()}
		return &services.DynamoBlobStore{Dynamo: dynamoService, TableName: table, BundleKey: bundleKey}
	case "s3":
		log.Println("Initializing S3 client...")
		return &services.S3BlobStore{
			Client: services.InitializeS3Client(),
			Bucket: os.Getenv("S3_BUCKET_NAME"),
			Key:    bundleKey + ".json",
		}
	case "redis":
		log.Println("Initializing Redis client...")
		return &services.RedisBlobStore{Client: services.InitializeRedisClient(), Key: bundleKey}
	default:
		log.Println("No BLOB_BACKEND configured, bundle lives in memory only")
		return services.NewMemoryBlobStore()
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Initialize the persistence gateway and the store
	gateway := services.NewPersistenceGateway(newBlobStore())
	store := services.NewStoreService(gateway)
	if err := store.Load(context.Background()); err != nil {
		log.Printf("⚠️ Loaded with defaults: %v", err)
	}

	// Initialize Services
	matchService := &services.MatchService{Store: store}
	chatService := &services.ChatService{Store: store}
	notificationService := &services.NotificationService{Store: store}

	catalog, err := services.NewCatalogService(os.Getenv("CATALOG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

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
		fmt.Fprintln(w, "Welcome to CampusMatch")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterActionRoutes(r, matchService)
	routes.RegisterMatchRoutes(r, matchService, catalog)
	routes.RegisterChatRoutes(r, chatService, services.StaticIceBreakerProvider{})
	routes.RegisterNotificationRoutes(r, notificationService)

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
