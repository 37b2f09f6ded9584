package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ratemypg/pkg/chat"
	"ratemypg/pkg/forum"
	"ratemypg/pkg/live"
	"ratemypg/pkg/logger"
	"ratemypg/pkg/middleware"
	"ratemypg/pkg/review"
	"ratemypg/pkg/sessions"
	"ratemypg/pkg/university"
	"ratemypg/pkg/user"
	"ratemypg/pkg/user/api"
)

type EnvConfig map[string]string

func init() {
	rand.Seed(time.Now().UnixNano())
}

func main() {
	var cfg EnvConfig = readDotenv()

	db, err := sql.Open("pgx", "postgresql://localhost/"+cfg["POSTGRES_DB"]+"?sslmode=disable")
	if err != nil {
		log.Printf("Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("unable to reach PostgreSQL: %v", err)
	}

	redisConn, err := redis.DialURL(cfg["REDIS_ADDR"])
	if err != nil {
		log.Fatalf("main: can't connect to Redis")
	}

	mongoCtx, mongoCtxCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer mongoCtxCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg["MONGODB_URI"]))
	if err != nil {
		log.Fatalln("main: can't connect to MongoDB,", err)
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		log.Fatalln("main: unable to connect to MongoDB,", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(mongoCtx); err != nil {
			log.Fatalln("main: failed disconnecting from MongoDB, ", err)
		}
	}()

	mongoDB := mongoClient.Database("ratemypg")

	usersRepo := user.NewUserRepo(db)
	postsRepo := forum.NewPostRepo(mongoDB.Collection("posts"))
	messagesRepo := chat.NewMessageRepo(mongoDB.Collection("messages"))
	catalogueRepo := university.NewCatalogueRepo(
		mongoDB.Collection("universities"), mongoDB.Collection("pgs"))
	commentsRepo := review.NewCommentRepo(
		mongoDB.Collection("comments"), mongoDB.Collection("comment_replies"))

	sessionManager := sessions.NewSessionManager(cfg["SECRET_KEY"], redisConn)

	hub := live.NewHub()
	go hub.Run()

	feed := forum.NewFeed(postsRepo)
	buffer := chat.NewBuffer(messagesRepo)

	postHandler := forum.NewPostHandler(postsRepo, feed, hub)
	messageHandler := chat.NewMessageHandler(buffer, hub)
	catalogueHandler := university.NewCatalogueHandler(catalogueRepo)
	commentHandler := review.NewCommentHandler(commentsRepo, hub)
	userHandler := api.NewUserHandler(usersRepo, sessionManager)

	// Generate fake content to have better UI experience
	if cfg["SEED_DEMO_DATA"] == "true" {
		seed(usersRepo, postsRepo, catalogueRepo, messagesRepo)
	}

	r := mux.NewRouter()
	apiRouter := r.PathPrefix("/api").Subrouter()

	// Posts
	apiRouter.HandleFunc("/posts/", postHandler.List).Methods("GET")
	apiRouter.HandleFunc("/posts", postHandler.Add).Methods("POST")
	apiRouter.HandleFunc("/posts/university/{university}", postHandler.GetByUniversity).Methods("GET")
	apiRouter.HandleFunc("/post/{post_id}", postHandler.Get).Methods("GET")
	apiRouter.HandleFunc("/post/{post_id}", postHandler.Delete).Methods("DELETE")
	apiRouter.HandleFunc("/post/{post_id}/like", postHandler.Like).Methods("POST")
	apiRouter.HandleFunc("/post/{post_id}/reply", postHandler.AddReply).Methods("POST")
	apiRouter.HandleFunc("/post/{post_id}/reply/{reply_id}/like", postHandler.LikeReply).Methods("POST")
	apiRouter.HandleFunc("/post/{post_id}/reply/{reply_id}", postHandler.DeleteReply).Methods("DELETE")

	// Chat
	apiRouter.HandleFunc("/messages/", messageHandler.List).Methods("GET")
	apiRouter.HandleFunc("/messages", messageHandler.Send).Methods("POST")

	// Universities and PGs
	apiRouter.HandleFunc("/universities/", catalogueHandler.List).Methods("GET")
	apiRouter.HandleFunc("/universities", catalogueHandler.Add).Methods("POST")
	apiRouter.HandleFunc("/university/{university_id}", catalogueHandler.Get).Methods("GET")
	apiRouter.HandleFunc("/university/{university_id}/pgs", catalogueHandler.AddPG).Methods("POST")
	apiRouter.HandleFunc("/university/{university_id}/pg/{pg_id}", catalogueHandler.GetPG).Methods("GET")

	// PG comments
	apiRouter.HandleFunc("/pg/{pg_id}/comments/", commentHandler.List).Methods("GET")
	apiRouter.HandleFunc("/pg/{pg_id}/comments", commentHandler.Add).Methods("POST")
	apiRouter.HandleFunc("/pg/{pg_id}/comment/{comment_id}", commentHandler.Delete).Methods("DELETE")
	apiRouter.HandleFunc("/pg/{pg_id}/comment/{comment_id}/replies", commentHandler.AddReply).Methods("POST")
	apiRouter.HandleFunc("/pg/{pg_id}/comment/{comment_id}/reply/{reply_id}", commentHandler.DeleteReply).Methods("DELETE")

	// User
	apiRouter.HandleFunc("/register", userHandler.Register).Methods("POST")
	apiRouter.HandleFunc("/login", userHandler.LogIn).Methods("POST")
	apiRouter.HandleFunc("/google-auth", userHandler.GoogleSignIn).Methods("POST")

	// Live updates
	r.HandleFunc("/ws", hub.ServeWs)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	auth := middleware.NewAuthMiddleware(sessionManager, usersRepo)
	r.Use(auth.Middleware)

	logMiddleware := middleware.NewLoggingMiddleware(logger.Run(cfg["LOG_LEVEL"]))
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)

	port := cfg["PORT"]
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("Serving at http://localhost:" + port + "/")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("main: server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalln("main: forced shutdown:", err)
	}
	log.Println("main: server stopped")
}

func readDotenv() EnvConfig {
	env, err := godotenv.Read()
	if err != nil {
		log.Fatal("failed reading .env file:", err)
	}
	return env
}
