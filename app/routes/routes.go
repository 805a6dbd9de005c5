package routes

import (
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/haeun0228/powerBoost/app/auth"
	"github.com/haeun0228/powerBoost/app/controllers"
	"github.com/haeun0228/powerBoost/app/middleware"
	"github.com/haeun0228/powerBoost/app/repositories"
	"github.com/haeun0228/powerBoost/app/services"
)

// Options carries what route setup needs beyond the database handle.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Log       *logrus.Logger
}

// Setup wires repositories, services and controllers onto a router using the
// provided Badger DB.
func Setup(db *badger.DB, opts Options) *mux.Router {
	if opts.Log == nil {
		opts.Log = logrus.New()
	}

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	tokens := auth.NewTokenIssuer(opts.JWTSecret, opts.TokenTTL)
	articleService := services.NewArticleService(postRepo)
	userService := services.NewUserService(userRepo, tokens)

	postController := controllers.NewPostController(articleService)
	commentController := controllers.NewCommentController(articleService)
	authController := controllers.NewAuthController(userService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(opts.Log))
	router.Use(middleware.Recoverer(opts.Log))

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	protect := middleware.RequireAuth(userService)

	// Auth endpoints
	api.HandleFunc("/register", authController.Register).Methods("POST")
	api.HandleFunc("/login", authController.Login).Methods("POST")

	// Posts endpoints; reads are public, mutations require a resolved actor
	api.HandleFunc("/posts", postController.Index).Methods("GET")
	api.HandleFunc("/posts/{postId}", postController.Show).Methods("GET")
	api.Handle("/posts", protect(http.HandlerFunc(postController.Create))).Methods("POST")
	api.Handle("/posts/{postId}", protect(http.HandlerFunc(postController.Update))).Methods("PATCH")
	api.Handle("/posts/{postId}", protect(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	api.Handle("/posts/{postId}/likes", protect(http.HandlerFunc(postController.Like))).Methods("POST")

	// Comments endpoints
	api.Handle("/posts/{postId}/comments", protect(http.HandlerFunc(commentController.Create))).Methods("POST")
	api.Handle("/posts/{postId}/comments/{commentId}", protect(http.HandlerFunc(commentController.Delete))).Methods("DELETE")

	return router
}
