package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/haeun0228/powerBoost/app/middleware"
	"github.com/haeun0228/powerBoost/app/models"
	"github.com/haeun0228/powerBoost/app/services"
)

// PostController handles HTTP requests for posts
type PostController struct {
	articles *services.ArticleService
}

// NewPostController creates a new PostController
func NewPostController(articles *services.ArticleService) *PostController {
	return &PostController{articles: articles}
}

// Index handles listing all posts, newest first unless ?sort=old
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	sortOrder := models.SortNewestFirst
	if r.URL.Query().Get("sort") == models.SortOldestFirst {
		sortOrder = models.SortOldestFirst
	}

	posts, err := pc.articles.List(sortOrder)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.articles.Get(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post owned by the acting user
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	post, err := pc.articles.Create(middleware.ActorID(r.Context()), input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update handles patching a post's title or content, owner only
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	var patch services.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	post, err := pc.articles.Update(mux.Vars(r)["postId"], middleware.ActorID(r.Context()), patch)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post, owner only
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.articles.Delete(mux.Vars(r)["postId"], middleware.ActorID(r.Context())); err != nil {
		sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Like handles incrementing a post's like count
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	likes, err := pc.articles.Like(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]int{"likes": likes})
}
