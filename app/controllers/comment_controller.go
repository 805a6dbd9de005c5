package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/haeun0228/powerBoost/app/middleware"
	"github.com/haeun0228/powerBoost/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	articles *services.ArticleService
}

// NewCommentController creates a new CommentController
func NewCommentController(articles *services.ArticleService) *CommentController {
	return &CommentController{articles: articles}
}

// Create handles appending a comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	comment, err := cc.articles.AddComment(mux.Vars(r)["postId"], middleware.ActorID(r.Context()), body.Content)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}

// Delete handles removing a comment from a post, comment author only
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := cc.articles.DeleteComment(vars["postId"], vars["commentId"], middleware.ActorID(r.Context()))
	if err != nil {
		sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
