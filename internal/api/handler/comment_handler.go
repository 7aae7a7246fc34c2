package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/releason/blog-api/internal/core/domain"
	"github.com/releason/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations. Comments have
// no update route: they are immutable once created.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /comments?postId= — all comments, optionally by post.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        postId  query     string  false  "Filter by post id"
// @Success      200     {array}   domain.Comment
// @Failure      500     {object}  errorResponse
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context(), c.QueryParam("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Get handles GET /comments/:id.
//
// @Summary      Get a comment by id
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  domain.Comment
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "comment not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Create handles POST /comments. Both references must exist; the post check
// runs first, so a missing post is reported even when the user is also missing.
//
// @Summary      Create a new comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createCommentRequest  true   "Comment details"
// @Success      201              {object}  domain.Comment
// @Failure      400              {object}  errorResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		Content:        req.Content,
		PostID:         req.PostID,
		UserID:         req.UserID,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// Delete handles DELETE /comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Param        id  path  string  true  "Comment id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "comment not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
