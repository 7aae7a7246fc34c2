package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/releason/blog-api/internal/core/domain"
	"github.com/releason/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post CRUD operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts?userId= — all posts, optionally filtered by owner.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        userId  query     string  false  "Filter by owning user id"
// @Success      200     {array}   domain.Post
// @Failure      500     {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /posts. The owning user must exist; a dangling
// reference is rejected 400, not 404, because the post itself is the resource
// being addressed.
//
// @Summary      Create a new post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createPostRequest  true   "Post details"
// @Success      201              {object}  domain.Post
// @Failure      400              {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:          req.Title,
		Content:        req.Content,
		UserID:         req.UserID,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /posts/:id — only title and content are mutable.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to change"
// @Success      200   {object}  domain.Post
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PostPatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "post not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /posts/:id. Comments on the post are left untouched.
//
// @Summary      Delete a post
// @Tags         posts
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "post not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
