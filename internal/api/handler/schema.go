package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
//
// Structural constraints (required fields, email syntax, length bounds) are
// enforced here, before the service layer runs. Business rules with read
// dependencies (uniqueness, referential integrity, age sign) belong to the
// services so their rejection reasons stay distinguishable.
//
// Update requests use pointer fields: nil means "leave unchanged". This keeps
// partial updates unambiguous instead of reusing the create shape.

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required,notblank"`
	Age   *int   `json:"age"`
}

type updateUserRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name"  validate:"omitempty,notblank"`
	Age   *int    `json:"age"`
}

type createPostRequest struct {
	Title   string `json:"title"   validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
	UserID  string `json:"userId"  validate:"required"`
}

type updatePostRequest struct {
	Title   *string `json:"title"   validate:"omitempty,notblank"`
	Content *string `json:"content" validate:"omitempty,notblank"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required,notblank,max=1000"`
	PostID  string `json:"postId"  validate:"required"`
	UserID  string `json:"userId"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
