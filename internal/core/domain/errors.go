package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrEmailConflict = errors.New("email already exists")
var ErrInvalidAge = errors.New("age must not be negative")
var ErrInvalidCredentials = errors.New("invalid credentials")
