package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("can only delete your own comments")
	ErrInvalidTarget   = errors.New("invalid comment target")
)
