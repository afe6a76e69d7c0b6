package resort

import "errors"

var (
	ErrResortNotFound   = errors.New("resort not found")
	ErrNotOwner         = errors.New("resort belongs to another owner")
	ErrAlreadyModerated = errors.New("resort was already moderated")
)
