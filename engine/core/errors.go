package core

import (
	"errors"
)

var (
	ErrNodeNotFound        = errors.New("scene node not found")
	ErrDuplicateNode       = errors.New("scene node name already in use")
	ErrHierarchyCycle      = errors.New("scene hierarchy would contain a cycle")
	ErrUnsupportedFormat   = errors.New("unsupported scene format")
	ErrDegenerateTransform = errors.New("transform has a zero scale axis")
)
