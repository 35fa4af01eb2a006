package endo

import "errors"

var (
	// ErrFinish is the normal end of a program: a parser ran out of DNA.
	ErrFinish = errors.New("finish")

	ErrStepLimit  = errors.New("step limit reached")
	ErrGroupIndex = errors.New("template references a missing group")
)
