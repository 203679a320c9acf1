package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates a file type no extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoSample indicates an extraction without a sample was submitted.
	ErrNoSample = errors.New("no sample in extraction")

	// ErrNoText indicates the upstream extractor produced no text.
	ErrNoText = errors.New("no text extracted")

	// ErrInvalidExtraction indicates an extraction failed schema validation.
	ErrInvalidExtraction = errors.New("extraction does not match schema")
)
