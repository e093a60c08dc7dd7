package element

import "errors"

var (
	// ErrUnknownElement is returned by Lookup for an atomic number the dataset does not hold.
	ErrUnknownElement = errors.New("element: unknown atomic number")

	// ErrInvalidDataset indicates a dataset with missing, duplicate or non-contiguous entries.
	ErrInvalidDataset = errors.New("element: invalid dataset")
)
