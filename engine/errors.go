package engine

import "errors"

// Store errors
var (
	ErrInvalidCoordinate = errors.New("coordinate outside arena")
	ErrDuplicateEntity   = errors.New("entity already stored")
	ErrUnknownEntity     = errors.New("entity not stored")
	ErrKindMismatch      = errors.New("payload does not match kind")
)

// World errors
var (
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrCellOccupied          = errors.New("grid cell occupied")
	ErrRouteBlocked          = errors.New("placement blocks the route to the end zone")
	ErrNotTower              = errors.New("object is not a tower")
)
