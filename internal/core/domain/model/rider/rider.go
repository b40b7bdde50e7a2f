package rider

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrRiderIsNotConstructed is returned when a Rider instance was not created
// through the NewRider constructor.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Rider is a read-model snapshot of an available courier at dispatch time:
// online, with a known last location. Dispatch never mutates riders; it only
// ranks them and records offers against their IDs.
type Rider struct {
	id       kernel.UUID
	name     string
	phone    string
	location kernel.GeoPoint

	isConstructed bool
}

// NewRider creates a Rider snapshot. The location is mandatory: a rider
// without coordinates cannot be ranked and never reaches dispatch.
func NewRider(id kernel.UUID, name string, phone string, location kernel.GeoPoint) (*Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := location.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("location", err)
	}

	return &Rider{
		id:            id,
		name:          name,
		phone:         phone,
		location:      location,
		isConstructed: true,
	}, nil
}

// Validate ensures the Rider was created through the constructor.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}

	return nil
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact number.
func (r *Rider) Phone() string {
	return r.phone
}

// Location returns the rider's last known position.
func (r *Rider) Location() kernel.GeoPoint {
	return r.location
}
