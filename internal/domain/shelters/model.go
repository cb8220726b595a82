package shelters

import "time"

// Shelter representa un abrigo registrado.
// Los campos puntero son opcionales (null en la API).
type Shelter struct {
	ID string

	Name            string
	Address         string
	ShelteredPeople *int
	Capacity        *int
	Verified        bool
	PetFriendly     *bool
	Contact         *string
	Pix             *string

	CreatedByUserID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
