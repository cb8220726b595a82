package shelterform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

// Field identifica un campo del formulario por su nombre json.
type Field string

const (
	FieldName            Field = "name"
	FieldAddress         Field = "address"
	FieldShelteredPeople Field = "shelteredPeople"
	FieldCapacity        Field = "capacity"
	FieldVerified        Field = "verified"
	FieldPetFriendly     Field = "petFriendly"
	FieldContact         Field = "contact"
	FieldPix             Field = "pix"
)

// Fields en el orden en que se muestran.
var Fields = []Field{
	FieldName,
	FieldAddress,
	FieldShelteredPeople,
	FieldCapacity,
	FieldVerified,
	FieldPetFriendly,
	FieldContact,
	FieldPix,
}

// Draft es el registro de abrigo en edición. Es lo que se manda tal cual al servicio.
type Draft struct {
	Name            string  `json:"name" validate:"required"`
	Address         string  `json:"address" validate:"required"`
	ShelteredPeople *int    `json:"shelteredPeople" validate:"omitempty,min=0"`
	Capacity        *int    `json:"capacity" validate:"omitempty,min=1"`
	Verified        bool    `json:"verified"`
	PetFriendly     *bool   `json:"petFriendly"`
	Contact         *string `json:"contact"`
	Pix             *string `json:"pix"`
}

// DefaultDraft son los valores iniciales del formulario.
func DefaultDraft() Draft {
	zero := 0
	capacity := 0
	petFriendly := false
	return Draft{
		ShelteredPeople: &zero,
		Capacity:        &capacity,
		PetFriendly:     &petFriendly,
	}
}

// Clone copia también los valores apuntados.
func (d Draft) Clone() Draft {
	out := d
	out.ShelteredPeople = clonePtr(d.ShelteredPeople)
	out.Capacity = clonePtr(d.Capacity)
	out.PetFriendly = clonePtr(d.PetFriendly)
	out.Contact = clonePtr(d.Contact)
	out.Pix = clonePtr(d.Pix)
	return out
}

// Value devuelve el campo como texto editable ("" para null).
func (d Draft) Value(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldAddress:
		return d.Address
	case FieldShelteredPeople:
		return intText(d.ShelteredPeople)
	case FieldCapacity:
		return intText(d.Capacity)
	case FieldVerified:
		return strconv.FormatBool(d.Verified)
	case FieldPetFriendly:
		if d.PetFriendly == nil {
			return ""
		}
		return strconv.FormatBool(*d.PetFriendly)
	case FieldContact:
		return strText(d.Contact)
	case FieldPix:
		return strText(d.Pix)
	default:
		return ""
	}
}

// set sobreescribe exactamente un campo a partir de texto.
// En los campos nullable, "" => nil.
func (d *Draft) set(f Field, raw string) error {
	switch f {
	case FieldName:
		d.Name = raw
	case FieldAddress:
		d.Address = raw
	case FieldShelteredPeople:
		v, err := parseInt(raw)
		if err != nil {
			return fieldError(f, err)
		}
		d.ShelteredPeople = v
	case FieldCapacity:
		v, err := parseInt(raw)
		if err != nil {
			return fieldError(f, err)
		}
		d.Capacity = v
	case FieldVerified:
		v, err := parseBool(raw)
		if err != nil {
			return fieldError(f, err)
		}
		d.Verified = v != nil && *v
	case FieldPetFriendly:
		v, err := parseBool(raw)
		if err != nil {
			return fieldError(f, err)
		}
		d.PetFriendly = v
	case FieldContact:
		d.Contact = parseString(raw)
	case FieldPix:
		d.Pix = parseString(raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

func fieldError(f Field, err error) error {
	return fmt.Errorf("%s: %w: %v", f, ErrInvalidValue, err)
}

func parseInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseBool(raw string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "sim", "s", "yes", "y":
		v := true
		return &v, nil
	case "não", "nao", "n", "no":
		v := false
		return &v, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func parseString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

func intText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func strText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
