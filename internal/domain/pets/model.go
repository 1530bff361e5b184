package pets

import "time"

// Sex del perro.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}

// Size agrupa razas por tamaño; se usa solo como dato de perfil.
// @Enum toy, small, medium, large, giant
type Size string

const (
	SizeToy    Size = "toy"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeGiant  Size = "giant"
)

func (s Size) Valid() bool {
	switch s {
	case SizeToy, SizeSmall, SizeMedium, SizeLarge, SizeGiant:
		return true
	}
	return false
}

// Pet es el perfil del perro al que pertenecen los check-ins diarios.
type Pet struct {
	ID          string
	OwnerUserID string

	Name  string
	Breed string
	Size  Size
	Sex   Sex

	BirthDate *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
