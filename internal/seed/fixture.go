package seed

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"starwars-api/internal/character"
	"starwars-api/internal/planet"
	"starwars-api/internal/shared/errors"

	"github.com/go-playground/validator/v10"
)

type Fixture struct {
	Users      []UserRecord      `json:"users" validate:"dive"`
	Characters []CharacterRecord `json:"characters" validate:"dive"`
	Planets    []PlanetRecord    `json:"planets" validate:"dive"`
}

type UserRecord struct {
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type CharacterRecord struct {
	Name      string `json:"name" validate:"required,max=120"`
	BirthYear int    `json:"birth_year" validate:"gte=0"`
	Homeworld string `json:"homeworld" validate:"required,max=200"`
	Gender    string `json:"gender" validate:"required,max=200"`
	Height    int    `json:"height" validate:"gte=0"`
	Mass      int    `json:"mass" validate:"gte=0"`
	HairColor string `json:"hair_color" validate:"required,max=200"`
	SkinColor string `json:"skin_color" validate:"required,max=200"`
	EyeColor  string `json:"eye_color" validate:"required,max=200"`
}

type PlanetRecord struct {
	Name           string `json:"name" validate:"required,max=120"`
	Population     *int64 `json:"population" validate:"omitempty,gte=0"`
	Climate        string `json:"climate" validate:"required,max=200"`
	Terrain        string `json:"terrain" validate:"required,max=200"`
	Diameter       int    `json:"diameter" validate:"gte=0"`
	RotationPeriod int    `json:"rotation_period" validate:"gte=0"`
	OrbitalPeriod  int    `json:"orbital_period" validate:"gte=0"`
	Gravity        string `json:"gravity" validate:"required,max=200"`
}

func (c CharacterRecord) model() character.Character {
	return character.Character{
		Name:      c.Name,
		BirthYear: c.BirthYear,
		Homeworld: c.Homeworld,
		Gender:    c.Gender,
		Height:    c.Height,
		Mass:      c.Mass,
		HairColor: c.HairColor,
		SkinColor: c.SkinColor,
		EyeColor:  c.EyeColor,
	}
}

func (p PlanetRecord) model() planet.Planet {
	return planet.Planet{
		Name:           p.Name,
		Population:     p.Population,
		Climate:        p.Climate,
		Terrain:        p.Terrain,
		Diameter:       p.Diameter,
		RotationPeriod: p.RotationPeriod,
		OrbitalPeriod:  p.OrbitalPeriod,
		Gravity:        p.Gravity,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names, e.g. characters[0].hair_color.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Parse decodes a fixture, rejecting unknown fields.
func Parse(r io.Reader) (*Fixture, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var fixture Fixture
	if err := decoder.Decode(&fixture); err != nil {
		return nil, errors.WrapValidation("invalid seed fixture", err)
	}
	return &fixture, nil
}

// Validate checks every record and lists each failing field.
func Validate(v *validator.Validate, fixture *Fixture) error {
	err := v.Struct(fixture)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.WrapValidation("invalid seed fixture", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, fieldMessage(fe))
	}
	return errors.Validationf("invalid seed fixture: %s", strings.Join(problems, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Fixture.")

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}
