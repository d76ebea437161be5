package favorite

import (
	"starwars-api/internal/character"
	"starwars-api/internal/planet"
	"starwars-api/internal/user"
)

// Favorite links a user to exactly one character or planet.
type Favorite struct {
	ID           int  `json:"id" gorm:"primaryKey"`
	UserID       int  `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_character;uniqueIndex:idx_favorites_user_planet"`
	CharactersID *int `json:"characters_id" gorm:"uniqueIndex:idx_favorites_user_character;check:chk_favorites_single_target,(characters_id IS NULL) <> (planets_id IS NULL)"`
	PlanetsID    *int `json:"planets_id" gorm:"uniqueIndex:idx_favorites_user_planet"`

	User      *user.User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Character *character.Character `json:"-" gorm:"foreignKey:CharactersID"`
	Planet    *planet.Planet       `json:"-" gorm:"foreignKey:PlanetsID"`
}

type TargetKind string

const (
	TargetCharacter TargetKind = "character"
	TargetPlanet    TargetKind = "planet"
)

// column is the favorites column holding the target id.
func (k TargetKind) column() (string, bool) {
	switch k {
	case TargetCharacter:
		return "characters_id", true
	case TargetPlanet:
		return "planets_id", true
	default:
		return "", false
	}
}

func newFavorite(userID int, kind TargetKind, itemID int) *Favorite {
	fav := &Favorite{UserID: userID}
	if kind == TargetCharacter {
		fav.CharactersID = &itemID
	} else {
		fav.PlanetsID = &itemID
	}
	return fav
}
