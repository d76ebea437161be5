package character

type Character struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:120;uniqueIndex;not null"`
	BirthYear int    `json:"birth_year" gorm:"not null"`
	Homeworld string `json:"homeworld" gorm:"size:200;not null"`
	Gender    string `json:"gender" gorm:"size:200;not null"`
	Height    int    `json:"height" gorm:"not null"`
	Mass      int    `json:"mass" gorm:"not null"`
	HairColor string `json:"hair_color" gorm:"size:200;not null"`
	SkinColor string `json:"skin_color" gorm:"size:200;not null"`
	EyeColor  string `json:"eye_color" gorm:"size:200;not null"`
}
