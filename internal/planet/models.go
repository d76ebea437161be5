package planet

type Planet struct {
	ID             int    `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"size:120;uniqueIndex;not null"`
	Population     *int64 `json:"population"`
	Climate        string `json:"climate" gorm:"size:200;not null"`
	Terrain        string `json:"terrain" gorm:"size:200;not null"`
	Diameter       int    `json:"diameter" gorm:"not null"`
	RotationPeriod int    `json:"rotation_period" gorm:"not null"`
	OrbitalPeriod  int    `json:"orbital_period" gorm:"not null"`
	Gravity        string `json:"gravity" gorm:"size:200;not null"`
}
