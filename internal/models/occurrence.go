package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerUnresolved marks occurrences persisted before the default user was
// seeded. Such records still have a non-empty owner reference, it just does
// not point at a real account.
const OwnerUnresolved = "unresolved"

// GPSCoordinate is the structured form of the gps column. It is serialized
// to JSON before storage and parsed back when building responses.
type GPSCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Serialize renders the coordinate into the opaque column form.
func (g *GPSCoordinate) Serialize() (string, error) {
	if g == nil {
		return "", nil
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseGPS is the inverse of Serialize. An empty or malformed column yields
// nil rather than an error so one bad row cannot break a listing.
func ParseGPS(raw string) *GPSCoordinate {
	if raw == "" {
		return nil
	}
	var gps GPSCoordinate
	if err := json.Unmarshal([]byte(raw), &gps); err != nil {
		return nil
	}
	return &gps
}

type Occurrence struct {
	ID              string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Categoria       string    `gorm:"type:varchar(100)" json:"categoria"`
	Subcategoria    string    `gorm:"type:varchar(100)" json:"subcategoria"`
	Prioridade      string    `gorm:"type:varchar(50)" json:"prioridade"`
	Descricao       string    `gorm:"type:text" json:"descricao"`
	Endereco        string    `gorm:"type:varchar(255)" json:"endereco"`
	PontoReferencia string    `gorm:"type:varchar(255)" json:"ponto_referencia"`
	CodigoViatura   string    `gorm:"type:varchar(50)" json:"codigo_viatura"`
	GPS             string    `gorm:"type:text" json:"gps"`
	Status          Status    `gorm:"type:varchar(20);not null;default:'Open'" json:"status"`
	UserID          string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (o *Occurrence) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
