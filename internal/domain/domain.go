package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Series stores information about a TV series
type Series struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	LastTitle   string        `bson:"lastTitle,omitempty" json:"lastTitle,omitempty"`
	Country     string        `bson:"country" json:"country"`
	Genre       string        `bson:"genre" json:"genre"`
	AgeLimits   int32         `bson:"ageLimits" json:"ageLimits"`
	StartDate   *time.Time    `bson:"startDate,omitempty" json:"startDate,omitempty"`
	ReleaseDate time.Time     `bson:"releaseDate" json:"releaseDate"`
	Rating      float64       `bson:"rating" json:"rating"`
	Trailer     string        `bson:"trailer,omitempty" json:"trailer,omitempty"`
	Cover       string        `bson:"cover,omitempty" json:"cover,omitempty"`
	Studio      int32         `bson:"studio" json:"studio"`
}

// ParseID parses the hex form of a series identifier
func ParseID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}

	return id, nil
}
