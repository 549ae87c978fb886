package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dataset is an uploaded CSV file stored as a document. Content is the
// parsed rows serialized to a JSON array string; it is written once on
// upload and never mutated.
type Dataset struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Filename   string             `bson:"filename"`
	Size       int64              `bson:"size"`
	Content    string             `bson:"content"`
	UploadDate time.Time          `bson:"upload_date"`
}

// DatasetMeta is the listing projection of a dataset, with content
// excluded.
type DatasetMeta struct {
	ID         primitive.ObjectID `bson:"_id"`
	Filename   string             `bson:"filename"`
	Size       int64              `bson:"size"`
	UploadDate time.Time          `bson:"upload_date"`
}
