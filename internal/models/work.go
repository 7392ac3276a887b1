package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work represents a submitted student work. The binary payload (if any) lives
// in the blob store; FileURL points either there or at a user-supplied
// external URL.
type Work struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Roll        string             `bson:"roll" json:"roll"`
	Email       string             `bson:"email" json:"email"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	FileURL     string             `bson:"fileUrl" json:"fileUrl"`
	FileType    string             `bson:"fileType" json:"fileType"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
