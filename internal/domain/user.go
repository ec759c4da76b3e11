package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. Password holds only the bcrypt hash once the
// account exists; it is never rendered back to the client.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}
