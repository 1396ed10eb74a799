package domain

import "time"

// Favorite is a movie saved by one user, stamped with the moment it was
// added. A user holds at most one favorite per movie id; the per-user
// partition key is the ownership, there is no separate owner field.
type Favorite struct {
	MovieRef
	AddedAt time.Time `json:"addedAt"`
}
