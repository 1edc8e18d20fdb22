package models

// Counter backs the sequence generator. Seq only moves via atomic $inc,
// except for the explicit admin reset which sets it back to 0.
type Counter struct {
	Name string `bson:"name" json:"name"`
	Seq  int    `bson:"seq" json:"seq"`
}
