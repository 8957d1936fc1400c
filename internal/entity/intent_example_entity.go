package entity

import "github.com/google/uuid"

type IntentExample struct {
	Id        uuid.UUID
	Utterance string
	Intent    string
	Embedding []float32
	Embedded  bool
}
