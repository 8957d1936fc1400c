package mapper

import (
	"github.com/pgvector/pgvector-go"

	"carepal-be/internal/entity"
	"carepal-be/internal/model"
)

func IntentExampleModelToEntity(m model.IntentExample) entity.IntentExample {
	e := entity.IntentExample{
		Id:        m.Id,
		Utterance: m.Utterance,
		Intent:    m.Intent,
		Embedded:  m.Embedded,
	}
	if m.Embedding != nil {
		e.Embedding = m.Embedding.Slice()
	}
	return e
}

func IntentExampleEntityToModel(e entity.IntentExample) model.IntentExample {
	m := model.IntentExample{
		Id:        e.Id,
		Utterance: e.Utterance,
		Intent:    e.Intent,
		Embedded:  e.Embedded,
	}
	if len(e.Embedding) > 0 {
		vec := pgvector.NewVector(e.Embedding)
		m.Embedding = &vec
	}
	return m
}
