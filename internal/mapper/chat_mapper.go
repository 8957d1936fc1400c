package mapper

import (
	"carepal-be/internal/entity"
	"carepal-be/internal/model"
)

func ChatSessionModelToEntity(m model.ChatSession) entity.ChatSession {
	return entity.ChatSession{
		Id:         m.Id,
		CustomerId: m.CustomerId,
		Title:      m.Title,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ChatMessageModelToEntity(m model.ChatMessage) entity.ChatMessage {
	return entity.ChatMessage{
		Id:            m.Id,
		ChatSessionId: m.ChatSessionId,
		Role:          m.Role,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
	}
}
