package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"carepal-be/internal/entity"
	"carepal-be/internal/mapper"
	"carepal-be/internal/model"
	"carepal-be/internal/repository/contract"
)

type ChatSessionRepositoryImpl struct {
	db *gorm.DB
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{db: db}
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := model.ChatSession{
		Id:         session.Id,
		CustomerId: session.CustomerId,
		Title:      session.Title,
	}
	if m.Title == "" {
		m.Title = "Percakapan baru"
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*session = mapper.ChatSessionModelToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	var m model.ChatSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	e := mapper.ChatSessionModelToEntity(m)
	return &e, nil
}

func (r *ChatSessionRepositoryImpl) FindAllByCustomer(ctx context.Context, customerId uuid.UUID) ([]entity.ChatSession, error) {
	var models []model.ChatSession
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerId).
		Order("updated_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.ChatSession, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.ChatSessionModelToEntity(m))
	}
	return out, nil
}

type ChatMessageRepositoryImpl struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{db: db}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	return r.CreateWithClassification(ctx, message, nil)
}

func (r *ChatMessageRepositoryImpl) CreateWithClassification(ctx context.Context, message *entity.ChatMessage, classification []byte) error {
	m := model.ChatMessage{
		Id:            message.Id,
		ChatSessionId: message.ChatSessionId,
		Role:          message.Role,
		Content:       message.Content,
	}
	if len(classification) > 0 {
		m.Classification = datatypes.JSON(classification)
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*message = mapper.ChatMessageModelToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]entity.ChatMessage, error) {
	var models []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_session_id = ?", sessionId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.ChatMessage, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.ChatMessageModelToEntity(m))
	}
	return out, nil
}
