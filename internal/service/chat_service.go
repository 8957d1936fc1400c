package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"carepal-be/internal/constant"
	"carepal-be/internal/dto"
	"carepal-be/internal/entity"
	"carepal-be/internal/pkg/logger"
	"carepal-be/internal/pkg/mailer"
	"carepal-be/internal/repository/memory"
	"carepal-be/internal/repository/specification"
	"carepal-be/internal/repository/unitofwork"
	"carepal-be/pkg/classify"
	"carepal-be/pkg/events"
	"carepal-be/pkg/grounding"
	"carepal-be/pkg/llm"
	natspub "carepal-be/pkg/nats"
	"carepal-be/pkg/recommend"
)

var (
	ErrSessionNotFound  = errors.New("chat session not found")
	ErrSessionForbidden = errors.New("chat session belongs to another customer")
)

type IChatService interface {
	CreateSession(ctx context.Context, customerId uuid.UUID) (*dto.ChatSessionResponse, error)
	GetSessions(ctx context.Context, customerId uuid.UUID) ([]dto.ChatSessionResponse, error)
	GetHistory(ctx context.Context, customerId, sessionId uuid.UUID) ([]dto.ChatMessageResponse, error)
	SendChat(ctx context.Context, customerId uuid.UUID, req dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	pipeline          *classify.Pipeline
	assembler         *grounding.Assembler
	prompts           *grounding.PromptBuilder
	provider          llm.LLMProvider // nil when no generation backend is configured
	engine            *recommend.Engine
	state             *memory.InteractionStateRepository
	publisher         IPublisherService
	natsPublisher     *natspub.Publisher
	mailer            mailer.IEmailService // nil when SMTP is not configured
	logger            logger.ILogger
	generationTimeout time.Duration
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	pipeline *classify.Pipeline,
	assembler *grounding.Assembler,
	prompts *grounding.PromptBuilder,
	provider llm.LLMProvider,
	engine *recommend.Engine,
	state *memory.InteractionStateRepository,
	publisher IPublisherService,
	natsPublisher *natspub.Publisher,
	emailService mailer.IEmailService,
	log logger.ILogger,
	generationTimeout time.Duration,
) IChatService {
	return &chatService{
		uowFactory:        uowFactory,
		pipeline:          pipeline,
		assembler:         assembler,
		prompts:           prompts,
		provider:          provider,
		engine:            engine,
		state:             state,
		publisher:         publisher,
		natsPublisher:     natsPublisher,
		mailer:            emailService,
		logger:            log,
		generationTimeout: generationTimeout,
	}
}

func (s *chatService) CreateSession(ctx context.Context, customerId uuid.UUID) (*dto.ChatSessionResponse, error) {
	session := &entity.ChatSession{
		Id:         uuid.New(),
		CustomerId: customerId,
	}
	if err := s.uowFactory.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return &dto.ChatSessionResponse{
		Id:        session.Id,
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}, nil
}

func (s *chatService) GetSessions(ctx context.Context, customerId uuid.UUID) ([]dto.ChatSessionResponse, error) {
	sessions, err := s.uowFactory.ChatSessionRepository().FindAllByCustomer(ctx, customerId)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, dto.ChatSessionResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}
	return out, nil
}

func (s *chatService) GetHistory(ctx context.Context, customerId, sessionId uuid.UUID) ([]dto.ChatMessageResponse, error) {
	if _, err := s.authorizeSession(ctx, customerId, sessionId); err != nil {
		return nil, err
	}

	messages, err := s.uowFactory.ChatMessageRepository().FindBySession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.ChatMessageResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// SendChat runs one full turn: classify, then answer generation and
// recommendation generation in parallel, then persist both sides of the
// exchange.
func (s *chatService) SendChat(ctx context.Context, customerId uuid.UUID, req dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if _, err := s.authorizeSession(ctx, customerId, req.ChatSessionId); err != nil {
		return nil, err
	}

	result := s.pipeline.Classify(ctx, req.Message)
	s.state.SaveLastClassification(req.ChatSessionId, result)
	s.publishTelemetry(ctx, customerId, req.ChatSessionId, result)

	// Recommendations never block the reply path longer than their own
	// generation timeout; a failure inside degrades to the default table.
	recChan := make(chan recommend.Set, 1)
	go func() {
		userCtx, err := grounding.BuildUserContext(ctx, s.uowFactory, customerId)
		if err != nil {
			s.logger.Warn("chat", "Failed to build user context for recommendations", map[string]interface{}{
				"error": err.Error(),
			})
			userCtx = nil
		}
		recChan <- s.engine.Recommend(ctx, userCtx, &result)
	}()

	reply := s.buildReply(ctx, customerId, req.Message, result)
	recommendations := <-recChan

	if err := s.persistTurn(ctx, req, reply, result); err != nil {
		return nil, err
	}

	s.publishTurnCompleted(ctx, customerId, req.ChatSessionId, result)

	return &dto.SendChatResponse{
		Reply:          reply,
		Classification: summarize(result),
		Recommendations: dto.RecommendationSet{
			Questions:  recommendations.Questions,
			Provenance: string(recommendations.Provenance),
		},
	}, nil
}

func (s *chatService) authorizeSession(ctx context.Context, customerId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := s.uowFactory.ChatSessionRepository().FindById(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.CustomerId != customerId {
		return nil, ErrSessionForbidden
	}
	return session, nil
}

// buildReply maps the classification onto the response policy: fixed message
// out of scope, clarification on unresolved intent, deterministic computation
// for the ANC reminder, grounded generation otherwise.
func (s *chatService) buildReply(ctx context.Context, customerId uuid.UUID, message string, result classify.Result) string {
	if !result.InScope {
		return constant.OutOfScopeReply
	}
	if result.Intent == classify.IntentNone {
		return constant.UnresolvedIntentReply
	}
	if result.Intent == classify.IntentANCReminder {
		return s.ancReminderReply(ctx, customerId)
	}
	return s.generateReply(ctx, customerId, message, result.Intent)
}

func (s *chatService) ancReminderReply(ctx context.Context, customerId uuid.UUID) string {
	pregnancy, visits, err := s.assembler.PregnancyState(ctx, customerId)
	if err != nil {
		s.logger.Error("chat", "Failed to load pregnancy state", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.GenerationFailureReply
	}

	schedule := grounding.ComputeANCSchedule(pregnancy, visits, time.Now())
	if schedule.HasActivePregnancy {
		s.sendReminderMail(ctx, customerId, schedule.Message)
	}
	return schedule.Message
}

// sendReminderMail is fire and forget: mail trouble must never break a chat
// turn.
func (s *chatService) sendReminderMail(ctx context.Context, customerId uuid.UUID, scheduleMessage string) {
	if s.mailer == nil {
		return
	}
	customer, err := s.uowFactory.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil || customer == nil || customer.Email == "" {
		return
	}

	go func(email, name string) {
		if err := s.mailer.SendANCReminder(email, name, scheduleMessage); err != nil {
			s.logger.Warn("chat", "Failed to send ANC reminder mail", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}(customer.Email, customer.Name)
}

func (s *chatService) generateReply(ctx context.Context, customerId uuid.UUID, message string, intent classify.Intent) string {
	if s.provider == nil {
		return constant.GenerationFailureReply
	}

	ictx, err := s.assembler.BuildContext(ctx, intent, customerId)
	if err != nil {
		s.logger.Error("chat", "Failed to assemble intent context", map[string]interface{}{
			"intent": string(intent),
			"error":  err.Error(),
		})
		return constant.GenerationFailureReply
	}

	customer, err := s.uowFactory.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		s.logger.Error("chat", "Failed to load customer", map[string]interface{}{"error": err.Error()})
		return constant.GenerationFailureReply
	}

	prompt := s.prompts.BuildResponsePrompt(customer, message, intent, ictx)

	genCtx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	reply, err := s.provider.Generate(genCtx, prompt)
	if err != nil {
		s.logger.Error("chat", "Generation failed", map[string]interface{}{
			"intent": string(intent),
			"error":  err.Error(),
		})
		return constant.GenerationFailureReply
	}
	return reply
}

func (s *chatService) persistTurn(ctx context.Context, req dto.SendChatRequest, reply string, result classify.Result) error {
	snapshot, err := json.Marshal(result)
	if err != nil {
		snapshot = nil
	}

	uow := s.uowFactory.NewUnitOfWork()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	userMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: req.ChatSessionId,
		Role:          constant.ChatRoleUser,
		Content:       req.Message,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return err
	}

	assistantMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: req.ChatSessionId,
		Role:          constant.ChatRoleAssistant,
		Content:       reply,
	}
	if err := uow.ChatMessageRepository().CreateWithClassification(ctx, assistantMsg, snapshot); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *chatService) publishTelemetry(ctx context.Context, customerId, sessionId uuid.UUID, result classify.Result) {
	telemetry := dto.ClassificationTelemetry{
		CustomerId:      customerId,
		ChatSessionId:   sessionId,
		InScope:         result.InScope,
		Domain:          string(result.Domain),
		Intent:          string(result.Intent),
		SimilarityScore: result.SimilarityScore,
		UsedFallback:    stageNames(result.UsedFallback),
		OccurredAt:      time.Now(),
	}
	if err := s.publisher.PublishClassification(ctx, telemetry); err != nil {
		s.logger.Warn("chat", "Failed to publish classification telemetry", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *chatService) publishTurnCompleted(ctx context.Context, customerId, sessionId uuid.UUID, result classify.Result) {
	err := s.natsPublisher.Publish(ctx, events.BaseEvent{
		Type: events.TypeChatTurnCompleted,
		Data: map[string]interface{}{
			"customer_id":     customerId.String(),
			"chat_session_id": sessionId.String(),
			"intent":          string(result.Intent),
			"in_scope":        result.InScope,
		},
		OccurredAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("chat", "Failed to publish chat turn event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func summarize(result classify.Result) dto.ClassificationSummary {
	return dto.ClassificationSummary{
		InScope:         result.InScope,
		Domain:          string(result.Domain),
		Intent:          string(result.Intent),
		SimilarityScore: result.SimilarityScore,
		UsedFallback:    stageNames(result.UsedFallback),
	}
}

func stageNames(stages []classify.Stage) []string {
	if len(stages) == 0 {
		return nil
	}
	out := make([]string, 0, len(stages))
	for _, s := range stages {
		out = append(out, string(s))
	}
	return out
}
