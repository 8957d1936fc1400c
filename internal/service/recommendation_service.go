package service

import (
	"context"

	"github.com/google/uuid"

	"carepal-be/internal/dto"
	"carepal-be/internal/pkg/logger"
	"carepal-be/internal/repository/memory"
	"carepal-be/internal/repository/unitofwork"
	"carepal-be/pkg/classify"
	"carepal-be/pkg/grounding"
	"carepal-be/pkg/recommend"
)

type IRecommendationService interface {
	// GetRecommendations builds suggestions for a customer. sessionId, when
	// given, biases them toward the session's last resolved intent.
	GetRecommendations(ctx context.Context, customerId uuid.UUID, sessionId *uuid.UUID) (dto.RecommendationSet, error)
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *recommend.Engine
	state      *memory.InteractionStateRepository
	logger     logger.ILogger
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	engine *recommend.Engine,
	state *memory.InteractionStateRepository,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
		engine:     engine,
		state:      state,
		logger:     log,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, customerId uuid.UUID, sessionId *uuid.UUID) (dto.RecommendationSet, error) {
	userCtx, err := grounding.BuildUserContext(ctx, s.uowFactory, customerId)
	if err != nil {
		return dto.RecommendationSet{}, err
	}

	var last *classify.Result
	if sessionId != nil {
		if result, ok := s.state.LastClassification(*sessionId); ok {
			last = &result
		}
	}

	set := s.engine.Recommend(ctx, userCtx, last)
	return dto.RecommendationSet{
		Questions:  set.Questions,
		Provenance: string(set.Provenance),
	}, nil
}
