package bootstrap

import (
	"context"
	"os"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"carepal-be/internal/config"
	"carepal-be/internal/controller"
	"carepal-be/internal/pkg/logger"
	"carepal-be/internal/pkg/mailer"
	"carepal-be/internal/repository/memory"
	"carepal-be/internal/repository/unitofwork"
	"carepal-be/internal/service"
	"carepal-be/pkg/classify"
	"carepal-be/pkg/embedding"
	"carepal-be/pkg/grounding"
	"carepal-be/pkg/inference"
	"carepal-be/pkg/llm"
	llmfactory "carepal-be/pkg/llm/factory"
	natspub "carepal-be/pkg/nats"
	"carepal-be/pkg/recommend"
)

// Container wires the whole application. Optional backends (NATS, redis,
// SMTP, inference endpoints) degrade to nil or Unavailable with a warn log
// instead of failing boot.
type Container struct {
	Logger logger.ILogger

	AuthController *controller.AuthController
	ChatController *controller.ChatController

	ConsumerService service.IConsumerService
	NatsPublisher   *natspub.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	uowFactory := unitofwork.NewRepositoryFactory(db)

	// --- external backends ---

	embedder := buildEmbedder(cfg, log)
	provider := buildLLMProvider(cfg, log)
	redisClient := buildRedis(cfg, log)

	natsPublisher, err := natspub.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Warn("bootstrap", "NATS unavailable, events will be dropped", map[string]interface{}{
			"error": err.Error(),
		})
		natsPublisher = nil
	}

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password, cfg.SMTP.Email, cfg.SMTP.SenderName)
	} else {
		log.Warn("bootstrap", "SMTP not configured, reminder mail disabled", nil)
	}

	// --- classification pipeline ---

	corpusLoader := service.NewCorpusLoader(uowFactory, embedder, redisClient, log)
	corpus, err := corpusLoader.Load(context.Background())
	if err != nil {
		log.Error("bootstrap", "Failed to load reference corpus, scope gate degraded", map[string]interface{}{
			"error": err.Error(),
		})
		corpus = classify.NewCorpus(nil)
	}

	gate := classify.NewScopeGate(embedder, corpus, cfg.Classifier.SimilarityThreshold)
	domains := classify.NewDomainClassifier(
		classifierState(cfg, cfg.Classifier.DomainModel, log, "domain"),
		classify.KeywordTable{
			Pregnancy: cfg.Classifier.PregnancyKeywords,
			General:   cfg.Classifier.GeneralKeywords,
		},
		cfg.Classifier.FallbackConfidence,
	)
	intents := classify.NewIntentClassifier(
		classifierState(cfg, cfg.Classifier.PregnancyModel, log, "pregnancy intent"),
		classifierState(cfg, cfg.Classifier.GeneralModel, log, "general intent"),
	)
	pipeline := classify.NewPipeline(gate, domains, intents, log)

	// --- grounding and recommendations ---

	assembler := grounding.NewAssembler(uowFactory, loadKnowledge(cfg, log))
	prompts := grounding.NewPromptBuilder()

	table := recommend.DefaultTable()
	if cfg.Recommendation.TablePath != "" {
		if loaded, err := recommend.LoadTable(cfg.Recommendation.TablePath); err != nil {
			log.Warn("bootstrap", "Failed to load recommendation table, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			table = loaded
		}
	}

	generationTimeout := time.Duration(cfg.Ai.GenerationTimeout) * time.Second
	engine := recommend.NewEngine(provider, table, generationTimeout, log)

	// --- eventing ---

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, uowFactory, log)

	// --- services and controllers ---

	state := memory.NewInteractionStateRepository()

	authService := service.NewAuthService(uowFactory, natsPublisher, cfg.App.JWTSecret, log)
	chatService := service.NewChatService(
		uowFactory, pipeline, assembler, prompts, provider, engine, state,
		publisherService, natsPublisher, emailService, log, generationTimeout,
	)
	recommendationService := service.NewRecommendationService(uowFactory, engine, state, log)

	return &Container{
		Logger:          log,
		AuthController:  controller.NewAuthController(authService),
		ChatController:  controller.NewChatController(chatService, recommendationService),
		ConsumerService: consumerService,
		NatsPublisher:   natsPublisher,
	}
}

func buildEmbedder(cfg *config.Config, log logger.ILogger) embedding.Provider {
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		if cfg.Keys.GoogleGemini == "" {
			log.Warn("bootstrap", "Gemini embedding selected but no API key, scope gate degraded", nil)
			return nil
		}
		return embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	case "ollama":
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
	default:
		log.Warn("bootstrap", "Unknown embedding provider, scope gate degraded", map[string]interface{}{
			"provider": cfg.Ai.EmbeddingProvider,
		})
		return nil
	}
}

func buildLLMProvider(cfg *config.Config, log logger.ILogger) llm.LLMProvider {
	provider, err := llmfactory.NewProvider(llmfactory.ProviderConfig{
		Provider:     cfg.Ai.LLMProvider,
		Model:        cfg.Ai.LLMModel,
		GeminiAPIKey: cfg.Keys.GoogleGemini,
		OllamaURL:    cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Warn("bootstrap", "Generation provider unavailable, replies will use fallbacks", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return provider
}

func buildRedis(cfg *config.Config, log logger.ILogger) *redis.Client {
	opts, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Warn("bootstrap", "Invalid redis URL, embedding cache disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("bootstrap", "Redis unreachable, embedding cache disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return client
}

func classifierState(cfg *config.Config, model string, log logger.ILogger, name string) inference.State {
	if cfg.Classifier.InferenceBaseURL == "" || model == "" {
		log.Warn("bootstrap", "Classifier not configured, stage will use its fallback", map[string]interface{}{
			"classifier": name,
		})
		return inference.Unavailable()
	}
	return inference.Loaded(inference.NewHTTPClient(cfg.Classifier.InferenceBaseURL, model, cfg.Keys.HuggingFace))
}

func loadKnowledge(cfg *config.Config, log logger.ILogger) string {
	if cfg.Classifier.KnowledgeBasePath == "" {
		return ""
	}
	raw, err := os.ReadFile(cfg.Classifier.KnowledgeBasePath)
	if err != nil {
		log.Warn("bootstrap", "Failed to read knowledge base file", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}
	return string(raw)
}
