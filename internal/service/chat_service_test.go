package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"carepal-be/internal/constant"
	"carepal-be/internal/dto"
	"carepal-be/internal/entity"
	"carepal-be/internal/model"
	"carepal-be/internal/repository/contract"
	"carepal-be/internal/repository/memory"
	"carepal-be/internal/repository/specification"
	"carepal-be/internal/repository/unitofwork"
	"carepal-be/pkg/classify"
	"carepal-be/pkg/grounding"
	"carepal-be/pkg/inference"
	"carepal-be/pkg/llm"
	"carepal-be/pkg/recommend"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeProvider struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return f.Generate(ctx, "", opts...)
}

type fakeCustomerRepository struct {
	customer *entity.Customer
	err      error
}

func (f *fakeCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return nil
}

func (f *fakeCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return nil
}

func (f *fakeCustomerRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	return f.customer, f.err
}

func (f *fakeCustomerRepository) FindByNIK(ctx context.Context, nik string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.customer == nil || f.customer.NIK != nik {
		return nil, nil
	}
	return f.customer, nil
}

type fakePregnancyRepository struct {
	active *entity.Pregnancy
	err    error
}

func (f *fakePregnancyRepository) FindByCustomer(ctx context.Context, customerId uuid.UUID) ([]entity.Pregnancy, error) {
	if f.active == nil {
		return nil, f.err
	}
	return []entity.Pregnancy{*f.active}, f.err
}

func (f *fakePregnancyRepository) FindActiveByCustomer(ctx context.Context, customerId uuid.UUID) (*entity.Pregnancy, error) {
	return f.active, f.err
}

type fakeANCVisitRepository struct {
	visits []entity.ANCVisit
}

func (f *fakeANCVisitRepository) FindByPregnancyIds(ctx context.Context, pregnancyIds []uuid.UUID) ([]entity.ANCVisit, error) {
	return f.visits, nil
}

type fakeTreatmentVisitRepository struct{ visits []entity.TreatmentVisit }

func (f *fakeTreatmentVisitRepository) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.TreatmentVisit, error) {
	return f.visits, nil
}

type fakeDiagnosisRepository struct{}

func (fakeDiagnosisRepository) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.Diagnosis, error) {
	return nil, nil
}

type fakePrescriptionRepository struct{}

func (fakePrescriptionRepository) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.Prescription, error) {
	return nil, nil
}

type fakeLabResultRepository struct{}

func (fakeLabResultRepository) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.LabResult, error) {
	return nil, nil
}

type fakeChatSessionRepository struct {
	sessions map[uuid.UUID]*entity.ChatSession
}

func (f *fakeChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	if f.sessions == nil {
		f.sessions = map[uuid.UUID]*entity.ChatSession{}
	}
	f.sessions[session.Id] = session
	return nil
}

func (f *fakeChatSessionRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	return f.sessions[id], nil
}

func (f *fakeChatSessionRepository) FindAllByCustomer(ctx context.Context, customerId uuid.UUID) ([]entity.ChatSession, error) {
	var out []entity.ChatSession
	for _, s := range f.sessions {
		if s.CustomerId == customerId {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeChatMessageRepository struct {
	messages  []entity.ChatMessage
	snapshots [][]byte
}

func (f *fakeChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeChatMessageRepository) CreateWithClassification(ctx context.Context, message *entity.ChatMessage, classification []byte) error {
	f.messages = append(f.messages, *message)
	f.snapshots = append(f.snapshots, classification)
	return nil
}

func (f *fakeChatMessageRepository) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]entity.ChatMessage, error) {
	var out []entity.ChatMessage
	for _, m := range f.messages {
		if m.ChatSessionId == sessionId {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakePublisherService struct {
	published []dto.ClassificationTelemetry
}

func (f *fakePublisherService) PublishClassification(ctx context.Context, telemetry dto.ClassificationTelemetry) error {
	f.published = append(f.published, telemetry)
	return nil
}

// fakeRepositoryFactory hands out the fakes above. Accessors for repositories
// a test never touches return nil.
type fakeRepositoryFactory struct {
	customers   *fakeCustomerRepository
	pregnancies *fakePregnancyRepository
	ancVisits   *fakeANCVisitRepository
	sessions    *fakeChatSessionRepository
	messages    *fakeChatMessageRepository
	visits      *fakeTreatmentVisitRepository
}

func newFakeRepositoryFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		customers:   &fakeCustomerRepository{},
		pregnancies: &fakePregnancyRepository{},
		ancVisits:   &fakeANCVisitRepository{},
		sessions:    &fakeChatSessionRepository{sessions: map[uuid.UUID]*entity.ChatSession{}},
		messages:    &fakeChatMessageRepository{},
		visits:      &fakeTreatmentVisitRepository{},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork() unitofwork.UnitOfWork { return &fakeUnitOfWork{f} }

func (f *fakeRepositoryFactory) CustomerRepository() contract.CustomerRepository { return f.customers }
func (f *fakeRepositoryFactory) TreatmentVisitRepository() contract.TreatmentVisitRepository {
	return f.visits
}
func (f *fakeRepositoryFactory) DiagnosisRepository() contract.DiagnosisRepository {
	return fakeDiagnosisRepository{}
}
func (f *fakeRepositoryFactory) PrescriptionRepository() contract.PrescriptionRepository {
	return fakePrescriptionRepository{}
}
func (f *fakeRepositoryFactory) LabResultRepository() contract.LabResultRepository {
	return fakeLabResultRepository{}
}
func (f *fakeRepositoryFactory) PhysicalConditionRepository() contract.PhysicalConditionRepository {
	return nil
}
func (f *fakeRepositoryFactory) PregnancyRepository() contract.PregnancyRepository {
	return f.pregnancies
}
func (f *fakeRepositoryFactory) ANCVisitRepository() contract.ANCVisitRepository {
	return f.ancVisits
}
func (f *fakeRepositoryFactory) DeliveryRepository() contract.DeliveryRepository         { return nil }
func (f *fakeRepositoryFactory) ImmunizationRepository() contract.ImmunizationRepository { return nil }
func (f *fakeRepositoryFactory) SupplementRepository() contract.SupplementRepository     { return nil }
func (f *fakeRepositoryFactory) DoctorRepository() contract.DoctorRepository             { return nil }
func (f *fakeRepositoryFactory) DoctorScheduleRepository() contract.DoctorScheduleRepository {
	return nil
}
func (f *fakeRepositoryFactory) ChatSessionRepository() contract.ChatSessionRepository {
	return f.sessions
}
func (f *fakeRepositoryFactory) ChatMessageRepository() contract.ChatMessageRepository {
	return f.messages
}
func (f *fakeRepositoryFactory) IntentExampleRepository() contract.IntentExampleRepository {
	return nil
}
func (f *fakeRepositoryFactory) SystemLogRepository() contract.SystemLogRepository { return nil }

type fakeUnitOfWork struct {
	factory *fakeRepositoryFactory
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return u.factory.sessions
}
func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.factory.messages
}
func (u *fakeUnitOfWork) CustomerRepository() contract.CustomerRepository {
	return u.factory.customers
}
func (u *fakeUnitOfWork) IntentExampleRepository() contract.IntentExampleRepository { return nil }
func (u *fakeUnitOfWork) SystemLogRepository() contract.SystemLogRepository         { return nil }

func newTestChatService(factory *fakeRepositoryFactory, provider llm.LLMProvider) *chatService {
	return &chatService{
		uowFactory:        factory,
		assembler:         grounding.NewAssembler(factory, ""),
		prompts:           grounding.NewPromptBuilder(),
		provider:          provider,
		logger:            nopLogger{},
		generationTimeout: time.Second,
	}
}

func TestBuildReplyOutOfScope(t *testing.T) {
	s := newTestChatService(newFakeRepositoryFactory(), nil)
	result := classify.Result{InScope: false, Domain: classify.DomainNone, Intent: classify.IntentNone}

	reply := s.buildReply(context.Background(), uuid.New(), "Resep nasi goreng dong", result)

	assert.Equal(t, constant.OutOfScopeReply, reply)
}

func TestBuildReplyUnresolvedIntent(t *testing.T) {
	s := newTestChatService(newFakeRepositoryFactory(), nil)
	result := classify.Result{InScope: true, Domain: classify.DomainGeneral, Intent: classify.IntentNone}

	reply := s.buildReply(context.Background(), uuid.New(), "gimana dok", result)

	assert.Equal(t, constant.UnresolvedIntentReply, reply)
}

func TestBuildReplyANCReminderWithoutActivePregnancy(t *testing.T) {
	factory := newFakeRepositoryFactory()
	provider := &fakeProvider{response: "should not be called"}
	s := newTestChatService(factory, provider)
	result := classify.Result{InScope: true, Domain: classify.DomainPregnancy, Intent: classify.IntentANCReminder}

	reply := s.buildReply(context.Background(), uuid.New(), "Kapan kontrol saya?", result)

	assert.Contains(t, reply, "tidak ada data kehamilan aktif")
	assert.Zero(t, provider.calls, "the reminder path must not call the generation service")
}

func TestBuildReplyANCReminderComputesSchedule(t *testing.T) {
	now := time.Now()
	factory := newFakeRepositoryFactory()
	factory.pregnancies.active = &entity.Pregnancy{
		Id:            uuid.New(),
		LMPDate:       now.Add(-20 * 7 * 24 * time.Hour),
		Status:        model.PregnancyStatusActive,
		GravidaNumber: 1,
	}
	factory.ancVisits.visits = []entity.ANCVisit{
		{VisitDate: now.Add(-7 * 24 * time.Hour), GestationalWeeks: 19},
	}
	provider := &fakeProvider{response: "should not be called"}
	s := newTestChatService(factory, provider)
	result := classify.Result{InScope: true, Domain: classify.DomainPregnancy, Intent: classify.IntentANCReminder}

	reply := s.buildReply(context.Background(), uuid.New(), "Kapan jadwal kontrol kehamilan saya?", result)

	assert.Contains(t, reply, "sekitar 20 minggu")
	assert.Contains(t, reply, "Jadwal kontrol kehamilan berikutnya")
	assert.Zero(t, provider.calls, "the reminder path must not call the generation service")
}

func TestBuildReplyGenerationWithoutProvider(t *testing.T) {
	s := newTestChatService(newFakeRepositoryFactory(), nil)
	result := classify.Result{InScope: true, Domain: classify.DomainGeneral, Intent: classify.IntentBloodType}

	reply := s.buildReply(context.Background(), uuid.New(), "Golongan darah saya apa?", result)

	assert.Equal(t, constant.GenerationFailureReply, reply)
}

func TestBuildReplyGeneratedFromGroundedPrompt(t *testing.T) {
	factory := newFakeRepositoryFactory()
	factory.customers.customer = &entity.Customer{
		Id:        uuid.New(),
		Name:      "Siti Aminah",
		BloodType: "O",
	}
	provider := &fakeProvider{response: "Golongan darah Anda adalah O."}
	s := newTestChatService(factory, provider)
	result := classify.Result{InScope: true, Domain: classify.DomainGeneral, Intent: classify.IntentBloodType}

	reply := s.buildReply(context.Background(), factory.customers.customer.Id, "Golongan darah saya apa?", result)

	assert.Equal(t, "Golongan darah Anda adalah O.", reply)
	assert.Equal(t, 1, provider.calls)
	assert.Contains(t, provider.lastPrompt, "PASIEN: Siti Aminah")
	assert.Contains(t, provider.lastPrompt, "golongan darah: O")
}

func TestBuildReplyGenerationFailure(t *testing.T) {
	factory := newFakeRepositoryFactory()
	factory.customers.customer = &entity.Customer{Id: uuid.New(), Name: "Siti Aminah"}
	provider := &fakeProvider{err: errors.New("upstream 500")}
	s := newTestChatService(factory, provider)
	result := classify.Result{InScope: true, Domain: classify.DomainGeneral, Intent: classify.IntentBloodType}

	reply := s.buildReply(context.Background(), factory.customers.customer.Id, "Golongan darah saya apa?", result)

	assert.Equal(t, constant.GenerationFailureReply, reply)
}

// newFullChatService wires SendChat end to end with a scope gate that has no
// embedding backend, so every message is rejected in degraded mode.
func newFullChatService(factory *fakeRepositoryFactory, publisher *fakePublisherService) IChatService {
	pipeline := classify.NewPipeline(
		classify.NewScopeGate(nil, classify.NewCorpus(nil), 0.7),
		classify.NewDomainClassifier(inference.Unavailable(), classify.KeywordTable{}, 0.5),
		classify.NewIntentClassifier(inference.Unavailable(), inference.Unavailable()),
		nopLogger{},
	)
	engine := recommend.NewEngine(nil, recommend.DefaultTable(), time.Second, nopLogger{})
	return NewChatService(
		factory,
		pipeline,
		grounding.NewAssembler(factory, ""),
		grounding.NewPromptBuilder(),
		nil,
		engine,
		memory.NewInteractionStateRepository(),
		publisher,
		nil,
		nil,
		nopLogger{},
		time.Second,
	)
}

func TestSendChatUnknownSession(t *testing.T) {
	s := newFullChatService(newFakeRepositoryFactory(), &fakePublisherService{})

	_, err := s.SendChat(context.Background(), uuid.New(), dto.SendChatRequest{
		ChatSessionId: uuid.New(),
		Message:       "halo",
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatForeignSession(t *testing.T) {
	factory := newFakeRepositoryFactory()
	sessionId := uuid.New()
	factory.sessions.sessions[sessionId] = &entity.ChatSession{Id: sessionId, CustomerId: uuid.New()}
	s := newFullChatService(factory, &fakePublisherService{})

	_, err := s.SendChat(context.Background(), uuid.New(), dto.SendChatRequest{
		ChatSessionId: sessionId,
		Message:       "halo",
	})

	assert.ErrorIs(t, err, ErrSessionForbidden)
}

func TestSendChatDegradedGateTurn(t *testing.T) {
	factory := newFakeRepositoryFactory()
	customerId := uuid.New()
	sessionId := uuid.New()
	factory.sessions.sessions[sessionId] = &entity.ChatSession{Id: sessionId, CustomerId: customerId}
	factory.customers.customer = &entity.Customer{Id: customerId, Name: "Siti Aminah"}
	publisher := &fakePublisherService{}
	s := newFullChatService(factory, publisher)

	resp, err := s.SendChat(context.Background(), customerId, dto.SendChatRequest{
		ChatSessionId: sessionId,
		Message:       "Golongan darah saya apa?",
	})

	assert.NoError(t, err)
	assert.Equal(t, constant.OutOfScopeReply, resp.Reply)
	assert.False(t, resp.Classification.InScope)
	assert.Equal(t, []string{string(classify.StageScopeGate)}, resp.Classification.UsedFallback)
	assert.Len(t, resp.Recommendations.Questions, 4)
	assert.Equal(t, string(recommend.ProvenanceFallback), resp.Recommendations.Provenance)

	// Both sides of the turn are persisted; the assistant row carries the
	// classification snapshot.
	assert.Len(t, factory.messages.messages, 2)
	assert.Equal(t, constant.ChatRoleUser, factory.messages.messages[0].Role)
	assert.Equal(t, constant.ChatRoleAssistant, factory.messages.messages[1].Role)
	assert.Len(t, factory.messages.snapshots, 1)
	assert.NotEmpty(t, factory.messages.snapshots[0])

	assert.Len(t, publisher.published, 1)
	assert.Equal(t, sessionId, publisher.published[0].ChatSessionId)
}
