package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"agency_backoffice/internal/adapter/persistence/repository"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testStore wires the gorm repositories over a private in-memory sqlite database.
type testStore struct {
	db        *gorm.DB
	tx        *repository.GormTransactor
	budgets   *repository.BudgetGormRepository
	clients   *repository.ClientGormRepository
	users     *repository.UserGormRepository
	projects  *repository.ProjectGormRepository
	contracts *repository.ContractGormRepository
	payments  *repository.PaymentGormRepository
	schedules *repository.ScheduleGormRepository
	mailer    *recordingMailer
	notes     *memNotifications
	dispatch  *Dispatcher
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(repository.Models()...))

	s := &testStore{
		db:        db,
		tx:        repository.NewGormTransactor(db),
		budgets:   repository.NewBudgetGormRepository(db),
		clients:   repository.NewClientGormRepository(db),
		users:     repository.NewUserGormRepository(db),
		projects:  repository.NewProjectGormRepository(db),
		contracts: repository.NewContractGormRepository(db),
		payments:  repository.NewPaymentGormRepository(db),
		schedules: repository.NewScheduleGormRepository(db),
		mailer:    &recordingMailer{},
		notes:     &memNotifications{},
	}
	s.dispatch = NewDispatcher(s.mailer, s.notes, s.users, "https://app.test", zapNop())
	return s
}

func (s *testStore) ledger(gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return NewPaymentUseCase(s.tx, s.payments, s.budgets, s.projects, gateway, s.dispatch, zapNop())
}

func (s *testStore) conversion() *ConversionUseCase {
	return NewConversionUseCase(s.tx, s.budgets, s.clients, s.users, s.projects, s.contracts, s.ledger(nil), s.dispatch, zapNop())
}

func (s *testStore) seedAdmin(t *testing.T) entities.User {
	t.Helper()
	u, err := s.users.Create(context.Background(), entities.User{
		ID:        uuid.NewString(),
		Name:      "Admin",
		Email:     "admin@agency.test",
		Role:      entities.UserRoleAdmin,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return u
}

// seedBudget stores a budget in the given status with a final value of 10000.
func (s *testStore) seedBudget(t *testing.T, status entities.BudgetStatus) entities.Budget {
	t.Helper()
	fv := decimal.NewFromInt(10000)
	now := time.Now().UTC()
	b, err := s.budgets.Create(context.Background(), entities.Budget{
		ID:           uuid.NewString(),
		ClientName:   "Maria Silva",
		ClientEmail:  "maria@example.com",
		ClientPhone:  "+55 11 99999-0000",
		ProjectType:  "Site",
		Complexity:   "média",
		Timeline:     "urgente",
		Details:      "Site institucional",
		EstimatedMin: decimal.NewFromInt(8000),
		EstimatedMax: decimal.NewFromInt(12000),
		FinalValue:   &fv,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return b
}

func (s *testStore) countRows(t *testing.T, model string, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Table(model).Where(where, args...).Count(&n).Error)
	return n
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []interfaces.EmailMessage
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg interfaces.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type memNotifications struct {
	mu    sync.Mutex
	items []entities.Notification
}

func (n *memNotifications) Create(_ context.Context, x entities.Notification) (entities.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, x)
	return x, nil
}

func (n *memNotifications) ListByUserID(_ context.Context, userID string) ([]entities.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := []entities.Notification{}
	for _, x := range n.items {
		if x.UserID == userID {
			out = append(out, x)
		}
	}
	return out, nil
}

func (n *memNotifications) MarkRead(_ context.Context, id, userID string) (entities.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, x := range n.items {
		if x.ID == id && x.UserID == userID {
			n.items[i].Read = true
			return n.items[i], nil
		}
	}
	return entities.Notification{}, nil
}

func (n *memNotifications) all() []entities.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]entities.Notification(nil), n.items...)
}

func zapNop() *zap.Logger { return zap.NewNop() }
