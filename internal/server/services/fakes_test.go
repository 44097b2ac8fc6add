package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pandax-i/healthhub/internal/dbx"
	dailyrepo "github.com/pandax-i/healthhub/internal/server/repositories/daily"
	financerepo "github.com/pandax-i/healthhub/internal/server/repositories/finance"
	medsrepo "github.com/pandax-i/healthhub/internal/server/repositories/medications"
	memosrepo "github.com/pandax-i/healthhub/internal/server/repositories/memos"
	stoolrepo "github.com/pandax-i/healthhub/internal/server/repositories/stool"
	usersrepo "github.com/pandax-i/healthhub/internal/server/repositories/users"
	"github.com/pandax-i/healthhub/internal/server/models"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- fake repositories ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	createOAuthOut *models.User
	createOAuthErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	updateHashErr error
	updatedHash   string
}

func (f *fakeUsersRepo) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeUsersRepo) CreateOAuth(ctx context.Context, username, email string) (*models.User, error) {
	if f.createOAuthErr != nil {
		return nil, f.createOAuthErr
	}
	return f.createOAuthOut, nil
}
func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}
func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}
func (f *fakeUsersRepo) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	f.updatedHash = passwordHash
	return f.updateHashErr
}

type fakeMedsRepo struct {
	listOut []models.Medication
	listErr error

	createErr error
	updateErr error
	deleteErr error

	decOK  bool
	decErr error

	exists    bool
	existsErr error

	insertLogErr   error
	insertLogCalls int

	logsOut []models.MedicationLog
	logsErr error
}

func (f *fakeMedsRepo) List(ctx context.Context, userID int64) ([]models.Medication, error) {
	return f.listOut, f.listErr
}
func (f *fakeMedsRepo) Create(ctx context.Context, m *models.Medication) (*models.Medication, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	m.ID = 1
	return m, nil
}
func (f *fakeMedsRepo) Update(ctx context.Context, m *models.Medication) error { return f.updateErr }
func (f *fakeMedsRepo) Delete(ctx context.Context, userID, id int64) error     { return f.deleteErr }
func (f *fakeMedsRepo) DecrementStock(ctx context.Context, userID, id int64, dose int) (bool, error) {
	return f.decOK, f.decErr
}
func (f *fakeMedsRepo) Exists(ctx context.Context, userID, id int64) (bool, error) {
	return f.exists, f.existsErr
}
func (f *fakeMedsRepo) InsertLog(ctx context.Context, userID, medicationID int64) error {
	f.insertLogCalls++
	return f.insertLogErr
}
func (f *fakeMedsRepo) Logs(ctx context.Context, userID, medicationID int64) ([]models.MedicationLog, error) {
	return f.logsOut, f.logsErr
}

type fakeStoolRepo struct {
	listOut  []models.StoolLog
	listErr  error
	datesOut []string
	datesErr error

	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeStoolRepo) List(ctx context.Context, userID int64) ([]models.StoolLog, error) {
	return f.listOut, f.listErr
}
func (f *fakeStoolRepo) Dates(ctx context.Context, userID int64) ([]string, error) {
	return f.datesOut, f.datesErr
}
func (f *fakeStoolRepo) Create(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	l.ID = 1
	return l, nil
}
func (f *fakeStoolRepo) Update(ctx context.Context, l *models.StoolLog) (*models.StoolLog, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return l, nil
}
func (f *fakeStoolRepo) Delete(ctx context.Context, userID, id int64) error { return f.deleteErr }

type fakeDailyRepo struct {
	itemsOut []models.DailyItem
	itemsErr error

	createItemErr error

	itemName    string
	itemNameErr error

	deletedLogs   int64
	delLogsErr    error
	delLogsCalls  int
	delItemErr    error
	delItemCalls  int

	completeOK  bool
	completeErr error

	logsOut []models.DailyLog
	logsErr error

	upsertErr error

	searchOut []models.DailyLog
	searchErr error
}

func (f *fakeDailyRepo) ListItems(ctx context.Context, userID int64) ([]models.DailyItem, error) {
	return f.itemsOut, f.itemsErr
}
func (f *fakeDailyRepo) CreateItem(ctx context.Context, item *models.DailyItem) (*models.DailyItem, error) {
	if f.createItemErr != nil {
		return nil, f.createItemErr
	}
	item.ID = 1
	return item, nil
}
func (f *fakeDailyRepo) GetItemName(ctx context.Context, userID, id int64) (string, error) {
	return f.itemName, f.itemNameErr
}
func (f *fakeDailyRepo) DeleteLogsByItemName(ctx context.Context, userID int64, itemName string) (int64, error) {
	f.delLogsCalls++
	return f.deletedLogs, f.delLogsErr
}
func (f *fakeDailyRepo) DeleteItem(ctx context.Context, userID, id int64) error {
	f.delItemCalls++
	return f.delItemErr
}
func (f *fakeDailyRepo) CompleteItem(ctx context.Context, userID, id int64) (bool, error) {
	return f.completeOK, f.completeErr
}
func (f *fakeDailyRepo) LogsByDate(ctx context.Context, userID int64, date string) ([]models.DailyLog, error) {
	return f.logsOut, f.logsErr
}
func (f *fakeDailyRepo) UpsertLog(ctx context.Context, l *models.DailyLog) error { return f.upsertErr }
func (f *fakeDailyRepo) SearchLogs(ctx context.Context, userID int64, q string) ([]models.DailyLog, error) {
	return f.searchOut, f.searchErr
}

type fakeMemosRepo struct {
	listOut []models.Memo
	listErr error

	createErr error

	setOK  bool
	setErr error

	deleteErr error

	searchOut []models.Memo
	searchErr error
}

func (f *fakeMemosRepo) List(ctx context.Context, userID int64) ([]models.Memo, error) {
	return f.listOut, f.listErr
}
func (f *fakeMemosRepo) Create(ctx context.Context, m *models.Memo) (*models.Memo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	m.ID = 1
	return m, nil
}
func (f *fakeMemosRepo) SetStatus(ctx context.Context, userID, id int64, isCompleted bool) (bool, error) {
	return f.setOK, f.setErr
}
func (f *fakeMemosRepo) Delete(ctx context.Context, userID, id int64) error { return f.deleteErr }
func (f *fakeMemosRepo) SearchCompleted(ctx context.Context, userID int64, q string) ([]models.Memo, error) {
	return f.searchOut, f.searchErr
}

type fakeFinanceRepo struct {
	accountsOut []models.AccountWithBalance
	accountsErr error

	createAccountErr error

	txsOut []models.Transaction
	txsErr error

	createTxErr error

	loansOut []models.Loan
	loansErr error

	createLoanErr error

	setLoanOK  bool
	setLoanErr error
}

func (f *fakeFinanceRepo) ListAccounts(ctx context.Context, userID int64) ([]models.AccountWithBalance, error) {
	return f.accountsOut, f.accountsErr
}
func (f *fakeFinanceRepo) CreateAccount(ctx context.Context, a *models.Account) (*models.Account, error) {
	if f.createAccountErr != nil {
		return nil, f.createAccountErr
	}
	a.ID = 1
	return a, nil
}
func (f *fakeFinanceRepo) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return f.txsOut, f.txsErr
}
func (f *fakeFinanceRepo) CreateTransaction(ctx context.Context, tr *models.Transaction) (*models.Transaction, error) {
	if f.createTxErr != nil {
		return nil, f.createTxErr
	}
	tr.ID = 1
	return tr, nil
}
func (f *fakeFinanceRepo) ListLoans(ctx context.Context, userID int64) ([]models.Loan, error) {
	return f.loansOut, f.loansErr
}
func (f *fakeFinanceRepo) CreateLoan(ctx context.Context, l *models.Loan) (*models.Loan, error) {
	if f.createLoanErr != nil {
		return nil, f.createLoanErr
	}
	l.ID = 1
	return l, nil
}
func (f *fakeFinanceRepo) SetLoanStatus(ctx context.Context, userID, id int64, status string) (bool, error) {
	return f.setLoanOK, f.setLoanErr
}

// --- fake repository manager ---

type fakeRepoManager struct {
	users   *fakeUsersRepo
	meds    *fakeMedsRepo
	stool   *fakeStoolRepo
	daily   *fakeDailyRepo
	memos   *fakeMemosRepo
	finance *fakeFinanceRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository          { return m.users }
func (m *fakeRepoManager) Medications(db dbx.DBTX) medsrepo.Repository     { return m.meds }
func (m *fakeRepoManager) Stool(db dbx.DBTX) stoolrepo.Repository          { return m.stool }
func (m *fakeRepoManager) Daily(db dbx.DBTX) dailyrepo.Repository          { return m.daily }
func (m *fakeRepoManager) Memos(db dbx.DBTX) memosrepo.Repository          { return m.memos }
func (m *fakeRepoManager) Finance(db dbx.DBTX) financerepo.Repository      { return m.finance }
