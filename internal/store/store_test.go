package store

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasa-dev/kasa/internal/model"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func demoStore(t *testing.T) *Store {
	t.Helper()
	s, err := Demo(quietLogger())
	require.NoError(t, err)
	return s
}

func TestDemoSeed(t *testing.T) {
	s := demoStore(t)

	assert.Len(t, s.Users(), 3)
	assert.Len(t, s.Accounts(), 3)
	assert.Len(t, s.Cards(), 3)
	assert.Len(t, s.Transactions(), 10)
	assert.Len(t, s.Loans(), 2)
	assert.Len(t, s.Subscriptions(), 6)
	assert.Len(t, s.Categories(), 13)

	u, ok := s.User("u1")
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, u.Role)

	card := s.Cards()[0]
	assert.Equal(t, 15, card.CutoffDay)
	assert.True(t, decimal.NewFromInt(45000).Equal(card.CurrentDebt))
}

func TestLookupsFallBackToUnknown(t *testing.T) {
	s := demoStore(t)

	assert.Equal(t, "Ahmet Yılmaz", s.UserName("u1"))
	assert.Equal(t, UnknownName, s.UserName("nope"))
	assert.Equal(t, "Bonus Card", s.AccountName("c1"))
	assert.Equal(t, "Ziraat Bankası", s.AccountName("a1"))
	assert.Equal(t, UnknownName, s.AccountName("nope"))
	assert.True(t, s.IsCard("c1"))
	assert.False(t, s.IsCard("a1"))
}

func TestAddTransactionMintsUniqueIDs(t *testing.T) {
	s := demoStore(t)
	before := len(s.Transactions())

	tx1 := s.AddTransaction(model.Transaction{Description: "one", Amount: decimal.NewFromInt(10), Type: model.TransactionExpense})
	tx2 := s.AddTransaction(model.Transaction{Description: "two", Amount: decimal.NewFromInt(20), Type: model.TransactionExpense})

	assert.NotEmpty(t, tx1.ID)
	assert.NotEmpty(t, tx2.ID)
	assert.NotEqual(t, tx1.ID, tx2.ID)
	assert.Len(t, s.Transactions(), before+2)
}

func TestAddTransactionReplacesWholeList(t *testing.T) {
	s := demoStore(t)
	snapshot := s.Transactions()
	before := len(snapshot)

	s.AddTransaction(model.Transaction{Description: "new", Amount: decimal.NewFromInt(5), Type: model.TransactionExpense})

	// The previously handed-out slice is untouched; mutation swapped in a
	// fresh list.
	assert.Len(t, snapshot, before)
	assert.Len(t, s.Transactions(), before+1)
}

func TestUpdateTransaction(t *testing.T) {
	s := demoStore(t)

	tx, ok := s.Transaction("t2")
	require.True(t, ok)
	tx.Description = "Benzin ve Otoyol"
	require.True(t, s.UpdateTransaction(tx))

	got, ok := s.Transaction("t2")
	require.True(t, ok)
	assert.Equal(t, "Benzin ve Otoyol", got.Description)

	assert.False(t, s.UpdateTransaction(model.Transaction{ID: "missing"}))
}

func TestDeleteTransaction(t *testing.T) {
	s := demoStore(t)
	before := len(s.Transactions())

	require.True(t, s.DeleteTransaction("t1"))
	assert.Len(t, s.Transactions(), before-1)
	_, ok := s.Transaction("t1")
	assert.False(t, ok)

	assert.False(t, s.DeleteTransaction("t1"))
}

func TestAddAccountAndCardReindex(t *testing.T) {
	s := demoStore(t)

	acc := s.AddAccount(model.AssetAccount{Name: "Yeni Hesap", Type: model.AccountTypeBank, Balance: decimal.NewFromInt(100)})
	assert.Equal(t, "Yeni Hesap", s.AccountName(acc.ID))
	assert.False(t, s.IsCard(acc.ID))

	card := s.AddCard(model.CreditCard{Name: "Yeni Kart", CutoffDay: 5, MinPaymentRatio: decimal.NewFromInt(20)})
	assert.Equal(t, "Yeni Kart", s.AccountName(card.ID))
	assert.True(t, s.IsCard(card.ID))
}

func TestAddLoanAndSubscription(t *testing.T) {
	s := demoStore(t)

	loan := s.AddLoan(model.Loan{Name: "Yeni Kredi"})
	assert.NotEmpty(t, loan.ID)
	assert.Len(t, s.Loans(), 3)

	sub := s.AddSubscription(model.Subscription{Name: "Yeni Abonelik", BillingDay: 7})
	assert.NotEmpty(t, sub.ID)
	assert.Len(t, s.Subscriptions(), 7)
}

func TestHouseholdRoundTrip(t *testing.T) {
	s := demoStore(t)

	var buf bytes.Buffer
	require.NoError(t, WriteHousehold(&buf, s.Snapshot()))

	h, err := ReadHousehold(&buf)
	require.NoError(t, err)
	assert.Len(t, h.Transactions, 10)
	assert.Len(t, h.Subscriptions, 6)
	assert.True(t, decimal.NewFromInt(2150000).Equal(h.Loans[0].RemainingAmount))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "household.yaml")
	require.NoError(t, os.WriteFile(path, SeedYAML(), 0o644))

	s, err := Load(path, quietLogger())
	require.NoError(t, err)
	assert.Len(t, s.Cards(), 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), quietLogger())
	assert.Error(t, err)
}

func TestReadHouseholdBadAmount(t *testing.T) {
	doc := "accounts:\n  - id: a1\n    name: Broken\n    type: bank\n    balance: not-a-number\n"
	_, err := ReadHousehold(bytes.NewReader([]byte(doc)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "balance")
}

func TestStructuralWarningsDoNotFail(t *testing.T) {
	h := Household{
		Cards: []model.CreditCard{{ID: "c1", CutoffDay: 45}},
		Transactions: []model.Transaction{
			{ID: "t1", AccountID: "ghost", Amount: decimal.NewFromInt(10), Type: model.TransactionExpense},
		},
	}

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	s := New(h, log)
	assert.Len(t, s.Cards(), 1)
	assert.Contains(t, buf.String(), "cutoff day 45")
	assert.Contains(t, buf.String(), "unknown account")
}
