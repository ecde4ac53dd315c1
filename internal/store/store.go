// Package store holds the in-memory household collections and the lookups
// and mutations the commands are built on. Mutation is whole-list
// replacement by a single owner: create appends to a fresh slice, update
// map-replaces by ID, delete filters. Nothing is persisted; the store dies
// with the process.
package store

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kasa-dev/kasa/internal/id"
	"github.com/kasa-dev/kasa/internal/model"
)

// UnknownName is the fallback label for dangling user or account
// references. Lookups never fail; they degrade to this placeholder.
const UnknownName = "Unknown"

// Store is the single owner of all entity collections.
type Store struct {
	log *logrus.Logger

	users         []model.User
	accounts      []model.AssetAccount
	cards         []model.CreditCard
	loans         []model.Loan
	subscriptions []model.Subscription
	transactions  []model.Transaction
	categories    []string

	userByID    map[string]model.User
	accountName map[string]string
	cardIDs     map[string]bool
}

// New builds a Store from a household snapshot. Structural oddities
// (out-of-range billing days, dangling references) are logged as warnings
// and kept: every derivation downstream is total, so bad rows degrade
// instead of failing.
func New(h Household, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	s := &Store{
		log:           log,
		users:         h.Users,
		accounts:      h.Accounts,
		cards:         h.Cards,
		loans:         h.Loans,
		subscriptions: h.Subscriptions,
		transactions:  h.Transactions,
		categories:    h.Categories,
	}
	s.reindex()
	s.warnStructural()
	return s
}

// Load reads a household YAML file into a new Store.
func Load(path string, log *logrus.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening household file: %w", err)
	}
	defer f.Close()

	h, err := ReadHousehold(f)
	if err != nil {
		return nil, fmt.Errorf("reading household file %s: %w", path, err)
	}
	return New(h, log), nil
}

func (s *Store) reindex() {
	s.userByID = make(map[string]model.User, len(s.users))
	for _, u := range s.users {
		s.userByID[u.ID] = u
	}
	s.accountName = make(map[string]string, len(s.accounts)+len(s.cards))
	s.cardIDs = make(map[string]bool, len(s.cards))
	for _, a := range s.accounts {
		s.accountName[a.ID] = a.Name
	}
	for _, c := range s.cards {
		s.accountName[c.ID] = c.Name
		s.cardIDs[c.ID] = true
	}
}

func (s *Store) warnStructural() {
	for _, c := range s.cards {
		if c.CutoffDay < 1 || c.CutoffDay > 31 {
			s.log.Warnf("credit card %s has cutoff day %d outside 1-31", c.ID, c.CutoffDay)
		}
	}
	for _, sub := range s.subscriptions {
		if sub.BillingDay < 1 || sub.BillingDay > 31 {
			s.log.Warnf("subscription %s has billing day %d outside 1-31", sub.ID, sub.BillingDay)
		}
	}
	for _, tx := range s.transactions {
		if _, ok := s.accountName[tx.AccountID]; !ok {
			s.log.Warnf("transaction %s references unknown account %s", tx.ID, tx.AccountID)
		}
		if tx.Amount.IsNegative() {
			s.log.Warnf("transaction %s has a negative stored amount; amounts are magnitudes", tx.ID)
		}
	}
}

// Users returns all household members.
func (s *Store) Users() []model.User { return s.users }

// Accounts returns all asset accounts.
func (s *Store) Accounts() []model.AssetAccount { return s.accounts }

// Cards returns all credit cards.
func (s *Store) Cards() []model.CreditCard { return s.cards }

// Loans returns all loans.
func (s *Store) Loans() []model.Loan { return s.loans }

// Subscriptions returns all subscriptions.
func (s *Store) Subscriptions() []model.Subscription { return s.subscriptions }

// Transactions returns all transactions.
func (s *Store) Transactions() []model.Transaction { return s.transactions }

// Categories returns the known transaction categories.
func (s *Store) Categories() []string { return s.categories }

// User returns a household member by ID.
func (s *Store) User(userID string) (model.User, bool) {
	u, ok := s.userByID[userID]
	return u, ok
}

// UserName returns the display name for a user ID, or UnknownName.
func (s *Store) UserName(userID string) string {
	if u, ok := s.userByID[userID]; ok {
		return u.Name
	}
	return UnknownName
}

// AccountName returns the display name for an asset account or credit card
// ID, or UnknownName.
func (s *Store) AccountName(accountID string) string {
	if name, ok := s.accountName[accountID]; ok {
		return name
	}
	return UnknownName
}

// IsCard reports whether an account ID belongs to a credit card.
func (s *Store) IsCard(accountID string) bool {
	return s.cardIDs[accountID]
}

// AddTransaction appends a transaction with a freshly minted ID and
// returns it.
func (s *Store) AddTransaction(tx model.Transaction) model.Transaction {
	tx.ID = id.New()
	next := make([]model.Transaction, 0, len(s.transactions)+1)
	next = append(next, s.transactions...)
	next = append(next, tx)
	s.transactions = next
	return tx
}

// UpdateTransaction replaces the transaction with the same ID. Returns
// false when no such transaction exists.
func (s *Store) UpdateTransaction(tx model.Transaction) bool {
	found := false
	next := make([]model.Transaction, 0, len(s.transactions))
	for _, existing := range s.transactions {
		if existing.ID == tx.ID {
			next = append(next, tx)
			found = true
			continue
		}
		next = append(next, existing)
	}
	if found {
		s.transactions = next
	}
	return found
}

// DeleteTransaction removes the transaction with the given ID. Returns
// false when no such transaction exists.
func (s *Store) DeleteTransaction(txID string) bool {
	next := make([]model.Transaction, 0, len(s.transactions))
	for _, existing := range s.transactions {
		if existing.ID == txID {
			continue
		}
		next = append(next, existing)
	}
	if len(next) == len(s.transactions) {
		return false
	}
	s.transactions = next
	return true
}

// Transaction returns a transaction by ID.
func (s *Store) Transaction(txID string) (model.Transaction, bool) {
	for _, tx := range s.transactions {
		if tx.ID == txID {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// AddAccount appends an asset account with a freshly minted ID.
func (s *Store) AddAccount(a model.AssetAccount) model.AssetAccount {
	a.ID = id.New()
	next := make([]model.AssetAccount, 0, len(s.accounts)+1)
	next = append(next, s.accounts...)
	next = append(next, a)
	s.accounts = next
	s.reindex()
	return a
}

// AddCard appends a credit card with a freshly minted ID.
func (s *Store) AddCard(c model.CreditCard) model.CreditCard {
	c.ID = id.New()
	next := make([]model.CreditCard, 0, len(s.cards)+1)
	next = append(next, s.cards...)
	next = append(next, c)
	s.cards = next
	s.reindex()
	return c
}

// AddLoan appends a loan with a freshly minted ID.
func (s *Store) AddLoan(l model.Loan) model.Loan {
	l.ID = id.New()
	next := make([]model.Loan, 0, len(s.loans)+1)
	next = append(next, s.loans...)
	next = append(next, l)
	s.loans = next
	return l
}

// AddSubscription appends a subscription with a freshly minted ID.
func (s *Store) AddSubscription(sub model.Subscription) model.Subscription {
	sub.ID = id.New()
	next := make([]model.Subscription, 0, len(s.subscriptions)+1)
	next = append(next, s.subscriptions...)
	next = append(next, sub)
	s.subscriptions = next
	return sub
}

// Snapshot returns the current collections as a Household, the shape
// WriteHousehold serializes.
func (s *Store) Snapshot() Household {
	return Household{
		Users:         s.users,
		Accounts:      s.accounts,
		Cards:         s.cards,
		Transactions:  s.transactions,
		Loans:         s.loans,
		Subscriptions: s.subscriptions,
		Categories:    s.categories,
	}
}
