package store

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kasa-dev/kasa/internal/model"
)

// DateLayout is the calendar-date format used in household files.
const DateLayout = "2006-01-02"

// Household is the full snapshot a Store is built from.
type Household struct {
	Users         []model.User
	Accounts      []model.AssetAccount
	Cards         []model.CreditCard
	Transactions  []model.Transaction
	Loans         []model.Loan
	Subscriptions []model.Subscription
	Categories    []string
}

// householdDoc is the YAML shape of a household file. Amounts are kept as
// scalars and converted to decimals on unmarshal; dates are DateLayout
// strings.
type householdDoc struct {
	Users         []userRec         `yaml:"users"`
	Accounts      []accountRec      `yaml:"accounts"`
	Cards         []cardRec         `yaml:"credit_cards"`
	Transactions  []transactionRec  `yaml:"transactions"`
	Loans         []loanRec         `yaml:"loans"`
	Subscriptions []subscriptionRec `yaml:"subscriptions"`
	Categories    []string          `yaml:"categories"`
}

type userRec struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar,omitempty"`
}

type accountRec struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Balance string `yaml:"balance"`
	Icon    string `yaml:"icon,omitempty"`
}

type cardRec struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	TotalLimit      string `yaml:"total_limit"`
	CurrentDebt     string `yaml:"current_debt"`
	CutoffDay       int    `yaml:"cutoff_day"`
	MinPaymentRatio string `yaml:"min_payment_ratio"`
	Color           string `yaml:"color,omitempty"`
}

type transactionRec struct {
	ID                 string `yaml:"id"`
	Date               string `yaml:"date"`
	UserID             string `yaml:"user_id"`
	Description        string `yaml:"description"`
	Category           string `yaml:"category"`
	Amount             string `yaml:"amount"`
	AccountID          string `yaml:"account_id"`
	Type               string `yaml:"type"`
	Installments       int    `yaml:"installments,omitempty"`
	CurrentInstallment int    `yaml:"current_installment,omitempty"`
}

type loanRec struct {
	ID                string `yaml:"id"`
	Name              string `yaml:"name"`
	TotalAmount       string `yaml:"total_amount"`
	RemainingAmount   string `yaml:"remaining_amount"`
	TotalInstallments int    `yaml:"total_installments"`
	PaidInstallments  int    `yaml:"paid_installments"`
	MonthlyPayment    string `yaml:"monthly_payment"`
	InterestRate      string `yaml:"interest_rate"`
	NextPaymentDate   string `yaml:"next_payment_date"`
}

type subscriptionRec struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Amount     string `yaml:"amount"`
	BillingDay int    `yaml:"billing_day"`
	Category   string `yaml:"category"`
	Icon       string `yaml:"icon,omitempty"`
	Color      string `yaml:"color,omitempty"`
	LogoURL    string `yaml:"logo_url,omitempty"`
}

// ReadHousehold parses a household YAML document.
func ReadHousehold(r io.Reader) (Household, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Household{}, fmt.Errorf("reading household: %w", err)
	}

	var doc householdDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Household{}, fmt.Errorf("parsing household YAML: %w", err)
	}

	var h Household
	for _, rec := range doc.Users {
		h.Users = append(h.Users, model.User{
			ID:     rec.ID,
			Name:   rec.Name,
			Role:   model.Role(rec.Role),
			Avatar: rec.Avatar,
		})
	}
	for i, rec := range doc.Accounts {
		a, err := unmarshalAccount(rec)
		if err != nil {
			return Household{}, fmt.Errorf("account %d: %w", i+1, err)
		}
		h.Accounts = append(h.Accounts, a)
	}
	for i, rec := range doc.Cards {
		c, err := unmarshalCard(rec)
		if err != nil {
			return Household{}, fmt.Errorf("credit card %d: %w", i+1, err)
		}
		h.Cards = append(h.Cards, c)
	}
	for i, rec := range doc.Transactions {
		tx, err := unmarshalTransaction(rec)
		if err != nil {
			return Household{}, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		h.Transactions = append(h.Transactions, tx)
	}
	for i, rec := range doc.Loans {
		l, err := unmarshalLoan(rec)
		if err != nil {
			return Household{}, fmt.Errorf("loan %d: %w", i+1, err)
		}
		h.Loans = append(h.Loans, l)
	}
	for i, rec := range doc.Subscriptions {
		s, err := unmarshalSubscription(rec)
		if err != nil {
			return Household{}, fmt.Errorf("subscription %d: %w", i+1, err)
		}
		h.Subscriptions = append(h.Subscriptions, s)
	}
	h.Categories = doc.Categories
	return h, nil
}

// WriteHousehold serializes a household snapshot to YAML.
func WriteHousehold(w io.Writer, h Household) error {
	var doc householdDoc
	for _, u := range h.Users {
		doc.Users = append(doc.Users, userRec{ID: u.ID, Name: u.Name, Role: string(u.Role), Avatar: u.Avatar})
	}
	for _, a := range h.Accounts {
		doc.Accounts = append(doc.Accounts, accountRec{
			ID: a.ID, Name: a.Name, Type: string(a.Type), Balance: a.Balance.String(), Icon: a.Icon,
		})
	}
	for _, c := range h.Cards {
		doc.Cards = append(doc.Cards, cardRec{
			ID: c.ID, Name: c.Name,
			TotalLimit:      c.TotalLimit.String(),
			CurrentDebt:     c.CurrentDebt.String(),
			CutoffDay:       c.CutoffDay,
			MinPaymentRatio: c.MinPaymentRatio.String(),
			Color:           c.Color,
		})
	}
	for _, tx := range h.Transactions {
		doc.Transactions = append(doc.Transactions, transactionRec{
			ID: tx.ID, Date: tx.Date.Format(DateLayout), UserID: tx.UserID,
			Description: tx.Description, Category: tx.Category,
			Amount: tx.Amount.String(), AccountID: tx.AccountID, Type: string(tx.Type),
			Installments: tx.Installments, CurrentInstallment: tx.CurrentInstallment,
		})
	}
	for _, l := range h.Loans {
		doc.Loans = append(doc.Loans, loanRec{
			ID: l.ID, Name: l.Name,
			TotalAmount:       l.TotalAmount.String(),
			RemainingAmount:   l.RemainingAmount.String(),
			TotalInstallments: l.TotalInstallments,
			PaidInstallments:  l.PaidInstallments,
			MonthlyPayment:    l.MonthlyPayment.String(),
			InterestRate:      l.InterestRate.String(),
			NextPaymentDate:   l.NextPaymentDate.Format(DateLayout),
		})
	}
	for _, s := range h.Subscriptions {
		doc.Subscriptions = append(doc.Subscriptions, subscriptionRec{
			ID: s.ID, Name: s.Name, Amount: s.Amount.String(), BillingDay: s.BillingDay,
			Category: s.Category, Icon: s.Icon, Color: s.Color, LogoURL: s.LogoURL,
		})
	}
	doc.Categories = h.Categories

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling household: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing household: %w", err)
	}
	return nil
}

func unmarshalAccount(rec accountRec) (model.AssetAccount, error) {
	balance, err := decimal.NewFromString(rec.Balance)
	if err != nil {
		return model.AssetAccount{}, fmt.Errorf("parsing balance %q: %w", rec.Balance, err)
	}
	return model.AssetAccount{
		ID: rec.ID, Name: rec.Name, Type: model.AccountType(rec.Type),
		Balance: balance, Icon: rec.Icon,
	}, nil
}

func unmarshalCard(rec cardRec) (model.CreditCard, error) {
	limit, err := decimal.NewFromString(rec.TotalLimit)
	if err != nil {
		return model.CreditCard{}, fmt.Errorf("parsing total_limit %q: %w", rec.TotalLimit, err)
	}
	debt, err := decimal.NewFromString(rec.CurrentDebt)
	if err != nil {
		return model.CreditCard{}, fmt.Errorf("parsing current_debt %q: %w", rec.CurrentDebt, err)
	}
	ratio, err := decimal.NewFromString(rec.MinPaymentRatio)
	if err != nil {
		return model.CreditCard{}, fmt.Errorf("parsing min_payment_ratio %q: %w", rec.MinPaymentRatio, err)
	}
	return model.CreditCard{
		ID: rec.ID, Name: rec.Name,
		TotalLimit: limit, CurrentDebt: debt,
		CutoffDay: rec.CutoffDay, MinPaymentRatio: ratio, Color: rec.Color,
	}, nil
}

func unmarshalTransaction(rec transactionRec) (model.Transaction, error) {
	date, err := time.Parse(DateLayout, rec.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}
	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}
	return model.Transaction{
		ID: rec.ID, Date: date, UserID: rec.UserID,
		Description: rec.Description, Category: rec.Category,
		Amount: amount, AccountID: rec.AccountID,
		Type:         model.TransactionType(rec.Type),
		Installments: rec.Installments, CurrentInstallment: rec.CurrentInstallment,
	}, nil
}

func unmarshalLoan(rec loanRec) (model.Loan, error) {
	total, err := decimal.NewFromString(rec.TotalAmount)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parsing total_amount %q: %w", rec.TotalAmount, err)
	}
	remaining, err := decimal.NewFromString(rec.RemainingAmount)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parsing remaining_amount %q: %w", rec.RemainingAmount, err)
	}
	monthly, err := decimal.NewFromString(rec.MonthlyPayment)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parsing monthly_payment %q: %w", rec.MonthlyPayment, err)
	}
	rate, err := decimal.NewFromString(rec.InterestRate)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parsing interest_rate %q: %w", rec.InterestRate, err)
	}
	next, err := time.Parse(DateLayout, rec.NextPaymentDate)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parsing next_payment_date %q: %w", rec.NextPaymentDate, err)
	}
	return model.Loan{
		ID: rec.ID, Name: rec.Name,
		TotalAmount: total, RemainingAmount: remaining,
		TotalInstallments: rec.TotalInstallments, PaidInstallments: rec.PaidInstallments,
		MonthlyPayment: monthly, InterestRate: rate, NextPaymentDate: next,
	}, nil
}

func unmarshalSubscription(rec subscriptionRec) (model.Subscription, error) {
	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}
	return model.Subscription{
		ID: rec.ID, Name: rec.Name, Amount: amount, BillingDay: rec.BillingDay,
		Category: rec.Category, Icon: rec.Icon, Color: rec.Color, LogoURL: rec.LogoURL,
	}, nil
}
