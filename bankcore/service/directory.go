package service

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ledgerlab/bankcore/bankcore/ledger"
)

// Directory is the keyed in-memory store for users and accounts. Lookups
// that miss return ledger.NotFoundError. The maps are guarded by a mutex so
// the directory can be shared safely; the entities it hands out are shared
// references, mutated only by transaction strategies.
type Directory struct {
	mu       sync.Mutex
	users    map[string]*ledger.User
	accounts map[string]*ledger.Account
}

// NewDirectory builds an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		users:    make(map[string]*ledger.User),
		accounts: make(map[string]*ledger.Account),
	}
}

// CreateUser validates and stores a new user.
func (d *Directory) CreateUser(username, passwordHash, email string) (*ledger.User, error) {
	user, err := ledger.NewUser(username, passwordHash, email)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.users[user.ID] = user

	return user, nil
}

// UserByID returns the user with the given ID.
func (d *Directory) UserByID(userID string) (*ledger.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[userID]
	if !ok {
		return nil, ledger.NotFoundError{Entity: "user", Key: userID}
	}

	return user, nil
}

// UserByUsername returns the user with the given username.
func (d *Directory) UserByUsername(username string) (*ledger.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, user := range d.users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, ledger.NotFoundError{Entity: "user", Key: username, ByName: true}
}

// Users returns every stored user.
func (d *Directory) Users() []*ledger.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*ledger.User, 0, len(d.users))
	for _, user := range d.users {
		out = append(out, user)
	}

	return out
}

// CreateAccount validates and stores a new account owned by the user with
// the given ID. A missing owner propagates as ledger.NotFoundError.
func (d *Directory) CreateAccount(userID string, kind ledger.AccountKind, initialBalance decimal.Decimal) (*ledger.Account, error) {
	owner, err := d.UserByID(userID)
	if err != nil {
		return nil, err
	}

	account, err := ledger.NewAccount(owner, kind, initialBalance)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.accounts[account.ID] = account

	return account, nil
}

// AccountByID returns the account with the given ID.
func (d *Directory) AccountByID(accountID string) (*ledger.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, ok := d.accounts[accountID]
	if !ok {
		return nil, ledger.NotFoundError{Entity: "account", Key: accountID}
	}

	return account, nil
}

// AccountByNumber returns the account with the given human-readable number.
func (d *Directory) AccountByNumber(accountNumber string) (*ledger.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, account := range d.accounts {
		if account.Number == accountNumber {
			return account, nil
		}
	}

	return nil, ledger.NotFoundError{Entity: "account", Key: accountNumber, ByName: true}
}

// UserAccounts returns every account owned by the user with the given ID.
func (d *Directory) UserAccounts(userID string) ([]*ledger.Account, error) {
	owner, err := d.UserByID(userID)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var out []*ledger.Account

	for _, account := range d.accounts {
		if account.Owner != nil && account.Owner.ID == owner.ID {
			out = append(out, account)
		}
	}

	return out, nil
}

// Accounts returns every stored account.
func (d *Directory) Accounts() []*ledger.Account {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*ledger.Account, 0, len(d.accounts))
	for _, account := range d.accounts {
		out = append(out, account)
	}

	return out
}

// AccountBalance returns the balance of the account with the given ID.
func (d *Directory) AccountBalance(accountID string) (decimal.Decimal, error) {
	account, err := d.AccountByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return account.Balance, nil
}
