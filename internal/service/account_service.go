package service

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"socialmedia/internal/models"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 4

var (
	// ErrInvalidAccount signals a registration that failed validation or
	// could not be persisted. The two cases are deliberately
	// indistinguishable to callers.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrInvalidCredentials signals a failed login. Unknown username and
	// wrong password produce the same error so callers cannot probe for
	// registered usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountRepository interface {
	InsertAccount(account models.Account) (*models.Account, error)
	UsernameExists(username string) (bool, error)
	FindByCredentials(username string, password string) (*models.Account, error)
}

type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// CreateAccount registers a new account. The username must be non-blank
// after trimming (it is stored untrimmed), the password at least
// MinPasswordLength characters, and the username not already taken.
// Store faults are logged and collapsed into ErrInvalidAccount.
func (s *AccountService) CreateAccount(account models.Account) (*models.Account, error) {
	if strings.TrimSpace(account.Username) == "" || len(account.Password) < MinPasswordLength {
		return nil, ErrInvalidAccount
	}
	taken, err := s.repo.UsernameExists(account.Username)
	if err != nil {
		logrus.WithError(err).Error("username lookup failed")
		return nil, ErrInvalidAccount
	}
	if taken {
		return nil, ErrInvalidAccount
	}
	created, err := s.repo.InsertAccount(account)
	if err != nil {
		logrus.WithError(err).Error("account insert failed")
		return nil, ErrInvalidAccount
	}
	return created, nil
}

// LoginAccount matches the candidate's username and password exactly
// against a stored pair. No trimming or normalization is applied; a
// match returns the stored account including its id.
func (s *AccountService) LoginAccount(account models.Account) (*models.Account, error) {
	found, err := s.repo.FindByCredentials(account.Username, account.Password)
	if err != nil {
		logrus.WithError(err).Error("credential lookup failed")
		return nil, ErrInvalidCredentials
	}
	if found == nil {
		return nil, ErrInvalidCredentials
	}
	return found, nil
}
