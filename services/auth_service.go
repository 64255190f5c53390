package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Provider error codes.
const (
	CodeInvalidEmail    = "auth/invalid-email"
	CodeUserNotFound    = "auth/user-not-found"
	CodeWrongPassword   = "auth/wrong-password"
	CodeTooManyRequests = "auth/too-many-requests"
	CodeUserDisabled    = "auth/user-disabled"
	CodeEmailInUse      = "auth/email-already-in-use"
	CodeWeakPassword    = "auth/weak-password"
	CodeInternal        = "auth/internal-error"
)

// AuthError is a failure reported by the authentication provider.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// AuthCode extracts the provider code from err, or "" when err is not an AuthError.
func AuthCode(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}

// AuthStateListener receives the signed-in user, or nil when there is none.
type AuthStateListener func(user *models.User)

// IAuthService is the authentication provider.
type IAuthService interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
	// OnAuthStateChanged calls listener asynchronously with the session's current user, and again
	// with nil when the session is signed out. The initial lookup runs under ctx and reports no
	// user if ctx ends first. The returned function stops the notifications.
	OnAuthStateChanged(ctx context.Context, token string, listener AuthStateListener) (unsubscribe func())

	CreateUser(ctx context.Context, email, password string) (*models.User, error)
	SetDisabled(ctx context.Context, email string, disabled bool) error
	ListUsers(ctx context.Context) ([]models.User, error)
	SetThrottle(maxFailedAttempts int, window time.Duration)
}

type subscription struct {
	mu       sync.Mutex
	listener AuthStateListener
	active   bool
}

func (s *subscription) notify(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.listener(user)
	}
}

type failureRecord struct {
	count int
	first time.Time
}

// AuthService implements IAuthService on the user repository with bcrypt password hashes.
type AuthService struct {
	repo     repository.IUserRepository
	validate *validator.Validate
	now      func() time.Time

	subMu  sync.Mutex
	subs   map[string]map[uint64]*subscription
	nextID uint64

	failMu      sync.Mutex
	failures    map[string]*failureRecord
	maxFailures int
	window      time.Duration
}

// NewAuthService creates the provider. maxFailedAttempts of 0 disables throttling.
func NewAuthService(repo repository.IUserRepository, maxFailedAttempts int, window time.Duration) *AuthService {
	return &AuthService{
		repo:        repo,
		validate:    validator.New(),
		now:         time.Now,
		subs:        make(map[string]map[uint64]*subscription),
		failures:    make(map[string]*failureRecord),
		maxFailures: maxFailedAttempts,
		window:      window,
	}
}

// SetThrottle changes the throttling limits; the config watcher calls it on reload.
func (s *AuthService) SetThrottle(maxFailedAttempts int, window time.Duration) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	s.maxFailures = maxFailedAttempts
	s.window = window
}

// SignIn checks the credentials and opens a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, &AuthError{Code: CodeInvalidEmail, Message: "The email address is badly formatted."}
	}
	key := strings.ToLower(email)
	if s.throttled(key) {
		return nil, &AuthError{Code: CodeTooManyRequests, Message: "Access to this account has been temporarily disabled due to many failed login attempts."}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		s.recordFailure(key)
		return nil, &AuthError{Code: CodeUserNotFound, Message: "There is no user record corresponding to this identifier."}
	}
	if err != nil {
		return nil, &AuthError{Code: CodeInternal, Message: err.Error()}
	}
	if user.Disabled {
		return nil, &AuthError{Code: CodeUserDisabled, Message: "The user account has been disabled by an administrator."}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailure(key)
		return nil, &AuthError{Code: CodeWrongPassword, Message: "The password is invalid."}
	}
	s.clearFailures(key)

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, &AuthError{Code: CodeInternal, Message: err.Error()}
	}
	log.Printf("User %s signed in", user.Email)
	s.broadcast(session.ID, user)
	return session, nil
}

// SignOut ends the session and tells its subscribers.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.broadcast(token, nil)
	return nil
}

func (s *AuthService) OnAuthStateChanged(ctx context.Context, token string, listener AuthStateListener) func() {
	sub := &subscription{listener: listener, active: true}

	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	if s.subs[token] == nil {
		s.subs[token] = make(map[uint64]*subscription)
	}
	s.subs[token][id] = sub
	s.subMu.Unlock()

	go func() {
		sub.notify(s.resolve(ctx, token))
	}()

	return func() {
		sub.mu.Lock()
		sub.active = false
		sub.mu.Unlock()

		s.subMu.Lock()
		delete(s.subs[token], id)
		if len(s.subs[token]) == 0 {
			delete(s.subs, token)
		}
		s.subMu.Unlock()
	}
}

// resolve looks up the session's user. Any failure reads as "no user".
func (s *AuthService) resolve(ctx context.Context, token string) *models.User {
	if token == "" {
		return nil
	}
	session, err := s.repo.FindSession(ctx, token)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("Session lookup failed: %v", err)
		}
		return nil
	}
	user, err := s.repo.FindByID(ctx, session.UserID)
	if err != nil || user.Disabled {
		return nil
	}
	return user
}

func (s *AuthService) broadcast(token string, user *models.User) {
	s.subMu.Lock()
	subs := make([]*subscription, 0, len(s.subs[token]))
	for _, sub := range s.subs[token] {
		subs = append(subs, sub)
	}
	s.subMu.Unlock()
	for _, sub := range subs {
		go sub.notify(user)
	}
}

func (s *AuthService) throttled(key string) bool {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	rec, ok := s.failures[key]
	if !ok || s.maxFailures == 0 {
		return false
	}
	if s.now().Sub(rec.first) >= s.window {
		delete(s.failures, key)
		return false
	}
	return rec.count >= s.maxFailures
}

func (s *AuthService) recordFailure(key string) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	rec, ok := s.failures[key]
	if !ok || s.now().Sub(rec.first) >= s.window {
		rec = &failureRecord{first: s.now()}
		s.failures[key] = rec
	}
	rec.count++
}

func (s *AuthService) clearFailures(key string) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	delete(s.failures, key)
}

// CreateUser adds a staff account.
func (s *AuthService) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, &AuthError{Code: CodeInvalidEmail, Message: "The email address is badly formatted."}
	}
	if len(password) < 6 {
		return nil, &AuthError{Code: CodeWeakPassword, Message: "Password should be at least 6 characters."}
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, &AuthError{Code: CodeEmailInUse, Message: "The email address is already in use by another account."}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// SetDisabled blocks or unblocks an account. Existing sessions of a disabled user stop resolving.
func (s *AuthService) SetDisabled(ctx context.Context, email string, disabled bool) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return &AuthError{Code: CodeUserNotFound, Message: "There is no user record corresponding to this identifier."}
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	user.Disabled = disabled
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}
