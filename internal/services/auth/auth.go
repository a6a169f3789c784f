package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/francislhj094/pocket-worlds/internal/store"
)

// Storage keys. The mock user list stands in for a backend that does not
// exist yet; everything lives in the same key-value store as the profile.
const (
	authUserKey  = "auth_user"
	rememberKey  = "remember_me"
	pendingKey   = "pending_verification"
	mockUsersKey = "mock_users_db"
)

type MockUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"` // bcrypt hash
	IsVerified bool   `json:"isVerified"`
	CreatedAt  int64  `json:"createdAt"`
}

type AuthUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsGuest    bool   `json:"isGuest"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  int64  `json:"createdAt"`
}

type PendingVerification struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

type SignUpData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginData struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
	RememberMe      bool   `json:"rememberMe"`
}

// Result mirrors the {success, error} shape the screens expect.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func failure(msg string) Result { return Result{Success: false, Error: msg} }

type Service interface {
	Load(ctx context.Context)
	Current() *AuthUser
	Pending() *PendingVerification

	CheckUsernameAvailability(ctx context.Context, username string) bool
	CheckEmailAvailability(ctx context.Context, email string) bool
	SignUp(ctx context.Context, data SignUpData) Result
	VerifyEmail(ctx context.Context, code string) Result
	ResendCode(ctx context.Context) bool
	Login(ctx context.Context, data LoginData) Result
	LoginAsGuest(ctx context.Context) *AuthUser
	RequestPasswordReset(ctx context.Context, email string) Result
	Logout(ctx context.Context)
}

type ServiceImpl struct {
	mu         sync.Mutex
	store      store.Store
	current    *AuthUser
	pending    *PendingVerification
	lastResend time.Time
	now        func() time.Time
}

func NewService(s store.Store) Service {
	return &ServiceImpl{
		store: s,
		now:   time.Now,
	}
}

// Load restores the signed-in user and any pending verification. Store
// failures leave the session signed out; never fatal.
func (a *ServiceImpl) Load(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if data, err := a.store.Get(ctx, authUserKey); err == nil {
		var u AuthUser
		if uerr := json.Unmarshal(data, &u); uerr != nil {
			log.Error().Err(uerr).Msg("stored auth user is malformed, signing out")
		} else {
			a.current = &u
		}
	} else if err != store.ErrNotFound {
		log.Error().Err(err).Msg("failed to load auth state")
	}

	if data, err := a.store.Get(ctx, pendingKey); err == nil {
		var p PendingVerification
		if json.Unmarshal(data, &p) == nil {
			a.pending = &p
		}
	}
}

func (a *ServiceImpl) Current() *AuthUser {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	u := *a.current
	return &u
}

func (a *ServiceImpl) Pending() *PendingVerification {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == nil {
		return nil
	}
	p := *a.pending
	return &p
}

func (a *ServiceImpl) getMockUsers(ctx context.Context) []MockUser {
	data, err := a.store.Get(ctx, mockUsersKey)
	if err != nil {
		if err != store.ErrNotFound {
			log.Error().Err(err).Msg("failed to read mock users")
		}
		return nil
	}
	var users []MockUser
	if err := json.Unmarshal(data, &users); err != nil {
		log.Error().Err(err).Msg("mock user list is malformed")
		return nil
	}
	return users
}

func (a *ServiceImpl) saveMockUsers(ctx context.Context, users []MockUser) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, mockUsersKey, data)
}

func (a *ServiceImpl) CheckUsernameAvailability(ctx context.Context, username string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.getMockUsers(ctx) {
		if normalizeIdent(u.Username) == normalizeIdent(username) {
			return false
		}
	}
	return true
}

func (a *ServiceImpl) CheckEmailAvailability(ctx context.Context, email string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.getMockUsers(ctx) {
		if normalizeIdent(u.Email) == normalizeIdent(email) {
			return false
		}
	}
	return true
}

func (a *ServiceImpl) SignUp(ctx context.Context, data SignUpData) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	users := a.getMockUsers(ctx)
	for _, u := range users {
		if normalizeIdent(u.Username) == normalizeIdent(data.Username) {
			return failure("Username already taken")
		}
		if normalizeIdent(u.Email) == normalizeIdent(data.Email) {
			return failure("Email already registered")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return failure("Sign up failed. Please try again.")
	}

	user := MockUser{
		ID:         "user_" + uuid.NewString(),
		Username:   data.Username,
		Email:      data.Email,
		Password:   string(hash),
		IsVerified: false,
		CreatedAt:  a.now().UnixMilli(),
	}
	if err := a.saveMockUsers(ctx, append(users, user)); err != nil {
		log.Error().Err(err).Msg("failed to save mock user")
		return failure("Sign up failed. Please try again.")
	}

	a.setPending(ctx, &PendingVerification{Email: user.Email, UserID: user.ID})
	return Result{Success: true}
}

func (a *ServiceImpl) setPending(ctx context.Context, p *PendingVerification) {
	a.pending = p
	if p == nil {
		if err := a.store.Delete(ctx, pendingKey); err != nil {
			log.Error().Err(err).Msg("failed to clear pending verification")
		}
		return
	}
	data, _ := json.Marshal(p)
	if err := a.store.Set(ctx, pendingKey, data); err != nil {
		log.Error().Err(err).Msg("failed to save pending verification")
	}
}

func (a *ServiceImpl) setCurrent(ctx context.Context, u *AuthUser) {
	a.current = u
	data, _ := json.Marshal(u)
	if err := a.store.Set(ctx, authUserKey, data); err != nil {
		log.Error().Err(err).Msg("failed to save auth user")
	}
}

// VerifyEmail accepts any 6-digit code; there is no real mail backend.
func (a *ServiceImpl) VerifyEmail(ctx context.Context, code string) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending == nil {
		return failure("No pending verification found")
	}
	if len(code) != 6 {
		return failure("Invalid verification code")
	}

	users := a.getMockUsers(ctx)
	for i := range users {
		if users[i].ID != a.pending.UserID {
			continue
		}
		users[i].IsVerified = true
		if err := a.saveMockUsers(ctx, users); err != nil {
			log.Error().Err(err).Msg("failed to update mock user")
			return failure("Verification failed. Please try again.")
		}

		a.setCurrent(ctx, &AuthUser{
			ID:         users[i].ID,
			Username:   users[i].Username,
			Email:      users[i].Email,
			IsGuest:    false,
			IsVerified: true,
			CreatedAt:  users[i].CreatedAt,
		})
		a.setPending(ctx, nil)
		return Result{Success: true}
	}

	return failure("User not found")
}

// ResendCode pretends to send a verification mail, rate-limited by a
// fixed cooldown.
func (a *ServiceImpl) ResendCode(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending == nil {
		return false
	}
	if remaining := remainingResend(a.now(), a.lastResend); remaining > 0 {
		log.Info().Str("wait", formatRemaining(remaining)).Msg("resend still cooling down")
		return false
	}
	a.lastResend = a.now()
	log.Info().Str("email", a.pending.Email).Msg("verification code sent")
	return true
}

func (a *ServiceImpl) Login(ctx context.Context, data LoginData) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	ident := normalizeIdent(data.EmailOrUsername)
	for _, u := range a.getMockUsers(ctx) {
		if normalizeIdent(u.Email) != ident && normalizeIdent(u.Username) != ident {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(data.Password)) != nil {
			return failure("Invalid credentials")
		}

		if !u.IsVerified {
			a.setPending(ctx, &PendingVerification{Email: u.Email, UserID: u.ID})
			return failure("Please verify your email first")
		}

		a.setCurrent(ctx, &AuthUser{
			ID:         u.ID,
			Username:   u.Username,
			Email:      u.Email,
			IsGuest:    false,
			IsVerified: true,
			CreatedAt:  u.CreatedAt,
		})
		if data.RememberMe {
			if err := a.store.Set(ctx, rememberKey, []byte("true")); err != nil {
				log.Error().Err(err).Msg("failed to save remember-me flag")
			}
		}
		return Result{Success: true}
	}

	return failure("Invalid credentials")
}

func (a *ServiceImpl) LoginAsGuest(ctx context.Context) *AuthUser {
	a.mu.Lock()
	defer a.mu.Unlock()

	guest := &AuthUser{
		ID:         "guest_" + uuid.NewString(),
		Username:   fmt.Sprintf("Guest%04d", rand.Intn(10000)),
		IsGuest:    true,
		IsVerified: false,
		CreatedAt:  a.now().UnixMilli(),
	}
	a.setCurrent(ctx, guest)
	u := *guest
	return &u
}

func (a *ServiceImpl) RequestPasswordReset(ctx context.Context, email string) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.getMockUsers(ctx) {
		if normalizeIdent(u.Email) == normalizeIdent(email) {
			log.Info().Str("email", email).Msg("password reset email sent")
			return Result{Success: true}
		}
	}
	return failure("Email not found")
}

// Logout clears the session only. The progression profile is
// device-global and survives login changes.
func (a *ServiceImpl) Logout(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Delete(ctx, authUserKey); err != nil {
		log.Error().Err(err).Msg("failed to clear auth user")
	}
	if err := a.store.Delete(ctx, rememberKey); err != nil {
		log.Error().Err(err).Msg("failed to clear remember-me flag")
	}
	a.current = nil
}
