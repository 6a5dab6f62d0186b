package account

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/baechuer/account-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	nextID  int64
	byID    map[int64]domain.User
	byEmail map[string]int64

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error
	updateProfErr error
	updatePwdErr  error
	setActiveErr  error
	touchErr      error
	listErr       error

	// record calls
	touchedAt  []time.Time
	setActives []struct {
		id     int64
		active bool
	}
	updatedPwd []struct {
		id   int64
		hash string
	}
	listCalls []struct{ offset, limit int }
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		nextID:  1,
		byID:    map[int64]domain.User{},
		byEmail: map[string]int64{},
	}
}

func (f *fakeUserRepo) put(u domain.User) domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u.ID == 0 {
		u.ID = f.nextID
	}
	if u.ID >= f.nextID {
		f.nextID = u.ID + 1
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u.ID
	return u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	id, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()

	if f.createErr != nil {
		f.mu.Unlock()
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		f.mu.Unlock()
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.mu.Unlock()

	return f.put(u), nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id int64, fullName, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateProfErr != nil {
		return domain.User{}, f.updateProfErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	if fullName != "" {
		u.FullName = fullName
	}
	if email != "" {
		delete(f.byEmail, u.Email)
		u.Email = email
		f.byEmail[email] = id
	}
	f.byID[id] = u
	return u, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id int64, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updatePwdErr != nil {
		return f.updatePwdErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.PasswordHash = newHash
	f.byID[id] = u
	f.updatedPwd = append(f.updatedPwd, struct {
		id   int64
		hash string
	}{id, newHash})
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id int64, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setActiveErr != nil {
		return f.setActiveErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.IsActive = active
	f.byID[id] = u
	f.setActives = append(f.setActives, struct {
		id     int64
		active bool
	}{id, active})
	return nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.touchErr != nil {
		return f.touchErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.LastLogin = &at
	f.byID[id] = u
	f.touchedAt = append(f.touchedAt, at)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls = append(f.listCalls, struct{ offset, limit int }{offset, limit})
	if f.listErr != nil {
		return nil, f.listErr
	}

	users := make([]domain.User, 0, len(f.byID))
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.byID[id]; ok {
			users = append(users, u)
		}
	}
	if offset >= len(users) {
		return []domain.User{}, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	signFn   func(userID int64, role string, ttl time.Duration) (string, error)
	verifyFn func(token string) (TokenClaims, error)

	signed []struct {
		userID int64
		role   string
		ttl    time.Duration
	}
}

func (f *fakeSigner) SignAccessToken(userID int64, role string, ttl time.Duration) (string, error) {
	f.signed = append(f.signed, struct {
		userID int64
		role   string
		ttl    time.Duration
	}{userID, role, ttl})
	if f.signFn != nil {
		return f.signFn(userID, role, ttl)
	}
	return "token-for-" + role, nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	if f.verifyFn != nil {
		return f.verifyFn(token)
	}
	return TokenClaims{}, domain.ErrTokenInvalid()
}

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	svc := NewService(users, hasher, signer, Config{})
	return svc, users, hasher, signer
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}
