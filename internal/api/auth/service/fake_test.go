package authService

import (
	"CitizenVoice/internal/api/auth"
	authRepository "CitizenVoice/internal/api/auth/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/redis"
	"io"
	"mime/multipart"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeUsers struct {
	mu        sync.Mutex
	byID      map[string]entity.User
	committed int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[string]entity.User)}
}

func (f *fakeUsers) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f,
		Commit:   func() error { f.committed++; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == user.Email {
			return auth.ErrEmailAlreadyExists
		}
	}
	user.Roles = nil
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) AssignRole(_ context.Context, _ string, userID string, role entity.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.byID[userID]
	u.Roles = append(u.Roles, role)
	f.byID[userID] = u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) GetAll(_ context.Context) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, user entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[user.ID]
	if !ok {
		return auth.ErrUserNotFound
	}
	u.FirstName, u.LastName, u.Email = user.FirstName, user.LastName, user.Email
	f.byID[user.ID] = u
	return nil
}

func (f *fakeUsers) UpdateRole(_ context.Context, userID string, role entity.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.byID[userID]
	u.Roles = []entity.Role{role}
	f.byID[userID] = u
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, userID string, hashed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return auth.ErrUserNotFound
	}
	u.Password = hashed
	f.byID[userID] = u
	return nil
}

func (f *fakeUsers) UpdatePhoto(_ context.Context, userID string, photo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return auth.ErrUserNotFound
	}
	u.Photo = photo
	f.byID[userID] = u
	return nil
}

func (f *fakeUsers) DeleteRoles(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if ok {
		u.Roles = nil
		f.byID[userID] = u
	}
	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return auth.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRedis struct {
	otps map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{otps: make(map[string]string)}
}

func (f *fakeRedis) SetOTP(_ context.Context, key string, code string, _ time.Duration) error {
	f.otps[key] = code
	return nil
}

func (f *fakeRedis) GetOTP(_ context.Context, key string) (string, error) {
	code, ok := f.otps[key]
	if !ok {
		return "", redis.ErrOTPNotFound
	}
	return code, nil
}

func (f *fakeRedis) DeleteOTP(_ context.Context, key string) error {
	delete(f.otps, key)
	return nil
}

func (f *fakeRedis) SetJSON(context.Context, string, interface{}, time.Duration) error { return nil }

func (f *fakeRedis) GetJSON(context.Context, string, interface{}) (bool, error) { return false, nil }

func (f *fakeRedis) Delete(context.Context, ...string) error { return nil }

type sentMail struct {
	to, name, otp string
}

type fakeSmtp struct {
	sent []sentMail
}

func (f *fakeSmtp) SendMail([]string, string, string) error { return nil }

func (f *fakeSmtp) SendPasswordResetOTP(email string, name string, otp string) error {
	f.sent = append(f.sent, sentMail{to: email, name: name, otp: otp})
	return nil
}

type fakeS3 struct {
	uploaded []string
	deleted  []string
}

func (f *fakeS3) UploadFile(folder string, file *multipart.FileHeader) (string, error) {
	url := "https://bucket.example/" + folder + "/" + file.Filename
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeS3) PresignUrl(url string) (string, error) { return url, nil }

func (f *fakeS3) DeleteFile(url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}
