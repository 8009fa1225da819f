package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"direct-chat-api/apperror"
	"direct-chat-api/config/common"
	"direct-chat-api/dto/req"
	"direct-chat-api/entity"
	"direct-chat-api/security"
)

// fakeCodeStore keeps verification code rows in memory with the same lookup
// contract as the SQL store: only unverified rows with expires_at strictly in
// the future are candidates, newest first.
type fakeCodeStore struct {
	rows    []*entity.VerificationCode
	saveErr error
	markErr error
}

func (s *fakeCodeStore) Save(ctx context.Context, db *gorm.DB, code *entity.VerificationCode) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if code.ID == "" {
		code.ID = fmt.Sprintf("code-%d", len(s.rows)+1)
	}
	s.rows = append(s.rows, code)
	return nil
}

func (s *fakeCodeStore) FindLatestActive(ctx context.Context, db *gorm.DB, phone string, now time.Time) (*entity.VerificationCode, error) {
	for i := len(s.rows) - 1; i >= 0; i-- {
		row := s.rows[i]
		if row.Phone == phone && !row.Verified && row.ExpiresAt.After(now) {
			return row, nil
		}
	}
	return nil, nil
}

func (s *fakeCodeStore) MarkVerified(ctx context.Context, db *gorm.DB, id string) error {
	if s.markErr != nil {
		return s.markErr
	}
	for _, row := range s.rows {
		if row.ID == id {
			row.Verified = true
		}
	}
	return nil
}

type fakeUserStore struct {
	users   []*entity.User
	touched map[string]time.Time
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{touched: map[string]time.Time{}}
}

func (s *fakeUserStore) Save(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(s.users)+1)
	}
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	for i, existing := range s.users {
		if existing.ID == user.ID {
			s.users[i] = user
		}
	}
	return nil
}

func (s *fakeUserStore) FindById(ctx context.Context, db *gorm.DB, user *entity.User, id string) error {
	for _, existing := range s.users {
		if existing.ID == id {
			*user = *existing
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.User, error) {
	for _, existing := range s.users {
		if existing.Phone == phone {
			return existing, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindAllExcept(ctx context.Context, db *gorm.DB, userID string) ([]entity.User, error) {
	var out []entity.User
	for _, existing := range s.users {
		if existing.ID != userID {
			out = append(out, *existing)
		}
	}
	return out, nil
}

func (s *fakeUserStore) TouchLastSeen(ctx context.Context, db *gorm.DB, userID string, at time.Time) error {
	s.touched[userID] = at
	return nil
}

type fakeSender struct {
	bodies []string
	err    error
}

func (s *fakeSender) Send(ctx context.Context, to, body string) error {
	s.bodies = append(s.bodies, body)
	if s.err != nil {
		return s.err
	}
	return nil
}

func newTestAuthUsecase(codes *fakeCodeStore, users *fakeUserStore, sender *fakeSender) AuthUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)

	v := viper.New()
	v.Set("JWT_SECRET", "unit-test-secret")
	jwt := security.NewJWT(&common.Config{Viper: v})

	return NewAuthUsecase(codes, users, validator.New(), nil, log, jwt, sender)
}

// sentCode extracts the plaintext code from the SMS body the sender recorded.
func sentCode(t *testing.T, sender *fakeSender) string {
	t.Helper()
	if len(sender.bodies) == 0 {
		t.Fatal("no SMS was sent")
	}
	body := sender.bodies[len(sender.bodies)-1]
	code := strings.TrimPrefix(body, "Your verification code is: ")
	if code == body || len(code) != 6 {
		t.Fatalf("unexpected SMS body %q", body)
	}
	return code
}

func assertKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind != kind {
		t.Fatalf("expected kind %v, got %v", kind, err)
	}
}

func TestSendThenVerifyIssuesToken(t *testing.T) {
	codes := &fakeCodeStore{}
	users := newFakeUserStore()
	sender := &fakeSender{}
	auth := newTestAuthUsecase(codes, users, sender)
	ctx := context.Background()

	if _, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+5511999990000"}); err != nil {
		t.Fatalf("send code: %v", err)
	}

	result, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+5511999990000", Code: sentCode(t, sender)})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !result.Success || result.Token == "" {
		t.Fatalf("expected a token, got %+v", result)
	}
	if result.User.Phone != "+5511999990000" {
		t.Fatalf("expected the verified phone on the user, got %q", result.User.Phone)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected one created user, got %d", len(users.users))
	}
}

func TestVerifyCodeReplayFails(t *testing.T) {
	codes := &fakeCodeStore{}
	users := newFakeUserStore()
	sender := &fakeSender{}
	auth := newTestAuthUsecase(codes, users, sender)
	ctx := context.Background()

	if _, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+100"}); err != nil {
		t.Fatalf("send code: %v", err)
	}
	code := sentCode(t, sender)

	if _, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: code}); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if !codes.rows[0].Verified {
		t.Fatal("the code row must be consumed on success")
	}

	_, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: code})
	assertKind(t, err, apperror.KindAuth)
}

func TestVerifyCodeWrongCodeLeavesRowUsable(t *testing.T) {
	codes := &fakeCodeStore{}
	users := newFakeUserStore()
	sender := &fakeSender{}
	auth := newTestAuthUsecase(codes, users, sender)
	ctx := context.Background()

	if _, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+100"}); err != nil {
		t.Fatalf("send code: %v", err)
	}
	code := sentCode(t, sender)
	wrong := "000000"
	if wrong == code {
		wrong = "111111"
	}

	_, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: wrong})
	assertKind(t, err, apperror.KindAuth)
	if codes.rows[0].Verified {
		t.Fatal("a failed attempt must not consume the code")
	}

	if _, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: code}); err != nil {
		t.Fatalf("the correct code should still verify: %v", err)
	}
}

func TestVerifyCodeExpiredFails(t *testing.T) {
	hash, err := security.HashCode("123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	codes := &fakeCodeStore{rows: []*entity.VerificationCode{{
		BaseEntity: entity.BaseEntity{ID: "code-1"},
		Phone:      "+100",
		CodeHash:   hash,
		ExpiresAt:  time.Now().Add(-time.Minute),
	}}}
	auth := newTestAuthUsecase(codes, newFakeUserStore(), &fakeSender{})

	_, err = auth.VerifyCode(context.Background(), &req.VerifyRequest{Phone: "+100", Code: "123456"})
	assertKind(t, err, apperror.KindAuth)
}

func TestVerifyCodeMatchesNewestCode(t *testing.T) {
	codes := &fakeCodeStore{}
	users := newFakeUserStore()
	sender := &fakeSender{}
	auth := newTestAuthUsecase(codes, users, sender)
	ctx := context.Background()

	if _, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+100"}); err != nil {
		t.Fatalf("first send: %v", err)
	}
	first := sentCode(t, sender)
	if _, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+100"}); err != nil {
		t.Fatalf("second send: %v", err)
	}
	second := sentCode(t, sender)
	if first == second {
		t.Skip("codes collided, newest-wins is indistinguishable")
	}

	_, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: first})
	assertKind(t, err, apperror.KindAuth)

	if _, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: second}); err != nil {
		t.Fatalf("newest code should verify: %v", err)
	}
}

func TestVerifyCodeConsumeFailureIssuesNoToken(t *testing.T) {
	codes := &fakeCodeStore{markErr: errors.New("db down")}
	users := newFakeUserStore()
	sender := &fakeSender{}
	auth := newTestAuthUsecase(codes, users, sender)
	ctx := context.Background()

	if _, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+100"}); err != nil {
		t.Fatalf("send code: %v", err)
	}

	result, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: sentCode(t, sender)})
	assertKind(t, err, apperror.KindStorage)
	if result.Token != "" {
		t.Fatal("no token may be issued when the code cannot be consumed")
	}
	if len(users.users) != 0 {
		t.Fatal("no user may be created when the code cannot be consumed")
	}
}

func TestVerifyCodeRepeatTouchesExistingUser(t *testing.T) {
	codes := &fakeCodeStore{}
	users := newFakeUserStore()
	users.users = append(users.users, &entity.User{
		BaseEntity: entity.BaseEntity{ID: "u1"},
		Phone:      "+100",
		Name:       "Ana",
	})
	sender := &fakeSender{}
	auth := newTestAuthUsecase(codes, users, sender)
	ctx := context.Background()

	if _, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+100"}); err != nil {
		t.Fatalf("send code: %v", err)
	}
	result, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: sentCode(t, sender)})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if result.User.ID != "u1" || result.User.Name != "Ana" {
		t.Fatalf("expected the existing user, got %+v", result.User)
	}
	if len(users.users) != 1 {
		t.Fatalf("no duplicate user may be created, got %d", len(users.users))
	}
	if _, ok := users.touched["u1"]; !ok {
		t.Fatal("repeat verification must refresh last seen")
	}
}

func TestSendCodeStoresHashNotPlaintext(t *testing.T) {
	codes := &fakeCodeStore{}
	sender := &fakeSender{}
	auth := newTestAuthUsecase(codes, newFakeUserStore(), sender)

	if _, err := auth.SendCode(context.Background(), &req.SendCodeRequest{Phone: "+100"}); err != nil {
		t.Fatalf("send code: %v", err)
	}

	code := sentCode(t, sender)
	row := codes.rows[0]
	if row.CodeHash == code {
		t.Fatal("plaintext code must never be stored")
	}
	if !security.CompareCode(row.CodeHash, code) {
		t.Fatal("stored hash must match the delivered code")
	}
	if remaining := time.Until(row.ExpiresAt); remaining < 9*time.Minute || remaining > 10*time.Minute {
		t.Fatalf("expected a 10 minute lifetime, got %v", remaining)
	}
}

func TestSendCodeDeliveryFailureStillVerifiable(t *testing.T) {
	codes := &fakeCodeStore{}
	users := newFakeUserStore()
	sender := &fakeSender{err: errors.New("twilio unreachable")}
	auth := newTestAuthUsecase(codes, users, sender)
	ctx := context.Background()

	result, err := auth.SendCode(ctx, &req.SendCodeRequest{Phone: "+100"})
	if err != nil {
		t.Fatalf("delivery failure must degrade, not fail: %v", err)
	}
	if !result.Success {
		t.Fatal("expected a degraded success response")
	}

	if _, err := auth.VerifyCode(ctx, &req.VerifyRequest{Phone: "+100", Code: sentCode(t, sender)}); err != nil {
		t.Fatalf("the stored code must still verify: %v", err)
	}
}
