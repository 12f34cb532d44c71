package service

import (
	"context"
	"testing"
	"time"

	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthTestService(t *testing.T) (IAuthService, *fakeMailer, *gorm.DB) {
	factory, db := newTestFactory(t)
	mailer := &fakeMailer{}
	events := NewEventService(factory, nil)
	svc := NewAuthService(factory, mailer, events)
	return svc, mailer, db
}

func registerAndVerify(t *testing.T, svc IAuthService, db *gorm.DB, email, password string) *model.User {
	t.Helper()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Casey Jones",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	var token model.EmailVerificationToken
	var user model.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	require.NoError(t, db.Where("user_id = ?", user.Id).First(&token).Error)

	require.NoError(t, svc.VerifyEmail(context.Background(), &dto.VerifyEmailRequest{
		Email: email,
		Token: token.Token,
	}))

	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return &user
}

func TestAuthService_RegisterCreatesUserProfileAndOTP(t *testing.T) {
	svc, _, db := newAuthTestService(t)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Casey Jones",
		Email:    "casey@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "casey@example.com", res.Email)

	var user model.User
	require.NoError(t, db.Where("email = ?", "casey@example.com").First(&user).Error)
	assert.Equal(t, string(entity.UserStatusPending), user.Status)
	assert.False(t, user.EmailVerified)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "hunter2hunter2", *user.PasswordHash)

	var profile model.Profile
	require.NoError(t, db.Where("user_id = ?", user.Id).First(&profile).Error)
	assert.Equal(t, "Casey Jones", profile.Name)

	var token model.EmailVerificationToken
	require.NoError(t, db.Where("user_id = ?", user.Id).First(&token).Error)
	assert.Len(t, token.Token, 6)

	var events int64
	require.NoError(t, db.Model(&model.UserEvent{}).
		Where("user_id = ? AND event_type = ?", user.Id, entity.EventSignup).
		Count(&events).Error)
	assert.EqualValues(t, 1, events)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthTestService(t)

	req := &dto.RegisterRequest{
		FullName: "Casey Jones",
		Email:    "dup@example.com",
		Password: "hunter2hunter2",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestAuthService_VerifyEmailActivatesUser(t *testing.T) {
	svc, _, db := newAuthTestService(t)

	user := registerAndVerify(t, svc, db, "verify@example.com", "hunter2hunter2")

	assert.Equal(t, string(entity.UserStatusActive), user.Status)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyEmailWrongCode(t *testing.T) {
	svc, _, db := newAuthTestService(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Casey Jones",
		Email:    "wrongcode@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	var user model.User
	require.NoError(t, db.Where("email = ?", "wrongcode@example.com").First(&user).Error)

	// Pick a code that is guaranteed not to match the stored OTP.
	var stored model.EmailVerificationToken
	require.NoError(t, db.Where("user_id = ?", user.Id).First(&stored).Error)
	wrong := "000000"
	if stored.Token == wrong {
		wrong = "000001"
	}

	err = svc.VerifyEmail(context.Background(), &dto.VerifyEmailRequest{
		Email: "wrongcode@example.com",
		Token: wrong,
	})

	require.Error(t, err)
	require.NoError(t, db.Where("email = ?", user.Email).First(&user).Error)
	assert.Equal(t, string(entity.UserStatusPending), user.Status)
}

func TestAuthService_LoginRequiresVerifiedEmail(t *testing.T) {
	svc, _, _ := newAuthTestService(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Casey Jones",
		Email:    "unverified@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "unverified@example.com",
		Password: "hunter2hunter2",
	}, "127.0.0.1", "test-agent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not verified")
}

func TestAuthService_LoginIssuesTokens(t *testing.T) {
	svc, _, db := newAuthTestService(t)
	registerAndVerify(t, svc, db, "login@example.com", "hunter2hunter2")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "login@example.com",
		Password:   "hunter2hunter2",
		RememberMe: true,
	}, "127.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "login@example.com", res.User.Email)

	var tokens int64
	require.NoError(t, db.Model(&model.UserRefreshToken{}).Count(&tokens).Error)
	assert.EqualValues(t, 1, tokens)
}

func TestAuthService_LoginWithoutRememberMeSkipsRefreshToken(t *testing.T) {
	svc, _, db := newAuthTestService(t)
	registerAndVerify(t, svc, db, "short@example.com", "hunter2hunter2")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "short@example.com",
		Password: "hunter2hunter2",
	}, "127.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.Empty(t, res.RefreshToken)

	var tokens int64
	require.NoError(t, db.Model(&model.UserRefreshToken{}).Count(&tokens).Error)
	assert.Zero(t, tokens)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _, db := newAuthTestService(t)
	registerAndVerify(t, svc, db, "wrongpw@example.com", "hunter2hunter2")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "wrongpw@example.com",
		Password: "not-the-password",
	}, "127.0.0.1", "test-agent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_LogoutRevokesRefreshToken(t *testing.T) {
	svc, _, db := newAuthTestService(t)
	registerAndVerify(t, svc, db, "logout@example.com", "hunter2hunter2")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:      "logout@example.com",
		Password:   "hunter2hunter2",
		RememberMe: true,
	}, "127.0.0.1", "test-agent")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), res.RefreshToken))

	var token model.UserRefreshToken
	require.NoError(t, db.First(&token).Error)
	assert.True(t, token.Revoked)
}

func TestAuthService_ForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, _, db := newAuthTestService(t)

	err := svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})

	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.PasswordResetToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAuthService_ResetPasswordFlow(t *testing.T) {
	svc, _, db := newAuthTestService(t)
	registerAndVerify(t, svc, db, "reset@example.com", "hunter2hunter2")

	require.NoError(t, svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{
		Email: "reset@example.com",
	}))

	var resetToken model.PasswordResetToken
	require.NoError(t, db.First(&resetToken).Error)

	require.NoError(t, svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:           resetToken.Token,
		NewPassword:     "brandNewPass99",
		ConfirmPassword: "brandNewPass99",
	}))

	// Old password no longer works, new one does.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "reset@example.com",
		Password: "hunter2hunter2",
	}, "127.0.0.1", "test-agent")
	require.Error(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "reset@example.com",
		Password: "brandNewPass99",
	}, "127.0.0.1", "test-agent")
	require.NoError(t, err)

	// The token is single-use.
	err = svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:           resetToken.Token,
		NewPassword:     "anotherPass100",
		ConfirmPassword: "anotherPass100",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already been used")
}

func TestAuthService_ResetPasswordExpiredToken(t *testing.T) {
	svc, _, db := newAuthTestService(t)
	user := registerAndVerify(t, svc, db, "expired@example.com", "hunter2hunter2")

	expired := &model.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(expired).Error)

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:           "expired-token",
		NewPassword:     "brandNewPass99",
		ConfirmPassword: "brandNewPass99",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}
