package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/author-haven/internal/config"
	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, activation,
// password reset, and JWT token lifecycle using a UserRepository and a
// TokenRepository for persistence and PBKDF2-SHA512 for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository holds the revocation set consulted on every parse
	// and appended to on logout.
	tokenRepository store.TokenRepository

	// mailSender delivers activation and password-reset mail. May be nil
	// when no mail provider is configured; mail steps are then skipped.
	mailSender MailSender

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session JWT remains valid.
	tokenDuration time.Duration

	// resetTokenDuration controls how long a password-reset link stays valid.
	resetTokenDuration time.Duration

	// publicBaseURL is the externally reachable API base used to build
	// activation and reset links embedded in outbound mail.
	publicBaseURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, mailSender MailSender, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		tokenRepository:    tokenRepository,
		mailSender:         mailSender,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		resetTokenDuration: cfg.ResetTokenDuration,
		publicBaseURL:      cfg.PublicBaseURL,
		logger:             logger,
	}
}

// Register creates a new local account.
//
// The plain-text password is salted and hashed before persistence; the
// account starts deactivated and an activation link is mailed to the user.
// A mail delivery failure does not undo the registration. Surrounding
// whitespace in the email and username is dropped before anything else.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email, username, or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	user.Username = strings.TrimSpace(user.Username)

	if user.Email == "" || user.Username == "" || password == "" {
		log.Error().Str("email", user.Email).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	user.Salt = salt
	user.Hash = utils.HashPassword(password, salt)
	user.Activated = false

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.sendActivationMail(ctx, registeredUser)

	return registeredUser, nil
}

// RegisterSocial signs a user in through an external identity provider.
//
// If an account already exists for the provider's profile it is returned
// as-is; otherwise a new account is created. Socially registered accounts
// hold no local credentials. A freshly created one starts deactivated and
// is mailed an activation link, same as a local signup.
//
// Returns ErrInvalidDataProvided if the profile carries no display name,
// no provider, or no email address.
func (a *authService) RegisterSocial(ctx context.Context, profile models.SocialProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	if profile.DisplayName == "" || profile.Provider == "" || len(profile.Emails) == 0 {
		log.Error().Str("provider", profile.Provider).Msg("invalid social profile provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByProvider(ctx, profile.DisplayName, profile.Provider)
	if err == nil {
		return foundUser, nil
	}

	user := models.User{
		Email:    profile.Emails[0],
		Username: profile.DisplayName,
		Provider: profile.Provider,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("provider", profile.Provider).Msg("social user creation ended with error")
		return models.User{}, fmt.Errorf("social user creation ended with error: %w", err)
	}

	a.sendActivationMail(ctx, registeredUser)

	return registeredUser, nil
}

// Login authenticates an existing local account.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrUserNotActivated if the account has not confirmed its address.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !foundUser.Activated {
		log.Error().Int64("id", foundUser.UserID).Msg("login attempt on non-activated account")
		return models.User{}, ErrUserNotActivated
	}

	if !utils.VerifyPassword(password, foundUser.Salt, foundUser.Hash) {
		log.Error().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// Activate marks the account identified by userID as activated and returns
// the refreshed user record.
func (a *authService) Activate(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.userRepository.ActivateUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("account activation failed")
		return models.User{}, fmt.Errorf("account activation failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// Logout revokes the given session token.
//
// The token is first validated so its expiry can be recorded; revoked
// entries are swept from storage once that expiry passes. Logging out
// with an already-invalid token returns ErrTokenIsExpiredOrInvalid.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("logout with invalid token")
		return ErrTokenIsExpiredOrInvalid
	}

	expiresAt := time.Now().Add(a.tokenDuration)
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.Time
	}

	blacklisted := models.BlacklistToken{Token: tokenString, ExpiresAt: expiresAt}
	if err := a.tokenRepository.BlacklistToken(ctx, blacklisted); err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

// RequestPasswordReset mails a time-boxed reset link to the given address.
//
// Returns a wrapped store.ErrNoUserWasFound when no account matches, so
// callers can distinguish unknown addresses from delivery failures.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken, err := utils.GenerateResetToken(a.tokenIssuer, foundUser.Email, a.resetTokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("reset token generation failed")
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if a.mailSender == nil {
		log.Warn().Str("email", foundUser.Email).Msg("no mail sender configured, skipping reset mail")
		return nil
	}

	resetLink := fmt.Sprintf("%s/api/update_password/%s", a.publicBaseURL, resetToken.SignedString)
	if err := a.mailSender.SendPasswordResetMail(ctx, foundUser.Email, resetLink); err != nil {
		log.Err(err).Str("email", foundUser.Email).Msg("reset mail delivery failed")
		return fmt.Errorf("reset mail delivery failed: %w", err)
	}

	return nil
}

// ResetPassword overwrites the credentials of the account named by a valid
// reset token.
//
// Returns ErrTokenIsExpiredOrInvalid for any token validation failure and
// ErrInvalidDataProvided when the new password is empty.
func (a *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	token, err := utils.ValidateAndParseResetToken(resetToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("reset token validation failed")
		return ErrTokenIsExpiredOrInvalid
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return fmt.Errorf("salt generation failed: %w", err)
	}

	hash := utils.HashPassword(newPassword, salt)
	if err := a.userRepository.UpdateCredentials(ctx, token.Email, salt, hash); err != nil {
		log.Err(err).Str("email", token.Email).Msg("credential update failed")
		return fmt.Errorf("credential update failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed session JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session JWT string.
//
// Signature, issuer, and expiry are verified, then the revocation set is
// consulted. Any validation failure (expired, wrong issuer, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors; revoked tokens yield ErrTokenRevoked.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.tokenRepository.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return models.Token{}, fmt.Errorf("revocation check failed: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

// sendActivationMail delivers the activation link for a freshly registered
// account. Delivery problems are logged, not returned: the account exists
// either way and activation can be retried out of band.
func (a *authService) sendActivationMail(ctx context.Context, user models.User) {
	log := logger.FromContext(ctx)

	if a.mailSender == nil {
		log.Warn().Str("email", user.Email).Msg("no mail sender configured, skipping activation mail")
		return
	}

	activationLink := fmt.Sprintf("%s/api/activate/%d", a.publicBaseURL, user.UserID)
	if err := a.mailSender.SendActivationMail(ctx, user.Email, activationLink); err != nil {
		log.Err(err).Str("email", user.Email).Msg("activation mail delivery failed")
	}
}
