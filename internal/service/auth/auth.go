package auth

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"fleetrent-service/internal/domain/account"
	xerrors "fleetrent-service/internal/pkg/errors"
	"fleetrent-service/internal/pkg/jwt"
	"fleetrent-service/internal/repository/memory"
)

// Registration rules applied before the directory is touched. The directory
// itself only enforces username uniqueness.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

const (
	minPasswordLen = 4
	maxPasswordLen = 72 // bcrypt input limit
)

// AuthService gates access to the dashboards: it authenticates against the
// user directory and issues session tokens.
type AuthService struct {
	directory *memory.Directory
	tokens    *jwt.Manager
	logger    *zap.Logger
}

func NewAuthService(directory *memory.Directory, tokens *jwt.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		directory: directory,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login authenticates the credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *account.LoginRequest) (*account.LoginResponse, error) {
	a, ok := s.directory.Authenticate(req.Username, req.Password)
	if !ok {
		return nil, xerrors.ErrBadCredentials
	}

	token, err := s.tokens.Generate(a.Username, string(a.Role))
	if err != nil {
		s.logger.Error("failed to sign session token",
			zap.String("username", a.Username),
			zap.Error(err),
		)
		return nil, xerrors.ErrInternal
	}

	s.logger.Info("user logged in",
		zap.String("username", a.Username),
		zap.String("role", string(a.Role)),
	)

	return &account.LoginResponse{
		Token:    token,
		Username: a.Username,
		Role:     a.Role,
	}, nil
}

// Register creates a Customer account after applying the registration rules:
// username 3-20 chars of letters, digits or underscore, password at least 4
// characters.
func (s *AuthService) Register(ctx context.Context, req *account.RegisterRequest) error {
	if !usernamePattern.MatchString(req.Username) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "username must be 3-20 chars (letters, numbers, _)")
	}
	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "password must be at least 4 characters")
	}

	if !s.directory.RegisterCustomer(req.Username, req.Password) {
		return xerrors.ErrUsernameTaken
	}

	s.logger.Info("customer registered", zap.String("username", req.Username))
	return nil
}

// ValidateToken verifies a session token and returns its claims.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	return s.tokens.Verify(token)
}

// ListAccounts returns all registered accounts.
func (s *AuthService) ListAccounts(ctx context.Context) []account.Account {
	return s.directory.ListAccounts()
}

// Reset reseeds the directory with the default accounts.
func (s *AuthService) Reset(ctx context.Context) {
	s.directory.Reset()
	s.logger.Info("user directory reset")
}
