package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
	"github.com/mydiaryhq/mydiary-api/internal/infrastructure/memory"
	"github.com/mydiaryhq/mydiary-api/pkg/helpers"
)

func newProtectedRouter(t *testing.T, jwt *helpers.JWTManager) (*gin.Engine, *memory.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := memory.NewUserRepository()
	r := gin.New()
	r.GET("/protected", Auth(jwt, users, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64(CtxUserIDKey),
			"email":   c.GetString(CtxUserEmailKey),
		})
	})
	return r, users
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, _ := newProtectedRouter(t, jwt)

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, users := newProtectedRouter(t, jwt)

	err := users.Create(context.Background(), &entity.User{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "John_Doe@example.com",
		Password:  "hashed",
	})
	require.NoError(t, err)

	token, _, err := jwt.GenerateAuthToken("John_Doe@example.com")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John_Doe@example.com")
}

func TestAuth_ExpiredToken(t *testing.T) {
	issuer := helpers.NewJWTManager("test-secret", -time.Minute)
	verifier := helpers.NewJWTManager("test-secret", time.Hour)
	r, _ := newProtectedRouter(t, verifier)

	token, _, err := issuer.GenerateAuthToken("John_Doe@example.com")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "auth token expired")
}

func TestAuth_TamperedToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, _ := newProtectedRouter(t, jwt)

	token, _, err := jwt.GenerateAuthToken("John_Doe@example.com")
	require.NoError(t, err)

	w := get(r, "Bearer x"+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid auth token")
}

// failingUserRepository simulates an unreachable store.
type failingUserRepository struct {
	err error
}

func (r *failingUserRepository) Create(ctx context.Context, u *entity.User) error { return r.err }

func (r *failingUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, r.err
}

func (r *failingUserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return nil, r.err
}

// A store outage behind a validly signed token is a server failure, not an
// invalid token.
func TestAuth_StoreUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	users := &failingUserRepository{err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.GET("/protected", Auth(jwt, users, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, _, err := jwt.GenerateAuthToken("John_Doe@example.com")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "invalid auth token")
}

func TestAuth_UnknownSubject(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, _ := newProtectedRouter(t, jwt)

	// Token is valid but the subject was never registered.
	token, _, err := jwt.GenerateAuthToken("ghost@example.com")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
