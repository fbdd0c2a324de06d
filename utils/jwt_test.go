package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing-thailand/photo-service/config"
)

func testJWTConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Expire = 3600
	return cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, err := GenerateToken(42, "somchai", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ParseToken(tokenString, cfg)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "somchai", claims["username"])
}

func TestGenerateTokenMissingSecret(t *testing.T) {
	cfg := &config.EnvConfig{}
	_, err := GenerateToken(1, "user", cfg)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	tokenString, err := GenerateToken(7, "user", cfg)
	require.NoError(t, err)

	other := testJWTConfig()
	other.JWT.SecretKey = "different-secret"
	_, err = ParseToken(tokenString, other)
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Bearer header.
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", ExtractToken(c))

	// Cookie wins over the header.
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")
	assert.Equal(t, "cookie-token", ExtractToken(c))

	// Nothing present.
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "", ExtractToken(c))
}

func TestInjectClaimsToContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	InjectClaimsToContext(c, jwt.MapClaims{"user_id": float64(9), "username": "malee"})

	userID, exists := c.Get("user_id")
	require.True(t, exists)
	assert.Equal(t, uint(9), userID)

	username, exists := c.Get("username")
	require.True(t, exists)
	assert.Equal(t, "malee", username)
}
