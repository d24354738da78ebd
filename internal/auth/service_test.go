package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dealership-crm-backend/internal/auth"
	"dealership-crm-backend/internal/config"
	"dealership-crm-backend/internal/database/models"
	apperrors "dealership-crm-backend/internal/errors"
	"dealership-crm-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUsers   *mocks.MockUserRepositoryInterface
	authService *auth.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewAuthService(suite.mockUsers, &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	})
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) storedUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(suite.T(), err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		FullName:     "Priya Nair",
		Email:        "priya@dealership.test",
		PasswordHash: string(hash),
		Role:         models.UserRoleCRE,
		IsActive:     true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	user := suite.storedUser("correct-horse")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	token, loggedIn, err := suite.authService.Login(user.Email, "correct-horse")

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)
	assert.Equal(suite.T(), user.ID, loggedIn.ID)

	claims, err := suite.authService.ValidateJWT(token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
	assert.Equal(suite.T(), user.Email, claims.Email)
	assert.Equal(suite.T(), models.UserRoleCRE, claims.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := suite.storedUser("correct-horse")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	token, loggedIn, err := suite.authService.Login(user.Email, "battery-staple")

	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), loggedIn)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	suite.mockUsers.EXPECT().GetByEmail("nobody@dealership.test").Return(nil, gorm.ErrRecordNotFound)

	token, loggedIn, err := suite.authService.Login("nobody@dealership.test", "whatever")

	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), loggedIn)
	// Unknown account and wrong password are indistinguishable to the caller.
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	user := suite.storedUser("correct-horse")
	user.IsActive = false
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	token, loggedIn, err := suite.authService.Login(user.Email, "correct-horse")

	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), loggedIn)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_WrongSecret() {
	user := suite.storedUser("correct-horse")
	otherService := auth.NewAuthService(suite.mockUsers, &config.Config{
		JWTSecret:      "different-secret",
		JWTExpiryHours: 1,
	})

	token, err := otherService.GenerateJWT(user)
	require.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateJWT(token)
	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_Garbage() {
	claims, err := suite.authService.ValidateJWT("not-a-token")
	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

func (suite *AuthServiceTestSuite) requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *AuthServiceTestSuite) TestRequireAuth_AllowsValidToken() {
	user := suite.storedUser("correct-horse")
	token, err := suite.authService.GenerateJWT(user)
	require.NoError(suite.T(), err)

	router := gin.New()
	router.GET("/protected", auth.RequireAuth(suite.authService), func(c *gin.Context) {
		callerID, ok := auth.CallerID(c)
		assert.True(suite.T(), ok)
		assert.Equal(suite.T(), user.ID, callerID)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := suite.requestWithToken(router, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AuthServiceTestSuite) TestRequireAuth_RejectsMissingHeader() {
	router := gin.New()
	router.GET("/protected", auth.RequireAuth(suite.authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := suite.requestWithToken(router, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthServiceTestSuite) TestRequireRole_ForbidsOtherRoles() {
	user := suite.storedUser("correct-horse")
	token, err := suite.authService.GenerateJWT(user)
	require.NoError(suite.T(), err)

	router := gin.New()
	router.GET("/protected",
		auth.RequireAuth(suite.authService),
		auth.RequireRole(models.UserRoleAdmin, models.UserRoleTeamLead),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

	// A CRE cannot reach rule management.
	w := suite.requestWithToken(router, token)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *AuthServiceTestSuite) TestRequireRole_AllowsListedRole() {
	user := suite.storedUser("correct-horse")
	user.Role = models.UserRoleTeamLead
	token, err := suite.authService.GenerateJWT(user)
	require.NoError(suite.T(), err)

	router := gin.New()
	router.GET("/protected",
		auth.RequireAuth(suite.authService),
		auth.RequireRole(models.UserRoleAdmin, models.UserRoleTeamLead),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

	w := suite.requestWithToken(router, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
