package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/auth"
	"todoapi/pkg/logger"
	. "todoapi/pkg/test"
	factory "todoapi/pkg/test/factory"
)

type UserHandlerSuite struct {
	suite.Suite
	UserRepo port.UserRepository
	Router   *gin.Engine
}

func (s *UserHandlerSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test-secret")
}

func (s *UserHandlerSuite) SetupTest() {
	db := InitTestDB(s.T())

	s.UserRepo = repository.NewUserRepository(db)

	userSvc := service.NewUserService(s.UserRepo)
	userHandler := NewUserHandler(userSvc, logger.NewNop())

	s.Router = setupUserTestRouter(userHandler)
}

func TestUserHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserHandlerSuite))
}

func setupUserTestRouter(userHandler *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(gin.Recovery())

	users := router.Group("/users")
	users.Use(middleware.GinJwtMiddleware())
	{
		users.GET("/me", userHandler.Me)
		users.PATCH("", userHandler.UpdateUser)
	}

	return router
}

func (s *UserHandlerSuite) createUser() domain.User {
	user, err := s.UserRepo.Create(ctx, factory.NewUser(map[string]any{
		"Email":     "me@example.com",
		"FirstName": "Ada",
		"LastName":  "Lovelace",
	}))
	Expect(err).To(BeNil())

	return user
}

func (s *UserHandlerSuite) doRequest(method, path, body string, userId int) *httptest.ResponseRecorder {
	var reader io.Reader

	if body != "" {
		reader = strings.NewReader(body)
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	jwtToken, _ := auth.CreateJwtTokenForUser(userId)
	req.Header.Set("Authorization", "Bearer "+jwtToken)

	s.Router.ServeHTTP(rr, req)

	return rr
}

func (s *UserHandlerSuite) TestMeWithoutTokenIsUnauthorized() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/me", nil)

	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *UserHandlerSuite) TestMeReturnsProfile() {
	user := s.createUser()

	rr := s.doRequest("GET", "/users/me", "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)

	var profile response.UserResponse
	json.Unmarshal(body, &profile)

	Expect(profile.ID).To(Equal(user.ID))
	Expect(profile.Email).To(Equal("me@example.com"))
	Expect(string(body)).ToNot(ContainSubstring("password"))
}

func (s *UserHandlerSuite) TestUpdateUserPatchesGivenFields() {
	user := s.createUser()

	rr := s.doRequest("PATCH", "/users", `{"first_name": "Grace"}`, user.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)

	var profile response.UserResponse
	json.Unmarshal(body, &profile)

	Expect(profile.FirstName).To(Equal("Grace"))
	Expect(profile.LastName).To(Equal("Lovelace"))
	Expect(profile.Email).To(Equal("me@example.com"))
}

func (s *UserHandlerSuite) TestUpdateUserWithInvalidEmail() {
	user := s.createUser()

	rr := s.doRequest("PATCH", "/users", `{"email": "not-an-email"}`, user.ID)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}
