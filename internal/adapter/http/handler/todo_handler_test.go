package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/cache"
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

type TodoHandlerSuite struct {
	suite.Suite
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository
	Cache    port.TodoCache
	Router   *gin.Engine
}

func (s *TodoHandlerSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test-secret")
}

func (s *TodoHandlerSuite) SetupTest() {
	db := InitTestDB(s.T())

	s.UserRepo = repository.NewUserRepository(db)
	s.TodoRepo = repository.NewTodoRepository(db)
	s.Cache = cache.NewMemoryTodoCache()

	todoSvc := service.NewTodoService(s.TodoRepo, s.Cache, nil)
	todoHandler := NewTodoHandler(todoSvc, logger.NewNop())

	s.Router = setupTodoTestRouter(todoHandler)
}

func TestTodoHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerSuite))
}

func setupTodoTestRouter(todoHandler *TodoHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(gin.Recovery())

	todos := router.Group("/todos")
	todos.Use(middleware.GinJwtMiddleware())
	{
		todos.GET("", todoHandler.GetAllTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("/:id", todoHandler.GetTodoByID)
		todos.PATCH("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}

	return router
}

func (s *TodoHandlerSuite) createUser() domain.User {
	user, err := s.UserRepo.Create(ctx, factory.NewUser())
	Expect(err).To(BeNil())

	return user
}

func (s *TodoHandlerSuite) createTodo(userId int, title string) domain.Todo {
	todo, err := s.TodoRepo.Create(ctx, factory.NewTodo(map[string]any{
		"Title":  title,
		"UserId": userId,
	}))
	Expect(err).To(BeNil())

	return todo
}

func (s *TodoHandlerSuite) doRequest(method, path, body string, userId int) *httptest.ResponseRecorder {
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

func (s *TodoHandlerSuite) TestRequestWithoutTokenIsUnauthorized() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/todos", nil)

	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *TodoHandlerSuite) TestRequestWithMalformedTokenIsUnauthorized() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/todos", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *TodoHandlerSuite) TestGetAllTodosWhenEmpty() {
	user := s.createUser()

	rr := s.doRequest("GET", "/todos", "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)

	// An empty list serializes as [], never null.
	Expect(strings.TrimSpace(string(body))).To(Equal("[]"))
}

func (s *TodoHandlerSuite) TestGetAllTodosWithData() {
	user := s.createUser()
	s.createTodo(user.ID, "first task")

	rr := s.doRequest("GET", "/todos", "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

	body, _ := io.ReadAll(rr.Body)

	var todos []response.TodoResponse
	json.Unmarshal(body, &todos)

	Expect(todos).To(HaveLen(1))
	Expect(todos[0].Title).To(Equal("first task"))
}

func (s *TodoHandlerSuite) TestGetAllTodosDoesNotLeakOtherUsers() {
	alice := s.createUser()
	bob := s.createUser()

	s.createTodo(alice.ID, "alice only")

	rr := s.doRequest("GET", "/todos", "", bob.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)

	var todos []response.TodoResponse
	json.Unmarshal(body, &todos)

	Expect(todos).To(BeEmpty())
}

func (s *TodoHandlerSuite) TestListStaysStaleUntilEviction() {
	user := s.createUser()

	rr := s.doRequest("GET", "/todos", "", user.ID)
	Expect(rr.Code).To(Equal(http.StatusOK))

	s.createTodo(user.ID, "written after the list was cached")

	// Still the cached empty list.
	rr = s.doRequest("GET", "/todos", "", user.ID)

	body, _ := io.ReadAll(rr.Body)

	var todos []response.TodoResponse
	json.Unmarshal(body, &todos)

	Expect(todos).To(BeEmpty())

	// After eviction the next read sees the write.
	Expect(s.Cache.Del(ctx, service.ListCacheKey(user.ID))).To(Succeed())

	rr = s.doRequest("GET", "/todos", "", user.ID)

	body, _ = io.ReadAll(rr.Body)
	json.Unmarshal(body, &todos)

	Expect(todos).To(HaveLen(1))
}

func (s *TodoHandlerSuite) TestCreateTodo() {
	user := s.createUser()

	rr := s.doRequest("POST", "/todos", `{"title": "buy milk", "description": "2 liters"}`, user.ID)

	Expect(rr.Code).To(Equal(http.StatusCreated))

	body, _ := io.ReadAll(rr.Body)

	var todo response.TodoResponse
	json.Unmarshal(body, &todo)

	Expect(todo.ID).To(BeNumerically(">", 0))
	Expect(todo.Title).To(Equal("buy milk"))
	Expect(todo.Description).To(Equal("2 liters"))
	Expect(todo.Completed).To(BeFalse())
}

func (s *TodoHandlerSuite) TestCreateTodoWithoutTitle() {
	user := s.createUser()

	rr := s.doRequest("POST", "/todos", `{"description": "no title"}`, user.ID)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	body, _ := io.ReadAll(rr.Body)

	var errorResponse response.ErrorResponse
	json.Unmarshal(body, &errorResponse)

	Expect(errorResponse.Error.Code).To(Equal("VALIDATION_ERROR"))
}

func (s *TodoHandlerSuite) TestGetTodoByID() {
	user := s.createUser()
	todo := s.createTodo(user.ID, "single")

	rr := s.doRequest("GET", fmt.Sprintf("/todos/%d", todo.ID), "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)

	var found response.TodoResponse
	json.Unmarshal(body, &found)

	Expect(found.ID).To(Equal(todo.ID))
	Expect(found.Title).To(Equal("single"))
}

func (s *TodoHandlerSuite) TestGetTodoByIDWithNonNumericID() {
	user := s.createUser()

	rr := s.doRequest("GET", "/todos/abc", "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerSuite) TestGetTodoByIDWhenMissing() {
	user := s.createUser()

	rr := s.doRequest("GET", "/todos/9999", "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestGetTodoOfAnotherUserIsNotFound() {
	alice := s.createUser()
	bob := s.createUser()

	todo := s.createTodo(alice.ID, "private")

	rr := s.doRequest("GET", fmt.Sprintf("/todos/%d", todo.ID), "", bob.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestUpdateTodoCompletedRoundTrip() {
	user := s.createUser()
	todo := s.createTodo(user.ID, "toggle me")

	path := fmt.Sprintf("/todos/%d", todo.ID)

	rr := s.doRequest("PATCH", path, `{"completed": true}`, user.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)

	var updated response.TodoResponse
	json.Unmarshal(body, &updated)

	Expect(updated.Completed).To(BeTrue())
	Expect(updated.Title).To(Equal("toggle me"))

	rr = s.doRequest("PATCH", path, `{"completed": false}`, user.ID)

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ = io.ReadAll(rr.Body)
	json.Unmarshal(body, &updated)

	Expect(updated.Completed).To(BeFalse())
}

func (s *TodoHandlerSuite) TestUpdateTodoOfAnotherUserIsNotFound() {
	alice := s.createUser()
	bob := s.createUser()

	todo := s.createTodo(alice.ID, "private")

	rr := s.doRequest("PATCH", fmt.Sprintf("/todos/%d", todo.ID), `{"title": "hijacked"}`, bob.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestDeleteTodo() {
	user := s.createUser()
	todo := s.createTodo(user.ID, "doomed")

	path := fmt.Sprintf("/todos/%d", todo.ID)

	rr := s.doRequest("DELETE", path, "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusNoContent))
	Expect(rr.Body.Len()).To(Equal(0))

	rr = s.doRequest("GET", path, "", user.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerSuite) TestDeleteTodoOfAnotherUserIsNotFound() {
	alice := s.createUser()
	bob := s.createUser()

	todo := s.createTodo(alice.ID, "private")

	rr := s.doRequest("DELETE", fmt.Sprintf("/todos/%d", todo.ID), "", bob.ID)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}
