package repository

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/core/domain"
	. "todoapi/pkg/test"
	factory "todoapi/pkg/test/factory"
)

var ctx = context.Background()

type TodoRepositorySuite struct {
	suite.Suite
	userRepo *UserRepository
	repo     *TodoRepository
}

func (s *TodoRepositorySuite) SetupTest() {
	db := InitTestDB(s.T())

	s.userRepo = NewUserRepository(db)
	s.repo = NewTodoRepository(db)
}

func TestTodoRepositorySuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoRepositorySuite))
}

func (s *TodoRepositorySuite) createUser() domain.User {
	user, err := s.userRepo.Create(ctx, factory.NewUser())
	Expect(err).To(BeNil())

	return user
}

func (s *TodoRepositorySuite) TestCreateAssignsID() {
	user := s.createUser()

	todo, err := s.repo.Create(ctx, factory.NewTodo(map[string]any{
		"Title":  "write tests",
		"UserId": user.ID,
	}))

	Expect(err).To(BeNil())
	Expect(todo.ID).To(BeNumerically(">", 0))
	Expect(todo.Title).To(Equal("write tests"))
}

func (s *TodoRepositorySuite) TestGetAllByUserOrdersById() {
	user := s.createUser()

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.repo.Create(ctx, factory.NewTodo(map[string]any{
			"Title":  title,
			"UserId": user.ID,
		}))
		Expect(err).To(BeNil())
	}

	todos, err := s.repo.GetAllByUser(ctx, user.ID)

	Expect(err).To(BeNil())
	Expect(todos).To(HaveLen(3))
	Expect(todos[0].Title).To(Equal("first"))
	Expect(todos[2].Title).To(Equal("third"))
}

func (s *TodoRepositorySuite) TestGetAllByUserExcludesOtherUsers() {
	alice := s.createUser()
	bob := s.createUser()

	_, err := s.repo.Create(ctx, factory.NewTodo(map[string]any{
		"Title":  "alice only",
		"UserId": alice.ID,
	}))
	Expect(err).To(BeNil())

	todos, err := s.repo.GetAllByUser(ctx, bob.ID)

	Expect(err).To(BeNil())
	Expect(todos).To(BeEmpty())
}

func (s *TodoRepositorySuite) TestGetByIDScopedToOwner() {
	alice := s.createUser()
	bob := s.createUser()

	todo, err := s.repo.Create(ctx, factory.NewTodo(map[string]any{
		"Title":  "scoped",
		"UserId": alice.ID,
	}))
	Expect(err).To(BeNil())

	found, err := s.repo.GetByID(ctx, alice.ID, todo.ID)
	Expect(err).To(BeNil())
	Expect(found.Title).To(Equal("scoped"))
	Expect(found.BelongsToUser(alice.ID)).To(BeTrue())
	Expect(found.BelongsToUser(bob.ID)).To(BeFalse())

	_, err = s.repo.GetByID(ctx, bob.ID, todo.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositorySuite) TestUpdatePatchesOnlyGivenFields() {
	user := s.createUser()

	todo, err := s.repo.Create(ctx, factory.NewTodo(map[string]any{
		"Title":       "original",
		"Description": "keep me",
		"UserId":      user.ID,
	}))
	Expect(err).To(BeNil())

	completed := true

	updated, err := s.repo.Update(ctx, user.ID, todo.ID, domain.TodoPatch{
		Completed: &completed,
	})

	Expect(err).To(BeNil())
	Expect(updated.Completed).To(BeTrue())
	Expect(updated.Title).To(Equal("original"))
	Expect(updated.Description).To(Equal("keep me"))
}

func (s *TodoRepositorySuite) TestUpdateMissingTodoIsNotFound() {
	user := s.createUser()

	title := "ghost"

	_, err := s.repo.Update(ctx, user.ID, 9999, domain.TodoPatch{Title: &title})

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositorySuite) TestDeleteRemovesRow() {
	user := s.createUser()

	todo, err := s.repo.Create(ctx, factory.NewTodo(map[string]any{
		"Title":  "doomed",
		"UserId": user.ID,
	}))
	Expect(err).To(BeNil())

	Expect(s.repo.Delete(ctx, user.ID, todo.ID)).To(Succeed())

	_, err = s.repo.GetByID(ctx, user.ID, todo.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositorySuite) TestDeleteMissingTodoIsNotFound() {
	user := s.createUser()

	err := s.repo.Delete(ctx, user.ID, 9999)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositorySuite) TestDeleteAll() {
	user := s.createUser()

	_, err := s.repo.Create(ctx, factory.NewTodo(map[string]any{
		"Title":  "one",
		"UserId": user.ID,
	}))
	Expect(err).To(BeNil())

	Expect(s.repo.DeleteAll(ctx)).To(Succeed())

	todos, err := s.repo.GetAllByUser(ctx, user.ID)
	Expect(err).To(BeNil())
	Expect(todos).To(BeEmpty())
}
