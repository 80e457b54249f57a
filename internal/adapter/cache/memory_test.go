package cache

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"todoapi/internal/core/domain"
)

var ctx = context.Background()

func TestMemoryTodoCacheMissOnUnknownKey(t *testing.T) {
	RegisterTestingT(t)

	c := NewMemoryTodoCache()

	todos, found, err := c.Get(ctx, "user:1:todos")

	Expect(err).To(BeNil())
	Expect(found).To(BeFalse())
	Expect(todos).To(BeNil())
}

func TestMemoryTodoCacheSetThenGet(t *testing.T) {
	RegisterTestingT(t)

	c := NewMemoryTodoCache()

	stored := []domain.Todo{{ID: 1, Title: "cached"}}

	Expect(c.Set(ctx, "user:1:todos", stored, time.Minute)).To(Succeed())

	todos, found, err := c.Get(ctx, "user:1:todos")

	Expect(err).To(BeNil())
	Expect(found).To(BeTrue())
	Expect(todos).To(Equal(stored))
}

func TestMemoryTodoCacheStoresEmptyList(t *testing.T) {
	RegisterTestingT(t)

	c := NewMemoryTodoCache()

	Expect(c.Set(ctx, "user:1:todos", []domain.Todo{}, time.Minute)).To(Succeed())

	todos, found, err := c.Get(ctx, "user:1:todos")

	Expect(err).To(BeNil())
	Expect(found).To(BeTrue())
	Expect(todos).To(BeEmpty())
}

func TestMemoryTodoCacheEntryExpires(t *testing.T) {
	RegisterTestingT(t)

	c := NewMemoryTodoCache()

	Expect(c.Set(ctx, "user:1:todos", []domain.Todo{{ID: 1}}, 30*time.Millisecond)).To(Succeed())

	time.Sleep(60 * time.Millisecond)

	_, found, err := c.Get(ctx, "user:1:todos")

	Expect(err).To(BeNil())
	Expect(found).To(BeFalse())
}

func TestMemoryTodoCacheDel(t *testing.T) {
	RegisterTestingT(t)

	c := NewMemoryTodoCache()

	Expect(c.Set(ctx, "user:1:todos", []domain.Todo{{ID: 1}}, time.Minute)).To(Succeed())
	Expect(c.Del(ctx, "user:1:todos")).To(Succeed())

	_, found, err := c.Get(ctx, "user:1:todos")

	Expect(err).To(BeNil())
	Expect(found).To(BeFalse())
}

func TestMemoryTodoCacheKeysAreIndependent(t *testing.T) {
	RegisterTestingT(t)

	c := NewMemoryTodoCache()

	Expect(c.Set(ctx, "user:1:todos", []domain.Todo{{ID: 1}}, time.Minute)).To(Succeed())
	Expect(c.Set(ctx, "user:2:todos", []domain.Todo{{ID: 2}}, time.Minute)).To(Succeed())

	one, found, err := c.Get(ctx, "user:1:todos")
	Expect(err).To(BeNil())
	Expect(found).To(BeTrue())
	Expect(one[0].ID).To(Equal(1))

	two, found, err := c.Get(ctx, "user:2:todos")
	Expect(err).To(BeNil())
	Expect(found).To(BeTrue())
	Expect(two[0].ID).To(Equal(2))
}
