package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseConversion(t *testing.T) {
	cases := []struct {
		in, pascal, camel string
	}{
		{"getUserById", "GetUserById", "getUserById"},
		{"GetUserById", "GetUserById", "getUserById"},
		{"get-user-by-id", "GetUserById", "getUserById"},
		{"get_user_by_id", "GetUserById", "getUserById"},
		{"get user  by id", "GetUserById", "getUserById"},
		{"user", "User", "user"},
		{"USER", "User", "user"},
		{"order_ITEM", "OrderItem", "orderItem"},
		{"get_userById", "GetUserById", "getUserById"},
		{"iPhone", "IPhone", "iPhone"},
		{"aB", "AB", "aB"},
		{"Order_item", "OrderItem", "orderItem"},
	}
	for _, c := range cases {
		assert.Equal(t, c.pascal, ToPascalCase(c.in), c.in)
		assert.Equal(t, c.camel, ToCamelCase(c.in), c.in)
	}
}

func TestCaseConversionIsIdempotent(t *testing.T) {
	for _, in := range []string{"getUserById", "Order", "student-subscription", "order_item", "x", "iPhone", "aB", "eCommerce", "USER"} {
		p := ToPascalCase(in)
		c := ToCamelCase(in)
		assert.Equal(t, p, ToPascalCase(p), in)
		assert.Equal(t, c, ToCamelCase(c), in)
		assert.Equal(t, c, ToCamelCase(p), in)
	}
}

func TestRepositoryNames(t *testing.T) {
	assert.Equal(t, "User", RepositoryBaseName("IUserRepository"))
	assert.Equal(t, "userRepository", RepositoryVarName("IUserRepository"))
	assert.Equal(t, "studentSubscriptionRepository", RepositoryVarName("IStudentSubscriptionRepository"))
}

func TestIsHTTPMethod(t *testing.T) {
	assert.True(t, IsHTTPMethod("patch"))
	assert.False(t, IsHTTPMethod("OPTIONS"))
}

func TestProjectPaths(t *testing.T) {
	p := NewProjectPaths("/proj", "")
	assert.Equal(t, filepath.Join("/proj", "src", "entities", "orderItem.entity.ts"), p.EntityFile("orderItem"))
	assert.Equal(t, filepath.Join("/proj", "src", "repositories", "implementions", "PostgresUserRepository.ts"), p.RepositoryImplementationFile("User"))
	assert.Equal(t, filepath.Join("/proj", "src", "api", "routes", "v1", "users.router.ts"), p.RouterFile("v1", "users"))

	rel, err := ImportPath(p.RoutesDir("v1"), filepath.Join(p.UseCaseDir("users", "getUser", "v1"), "index.ts"))
	require.NoError(t, err)
	assert.Equal(t, "../../../useCases/users/getUser/v1/index", rel)

	rel, err = ImportPath(p.UseCasesDir(), filepath.Join(p.UseCasesDir(), "x.ts"))
	require.NoError(t, err)
	assert.Equal(t, "./x", rel)
}
