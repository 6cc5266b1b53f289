package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/v1/users/register", "/api/v1/users/register", true},
		{"/api/v1/users/register", "/api/v1/users/login", false},
		{"/api/v1/categories/**", "/api/v1/categories", true},
		{"/api/v1/categories/**", "/api/v1/categories/abc", true},
		{"/api/v1/categories/**", "/api/v1/categories/abc/def", true},
		{"/api/v1/categories/**", "/api/v1/products", false},
		{"/api/v1/orders/*", "/api/v1/orders/123", true},
		{"/api/v1/orders/*", "/api/v1/orders/123/extra", false},
		{"/api/v1/orders/*", "/api/v1/orders", false},
		{"/health", "/health", true},
		{"/health", "/health/extra", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, matchPattern(tc.pattern, tc.path),
			"pattern %q path %q", tc.pattern, tc.path)
	}
}

func TestDefaultPolicyPublicRoutes(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy("/api/v1")

	// Boleh tanpa token
	assert.True(t, policy.IsPublic("POST", "/api/v1/users/register"))
	assert.True(t, policy.IsPublic("POST", "/api/v1/users/login"))
	assert.True(t, policy.IsPublic("GET", "/api/v1/categories"))
	assert.True(t, policy.IsPublic("GET", "/api/v1/products/abc-123"))
	assert.True(t, policy.IsPublic("GET", "/api/v1/orders/get-orders-by-keyword"))
	assert.True(t, policy.IsPublic("GET", "/health"))

	// Butuh token
	assert.False(t, policy.IsPublic("POST", "/api/v1/categories"))
	assert.False(t, policy.IsPublic("POST", "/api/v1/orders"))
	assert.False(t, policy.IsPublic("POST", "/api/v1/users/details"))
	assert.False(t, policy.IsPublic("PUT", "/api/v1/users/details/abc"))
	assert.False(t, policy.IsPublic("GET", "/api/v1/order_details/abc"))
	assert.False(t, policy.IsPublic("DELETE", "/api/v1/products/abc"))
}

func TestDefaultPolicyRequiredRoles(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy("/api/v1")

	assert.Equal(t, []string{"admin"}, policy.RequiredRoles("POST", "/api/v1/categories"))
	assert.Equal(t, []string{"admin"}, policy.RequiredRoles("PUT", "/api/v1/products/abc"))
	assert.Equal(t, []string{"admin"}, policy.RequiredRoles("DELETE", "/api/v1/orders/abc"))
	assert.Equal(t, []string{"user"}, policy.RequiredRoles("POST", "/api/v1/orders"))
	assert.Equal(t, []string{"user"}, policy.RequiredRoles("POST", "/api/v1/order_details"))
	assert.Equal(t, []string{"user", "admin"}, policy.RequiredRoles("GET", "/api/v1/order_details/abc"))

	// Route tanpa rule: cukup authenticated
	assert.Nil(t, policy.RequiredRoles("POST", "/api/v1/users/details"))
	assert.Nil(t, policy.RequiredRoles("PUT", "/api/v1/users/details/abc"))
}

func TestPolicyFirstMatchWins(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(nil, []Rule{
		{Method: "GET", Pattern: "/api/v1/reports/internal/**", Roles: []string{"admin"}},
		{Method: "GET", Pattern: "/api/v1/reports/**", Roles: []string{"user"}},
	})

	// Rule yang lebih spesifik menang karena dicek duluan
	assert.Equal(t, []string{"admin"}, policy.RequiredRoles("GET", "/api/v1/reports/internal/sales"))
	assert.Equal(t, []string{"user"}, policy.RequiredRoles("GET", "/api/v1/reports/daily"))
}
