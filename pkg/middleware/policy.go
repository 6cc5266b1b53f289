package middleware

import (
	"strings"
)

// Rule adalah satu baris policy: (HTTP method, path pattern, required roles).
// Method "*" cocok untuk semua method. Pattern pakai segment matching:
// "*" match satu segment, "**" match sisa path (boleh kosong).
type Rule struct {
	Method  string
	Pattern string
	Roles   []string
}

// Policy adalah tabel otorisasi deklaratif. Public rules dicek dulu
// (lolos tanpa token), lalu role rules dievaluasi first-match-wins.
type Policy struct {
	public []Rule
	rules  []Rule
}

func NewPolicy(public, rules []Rule) *Policy {
	return &Policy{
		public: public,
		rules:  rules,
	}
}

// DefaultPolicy membangun tabel route→role di bawah API prefix
func DefaultPolicy(prefix string) *Policy {
	public := []Rule{
		{Method: "POST", Pattern: prefix + "/users/register"},
		{Method: "POST", Pattern: prefix + "/users/login"},
		{Method: "GET", Pattern: prefix + "/roles/**"},
		{Method: "GET", Pattern: prefix + "/categories/**"},
		{Method: "GET", Pattern: prefix + "/products/**"},
		{Method: "GET", Pattern: prefix + "/orders/**"},
		{Method: "GET", Pattern: "/health"},
	}

	rules := []Rule{
		// CATEGORIES
		{Method: "POST", Pattern: prefix + "/categories/**", Roles: []string{"admin"}},
		{Method: "PUT", Pattern: prefix + "/categories/**", Roles: []string{"admin"}},
		{Method: "DELETE", Pattern: prefix + "/categories/**", Roles: []string{"admin"}},

		// PRODUCTS
		{Method: "POST", Pattern: prefix + "/products/**", Roles: []string{"admin"}},
		{Method: "PUT", Pattern: prefix + "/products/**", Roles: []string{"admin"}},
		{Method: "DELETE", Pattern: prefix + "/products/**", Roles: []string{"admin"}},

		// ORDERS
		{Method: "POST", Pattern: prefix + "/orders/**", Roles: []string{"user"}},
		{Method: "PUT", Pattern: prefix + "/orders/**", Roles: []string{"admin"}},
		{Method: "DELETE", Pattern: prefix + "/orders/**", Roles: []string{"admin"}},

		// ORDER DETAILS
		{Method: "POST", Pattern: prefix + "/order_details/**", Roles: []string{"user"}},
		{Method: "GET", Pattern: prefix + "/order_details/**", Roles: []string{"user", "admin"}},
		{Method: "PUT", Pattern: prefix + "/order_details/**", Roles: []string{"admin"}},
		{Method: "DELETE", Pattern: prefix + "/order_details/**", Roles: []string{"admin"}},
	}

	return NewPolicy(public, rules)
}

// IsPublic cek apakah request boleh lewat tanpa token
func (p *Policy) IsPublic(method, path string) bool {
	for _, rule := range p.public {
		if rule.matches(method, path) {
			return true
		}
	}
	return false
}

// RequiredRoles mengembalikan role yang dibutuhkan untuk request ini.
// Nil berarti cukup authenticated (tanpa role tertentu).
func (p *Policy) RequiredRoles(method, path string) []string {
	for _, rule := range p.rules {
		if rule.matches(method, path) {
			return rule.Roles
		}
	}
	return nil
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "*" && r.Method != method {
		return false
	}
	return matchPattern(r.Pattern, path)
}

// matchPattern membandingkan path per segment.
func matchPattern(pattern, path string) bool {
	patParts := splitPath(pattern)
	pathParts := splitPath(path)

	for i, part := range patParts {
		if part == "**" {
			// sisa path bebas, termasuk kosong
			return true
		}
		if i >= len(pathParts) {
			return false
		}
		if part != "*" && part != pathParts[i] {
			return false
		}
	}

	return len(patParts) == len(pathParts)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
