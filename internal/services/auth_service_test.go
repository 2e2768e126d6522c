package services_test

import (
	"errors"
	"testing"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
)

func newAuthSvc(t *testing.T) (*services.AuthService, *repos.UserRepo) {
	t.Helper()
	db := newTestDB(t)
	users := repos.NewUserRepo(db)
	if err := users.Insert(domain.User{ID: "u-1", Email: "a@x.com", Name: "A", Role: domain.RoleSeller}); err != nil {
		t.Fatal(err)
	}
	return services.NewAuthService(users, []byte("test-secret"), 10), users
}

func TestIssueTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthSvc(t)

	tok, err := svc.IssueToken("a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if tok == "" {
		t.Fatal("empty token for known user")
	}

	email, err := svc.Authenticate("Bearer " + tok)
	if err != nil {
		t.Fatal(err)
	}
	if email != "a@x.com" {
		t.Fatalf("want a@x.com, got %q", email)
	}
}

func TestIssueTokenUnknownUser(t *testing.T) {
	svc, _ := newAuthSvc(t)

	tok, err := svc.IssueToken("nobody@x.com")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if tok != "" {
		t.Fatalf("want empty token, got %q", tok)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	svc, users := newAuthSvc(t)

	if _, err := svc.Authenticate(""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("missing header: want ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("Bearer"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("header with no token: want ErrInvalidToken, got %v", err)
	}
	if _, err := svc.Authenticate("Bearer not-a-jwt"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("garbage token: want ErrInvalidToken, got %v", err)
	}

	// Token signed with another secret
	other := services.NewAuthService(users, []byte("other-secret"), 10)
	tok, err := other.IssueToken("a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Authenticate("Bearer " + tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("wrong signature: want ErrInvalidToken, got %v", err)
	}

	// Expired token
	expired := services.NewAuthService(users, []byte("test-secret"), -1)
	tok, err = expired.IssueToken("a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Authenticate("Bearer " + tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expired token: want ErrInvalidToken, got %v", err)
	}
}

// Lookups are exact like the original store's: a token must never be issued
// under a differently-cased email, because it could not pass the
// case-sensitive self-checks afterwards.
func TestEmailLookupCaseSensitive(t *testing.T) {
	svc, _ := newAuthSvc(t)

	if _, err := svc.IssueToken("A@X.COM"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("cased email: want ErrUnauthorized, got %v", err)
	}
	if err := svc.AuthorizeRole("A@X.COM", domain.RoleSeller); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("cased email role check: want ErrForbidden, got %v", err)
	}
}

func TestAuthorizeSelf(t *testing.T) {
	svc, _ := newAuthSvc(t)

	cases := []struct {
		resolved, requested string
		wantErr             bool
	}{
		{"a@x.com", "a@x.com", false},
		{"a@x.com", "b@x.com", true},
		{"a@x.com", "A@X.COM", true}, // case-sensitive on purpose
		{"", "", false},
		{"a@x.com", "", true},
		{"", "a@x.com", true},
	}
	for _, tc := range cases {
		err := svc.AuthorizeSelf(tc.resolved, tc.requested)
		if tc.wantErr && !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("(%q,%q): want ErrForbidden, got %v", tc.resolved, tc.requested, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("(%q,%q): want nil, got %v", tc.resolved, tc.requested, err)
		}
	}
}

func TestAuthorizeRole(t *testing.T) {
	svc, _ := newAuthSvc(t)

	if err := svc.AuthorizeRole("a@x.com", domain.RoleSeller); err != nil {
		t.Fatalf("seller check on seller: %v", err)
	}
	if err := svc.AuthorizeRole("a@x.com", domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin check on seller: want ErrForbidden, got %v", err)
	}
	if err := svc.AuthorizeRole("nobody@x.com", domain.RoleBuyer); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("unknown user: want ErrForbidden, got %v", err)
	}
}
