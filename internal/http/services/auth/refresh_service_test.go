package auth_test

import (
	"errors"
	"testing"

	svcauth "github.com/dropDatabas3/learnhub/internal/http/services/auth"
	"github.com/dropDatabas3/learnhub/internal/providers"
	"github.com/dropDatabas3/learnhub/internal/token"
)

func TestRefresh_RotatesPair(t *testing.T) {
	iss := newIssuer(t)
	svc := svcauth.NewServices(svcauth.Deps{
		Registry: providers.NewRegistry(),
		Issuer:   iss,
	})

	pair, err := iss.IssuePair(token.Claims{ID: "u1", Name: "bob"})
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	fresh, err := svc.Refresh.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, ok := iss.AccessClaims(fresh.AccessToken)
	if !ok {
		t.Fatal("fresh access token does not verify")
	}
	if claims.ID != "u1" || claims.Name != "bob" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestRefresh_RejectsBadTokens(t *testing.T) {
	iss := newIssuer(t)
	svc := svcauth.NewServices(svcauth.Deps{
		Registry: providers.NewRegistry(),
		Issuer:   iss,
	})

	access, err := iss.IssueAccess(token.Claims{ID: "u1"})
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	for name, tok := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.jwt",
		"access token": access,
	} {
		if _, err := svc.Refresh.Refresh(tok); !errors.Is(err, svcauth.ErrRefreshRejected) {
			t.Fatalf("%s: err = %v, want ErrRefreshRejected", name, err)
		}
	}
}
