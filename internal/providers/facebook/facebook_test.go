package facebook_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dropDatabas3/learnhub/internal/providers"
	"github.com/dropDatabas3/learnhub/internal/providers/facebook"
)

func stub(t *testing.T, mux *http.ServeMux) *facebook.Provider {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p, err := facebook.New(providers.Config{
		ClientID:     "cid",
		ClientSecret: "sec",
		RedirectURI:  "http://localhost/cb",
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p.HTTP = srv.Client()
	p.OAuth.Endpoint.TokenURL = srv.URL + "/oauth/access_token"
	p.UserInfoEndpoint = srv.URL + "/me"
	return p
}

func TestAuthURL_Rerequest(t *testing.T) {
	p, err := facebook.New(providers.Config{
		ClientID:     "cid",
		ClientSecret: "sec",
		RedirectURI:  "http://localhost/cb",
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	raw := p.AuthURL("fb-state")
	if !strings.Contains(raw, "v19.0/dialog/oauth") {
		t.Fatalf("unexpected endpoint: %s", raw)
	}
	u, _ := url.Parse(raw)
	if u.Query().Get("auth_type") != "rerequest" {
		t.Fatalf("auth_type missing: %s", raw)
	}
	if u.Query().Get("state") != "fb-state" {
		t.Fatalf("state missing: %s", raw)
	}
	if u.Query().Get("redirect_uri") != "http://localhost/cb" {
		t.Fatalf("redirect_uri missing: %s", raw)
	}
}

func TestUserData_FlattensPicture(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"EAAtest","token_type":"bearer"}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if !strings.Contains(q.Get("fields"), "picture.width(500)") {
			t.Errorf("fields param: %q", q.Get("fields"))
		}
		if q.Get("access_token") != "EAAtest" {
			t.Errorf("access_token param: %q", q.Get("access_token"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"fb123","name":"Carol","email":"carol@example.com","picture":{"data":{"url":"http://x/c.jpg"}}}`))
	})
	p := stub(t, mux)

	prof, err := p.UserData(context.Background(), "code")
	if err != nil {
		t.Fatalf("user data: %v", err)
	}
	if prof.Picture != "http://x/c.jpg" {
		t.Fatalf("picture not flattened: %+v", prof)
	}
	if prof.ID != "fb123" || prof.Provider != "facebook" {
		t.Fatalf("bad profile: %+v", prof)
	}
}

func TestUserData_GraphError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"EAAtest","token_type":"bearer"}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	p := stub(t, mux)

	_, err := p.UserData(context.Background(), "code")
	if kind := providers.KindOf(err); kind != providers.KindProfileFetch {
		t.Fatalf("expected profile fetch kind, got %v (err=%v)", kind, err)
	}
}
