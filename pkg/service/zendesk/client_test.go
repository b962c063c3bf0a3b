package zendesk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forage-labs/stitch/pkg/service/zendesk"
)

func TestGetUser(t *testing.T) {
	t.Run("retrieves and decodes a user", func(t *testing.T) {
		var gotPath, gotUser, gotPass string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, _ = r.BasicAuth()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user": {"id": 9001, "name": "Anna Schmidt", "email": "anna@example.com"}}`))
		}))
		defer ts.Close()

		svc, err := zendesk.New("forage", "agent@forage-clothing.com", "t0ken",
			zendesk.WithBaseURL(ts.URL),
		)
		gt.NoError(t, err).Required()

		user, err := svc.GetUser(context.Background(), 9001)
		gt.NoError(t, err).Required()
		gt.Value(t, user.ID).Equal(int64(9001))
		gt.Value(t, user.Name).Equal("Anna Schmidt")
		gt.Value(t, user.Email).Equal("anna@example.com")

		gt.Value(t, gotPath).Equal("/api/v2/users/9001.json")
		gt.Value(t, gotUser).Equal("agent@forage-clothing.com/token")
		gt.Value(t, gotPass).Equal("t0ken")
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "RecordNotFound"}`, http.StatusNotFound)
		}))
		defer ts.Close()

		svc, err := zendesk.New("forage", "agent@forage-clothing.com", "t0ken",
			zendesk.WithBaseURL(ts.URL),
		)
		gt.NoError(t, err).Required()

		_, err = svc.GetUser(context.Background(), 404)
		gt.Error(t, err)
	})
}

func TestAddInternalNote(t *testing.T) {
	t.Run("sends a private comment via ticket update", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ticket": {"id": 654321}}`))
		}))
		defer ts.Close()

		svc, err := zendesk.New("forage", "agent@forage-clothing.com", "t0ken",
			zendesk.WithBaseURL(ts.URL),
		)
		gt.NoError(t, err).Required()

		err = svc.AddInternalNote(context.Background(), 654321, "🤖 Automatische Erkennung: Stornierung")
		gt.NoError(t, err).Required()

		gt.Value(t, gotMethod).Equal(http.MethodPut)
		gt.Value(t, gotPath).Equal("/api/v2/tickets/654321.json")

		ticket := gotBody["ticket"].(map[string]any)
		comment := ticket["comment"].(map[string]any)
		gt.Value(t, comment["body"]).Equal("🤖 Automatische Erkennung: Stornierung")
		gt.Value(t, comment["public"]).Equal(false)
	})

	t.Run("missing configuration is rejected", func(t *testing.T) {
		_, err := zendesk.New("", "agent@forage-clothing.com", "t0ken")
		gt.Error(t, err)
		_, err = zendesk.New("forage", "", "t0ken")
		gt.Error(t, err)
		_, err = zendesk.New("forage", "agent@forage-clothing.com", "")
		gt.Error(t, err)
	})
}
