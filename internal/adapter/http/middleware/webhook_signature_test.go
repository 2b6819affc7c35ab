package middleware

import (
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

const webhookBody = `{"budgetId":"b-1","type":"down_payment","confirmed":true}`

func newWebhookRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/hook", WebhookSignature(secret), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return r
}

func postHook(r http.Handler, signature, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookSignature(t *testing.T) {
	valid := "sha256=" + hex.EncodeToString(Sign([]byte("hook-secret"), []byte(webhookBody)))

	t.Run("valid signature reaches the handler with the body", func(t *testing.T) {
		w := postHook(newWebhookRouter("hook-secret"), valid, webhookBody)
		if w.Code != http.StatusOK || w.Body.String() != webhookBody {
			t.Fatalf("expected 200 with body, got %d %q", w.Code, w.Body.String())
		}
	})

	cases := []struct {
		name      string
		secret    string
		signature string
		body      string
	}{
		{"missing signature", "hook-secret", "", webhookBody},
		{"wrong prefix", "hook-secret", strings.TrimPrefix(valid, "sha256="), webhookBody},
		{"not hex", "hook-secret", "sha256=zz", webhookBody},
		{"tampered body", "hook-secret", valid, strings.Replace(webhookBody, "b-1", "b-2", 1)},
		{"other secret", "another-secret", valid, webhookBody},
		{"secret not configured", "", valid, webhookBody},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postHook(newWebhookRouter(tc.secret), tc.signature, tc.body)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}
