package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	SignatureHeader = "X-Webhook-Signature"
	signaturePrefix = "sha256="
	maxWebhookBody  = 1 << 20
)

var errBadSignature = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Missing or invalid webhook signature", http.StatusUnauthorized)

// WebhookSignature requires "X-Webhook-Signature: sha256=<hex>" where hex is the
// HMAC-SHA256 of the raw body under secret. An empty secret rejects every call.
// The body is restored for the handler.
func WebhookSignature(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(strings.TrimSpace(c.GetHeader(SignatureHeader)), signaturePrefix)
		if len(key) == 0 || !ok {
			c.AbortWithStatusJSON(errBadSignature.HTTPStatus, errBadSignature.ToHTTPError())
			return
		}
		sig, err := hex.DecodeString(got)
		if err != nil {
			c.AbortWithStatusJSON(errBadSignature.HTTPStatus, errBadSignature.ToHTTPError())
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(errBadSignature.HTTPStatus, errBadSignature.ToHTTPError())
			return
		}
		if !hmac.Equal(sig, Sign(key, body)) {
			c.AbortWithStatusJSON(errBadSignature.HTTPStatus, errBadSignature.ToHTTPError())
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}

// Sign returns the HMAC-SHA256 of body under key.
func Sign(key, body []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	return mac.Sum(nil)
}
