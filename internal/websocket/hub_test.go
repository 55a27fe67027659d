package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("hub-test-secret")

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func newTestServer(t *testing.T, hub *Hub, authorize Authorizer) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		ServeWs(hub, c, testSecret, authorize)
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func wsURL(server *httptest.Server, token string) string {
	url := strings.Replace(server.URL, "http", "ws", 1) + "/ws"
	if token != "" {
		url += "?token=" + token
	}
	return url
}

func TestServeWsAuthorization(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	adminOnly := func(ctx context.Context, userID string) (bool, error) {
		return userID == "admin-id", nil
	}
	server := newTestServer(t, hub, adminOnly)

	t.Run("rejects a missing token", func(t *testing.T) {
		conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server, ""), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		if conn != nil {
			conn.Close()
		}
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "admin-id",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := forged.SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, signed), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a valid token without the admin role", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, signToken(t, "plain-user-id")), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin connects and receives broadcasts", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, signToken(t, "admin-id")), nil)
		require.NoError(t, err)
		defer conn.Close()

		// Re-broadcast until the read succeeds: registration of the new
		// client races with the first broadcast.
		done := make(chan struct{})
		defer close(done)
		go func() {
			for {
				select {
				case <-done:
					return
				default:
					hub.BroadcastEvent(EventAccessRequestSubmitted, map[string]string{"id": "abc"})
					time.Sleep(20 * time.Millisecond)
				}
			}
		}()

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, message, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(message), EventAccessRequestSubmitted)
	})
}
