package session

import (
	"context"
	"medibook-service/internal/app/models"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRedis struct {
	values map[string]string
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(data)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func TestSessionLifecycle(t *testing.T) {
	store := &memoryRedis{values: make(map[string]string)}
	svc := NewSessionService(store, time.Hour)

	session := &models.Session{
		SessionID:     "sess-1",
		Role:          "patient",
		UserID:        "user-1",
		Fullname:      "Meera Nair",
		HospitalToken: "upstream-token",
	}

	t.Run("Create then get round-trips the record", func(t *testing.T) {
		require.NoError(t, svc.CreateSession(context.Background(), session))

		got, err := svc.GetSession(context.Background(), "sess-1")
		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("Destroy removes it", func(t *testing.T) {
		require.NoError(t, svc.DestroySession(context.Background(), "sess-1"))

		_, err := svc.GetSession(context.Background(), "sess-1")
		assert.Error(t, err)
	})

	t.Run("Unknown session id is an error", func(t *testing.T) {
		_, err := svc.GetSession(context.Background(), "sess-404")
		assert.Error(t, err)
	})
}
