package contacts

import (
	"context"
	"errors"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubContactGateway struct {
	created *requests.CreateContact
	err     error
}

func (s *stubContactGateway) CreateContact(ctx context.Context, request *requests.CreateContact) (*models.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = request
	return &models.ContactMessage{ID: "msg-1", Name: request.Name, Email: request.Email, Message: request.Message}, nil
}

func TestSubmitMessage(t *testing.T) {
	request := &requests.CreateContact{
		Name:    "Ira Shah",
		Email:   "ira@example.com",
		Message: "Do you take walk-ins on weekends?",
	}

	t.Run("Forwards the message upstream", func(t *testing.T) {
		gateway := &stubContactGateway{}
		uc := NewContactUsecase(gateway, zap.NewNop())

		message, err := uc.SubmitMessage(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, request, gateway.created)
		assert.Equal(t, "msg-1", message.ID)
	})

	t.Run("Upstream failure propagates", func(t *testing.T) {
		gateway := &stubContactGateway{err: errors.New("upstream down")}
		uc := NewContactUsecase(gateway, zap.NewNop())

		_, err := uc.SubmitMessage(context.Background(), request)
		require.Error(t, err)
		assert.Nil(t, gateway.created)
	})
}
