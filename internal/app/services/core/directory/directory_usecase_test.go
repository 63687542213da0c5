package directory

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memoryRedis struct {
	values map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: make(map[string]string)}
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

type stubDoctorGateway struct {
	doctors   []models.Doctor
	listCalls int
	lastToken string
}

func (s *stubDoctorGateway) ListDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	s.listCalls++
	s.lastToken = token
	return s.doctors, nil
}

func (s *stubDoctorGateway) ListAllDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	return s.doctors, nil
}

func (s *stubDoctorGateway) AddDoctor(ctx context.Context, token string, request *requests.CreateDoctor) (*models.Doctor, error) {
	doctor := models.Doctor{ID: "new-doc", Name: request.Name, Specialization: request.Specialization}
	s.doctors = append(s.doctors, doctor)
	return &doctor, nil
}

func (s *stubDoctorGateway) UpdateDoctor(ctx context.Context, token, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	return &models.Doctor{ID: doctorID}, nil
}

func (s *stubDoctorGateway) DeleteDoctor(ctx context.Context, token, doctorID string) error {
	return nil
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App:      config.App{DirectoryCacheTTLInMinute: 5},
		Hospital: config.Hospital{ServiceToken: "svc-token"},
	}
}

func TestListDoctors(t *testing.T) {
	doctors := []models.Doctor{
		{ID: "doc-1", Name: "Asha Rao", Specialization: "Cardiology"},
		{ID: "doc-2", Name: "Vikram Iyer", Specialization: "Dermatology"},
	}

	t.Run("Cache miss fetches upstream and populates the cache", func(t *testing.T) {
		gateway := &stubDoctorGateway{doctors: doctors}
		cache := newMemoryRedis()
		uc := NewDirectoryUsecase(gateway, cache, testConfig(), zap.NewNop())

		got, err := uc.ListDoctors(context.Background(), "tok")
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, gateway.listCalls)
		assert.NotEmpty(t, cache.values[doctorsCacheKey])
	})

	t.Run("Cache hit skips the upstream", func(t *testing.T) {
		gateway := &stubDoctorGateway{doctors: doctors}
		cache := newMemoryRedis()
		uc := NewDirectoryUsecase(gateway, cache, testConfig(), zap.NewNop())

		_, err := uc.ListDoctors(context.Background(), "tok")
		require.NoError(t, err)
		_, err = uc.ListDoctors(context.Background(), "tok")
		require.NoError(t, err)

		assert.Equal(t, 1, gateway.listCalls)
	})

	t.Run("Empty token falls back to the machine credential", func(t *testing.T) {
		gateway := &stubDoctorGateway{doctors: doctors}
		cache := newMemoryRedis()
		uc := NewDirectoryUsecase(gateway, cache, testConfig(), zap.NewNop())

		got, err := uc.ListDoctors(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "svc-token", gateway.lastToken)
	})

	t.Run("Corrupted cache entry is dropped and refetched", func(t *testing.T) {
		gateway := &stubDoctorGateway{doctors: doctors}
		cache := newMemoryRedis()
		cache.values[doctorsCacheKey] = "{not json"
		uc := NewDirectoryUsecase(gateway, cache, testConfig(), zap.NewNop())

		got, err := uc.ListDoctors(context.Background(), "tok")
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, gateway.listCalls)
	})
}

func TestFindDoctor(t *testing.T) {
	gateway := &stubDoctorGateway{doctors: []models.Doctor{{ID: "doc-1", Specialization: "Cardiology"}}}
	uc := NewDirectoryUsecase(gateway, newMemoryRedis(), testConfig(), zap.NewNop())

	t.Run("Known id", func(t *testing.T) {
		doctor, err := uc.FindDoctor(context.Background(), "tok", "doc-1")
		require.NoError(t, err)
		require.NotNil(t, doctor)
		assert.Equal(t, "Cardiology", doctor.Specialization)
	})

	t.Run("Unknown id returns nil without error", func(t *testing.T) {
		doctor, err := uc.FindDoctor(context.Background(), "tok", "doc-404")
		require.NoError(t, err)
		assert.Nil(t, doctor)
	})
}

func TestDirectoryMutationsInvalidateCache(t *testing.T) {
	gateway := &stubDoctorGateway{doctors: []models.Doctor{{ID: "doc-1"}}}
	cache := newMemoryRedis()
	uc := NewDirectoryUsecase(gateway, cache, testConfig(), zap.NewNop())
	session := &models.Session{HospitalToken: "tok"}

	_, err := uc.ListDoctors(context.Background(), "tok")
	require.NoError(t, err)
	require.NotEmpty(t, cache.values[doctorsCacheKey])

	_, err = uc.AddDoctor(context.Background(), session, &requests.CreateDoctor{Name: "New Doc", Specialization: "Neurology"})
	require.NoError(t, err)
	assert.Empty(t, cache.values[doctorsCacheKey], "add must drop the cached list")

	_, err = uc.ListDoctors(context.Background(), "tok")
	require.NoError(t, err)
	require.NotEmpty(t, cache.values[doctorsCacheKey])

	require.NoError(t, uc.DeleteDoctor(context.Background(), session, "doc-1"))
	assert.Empty(t, cache.values[doctorsCacheKey], "delete must drop the cached list")
}

type failingDeleteRedis struct {
	*memoryRedis
}

func (f *failingDeleteRedis) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func TestFailedCacheInvalidationIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	gateway := &stubDoctorGateway{doctors: []models.Doctor{{ID: "doc-1"}}}
	cache := &failingDeleteRedis{newMemoryRedis()}
	uc := NewDirectoryUsecase(gateway, cache, testConfig(), zap.New(core))
	session := &models.Session{HospitalToken: "tok"}

	_, err := uc.AddDoctor(context.Background(), session, &requests.CreateDoctor{Name: "New Doc", Specialization: "Neurology"})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("failed to drop doctor directory cache entry").Len())
}

func TestRefreshCache(t *testing.T) {
	gateway := &stubDoctorGateway{doctors: []models.Doctor{{ID: "doc-1"}}}
	cache := newMemoryRedis()
	uc := NewDirectoryUsecase(gateway, cache, testConfig(), zap.NewNop())

	require.NoError(t, uc.RefreshCache(context.Background()))
	assert.NotEmpty(t, cache.values[doctorsCacheKey])
}
