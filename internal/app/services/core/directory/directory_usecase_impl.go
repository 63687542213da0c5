package directory

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// doctorsCacheKey holds the serialized doctor directory in Redis. The cache
// keeps the booking screen usable through short upstream outages; mutations
// drop it so admins see their changes immediately.
const doctorsCacheKey = "directory:doctors"

type directoryUsecase struct {
	gateway DoctorGateway
	redis   contracts.RedisRepository
	config  *config.InternalConfig
	logger  *zap.Logger
}

func NewDirectoryUsecase(gateway DoctorGateway, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) DirectoryUsecase {
	return &directoryUsecase{
		gateway: gateway,
		redis:   redisRepository,
		config:  internalConfig,
		logger:  logger,
	}
}

func (uc *directoryUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.config.App.DirectoryCacheTTLInMinute) * time.Minute
}

// dropCache invalidates the cached directory. A failed delete leaves admins
// looking at a stale list until the TTL runs out, so it is at least logged.
func (uc *directoryUsecase) dropCache(ctx context.Context) {
	if err := uc.redis.Delete(ctx, doctorsCacheKey); err != nil {
		uc.logger.Warn("failed to drop doctor directory cache entry", zap.Error(err))
	}
}

func (uc *directoryUsecase) ListDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	cached, err := uc.redis.Get(ctx, doctorsCacheKey)
	if err == nil && cached != "" {
		var doctors []models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			return doctors, nil
		}
		uc.logger.Warn("dropping corrupted doctor directory cache entry")
		uc.dropCache(ctx)
	}

	if token == "" {
		token = uc.config.Hospital.ServiceToken
	}
	doctors, err := uc.gateway.ListDoctors(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := uc.redis.Set(ctx, doctorsCacheKey, doctors, uc.cacheTTL()); err != nil {
		uc.logger.Warn("failed to cache doctor directory", zap.Error(err))
	}
	return doctors, nil
}

// ListAllDoctors bypasses the cache. The admin screen edits this list, so it
// always reads the upstream state directly.
func (uc *directoryUsecase) ListAllDoctors(ctx context.Context, session *models.Session) ([]models.Doctor, error) {
	return uc.gateway.ListAllDoctors(ctx, session.HospitalToken)
}

// FindDoctor resolves one doctor by id out of the directory. A nil result
// with nil error means the id references no known doctor.
func (uc *directoryUsecase) FindDoctor(ctx context.Context, token, doctorID string) (*models.Doctor, error) {
	doctors, err := uc.ListDoctors(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == doctorID {
			return &doctors[i], nil
		}
	}
	return nil, nil
}

func (uc *directoryUsecase) AddDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) (*models.Doctor, error) {
	doctor, err := uc.gateway.AddDoctor(ctx, session.HospitalToken, request)
	if err != nil {
		return nil, err
	}
	uc.dropCache(ctx)
	return doctor, nil
}

func (uc *directoryUsecase) UpdateDoctor(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	doctor, err := uc.gateway.UpdateDoctor(ctx, session.HospitalToken, doctorID, request)
	if err != nil {
		return nil, err
	}
	uc.dropCache(ctx)
	return doctor, nil
}

func (uc *directoryUsecase) DeleteDoctor(ctx context.Context, session *models.Session, doctorID string) error {
	err := uc.gateway.DeleteDoctor(ctx, session.HospitalToken, doctorID)
	if err != nil {
		return err
	}
	uc.dropCache(ctx)
	return nil
}

// RefreshCache repopulates the cached directory using the machine credential.
// Called by the periodic worker, never by request handlers.
func (uc *directoryUsecase) RefreshCache(ctx context.Context) error {
	doctors, err := uc.gateway.ListDoctors(ctx, uc.config.Hospital.ServiceToken)
	if err != nil {
		return err
	}
	return uc.redis.Set(ctx, doctorsCacheKey, doctors, uc.cacheTTL())
}
