package admin

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type adminUsecase struct {
	stats    StatsGateway
	contacts ContactGateway
	logger   *zap.Logger
}

func NewAdminUsecase(stats StatsGateway, contacts ContactGateway, logger *zap.Logger) AdminUsecase {
	return &adminUsecase{
		stats:    stats,
		contacts: contacts,
		logger:   logger,
	}
}

func (uc *adminUsecase) GetStats(ctx context.Context, session *models.Session) (*responses.AdminStats, error) {
	return uc.stats.GetStats(ctx, session.HospitalToken)
}

// normalizeAudience collapses anything that is not the patient inbox onto the
// public one, matching how the upstream splits its two contact collections.
func normalizeAudience(audience string) string {
	if audience == constvars.RolePatient {
		return constvars.RolePatient
	}
	return constvars.ContactAudiencePublic
}

func (uc *adminUsecase) ListContacts(ctx context.Context, session *models.Session, audience string) ([]models.ContactMessage, error) {
	return uc.contacts.ListContacts(ctx, session.HospitalToken, normalizeAudience(audience))
}

func (uc *adminUsecase) DeleteContact(ctx context.Context, session *models.Session, audience, contactID string) error {
	if err := uc.contacts.DeleteContact(ctx, session.HospitalToken, normalizeAudience(audience), contactID); err != nil {
		return err
	}
	uc.logger.Info("contact message removed",
		zap.String("contact_id", contactID),
		zap.String("audience", normalizeAudience(audience)),
	)
	return nil
}
