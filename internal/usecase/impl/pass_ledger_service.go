package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"travelfit/config"
	deliverycontext "travelfit/internal/delivery/context"
	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/domain/service"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const qrContentType = "image/png"

type passLedgerService struct {
	txManager     repository.TransactionManager
	purchaseRepo  repository.PassPurchaseRepository
	qrcodeService service.QRCodeService
	blobStorage   service.BlobStorage
	publisher     service.EventPublisher
	metrics       service.MetricsRecorder
	tokenPrefix   string
	logger        *slog.Logger
	now           func() time.Time
}

// PassLedgerServiceParams holds dependencies for PassLedgerService, injected by Fx.
type PassLedgerServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PurchaseRepo  repository.PassPurchaseRepository
	QRCodeService service.QRCodeService
	BlobStorage   service.BlobStorage
	Publisher     service.EventPublisher
	Metrics       service.MetricsRecorder
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPassLedgerService creates a new pass ledger service instance
func NewPassLedgerService(params PassLedgerServiceParams) usecase.PassLedgerUsecase {
	return &passLedgerService{
		txManager:     params.TxManager,
		purchaseRepo:  params.PurchaseRepo,
		qrcodeService: params.QRCodeService,
		blobStorage:   params.BlobStorage,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		tokenPrefix:   params.Config.Blob.TokenPrefix,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (s *passLedgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// tokenKey is the blob key of a pass's redemption image.
func (s *passLedgerService) tokenKey(passID uuid.UUID) string {
	return path.Join(s.tokenPrefix, fmt.Sprintf("pass_%s_qr.png", passID))
}

// Purchase issues a pass for one of the gym's offerings.
//
// The purchase row, the QR image upload and the URL update happen inside one transaction.
// If anything fails after the upload, including the commit, the uploaded image is removed.
func (s *passLedgerService) Purchase(ctx context.Context, actor *entity.Identity, gymID, offeringID uuid.UUID) (*entity.PassPurchase, error) {
	if err := authorizeRole(actor, policyPassHolder); err != nil {
		return nil, err
	}

	var (
		purchase    *entity.PassPurchase
		uploadedKey string
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offeringRepo := repoFactory.NewPassOfferingRepository()
		purchaseRepo := repoFactory.NewPassPurchaseRepository()

		// 1. The offering must belong to the gym the pass is bought for
		offering, err := offeringRepo.FindOfferingForGym(ctx, gymID, offeringID)
		if err != nil {
			if errors.Is(err, repository.ErrPassOfferingNotFound) {
				return errors.Wrap(domainerrors.ErrPassOfferingNotFound, "pass offering not found")
			}

			return errors.Wrap(err, "failed to find pass offering")
		}

		// 2. Record the purchase with a snapshot of the offering's terms
		now := s.now()
		created := &entity.PassPurchase{
			ID:           uuid.New(),
			UserID:       actor.UserID,
			GymID:        gymID,
			OfferingID:   offering.ID,
			PassName:     offering.Name,
			DurationDays: offering.DurationDays,
			Price:        offering.Price,
			Description:  offering.Description,
			IsValid:      true,
			PurchasedAt:  now,
			UpdatedAt:    now,
		}
		if err := purchaseRepo.CreatePurchase(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create pass purchase")
		}

		// 3. Render the redemption token
		png, err := s.qrcodeService.GeneratePassQR(redemptionToken(created))
		if err != nil {
			return errors.Wrapf(domainerrors.ErrPurchaseFailed, "generate redemption QR: %v", err)
		}

		// 4. Store it and remember where
		key := s.tokenKey(created.ID)
		url, err := s.blobStorage.Put(ctx, key, png, qrContentType)
		if err != nil {
			return errors.Wrapf(domainerrors.ErrStorageFailed, "store redemption QR: %v", err)
		}
		uploadedKey = key

		if err := purchaseRepo.SetRedemptionURL(ctx, created.ID, url); err != nil {
			return errors.Wrap(err, "failed to set redemption URL")
		}
		created.RedemptionURL = url
		purchase = created

		return nil
	})
	if err != nil {
		s.discardUpload(ctx, uploadedKey)
		s.log(ctx).Error("Pass purchase failed",
			slog.Any("gym_id", gymID),
			slog.Any("offering_id", offeringID),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.metrics.PassPurchased()
	s.log(ctx).Info("Pass purchased",
		slog.Any("pass_id", purchase.ID),
		slog.Any("gym_id", gymID),
		slog.Any("user_id", purchase.UserID),
	)
	publishPassEvent(ctx, s.publisher, s.logger, service.PassEventPurchased, purchase, purchase.PurchasedAt)

	return purchase, nil
}

// discardUpload removes an image whose purchase was rolled back.
func (s *passLedgerService) discardUpload(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := s.blobStorage.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log(ctx).Warn("Failed to remove orphaned redemption QR", slog.String("key", key), slog.Any("error", err))
	}
}

// ListForUser retrieves the caller's valid passes joined with their gyms
func (s *passLedgerService) ListForUser(ctx context.Context, actor *entity.Identity) ([]*entity.PassView, error) {
	if err := authorizeRole(actor, policyPassHolder); err != nil {
		return nil, err
	}

	views, err := s.purchaseRepo.FindValidPassViewsByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find passes by user")
	}

	if views == nil {
		views = []*entity.PassView{}
	}

	return views, nil
}

// GetPassQRCode returns the redemption QR image of a pass owned by the caller
func (s *passLedgerService) GetPassQRCode(ctx context.Context, actor *entity.Identity, passID uuid.UUID) ([]byte, error) {
	if err := authorizeRole(actor, policyPassHolder); err != nil {
		return nil, err
	}

	purchase, err := s.findPurchase(ctx, passID)
	if err != nil {
		return nil, err
	}

	// Another user's pass is reported as missing.
	if purchase.UserID != actor.UserID {
		return nil, errors.Wrap(domainerrors.ErrPassNotFound, "pass not found")
	}

	png, err := s.blobStorage.Get(ctx, s.tokenKey(passID))
	if err == nil {
		return png, nil
	}

	if !errors.Is(err, service.ErrBlobNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrStorageFailed, "read redemption QR: %v", err)
	}

	// The image is derived from the purchase, so a lost object can be rendered again.
	s.log(ctx).Warn("Redemption QR missing from storage, rendering again", slog.Any("pass_id", passID))

	png, err = s.qrcodeService.GeneratePassQR(redemptionToken(purchase))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate redemption QR")
	}

	return png, nil
}

// RevokePass invalidates a pass permanently
func (s *passLedgerService) RevokePass(ctx context.Context, actor *entity.Identity, passID uuid.UUID) error {
	if err := authorizeRole(actor, policyGymManagement); err != nil {
		return err
	}

	purchase, err := s.findPurchase(ctx, passID)
	if err != nil {
		return err
	}

	// Staff of another gym cannot learn that the pass exists.
	if !inScope(actor, policyGymManagement, purchase.GymID) {
		return errors.Wrap(domainerrors.ErrPassNotFound, "pass not found")
	}

	if !purchase.IsValid {
		return nil
	}

	if err := s.purchaseRepo.RevokePurchase(ctx, passID); err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return errors.Wrap(domainerrors.ErrPassNotFound, "pass not found")
		}

		return errors.Wrap(err, "failed to revoke pass")
	}
	purchase.IsValid = false

	s.log(ctx).Info("Pass revoked", slog.Any("pass_id", passID), slog.Any("revoked_by", actor.UserID))
	publishPassEvent(ctx, s.publisher, s.logger, service.PassEventRevoked, purchase, s.now())

	return nil
}

func (s *passLedgerService) findPurchase(ctx context.Context, passID uuid.UUID) (*entity.PassPurchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, passID)
	if err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPassNotFound, "pass not found")
		}

		return nil, errors.Wrap(err, "failed to find pass")
	}

	return purchase, nil
}

func redemptionToken(purchase *entity.PassPurchase) *entity.RedemptionToken {
	return &entity.RedemptionToken{
		PassID:       purchase.ID,
		UserID:       purchase.UserID,
		GymID:        purchase.GymID,
		PassName:     purchase.PassName,
		DurationDays: purchase.DurationDays,
	}
}
