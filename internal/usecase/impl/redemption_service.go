package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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

const (
	fallbackUserName = "User"
	fallbackGymName  = "Gym"
)

type redemptionService struct {
	purchaseRepo  repository.PassPurchaseRepository
	gymRepo       repository.GymRepository
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	publisher     service.EventPublisher
	metrics       service.MetricsRecorder
	logger        *slog.Logger
	now           func() time.Time
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	PurchaseRepo  repository.PassPurchaseRepository
	GymRepo       repository.GymRepository
	UserRepo      repository.UserRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Metrics       service.MetricsRecorder
	Logger        *slog.Logger
}

// NewRedemptionService creates a new redemption service instance
func NewRedemptionService(params RedemptionServiceParams) usecase.RedemptionUsecase {
	return &redemptionService{
		purchaseRepo:  params.PurchaseRepo,
		gymRepo:       params.GymRepo,
		userRepo:      params.UserRepo,
		qrcodeService: params.QRCodeService,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (s *redemptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// VerifyScan parses raw QR data and verifies the encoded pass
func (s *redemptionService) VerifyScan(ctx context.Context, actor *entity.Identity, qrData string) (*entity.Verification, error) {
	token, err := s.qrcodeService.ParsePassQR(qrData)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRedemptionToken, "parse scanned code: %v", err)
	}

	return s.VerifyPass(ctx, actor, token)
}

// VerifyPass activates the pass on its first scan and decides whether the holder is admitted.
//
// Activation is a conditional write that only succeeds while the expiration is unset, so
// concurrent first scans produce exactly one expiration. The loser re-reads the winner's value.
func (s *redemptionService) VerifyPass(ctx context.Context, actor *entity.Identity, token *entity.RedemptionToken) (*entity.Verification, error) {
	if token == nil || token.PassID == uuid.Nil || token.DurationDays < 1 || token.DurationDays > maxOfferingDays {
		return nil, domainerrors.ErrInvalidRedemptionToken
	}

	// Door staff may only admit holders into their own gym.
	if err := authorize(actor, policyGymManagement, token.GymID); err != nil {
		return nil, err
	}

	purchase, err := s.findPurchase(ctx, token.PassID)
	if err != nil {
		return nil, err
	}

	// A token whose holder or gym disagrees with the ledger does not identify this pass.
	if purchase.UserID != token.UserID || purchase.GymID != token.GymID {
		return nil, errors.Wrap(domainerrors.ErrPassNotFound, "pass not found")
	}
	if purchase.DurationDays != token.DurationDays {
		return nil, domainerrors.ErrInvalidRedemptionToken.WithDetails("duration does not match the issued pass")
	}

	now := s.now()
	activated := false

	if purchase.IsValid && purchase.ExpiresAt == nil {
		expiresAt := entity.ActivationExpiry(now, token.DurationDays)

		won, err := s.purchaseRepo.ActivatePurchase(ctx, purchase.ID, expiresAt)
		if err != nil {
			s.log(ctx).Error("Pass activation failed", slog.Any("pass_id", purchase.ID), slog.Any("error", err))

			return nil, errors.Wrapf(domainerrors.ErrQueryFailed, "activate pass: %v", err)
		}

		if won {
			purchase.ExpiresAt = &expiresAt
			activated = true
		} else {
			// Another scan activated the pass first.
			if purchase, err = s.findPurchase(ctx, token.PassID); err != nil {
				return nil, err
			}
		}
	}

	verification := s.decide(ctx, purchase, now)
	verification.Activated = activated

	s.metrics.PassVerified(outcomeOf(verification), activated)
	s.log(ctx).Info("Pass verified",
		slog.Any("pass_id", purchase.ID),
		slog.Bool("granted", verification.Granted),
		slog.String("state", string(verification.State)),
		slog.Bool("activated", activated),
	)

	if activated {
		publishPassEvent(ctx, s.publisher, s.logger, service.PassEventActivated, purchase, now)
	}

	return verification, nil
}

// decide derives the scan outcome from the purchase's state at now.
func (s *redemptionService) decide(ctx context.Context, purchase *entity.PassPurchase, now time.Time) *entity.Verification {
	state := purchase.State(now)
	verification := &entity.Verification{
		PassID:    purchase.ID,
		State:     state,
		ExpiresAt: purchase.ExpiresAt,
	}

	switch state {
	case entity.PassStateRevoked:
		verification.Reason = entity.DenialReasonRevoked
		verification.Message = domainerrors.ErrPassRevoked.Message()
	case entity.PassStateExpired:
		verification.Reason = entity.DenialReasonExpired
		verification.Message = domainerrors.ErrPassExpired.Message()
	default:
		verification.Granted = true
		verification.Message = fmt.Sprintf("Welcome %s to %s, Enjoy your workout!",
			s.userName(ctx, purchase.UserID), s.gymName(ctx, purchase.GymID))
	}

	return verification
}

// userName resolves the holder's display name, degrading to a placeholder on any failure.
func (s *redemptionService) userName(ctx context.Context, userID uuid.UUID) string {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.log(ctx).Warn("User lookup failed during verification", slog.Any("user_id", userID), slog.Any("error", err))
		}

		return fallbackUserName
	}

	if name := user.DisplayName(); name != "" {
		return name
	}

	return fallbackUserName
}

// gymName resolves the gym's display name, degrading to a placeholder on any failure.
func (s *redemptionService) gymName(ctx context.Context, gymID uuid.UUID) string {
	gym, err := s.gymRepo.FindGymByID(ctx, gymID)
	if err != nil {
		if !errors.Is(err, repository.ErrGymNotFound) {
			s.log(ctx).Warn("Gym lookup failed during verification", slog.Any("gym_id", gymID), slog.Any("error", err))
		}

		return fallbackGymName
	}

	if name := strings.TrimSpace(gym.Name); name != "" {
		return name
	}

	return fallbackGymName
}

func (s *redemptionService) findPurchase(ctx context.Context, passID uuid.UUID) (*entity.PassPurchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, passID)
	if err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPassNotFound, "pass not found")
		}

		return nil, errors.Wrapf(domainerrors.ErrQueryFailed, "find pass: %v", err)
	}

	return purchase, nil
}

func outcomeOf(v *entity.Verification) service.VerificationOutcome {
	switch v.Reason {
	case entity.DenialReasonRevoked:
		return service.VerificationRevoked
	case entity.DenialReasonExpired:
		return service.VerificationExpired
	default:
		return service.VerificationGranted
	}
}
