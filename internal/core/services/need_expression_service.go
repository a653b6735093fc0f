package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultListLimit = 20

// needExpressionService implements the approval state machine of need expressions.
type needExpressionService struct {
	BaseService
	expressionRepo portsrepo.NeedExpressionRepositoryWithTx
	sequenceRepo   portsrepo.SequenceRepository
	catalogRepo    portsrepo.CatalogReader
}

// NewNeedExpressionService creates a new NeedExpressionService.
func NewNeedExpressionService(
	expressionRepo portsrepo.NeedExpressionRepositoryWithTx,
	sequenceRepo portsrepo.SequenceRepository,
	catalogRepo portsrepo.CatalogReader,
	publisher portssvc.EventPublisher,
) portssvc.NeedExpressionSvcFacade {
	return &needExpressionService{
		BaseService:    newBaseService(publisher),
		expressionRepo: expressionRepo,
		sequenceRepo:   sequenceRepo,
		catalogRepo:    catalogRepo,
	}
}

var _ portssvc.NeedExpressionSvcFacade = (*needExpressionService)(nil)

// CreateNeedExpression opens a draft after checking every catalog reference.
func (s *needExpressionService) CreateNeedExpression(ctx context.Context, actor domain.Actor, req dto.CreateNeedExpressionRequest) (*domain.NeedExpression, error) {
	if err := domain.RequireCapability(actor, domain.CapCreateExpressions); err != nil {
		s.LogRejected(ctx, err, "Create need expression refused", slog.String("user_id", actor.ID))
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	lines := dto.ToNeedLines(req.Lines)
	if err := domain.ValidateNeedLines(lines); err != nil {
		return nil, err
	}
	if err := s.checkOrganization(ctx, req.DivisionID, req.ServiceID); err != nil {
		return nil, err
	}
	if err := s.checkMaterials(ctx, lines); err != nil {
		return nil, err
	}

	now := s.now()
	expression := domain.NeedExpression{
		ExpressionID: uuid.NewString(),
		Title:        title,
		DivisionID:   req.DivisionID,
		ServiceID:    req.ServiceID,
		Status:       domain.ExpressionDraft,
		Lines:        assignNeedLineIDs(lines),
		AuditFields:  domain.NewAuditFields(actor.ID, now),
	}

	err := inTx(ctx, s.expressionRepo, func(tx pgx.Tx) error {
		number, err := s.sequenceRepo.NextValue(ctx, tx, domain.SequenceNeedExpression)
		if err != nil {
			return err
		}
		expression.Number = strconv.FormatInt(number, 10)
		return s.expressionRepo.SaveNeedExpression(ctx, tx, expression)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create need expression", slog.String("user_id", actor.ID))
		return nil, err
	}

	s.GetLogger(ctx).Info("Need expression created",
		slog.String("expression_id", expression.ExpressionID),
		slog.String("number", expression.Number))
	return &expression, nil
}

// GetNeedExpression returns the expression if the actor owns it or may view all expressions.
func (s *needExpressionService) GetNeedExpression(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	expression, err := s.expressionRepo.FindNeedExpressionByID(ctx, expressionID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(domain.CapViewAllExpressions) {
		if err := domain.RequireOwner(actor, expression.CreatedBy); err != nil {
			return nil, err
		}
	}
	return expression, nil
}

// ListNeedExpressions pages through expressions. Actors without the view-all capability only see their own.
func (s *needExpressionService) ListNeedExpressions(ctx context.Context, actor domain.Actor, params dto.ListNeedExpressionsParams) (*dto.ListNeedExpressionsResponse, error) {
	filter := domain.NeedExpressionFilter{}
	if params.Status != nil {
		status := domain.ExpressionStatus(*params.Status)
		filter.Status = &status
	}
	if params.Mine || !actor.Can(domain.CapViewAllExpressions) {
		owner := actor.ID
		filter.CreatedBy = &owner
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	expressions, nextToken, err := s.expressionRepo.ListNeedExpressions(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list need expressions")
		return nil, err
	}
	return &dto.ListNeedExpressionsResponse{
		Expressions: dto.ToNeedExpressionResponses(expressions),
		NextToken:   nextToken,
	}, nil
}

// EditNeedExpression replaces the full line list of a draft owned by the actor.
func (s *needExpressionService) EditNeedExpression(ctx context.Context, actor domain.Actor, expressionID string, req dto.EditNeedExpressionRequest) (*domain.NeedExpression, error) {
	lines := dto.ToNeedLines(req.Lines)
	if err := domain.ValidateNeedLines(lines); err != nil {
		return nil, err
	}
	var title string
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title must not be blank")
		}
	}
	if err := s.checkMaterials(ctx, lines); err != nil {
		return nil, err
	}

	var edited *domain.NeedExpression
	err := inTx(ctx, s.expressionRepo, func(tx pgx.Tx) error {
		expression, err := s.expressionRepo.FindNeedExpressionForUpdate(ctx, tx, expressionID)
		if err != nil {
			return err
		}
		if err := domain.RequireOwner(actor, expression.CreatedBy); err != nil {
			return err
		}
		if err := expression.Apply(domain.EventEdit, actor.ID, s.now()); err != nil {
			return err
		}
		if title != "" {
			expression.Title = title
		}
		expression.Lines = assignNeedLineIDs(lines)
		if err := s.expressionRepo.ReplaceNeedExpressionContent(ctx, tx, *expression); err != nil {
			return err
		}
		edited = expression
		return nil
	})
	if err != nil {
		s.LogRejected(ctx, err, "Edit need expression failed", slog.String("expression_id", expressionID))
		return nil, err
	}
	return edited, nil
}

// DeleteNeedExpression removes a draft owned by the actor.
func (s *needExpressionService) DeleteNeedExpression(ctx context.Context, actor domain.Actor, expressionID string) error {
	err := inTx(ctx, s.expressionRepo, func(tx pgx.Tx) error {
		expression, err := s.expressionRepo.FindNeedExpressionForUpdate(ctx, tx, expressionID)
		if err != nil {
			return err
		}
		if err := domain.RequireOwner(actor, expression.CreatedBy); err != nil {
			return err
		}
		if err := expression.Apply(domain.EventDelete, actor.ID, s.now()); err != nil {
			return err
		}
		return s.expressionRepo.DeleteNeedExpression(ctx, tx, expressionID)
	})
	if err != nil {
		s.LogRejected(ctx, err, "Delete need expression failed", slog.String("expression_id", expressionID))
		return err
	}
	s.GetLogger(ctx).Info("Need expression deleted", slog.String("expression_id", expressionID))
	return nil
}

// Submit moves the owner's draft to pending.
func (s *needExpressionService) Submit(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	expression, err := s.transition(ctx, actor, expressionID, ownerOnly, func(e *domain.NeedExpression, at time.Time) error {
		return e.Apply(domain.EventSubmit, actor.ID, at)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.NewDomainEvent(domain.EventExpressionSubmitted, expression.ExpressionID, actor.ID, expression.LastUpdatedAt))
	return expression, nil
}

// Withdraw returns the owner's pending expression to draft.
func (s *needExpressionService) Withdraw(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return s.transition(ctx, actor, expressionID, ownerOnly, func(e *domain.NeedExpression, at time.Time) error {
		return e.Apply(domain.EventWithdraw, actor.ID, at)
	})
}

// Decide approves or rejects a pending expression.
func (s *needExpressionService) Decide(ctx context.Context, actor domain.Actor, expressionID string, outcome domain.DecisionOutcome, comment *string) (*domain.NeedExpression, error) {
	if _, err := outcome.Event(); err != nil {
		return nil, err
	}
	expression, err := s.transition(ctx, actor, expressionID, capability(domain.CapDecideExpressions), func(e *domain.NeedExpression, at time.Time) error {
		return e.Decide(outcome, comment, actor.ID, at)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.NewDomainEvent(domain.EventExpressionDecided, expression.ExpressionID, actor.ID, expression.LastUpdatedAt,
		"outcome", string(outcome), "owner_id", expression.CreatedBy))
	return expression, nil
}

// MarkInProgress moves an approved expression to in progress.
func (s *needExpressionService) MarkInProgress(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return s.transition(ctx, actor, expressionID, capability(domain.CapStartProgress), func(e *domain.NeedExpression, at time.Time) error {
		return e.Apply(domain.EventStartProgress, actor.ID, at)
	})
}

// Reopen returns the owner's rejected expression to draft.
func (s *needExpressionService) Reopen(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error) {
	return s.transition(ctx, actor, expressionID, ownerOnly, func(e *domain.NeedExpression, at time.Time) error {
		return e.Apply(domain.EventReopen, actor.ID, at)
	})
}

// expressionGuard authorizes an actor against a locked expression.
type expressionGuard func(actor domain.Actor, e *domain.NeedExpression) error

func ownerOnly(actor domain.Actor, e *domain.NeedExpression) error {
	return domain.RequireOwner(actor, e.CreatedBy)
}

func capability(c domain.Capability) expressionGuard {
	return func(actor domain.Actor, _ *domain.NeedExpression) error {
		return domain.RequireCapability(actor, c)
	}
}

// transition locks the expression, authorizes, applies the state change and persists it.
// Authorization is checked before the state guard.
func (s *needExpressionService) transition(
	ctx context.Context,
	actor domain.Actor,
	expressionID string,
	guard expressionGuard,
	apply func(e *domain.NeedExpression, at time.Time) error,
) (*domain.NeedExpression, error) {
	logger := s.GetLogger(ctx)

	var updated *domain.NeedExpression
	var from domain.ExpressionStatus
	err := inTx(ctx, s.expressionRepo, func(tx pgx.Tx) error {
		expression, err := s.expressionRepo.FindNeedExpressionForUpdate(ctx, tx, expressionID)
		if err != nil {
			return err
		}
		if err := guard(actor, expression); err != nil {
			return err
		}
		from = expression.Status
		if err := apply(expression, s.now()); err != nil {
			return err
		}
		if err := s.expressionRepo.UpdateNeedExpressionStatus(ctx, tx, *expression); err != nil {
			return err
		}
		updated = expression
		return nil
	})
	if err != nil {
		s.LogRejected(ctx, err, "Need expression transition failed", slog.String("expression_id", expressionID))
		return nil, err
	}

	logger.Info("Need expression transitioned",
		slog.String("expression_id", expressionID),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)))
	return updated, nil
}

// checkOrganization verifies the division and, if given, that the service belongs to it.
func (s *needExpressionService) checkOrganization(ctx context.Context, divisionID string, serviceID *string) error {
	if _, err := s.catalogRepo.FindDivisionByID(ctx, divisionID); err != nil {
		return err
	}
	if serviceID == nil {
		return nil
	}
	service, err := s.catalogRepo.FindServiceByID(ctx, *serviceID)
	if err != nil {
		return err
	}
	if service.DivisionID != divisionID {
		return apperrors.NewValidationError("service %s does not belong to division %s", *serviceID, divisionID)
	}
	return nil
}

func (s *needExpressionService) checkMaterials(ctx context.Context, lines []domain.NeedLine) error {
	ids := domain.MaterialIDsOfNeedLines(lines)
	materials, err := s.catalogRepo.FindMaterialsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := materials[id]; !ok {
			return apperrors.NewNotFoundError("material", id)
		}
	}
	return nil
}

func assignNeedLineIDs(lines []domain.NeedLine) []domain.NeedLine {
	for i := range lines {
		lines[i].LineID = uuid.NewString()
	}
	return lines
}
