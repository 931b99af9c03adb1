package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
	"github.com/google/uuid"
)

// memberService implements the MemberSvc interface
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(repo portsrepo.MemberRepository) portssvc.MemberSvc {
	return &memberService{memberRepo: repo}
}

var _ portssvc.MemberSvc = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, actor string) (*domain.Member, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	member := domain.Member{
		MemberID: uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		JoinedAt: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: phone number already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save member", slog.String("phone", req.Phone))
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	s.LogInfo(ctx, "Member registered", slog.String("member_id", member.MemberID))
	return &member, nil
}

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}
	return member, nil
}

func (s *memberService) GetMemberByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch member by phone")
		return nil, fmt.Errorf("failed to fetch member by phone: %w", err)
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actor string) (*domain.Member, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = actor

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: phone number already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete member", slog.String("member_id", memberID))
		return fmt.Errorf("failed to delete member: %w", err)
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}
