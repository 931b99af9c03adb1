package services

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/dto"
)

// MemberSvc manages loyalty members.
type MemberSvc interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, actor string) (*domain.Member, error)
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	GetMemberByPhone(ctx context.Context, phone string) (*domain.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actor string) (*domain.Member, error)
	DeleteMember(ctx context.Context, memberID string) error
}
