package repositories

import (
	"context"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// MemberRepository defines persistence operations for loyalty members.
type MemberRepository interface {
	SaveMember(ctx context.Context, member domain.Member) error
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	// FindMemberByPhone looks a member up by the unique phone number used
	// at the register.
	FindMemberByPhone(ctx context.Context, phone string) (*domain.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) error
	DeleteMember(ctx context.Context, memberID string) error
}
