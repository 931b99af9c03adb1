package dto

import (
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// CreateMemberRequest defines the data needed to register a member.
type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// UpdateMemberRequest defines the data allowed for updating a member.
type UpdateMemberRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// MemberResponse is the API shape of a member.
type MemberResponse struct {
	MemberID string    `json:"member_id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// ToMemberResponse converts a domain.Member to its API shape.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID: m.MemberID,
		Name:     m.Name,
		Phone:    m.Phone,
		Email:    m.Email,
		JoinedAt: m.JoinedAt,
	}
}

// ToListMemberResponse converts a slice of members.
func ToListMemberResponse(members []domain.Member) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = ToMemberResponse(&m)
	}
	return res
}
