package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for loyalty member data.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

const fullMemberSelectQuery = `
	SELECT m.member_id, m.name, m.phone, m.email, m.joined_at,
		m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
	FROM members m
`

func (r *PgxMemberRepository) getMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.Member, error) {
	rows, err := r.Pool.Query(ctx, fullMemberSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Member])
	if err != nil {
		return nil, fmt.Errorf("failed to collect member rows: %w", err)
	}
	return members, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `
		INSERT INTO members (
			member_id, name, phone, email, joined_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.MemberID,
		member.Name,
		member.Phone,
		member.Email,
		member.JoinedAt,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: phone %s", apperrors.ErrDuplicate, member.Phone)
		}
		return fmt.Errorf("failed to save member %s: %w", member.MemberID, err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	members, err := r.getMembers(ctx, `WHERE m.member_id = $1`, memberID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &members[0], nil
}

func (r *PgxMemberRepository) FindMemberByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	members, err := r.getMembers(ctx, `WHERE m.phone = $1`, phone)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &members[0], nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	return r.getMembers(ctx, `ORDER BY m.joined_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	query := `
		UPDATE members SET
			name = $2, phone = $3, email = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE member_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		member.MemberID,
		member.Name,
		member.Phone,
		member.Email,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: phone %s", apperrors.ErrDuplicate, member.Phone)
		}
		return fmt.Errorf("failed to update member %s: %w", member.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
