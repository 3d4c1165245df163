package mapping

import (
	"database/sql"

	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/kicky1/dashboard/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:        d.UserID,
		Email:         d.Email,
		Name:          d.Name,
		AuthProvider:  string(d.AuthProvider),
		EmailVerified: d.EmailVerified,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeletedAt:     d.DeletedAt,
	}
	if d.ProviderUserID != "" {
		m.ProviderUserID = sql.NullString{String: d.ProviderUserID, Valid: true}
	}
	if d.PasswordHash != "" {
		m.PasswordHash = sql.NullString{String: d.PasswordHash, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:        m.UserID,
		Email:         m.Email,
		Name:          m.Name,
		AuthProvider:  domain.AuthProvider(m.AuthProvider),
		EmailVerified: m.EmailVerified,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
	if m.ProviderUserID.Valid {
		d.ProviderUserID = m.ProviderUserID.String
	}
	if m.PasswordHash.Valid {
		d.PasswordHash = m.PasswordHash.String
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}
