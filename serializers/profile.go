package serializers

import (
	"time"

	"harmonize/models"
)

type ProfileResponse struct {
	ID        uint      `json:"id"`
	Owner     string    `json:"owner"`
	IsOwner   bool      `json:"is_owner"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
}

// SerializeProfile takes the owning user separately because profiles are
// fetched without their owner row.
func SerializeProfile(p *models.Profile, owner *models.User, requester uint) ProfileResponse {
	username := ""
	if owner != nil {
		username = owner.Username
	}
	return ProfileResponse{
		ID:        p.ID,
		Owner:     username,
		IsOwner:   requester != 0 && requester == p.OwnerID,
		CreatedOn: p.CreatedAt,
		UpdatedOn: p.UpdatedAt,
		Name:      p.Name,
		Image:     p.Image,
	}
}
