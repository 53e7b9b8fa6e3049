package serializers

import (
	"time"

	"harmonize/models"
)

type LikeResponse struct {
	ID        uint      `json:"id"`
	Owner     string    `json:"owner"`
	IsOwner   bool      `json:"is_owner"`
	Post      uint      `json:"post"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

func SerializeLike(l *models.Like, requester uint) LikeResponse {
	return LikeResponse{
		ID:        l.ID,
		Owner:     l.Owner.Username,
		IsOwner:   requester != 0 && requester == l.OwnerID,
		Post:      l.PostID,
		CreatedOn: l.CreatedAt,
		UpdatedOn: l.UpdatedAt,
	}
}

func SerializeLikes(ls []models.Like, requester uint) []LikeResponse {
	out := make([]LikeResponse, 0, len(ls))
	for i := range ls {
		out = append(out, SerializeLike(&ls[i], requester))
	}
	return out
}

type LikeInput struct {
	Post uint `json:"post" form:"post"`
}

func (in *LikeInput) Validate() Errors {
	errs := Errors{}
	if in.Post == 0 {
		errs["post"] = "This field is required."
	}
	return errs
}
