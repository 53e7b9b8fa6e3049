package serializers

import (
	"time"

	"harmonize/models"
)

type CommentResponse struct {
	ID        uint      `json:"id"`
	Owner     string    `json:"owner"`
	IsOwner   bool      `json:"is_owner"`
	Post      uint      `json:"post"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
	Body      string    `json:"body"`
}

func SerializeComment(c *models.Comment, requester uint) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Owner:     c.Owner.Username,
		IsOwner:   requester != 0 && requester == c.OwnerID,
		Post:      c.PostID,
		CreatedOn: c.CreatedAt,
		UpdatedOn: c.UpdatedAt,
		Body:      c.Body,
	}
}

func SerializeComments(cs []models.Comment, requester uint) []CommentResponse {
	out := make([]CommentResponse, 0, len(cs))
	for i := range cs {
		out = append(out, SerializeComment(&cs[i], requester))
	}
	return out
}

// CommentInput carries both create and update payloads; Post is ignored
// on update, the association is immutable.
type CommentInput struct {
	Post uint   `json:"post" form:"post"`
	Body string `json:"body" form:"body"`
}

func (in *CommentInput) Validate() Errors {
	errs := Errors{}
	if in.Body == "" {
		errs["body"] = "This field is required."
	}
	return errs
}
