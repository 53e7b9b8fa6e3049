package serializers

import (
	"fmt"
	"time"

	"harmonize/models"
)

// MaxTitleLen mirrors the column bound on posts.title.
const MaxTitleLen = 200

type PostResponse struct {
	ID           uint      `json:"id"`
	Owner        string    `json:"owner"`
	IsOwner      bool      `json:"is_owner"`
	ProfileID    uint      `json:"profile_id"`
	ProfileImage string    `json:"profile_image"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Image        string    `json:"image"`
	LikeCount    uint      `json:"like_count"`
}

// SerializePost builds the wire object for a post whose Owner (and the
// owner's Profile) have been populated by the store. requester is the
// authenticated user id, zero for anonymous callers.
func SerializePost(p *models.Post, requester uint) PostResponse {
	return PostResponse{
		ID:           p.ID,
		Owner:        p.Owner.Username,
		IsOwner:      requester != 0 && requester == p.OwnerID,
		ProfileID:    p.Owner.Profile.ID,
		ProfileImage: p.Owner.Profile.Image,
		CreatedOn:    p.CreatedAt,
		UpdatedOn:    p.UpdatedAt,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Image:        p.Image,
		LikeCount:    p.LikeCount,
	}
}

func SerializePosts(posts []models.Post, requester uint) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, SerializePost(&posts[i], requester))
	}
	return out
}

// PostInput is the client-writable subset of a post.
type PostInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
}

func (in *PostInput) Validate() Errors {
	errs := Errors{}
	if in.Title == "" {
		errs["title"] = "This field is required."
	} else if len(in.Title) > MaxTitleLen {
		errs["title"] = fmt.Sprintf("Ensure this field has no more than %d characters.", MaxTitleLen)
	}
	if in.Category == "" {
		errs["category"] = "This field is required."
	} else if !models.ValidCategory(in.Category) {
		errs["category"] = fmt.Sprintf("%q is not a valid choice.", in.Category)
	}
	return errs
}

// Apply copies the validated fields onto the record. Owner and image are
// handled by the caller; owner never comes from input.
func (in *PostInput) Apply(p *models.Post) {
	p.Title = in.Title
	p.Description = in.Description
	p.Category = in.Category
}
