package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"harmonize/middleware"
	"harmonize/serializers"
)

// ListProfiles is the whole profile surface: profiles are read-only here,
// they change only as a side effect of registration.
func (a *App) ListProfiles(c *gin.Context) {
	profiles, err := a.Store.Profiles()
	if err != nil {
		serverError(c, err)
		return
	}

	requester, _ := middleware.CurrentUser(c)
	out := make([]serializers.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		owner, err := a.Store.UserByID(profiles[i].OwnerID)
		if err != nil {
			owner = nil
		}
		out = append(out, serializers.SerializeProfile(&profiles[i], owner, requester))
	}
	c.JSON(http.StatusOK, out)
}
