package auth

// Identity is the verified set of admin rights attached to one request.
type Identity struct {
	SiteAdminID string
	ClubIDs     map[string]struct{}
}

func (i Identity) IsSiteAdmin() bool {
	return i.SiteAdminID != ""
}

// CanManageClub reports whether the caller administers clubID.
// Site admins manage every club.
func (i Identity) CanManageClub(clubID string) bool {
	if i.IsSiteAdmin() {
		return true
	}
	if clubID == "" {
		return false
	}
	_, ok := i.ClubIDs[clubID]
	return ok
}

func (i Identity) IsAnonymous() bool {
	return !i.IsSiteAdmin() && len(i.ClubIDs) == 0
}

// WithClub returns a copy of the identity that also administers clubID.
func (i Identity) WithClub(clubID string) Identity {
	clubs := make(map[string]struct{}, len(i.ClubIDs)+1)
	for id := range i.ClubIDs {
		clubs[id] = struct{}{}
	}
	clubs[clubID] = struct{}{}
	return Identity{SiteAdminID: i.SiteAdminID, ClubIDs: clubs}
}
