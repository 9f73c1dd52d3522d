package club

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const MaxNameLength = 100

// ErrSlugTaken is returned by repositories when another club owns the slug.
var ErrSlugTaken = errors.New("club slug already taken")

// Club is a tenant of the ladder service.
type Club struct {
	ID                string
	Name              string
	Slug              string
	AdminPasswordHash string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EffectiveSlug returns the stored slug or derives one from the name.
func (c Club) EffectiveSlug() string {
	if strings.TrimSpace(c.Slug) != "" {
		return c.Slug
	}
	return CreateSlug(c.Name)
}

func (c Club) HasAdminPassword() bool {
	return c.AdminPasswordHash != ""
}

func (c Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club id is required")
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("club name is required")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("club name must be at most %d characters", MaxNameLength)
	}
	if !IsValidSlug(c.EffectiveSlug()) {
		return fmt.Errorf("club name must contain at least one letter or digit")
	}

	return nil
}
