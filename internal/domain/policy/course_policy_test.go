package policy

import (
	"testing"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	course := &entity.Course{ID: uuid.New(), OwnerID: owner}

	tests := []struct {
		name     string
		identity uuid.UUID
		course   *entity.Course
		want     Decision
	}{
		{name: "owner", identity: owner, course: course, want: Allowed},
		{name: "other identity", identity: other, course: course, want: Denied},
		{name: "nil identity", identity: uuid.Nil, course: course, want: Denied},
		{name: "nil course", identity: owner, course: nil, want: Denied},
		{name: "ownerless course", identity: owner, course: &entity.Course{ID: uuid.New()}, want: Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.identity, tt.course))
		})
	}
}

func TestAuthorize_OnlyOwnerAllowedAcrossIdentities(t *testing.T) {
	owner := uuid.New()
	course := &entity.Course{ID: uuid.New(), OwnerID: owner}

	for range 50 {
		assert.Equal(t, Denied, Authorize(uuid.New(), course))
	}
	assert.Equal(t, Allowed, Authorize(owner, course))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allowed", Allowed.String())
	assert.Equal(t, "denied", Denied.String())
}
