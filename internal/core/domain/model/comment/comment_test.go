package comment_test

import (
	"strings"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/comment"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	orderID := kernel.NewUUID()

	c, err := comment.NewComment(kernel.NewUUID(), kernel.NewUUID(), orderID, "  Great pizza  ", 5, time.Now())
	require.NoError(t, err)

	require.NoError(t, c.Validate())
	assert.Equal(t, "Great pizza", c.Text())
	assert.Equal(t, 5, c.Rating())
	assert.False(t, c.IsApproved())

	got, ok := c.OrderID()
	assert.True(t, ok)
	assert.Equal(t, orderID, got)
}

func TestNewComment_WithoutOrder(t *testing.T) {
	c, err := comment.NewComment(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "Nice place", 4, time.Now())
	require.NoError(t, err)

	_, ok := c.OrderID()
	assert.False(t, ok)
}

func TestNewComment_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		rating int
		want   error
	}{
		{"rating below range", "ok", 0, errs.ErrValueIsOutOfRange},
		{"rating above range", "ok", 6, errs.ErrValueIsOutOfRange},
		{"blank text", "   ", 3, errs.ErrValueIsRequired},
		{"text too long", strings.Repeat("a", comment.MaxTextLength+1), 3, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := comment.NewComment(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, tt.text, tt.rating, time.Now())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewComment_CollectsErrors(t *testing.T) {
	_, err := comment.NewComment(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, "", 9, time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestComment_Approve(t *testing.T) {
	c, err := comment.NewComment(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "Tasty", 4, time.Now())
	require.NoError(t, err)

	c.Approve()
	c.Approve()

	assert.True(t, c.IsApproved())
}

func TestComment_Validate_Unconstructed(t *testing.T) {
	var c *comment.Comment
	require.ErrorIs(t, c.Validate(), comment.ErrCommentIsNotConstructed)
	require.ErrorIs(t, (&comment.Comment{}).Validate(), comment.ErrCommentIsNotConstructed)
}
