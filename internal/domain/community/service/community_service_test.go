package service

import (
	"testing"

	"divelog_studio/internal/domain/community/model"
	"divelog_studio/internal/domain/community/repository"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService() CommunityService {
	return NewCommunityService(repository.NewCommunityRepository(store.NewSeeded()), nil)
}

func TestAddPostNormalizesAttachments(t *testing.T) {
	svc := newTestService()

	post := svc.AddPost("", PostInput{
		Title: "Nachttauchgang am Steg",
		Body:  "Hat jemand Lust auf einen Nachttauchgang nächste Woche?",
		Attachments: []model.Attachment{
			{URL: "https://example.com/licht.jpg"},
			{URL: "   "},
			{URL: "https://example.com/plan.pdf", Title: "Tauchplan", Source: "upload"},
		},
	})

	assert.Equal(t, AnonymousAuthor, post.Author)
	assert.Equal(t, 0, post.Likes)
	assert.Empty(t, post.Comments)

	// Anhang mit leerer URL fliegt raus, Rest bekommt ID, Titel und Quelle
	assert.Len(t, post.Attachments, 2)
	assert.NotEmpty(t, post.Attachments[0].ID)
	assert.Equal(t, "Anhang", post.Attachments[0].Title)
	assert.Equal(t, "url", post.Attachments[0].Source)
	assert.Equal(t, "Tauchplan", post.Attachments[1].Title)
	assert.Equal(t, "upload", post.Attachments[1].Source)

	// 新帖置顶
	posts := svc.Posts("")
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestUpdatePostPartialFields(t *testing.T) {
	svc := newTestService()
	strPtr := func(s string) *string { return &s }

	// post-01 gehört member-02 und ist mit log-01 verknüpft
	err := svc.UpdatePost("member-02", false, "post-01", UpdatePostInput{
		Title:     strPtr("Saisonstart (aktualisiert)"),
		DiveLogID: strPtr(""),
	})
	assert.NoError(t, err)

	p, ok := svc.Post("", "post-01")
	assert.True(t, ok)
	assert.Equal(t, "Saisonstart (aktualisiert)", p.Title)
	assert.Empty(t, p.DiveLogID)
	// nicht angefasste Felder bleiben stehen
	assert.NotEmpty(t, p.Body)
	assert.Len(t, p.Comments, 1)
}

func TestUpdatePostUnknownIDIsNoOp(t *testing.T) {
	svc := newTestService()
	strPtr := func(s string) *string { return &s }

	before := svc.Posts("")
	err := svc.UpdatePost("member-02", false, "post-unknown", UpdatePostInput{Title: strPtr("Geist")})
	assert.NoError(t, err)
	assert.Equal(t, before, svc.Posts(""))
}

func TestUpdatePostChecksAuthor(t *testing.T) {
	svc := newTestService()
	strPtr := func(s string) *string { return &s }

	err := svc.UpdatePost("member-04", false, "post-01", UpdatePostInput{Title: strPtr("Übernahme")})
	assert.ErrorIs(t, err, ErrNoPermission)

	// Admin darf fremde Beiträge bearbeiten
	err = svc.UpdatePost("member-01", true, "post-01", UpdatePostInput{Title: strPtr("Vom Admin angepasst")})
	assert.NoError(t, err)
}

func TestCommentsStayChronological(t *testing.T) {
	svc := newTestService()

	assert.NoError(t, svc.AddComment("member-01", "post-01", CommentInput{
		Author:  "Armin Berger",
		Message: "Ich bringe die Boje mit.",
	}))

	p, ok := svc.Post("", "post-01")
	assert.True(t, ok)
	assert.Len(t, p.Comments, 2)
	for i := 1; i < len(p.Comments); i++ {
		assert.False(t, p.Comments[i].CreatedAt.Before(p.Comments[i-1].CreatedAt))
	}
	assert.Equal(t, "Ich bringe die Boje mit.", p.Comments[len(p.Comments)-1].Message)
}

func TestRemoveComment(t *testing.T) {
	svc := newTestService()

	assert.NoError(t, svc.RemoveComment("member-03", false, "post-01", "comment-01"))
	p, ok := svc.Post("", "post-01")
	assert.True(t, ok)
	assert.Empty(t, p.Comments)
}

func TestTogglePostLikePerViewer(t *testing.T) {
	svc := newTestService()

	// post-01 hat im Seed Likes von member-01 und member-03
	liked, found := svc.TogglePostLike("member-02", "post-01")
	assert.True(t, found)
	assert.True(t, liked)

	p, _ := svc.Post("member-02", "post-01")
	assert.Equal(t, 3, p.Likes)
	assert.True(t, p.LikedByMe)

	// Aus Sicht eines anderen Mitglieds bleibt likedByMe unberührt
	p, _ = svc.Post("member-04", "post-01")
	assert.Equal(t, 3, p.Likes)
	assert.False(t, p.LikedByMe)

	// Zweites Umschalten stellt den Ausgangszustand wieder her
	liked, found = svc.TogglePostLike("member-02", "post-01")
	assert.True(t, found)
	assert.False(t, liked)

	p, _ = svc.Post("member-02", "post-01")
	assert.Equal(t, 2, p.Likes)
	assert.False(t, p.LikedByMe)

	_, found = svc.TogglePostLike("member-02", "post-unknown")
	assert.False(t, found)
}
