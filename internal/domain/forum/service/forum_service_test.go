package service

import (
	"strings"
	"testing"
	"time"

	"divelog_studio/internal/domain/forum/repository"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService() ForumService {
	return NewForumService(repository.NewForumRepository(store.NewSeeded()), nil)
}

func TestAddThreadDerivesExcerpt(t *testing.T) {
	svc := newTestService()

	longBody := strings.Repeat("Tauchen im Bergsee ist besonders. ", 10)
	thread := svc.AddThread("member-02", ThreadInput{
		Title:      "Bergseetauchen",
		Author:     "Lena Hofmann",
		CategoryID: "cat-02",
		Body:       longBody,
	})

	assert.NotEmpty(t, thread.ID)
	assert.Equal(t, thread.CreatedAt, thread.LastActivity)
	assert.Equal(t, 0, thread.Likes)
	assert.Empty(t, thread.Replies)

	runes := []rune(thread.Excerpt)
	assert.Len(t, runes, 161)
	assert.Equal(t, '…', runes[160])

	// Der frische Thread steht wegen LastActivity ganz vorn
	threads := svc.Threads("")
	assert.Equal(t, thread.ID, threads[0].ID)
}

func TestAddThreadKeepsExplicitExcerpt(t *testing.T) {
	svc := newTestService()

	thread := svc.AddThread("member-02", ThreadInput{
		Title:      "Kurz und knapp",
		CategoryID: "cat-01",
		Body:       "Eigentlicher Inhalt",
		Excerpt:    "Handgeschriebene Zusammenfassung",
	})
	assert.Equal(t, "Handgeschriebene Zusammenfassung", thread.Excerpt)
}

func TestReplyBumpsLastActivity(t *testing.T) {
	svc := newTestService()

	// thread-02 liegt im Seed hinter thread-01
	threads := svc.Threads("")
	assert.Equal(t, "thread-01", threads[0].ID)

	assert.NoError(t, svc.AddReply("member-02", "thread-02", ReplyInput{
		Author:  "Lena Hofmann",
		Message: "Im November ist die Sicht top, Safari lohnt sich.",
	}))

	threads = svc.Threads("")
	assert.Equal(t, "thread-02", threads[0].ID)
	assert.Len(t, threads[0].Replies, 1)
	assert.Equal(t, threads[0].Replies[0].CreatedAt, threads[0].LastActivity)
}

func TestRemoveReplyRecomputesLastActivity(t *testing.T) {
	svc := newTestService()

	// reply-02 ist die jüngste Antwort in thread-01
	assert.NoError(t, svc.RemoveReply("member-03", false, "thread-01", "reply-02"))

	th, ok := svc.Thread("", "thread-01")
	assert.True(t, ok)
	assert.Len(t, th.Replies, 1)
	assert.Equal(t, th.Replies[0].CreatedAt, th.LastActivity)

	// Ohne Antworten fällt LastActivity auf die Erstellungszeit zurück
	assert.NoError(t, svc.RemoveReply("member-01", false, "thread-01", "reply-01"))
	th, _ = svc.Thread("", "thread-01")
	assert.Empty(t, th.Replies)
	assert.Equal(t, th.CreatedAt, th.LastActivity)
}

func TestEditDoesNotBumpLastActivity(t *testing.T) {
	svc := newTestService()
	strPtr := func(s string) *string { return &s }

	before, _ := svc.Thread("", "thread-01")

	err := svc.UpdateThread("member-02", false, "thread-01", UpdateThreadInput{
		Body: strPtr("Komplett neuer Text zur Wartung."),
	})
	assert.NoError(t, err)

	after, _ := svc.Thread("", "thread-01")
	assert.Equal(t, before.LastActivity, after.LastActivity)
	// Ohne expliziten Excerpt wird er aus dem neuen Text abgeleitet
	assert.Equal(t, "Komplett neuer Text zur Wartung.", after.Excerpt)
}

func TestThreadLikesPerViewer(t *testing.T) {
	svc := newTestService()

	// thread-01 hat im Seed ein Like von member-03
	liked, found := svc.ToggleThreadLike("member-02", "thread-01")
	assert.True(t, found)
	assert.True(t, liked)

	th, _ := svc.Thread("member-02", "thread-01")
	assert.Equal(t, 2, th.Likes)
	assert.True(t, th.LikedByMe)

	th, _ = svc.Thread("member-04", "thread-01")
	assert.False(t, th.LikedByMe)

	liked, found = svc.ToggleThreadLike("member-02", "thread-01")
	assert.True(t, found)
	assert.False(t, liked)
	th, _ = svc.Thread("member-02", "thread-01")
	assert.Equal(t, 1, th.Likes)
}

func TestReplyLike(t *testing.T) {
	svc := newTestService()

	// reply-02 hat im Seed ein Like von member-02
	liked, found := svc.ToggleReplyLike("member-02", "thread-01", "reply-02")
	assert.True(t, found)
	assert.False(t, liked)

	th, _ := svc.Thread("member-02", "thread-01")
	for _, r := range th.Replies {
		if r.ID == "reply-02" {
			assert.Equal(t, 0, r.Likes)
			assert.False(t, r.LikedByMe)
		}
	}

	_, found = svc.ToggleReplyLike("member-02", "thread-01", "reply-unknown")
	assert.False(t, found)
}

func TestReplyTimesAscending(t *testing.T) {
	svc := newTestService()

	assert.NoError(t, svc.AddReply("member-04", "thread-01", ReplyInput{
		Author:  "Mira Janssen",
		Message: "Danke für die Einschätzungen!",
	}))

	th, _ := svc.Thread("", "thread-01")
	assert.Len(t, th.Replies, 3)
	var prev time.Time
	for _, r := range th.Replies {
		assert.False(t, r.CreatedAt.Before(prev))
		prev = r.CreatedAt
	}
}
